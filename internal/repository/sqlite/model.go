package sqlite

import "time"

// Document is one JSON-encoded entity stored under a fixed key.
type Document struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
