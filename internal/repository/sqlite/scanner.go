package sqlite

// Scanner is satisfied by both *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanDocument scans key, value and updated_at.
func ScanDocument(scanner Scanner) (*Document, error) {
	doc := &Document{}
	var updatedAt string

	if err := scanner.Scan(&doc.Key, &doc.Value, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, err
	}
	doc.UpdatedAt = parsed

	return doc, nil
}

// ScanDocuments scans every remaining row.
func ScanDocuments(rows Rows) ([]*Document, error) {
	var docs []*Document
	for rows.Next() {
		doc, err := ScanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
