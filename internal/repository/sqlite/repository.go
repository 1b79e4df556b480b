package sqlite

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"weekplan/internal/errors"
	"weekplan/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const entityDocument = "document"

// Repository stores one JSON document per entity key.
type Repository interface {
	GetDocument(ctx context.Context, key string) (*Document, error)
	ListDocuments(ctx context.Context) ([]*Document, error)
	PutDocument(ctx context.Context, key, value string) error
	// PutDocuments writes every document or none of them.
	PutDocuments(ctx context.Context, docs map[string]string) error
	DeleteDocument(ctx context.Context, key string) error
	Close() error
}

// Options tunes timeouts applied to each repository call.
type Options struct {
	QueryTimeout   time.Duration
	WriteTimeout   time.Duration
	DirPermissions os.FileMode
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{
		QueryTimeout:   10 * time.Second,
		WriteTimeout:   5 * time.Second,
		DirPermissions: 0o755,
	}
}

// SQLiteRepository implements Repository over modernc.org/sqlite.
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
	now  func() time.Time
}

// New opens dbPath with default options.
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, DefaultOptions())
}

// NewWithOptions opens (creating if needed) the database at dbPath and runs migrations.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	if dbPath == "" {
		return nil, errors.NewInvalidInputError("database path", dbPath, "cannot be empty")
	}
	if dbPath != MemoryPath && !strings.HasPrefix(dbPath, "file:") {
		perm := opts.DirPermissions
		if perm == 0 {
			perm = 0o755
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), perm); err != nil {
			return nil, errors.NewDatabaseError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(dbPath))
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// A second pooled connection to :memory: would see an empty database.
	db.SetMaxOpenConns(1)

	ctx, cancel := withTimeout(context.Background(), opts.WriteTimeout)
	defer cancel()
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts, now: time.Now}, nil
}

func sqliteDSN(path string) string {
	if path == MemoryPath || strings.HasPrefix(path, "file:") {
		return path
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}

// Close closes the underlying database.
func (r *SQLiteRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *SQLiteRepository) GetDocument(ctx context.Context, key string) (*Document, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM documents WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanDocument, entityDocument, key, key)
}

func (r *SQLiteRepository) ListDocuments(ctx context.Context) ([]*Document, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM documents ORDER BY key`
	return QueryMultiple(ctx, r.db, query, ScanDocuments, entityDocument)
}

func (r *SQLiteRepository) PutDocument(ctx context.Context, key, value string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	if err := r.upsert(ctx, r.db, key, value); err != nil {
		return HandleDatabaseError("save "+key, err)
	}
	return nil
}

func (r *SQLiteRepository) PutDocuments(ctx context.Context, docs map[string]string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	keys := make([]string, 0, len(docs))
	for key := range docs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, key := range keys {
			if err := r.upsert(ctx, tx, key, docs[key]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return HandleDatabaseError("save documents", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteDocument(ctx context.Context, key string) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM documents WHERE key = ?`, entityDocument, key, key)
}

func (r *SQLiteRepository) upsert(ctx context.Context, db Execer, key, value string) error {
	query := `
	INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	_, err := db.ExecContext(ctx, query, key, value, FormatTimeForDB(r.now()))
	return err
}
