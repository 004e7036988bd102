package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite"

	m "github.com/mouse-blink/defargs/internal/model"
)

// CacheEntry records what was generated for one source file.
type CacheEntry struct {
	Source     m.Path // absolute source path
	SourceHash string
	// Fingerprint identifies the configuration the output was produced with.
	Fingerprint string
	Output      m.Path
	OutputHash  string
	Callables   []string
	Variants    int
	Updated     time.Time
}

// GenerationStore persists generation results between runs so unchanged
// sources can be skipped.
type GenerationStore interface {
	Lookup(ctx context.Context, source m.Path) (CacheEntry, bool, error)
	Save(ctx context.Context, entry CacheEntry) error
	Forget(ctx context.Context, source m.Path) error
	Close() error
}

// SQLiteGenerationStore keeps cache entries in a sqlite database.
type SQLiteGenerationStore struct {
	file string
	db   *sql.DB
}

// busyTimeout is how long a connection waits on a lock held by another
// process sharing the cache file.
const busyTimeout = 5 * time.Second

// NewSQLiteGenerationStore opens (creating if needed) the cache database at path.
// The store is safe for concurrent use; statements are serialized over a
// single connection.
func NewSQLiteGenerationStore(path m.Path) (*SQLiteGenerationStore, error) {
	file := string(path)

	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", file, busyTimeout.Milliseconds())

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, wrapDBError(err)
	}

	db.SetMaxOpenConns(1)

	store := &SQLiteGenerationStore{file: file, db: db}
	if err := store.init(); err != nil {
		_ = db.Close()

		return nil, err
	}

	return store, nil
}

func (s *SQLiteGenerationStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS generations (
		source TEXT NOT NULL PRIMARY KEY,
		source_hash TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		output TEXT NOT NULL,
		output_hash TEXT NOT NULL,
		callables TEXT NOT NULL,
		variants INTEGER NOT NULL,
		updated INTEGER NOT NULL
	);`)
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

// Lookup returns the entry stored for source, if any.
func (s *SQLiteGenerationStore) Lookup(ctx context.Context, source m.Path) (CacheEntry, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT source_hash, fingerprint, output, output_hash, callables, variants, updated
		FROM generations WHERE source = ?;`, string(source))

	entry := CacheEntry{Source: source}

	var (
		output    string
		callables string
		updated   int64
	)

	err := row.Scan(&entry.SourceHash, &entry.Fingerprint, &output, &entry.OutputHash, &callables, &entry.Variants, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return CacheEntry{}, false, nil
	}

	if err != nil {
		return CacheEntry{}, false, wrapDBError(err)
	}

	entry.Output = m.Path(output)
	entry.Updated = time.Unix(updated, 0)

	if callables != "" {
		entry.Callables = strings.Split(callables, ",")
	}

	return entry, true, nil
}

// Save inserts or replaces the entry for entry.Source.
func (s *SQLiteGenerationStore) Save(ctx context.Context, entry CacheEntry) error {
	if entry.Updated.IsZero() {
		entry.Updated = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO generations
		(source, source_hash, fingerprint, output, output_hash, callables, variants, updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			source_hash = excluded.source_hash,
			fingerprint = excluded.fingerprint,
			output = excluded.output,
			output_hash = excluded.output_hash,
			callables = excluded.callables,
			variants = excluded.variants,
			updated = excluded.updated;`,
		string(entry.Source),
		entry.SourceHash,
		entry.Fingerprint,
		string(entry.Output),
		entry.OutputHash,
		strings.Join(entry.Callables, ","),
		entry.Variants,
		entry.Updated.Unix(),
	)
	if err != nil {
		return wrapDBError(err)
	}

	return nil
}

// Forget removes the entry for source.
func (s *SQLiteGenerationStore) Forget(ctx context.Context, source m.Path) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM generations WHERE source = ?;`, string(source)); err != nil {
		return wrapDBError(err)
	}

	return nil
}

// Close releases the database handle.
func (s *SQLiteGenerationStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("%s: %w", s.file, err)
	}

	return nil
}

func wrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		return fmt.Errorf("cache: %s: %w", sqlite.ErrorCodeString[sqliteErr.Code()], err)
	}

	return fmt.Errorf("cache: %w", err)
}

// NopGenerationStore never remembers anything; it backs --no-cache.
type NopGenerationStore struct{}

// Lookup always misses.
func (NopGenerationStore) Lookup(context.Context, m.Path) (CacheEntry, bool, error) {
	return CacheEntry{}, false, nil
}

// Save discards entry.
func (NopGenerationStore) Save(context.Context, CacheEntry) error { return nil }

// Forget does nothing.
func (NopGenerationStore) Forget(context.Context, m.Path) error { return nil }

// Close does nothing.
func (NopGenerationStore) Close() error { return nil }

// StoreOpener opens the generation store for a run.
type StoreOpener func(path m.Path) (GenerationStore, error)

// OpenGenerationStore opens the sqlite store at path, or a NopGenerationStore
// when path is empty.
func OpenGenerationStore(path m.Path) (GenerationStore, error) {
	if path == "" {
		return NopGenerationStore{}, nil
	}

	return NewSQLiteGenerationStore(path)
}
