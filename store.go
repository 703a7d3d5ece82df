package gallery

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database holding one row per manifest build, so
// `galleryctl history` can show when the manifest last changed and how many
// files were accepted or rejected.
type Store struct {
	db *sql.DB
}

// BuildRun is one recorded manifest build.
type BuildRun struct {
	ID        string
	StartedAt string // RFC3339, UTC
	Accepted  int
	Rejected  int
	Skipped   int
	Output    string
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("gallery: create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("gallery: open history db: %w", err)
	}
	// WAL with a busy timeout so a concurrent `history` invocation waits
	// instead of failing with SQLITE_BUSY mid-build.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, fmt.Errorf("gallery: configure history db: %w", err)
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, fmt.Errorf("gallery: migrate history db: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS builds (
    id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    accepted INTEGER NOT NULL,
    rejected INTEGER NOT NULL,
    skipped INTEGER NOT NULL,
    output TEXT NOT NULL
);
`)
	return err
}

// SaveRun inserts one build run.
func (s *Store) SaveRun(r BuildRun) error {
	_, err := s.db.Exec(
		`INSERT INTO builds (id, started_at, accepted, rejected, skipped, output) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt, r.Accepted, r.Rejected, r.Skipped, r.Output)
	return err
}

// ListRuns returns up to limit builds, most recent first.
func (s *Store) ListRuns(limit int) ([]BuildRun, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, accepted, rejected, skipped, output FROM builds ORDER BY started_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []BuildRun
	for rows.Next() {
		var r BuildRun
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Accepted, &r.Rejected, &r.Skipped, &r.Output); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
