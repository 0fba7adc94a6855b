package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/candela-labs/iesedit/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS catalog (
	id                TEXT PRIMARY KEY,
	file_name         TEXT NOT NULL,
	test              TEXT NOT NULL DEFAULT '',
	manufacturer      TEXT NOT NULL DEFAULT '',
	total_lumens      REAL NOT NULL,
	input_watts       REAL NOT NULL,
	efficacy          REAL NOT NULL,
	vertical_angles   INTEGER NOT NULL,
	horizontal_angles INTEGER NOT NULL
);
`

// CatalogStore is a SQLite-backed implementation of
// driven.CatalogStore.
type CatalogStore struct {
	db   *sql.DB
	path string
}

// NewCatalogStore opens (or creates) the catalog database at dbPath.
// If dbPath is empty, defaults to ~/.iesedit/catalog.db.
func NewCatalogStore(dbPath string) (*CatalogStore, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".iesedit", "catalog.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// WAL mode for better concurrency across CLI invocations.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &CatalogStore{db: db, path: dbPath}, nil
}

// Add inserts or replaces a catalog entry.
func (s *CatalogStore) Add(ctx context.Context, entry *driven.CatalogEntry) error {
	const query = `
		INSERT OR REPLACE INTO catalog
			(id, file_name, test, manufacturer, total_lumens, input_watts,
			 efficacy, vertical_angles, horizontal_angles)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		entry.ID, entry.FileName, entry.Test, entry.Manufacturer,
		entry.TotalLumens, entry.InputWatts, entry.Efficacy,
		entry.VerticalAngles, entry.HorizontalAngles)
	if err != nil {
		return fmt.Errorf("inserting catalog entry: %w", err)
	}
	return nil
}

// List returns all entries ordered by file name.
func (s *CatalogStore) List(ctx context.Context) ([]driven.CatalogEntry, error) {
	const query = `
		SELECT id, file_name, test, manufacturer, total_lumens,
		       input_watts, efficacy, vertical_angles, horizontal_angles
		FROM catalog
		ORDER BY file_name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []driven.CatalogEntry
	for rows.Next() {
		var e driven.CatalogEntry
		if err := rows.Scan(&e.ID, &e.FileName, &e.Test, &e.Manufacturer,
			&e.TotalLumens, &e.InputWatts, &e.Efficacy,
			&e.VerticalAngles, &e.HorizontalAngles); err != nil {
			return nil, fmt.Errorf("scanning catalog entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database connection.
func (s *CatalogStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *CatalogStore) Path() string {
	return s.path
}
