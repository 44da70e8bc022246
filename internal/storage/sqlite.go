// Package storage provides SQLite-based persistence for the score ledger.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pingpong/internal/config"
	"github.com/vovakirdan/pingpong/internal/ledger"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Ensure Store implements ledger.Backend
var _ ledger.Backend = (*Store)(nil)

// Stats contains aggregated statistics over the stored results.
type Stats struct {
	Rounds    int
	Players   int
	HighScore int
	AvgScore  float64
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// position keeps the ledger order, which is not the ranking order until
// the table view has been requested.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			result INTEGER NOT NULL,
			position INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_position ON results(position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns every stored result in ledger order.
func (s *Store) Load() ([]ledger.Result, error) {
	rows, err := s.db.Query(`SELECT name, result FROM results ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []ledger.Result
	for rows.Next() {
		var r ledger.Result
		if err := rows.Scan(&r.Name, &r.Result); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Save replaces the stored results with the given ones inside a single
// transaction. A failed save leaves the previous contents in place.
func (s *Store) Save(results []ledger.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	if _, err := tx.Exec(`DELETE FROM results`); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO results (name, result, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.Exec(r.Name, r.Result, i); err != nil {
			return fmt.Errorf("storage: cannot save result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit results: %w", err)
	}
	return nil
}

// GetStats retrieves aggregated statistics over all stored results.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT name), COALESCE(MAX(result), 0), COALESCE(AVG(result), 0)
		 FROM results`,
	).Scan(&stats.Rounds, &stats.Players, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	return stats, nil
}
