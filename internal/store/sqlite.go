package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"periodictutor/internal/elements"
)

// SQLiteDB implements the DB interface using SQLite.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new SQLite database connection.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Migrate creates the elements table and its indexes.
func (s *SQLiteDB) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS elements (
			atomic_number INTEGER PRIMARY KEY,
			symbol TEXT NOT NULL,
			name TEXT NOT NULL,
			atomic_weight REAL,
			grp TEXT NOT NULL,
			period INTEGER NOT NULL,
			category TEXT NOT NULL,
			electron_configuration TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			uses TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_elements_symbol ON elements(symbol)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_elements_name ON elements(name)`,
		`CREATE INDEX IF NOT EXISTS idx_elements_category ON elements(category)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// SaveElements upserts element records in a single transaction. Re-running
// the importer over an existing database just refreshes the rows.
func (s *SQLiteDB) SaveElements(els []elements.Element) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO elements (
		atomic_number, symbol, name, atomic_weight, grp, period, category,
		electron_configuration, summary, uses
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(atomic_number) DO UPDATE SET
		symbol = excluded.symbol,
		name = excluded.name,
		atomic_weight = excluded.atomic_weight,
		grp = excluded.grp,
		period = excluded.period,
		category = excluded.category,
		electron_configuration = excluded.electron_configuration,
		summary = excluded.summary,
		uses = excluded.uses`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, el := range els {
		if _, err := stmt.Exec(
			el.AtomicNumber, el.Symbol, el.Name, el.AtomicWeight, el.Group,
			el.Period, el.Category, el.ElectronConf, el.Summary, el.Uses,
		); err != nil {
			return fmt.Errorf("upsert element %d: %w", el.AtomicNumber, err)
		}
	}

	return tx.Commit()
}

// GetElement returns the element with the given atomic number, or nil when
// no such row exists.
func (s *SQLiteDB) GetElement(atomicNumber int) (*elements.Element, error) {
	row := s.db.QueryRow(`SELECT atomic_number, symbol, name, atomic_weight, grp,
		period, category, electron_configuration, summary, uses
		FROM elements WHERE atomic_number = ?`, atomicNumber)

	el, err := scanElement(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get element %d: %w", atomicNumber, err)
	}
	return el, nil
}

// ListElements returns every element ordered by atomic number.
func (s *SQLiteDB) ListElements() ([]elements.Element, error) {
	rows, err := s.db.Query(`SELECT atomic_number, symbol, name, atomic_weight, grp,
		period, category, electron_configuration, summary, uses
		FROM elements ORDER BY atomic_number`)
	if err != nil {
		return nil, fmt.Errorf("list elements: %w", err)
	}
	defer rows.Close()

	var els []elements.Element
	for rows.Next() {
		el, err := scanElement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan element: %w", err)
		}
		els = append(els, *el)
	}
	return els, rows.Err()
}

// CountElements returns the number of stored elements.
func (s *SQLiteDB) CountElements() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM elements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count elements: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanElement(row rowScanner) (*elements.Element, error) {
	var el elements.Element
	var weight sql.NullFloat64
	err := row.Scan(
		&el.AtomicNumber, &el.Symbol, &el.Name, &weight, &el.Group,
		&el.Period, &el.Category, &el.ElectronConf, &el.Summary, &el.Uses,
	)
	if err != nil {
		return nil, err
	}
	if weight.Valid {
		el.AtomicWeight = &weight.Float64
	}
	return &el, nil
}
