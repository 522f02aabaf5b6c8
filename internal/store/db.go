// Package store persists the periodic-table reference data. Game sessions
// deliberately never touch it; only static element records live here.
package store

import "periodictutor/internal/elements"

// DB is the database interface for element records.
type DB interface {
	Close() error
	Migrate() error
	SaveElements(els []elements.Element) error
	GetElement(atomicNumber int) (*elements.Element, error)
	ListElements() ([]elements.Element, error)
	CountElements() (int, error)
}
