// Command import-elements seeds the element table from a JSON dump in the
// shape the mendeleev-based generator emits: an array of records with
// atomic_number, symbol, name, atomic_weight, group, period, category,
// electron_configuration, summary and uses.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"periodictutor/internal/elements"
	"periodictutor/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "[IMPORT] ", log.LstdFlags)

	var (
		dataPath = flag.String("data", "data/elements.json", "path to the elements JSON file")
		dbPath   = flag.String("db", "periodictutor.db", "path to the SQLite database")
	)
	flag.Parse()

	els, err := loadElements(*dataPath)
	if err != nil {
		logger.Fatalf("failed to load elements: %v", err)
	}

	db, err := store.NewSQLiteDB(*dbPath)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatalf("failed to migrate database: %v", err)
	}
	if err := db.SaveElements(els); err != nil {
		logger.Fatalf("failed to save elements: %v", err)
	}

	n, err := db.CountElements()
	if err != nil {
		logger.Fatalf("failed to count elements: %v", err)
	}
	logger.Printf("imported %d elements into %s (%d total)", len(els), *dbPath, n)
}

func loadElements(path string) ([]elements.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var els []elements.Element
	if err := json.NewDecoder(f).Decode(&els); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(els) == 0 {
		return nil, fmt.Errorf("%s contains no elements", path)
	}

	for _, el := range els {
		if el.AtomicNumber <= 0 || el.Symbol == "" || el.Name == "" {
			return nil, fmt.Errorf("malformed record: %+v", el)
		}
	}
	return els, nil
}
