package lexicon

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"
)

// DB is a SQLite-backed lexicon. It satisfies Lexicon and is safe for
// concurrent lookups. Open it once at process startup and close it when done;
// no initialization happens as an import side effect.
type DB struct {
	mu sync.RWMutex
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS words (
	word TEXT PRIMARY KEY,
	root TEXT NOT NULL
);`

// Open opens (or creates) a SQLite lexicon at the given path and ensures the
// schema exists.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon database: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create lexicon schema: %w", err)
	}
	return &DB{db: sqlDB}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// Add inserts or replaces a word and its root form.
func (d *DB) Add(word, root string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return errors.New("lexicon database is closed")
	}
	_, err := d.db.Exec(
		"INSERT OR REPLACE INTO words (word, root) VALUES (?, ?)",
		strings.ToLower(word), strings.ToLower(root),
	)
	if err != nil {
		return fmt.Errorf("failed to add word %q: %w", word, err)
	}
	return nil
}

// AddAll inserts words that are their own root form.
func (d *DB) AddAll(words ...string) error {
	for _, w := range words {
		if err := d.Add(w, w); err != nil {
			return err
		}
	}
	return nil
}

// Lookup resolves word to its stored root form.
func (d *DB) Lookup(word string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.db == nil {
		return "", false
	}
	var root string
	err := d.db.QueryRow(
		"SELECT root FROM words WHERE word = ?",
		strings.ToLower(strings.TrimSpace(word)),
	).Scan(&root)
	if err != nil {
		return "", false
	}
	return root, true
}
