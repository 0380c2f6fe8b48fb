package questions

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/sqlite"
)

// SQLiteCorpus stores raw corpus documents in a SQLite database. Only the
// source text is persisted; token lists and IDF tables are rebuilt on load.
type SQLiteCorpus struct {
	db *sql.DB
}

// OpenSQLiteCorpus opens a corpus database, creating the schema if needed.
func OpenSQLiteCorpus(dbPath string) (*SQLiteCorpus, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			content TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteCorpus{db: db}, nil
}

// Put inserts one document, replacing the content of an existing name.
func (c *SQLiteCorpus) Put(name, content string) error {
	_, err := c.db.Exec(
		`INSERT INTO documents (name, content) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET content = excluded.content`,
		name, content)
	return err
}

// ImportDir loads every document of a corpus directory into the store.
func (c *SQLiteCorpus) ImportDir(dir string) error {
	docs, err := LoadCorpus(dir)
	if err != nil {
		return err
	}
	for name, content := range docs {
		if err := c.Put(name, content); err != nil {
			return fmt.Errorf("could not store %s: %w", name, err)
		}
	}
	return nil
}

// Load returns the stored corpus as a name -> raw text map.
func (c *SQLiteCorpus) Load() (map[string]string, error) {
	rows, err := c.db.Query("SELECT name, content FROM documents")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make(map[string]string)
	for rows.Next() {
		var name, content string
		if err := rows.Scan(&name, &content); err != nil {
			return nil, err
		}
		docs[name] = content
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("corpus database contains no documents")
	}
	return docs, nil
}

// Close closes the database connection.
func (c *SQLiteCorpus) Close() error {
	return c.db.Close()
}
