// Package state persists the layout spec and geometry per window mode so a
// session can be restored across launches. The engine consumes this shape
// but does not own it; anything inconsistent is revalidated on restore.
package state

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "viewport"
	dbFileName = "viewport.db"
)

// Manager stores layout state in a SQLite database.
type Manager struct {
	db *sql.DB
}

// Open opens (creating if needed) the state database in the XDG data dir.
func Open() (*Manager, error) {
	dbPath := filepath.Join(xdg.DataHome, appName, dbFileName)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}
	return OpenAt(dbPath)
}

// OpenAt opens a state database at an explicit path. Used by tests.
func OpenAt(path string) (*Manager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}

// DB exposes the underlying handle.
func (m *Manager) DB() *sql.DB {
	return m.db
}
