package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ProgressKey is the fixed slot key under which progress state is stored.
const ProgressKey = "progress"

// DB wraps the SQLite database holding the app's key-value slots.
type DB struct {
	db *sql.DB
}

// Open creates a DB connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the slots table.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS slots (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}

	return &DB{db: db}, nil
}

// Slot returns a Slot bound to the given key.
func (d *DB) Slot(key string) Slot {
	return &sqliteSlot{db: d.db, key: key}
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

type sqliteSlot struct {
	db  *sql.DB
	key string
}

func (s *sqliteSlot) Read() (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", s.key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %q: %w", s.key, err)
	}
	return value, true, nil
}

func (s *sqliteSlot) Write(value string) error {
	_, err := s.db.Exec(
		"INSERT INTO slots (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		s.key, value,
	)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", s.key, err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user durability.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LIVEWIRE_DB environment variable
// 2. $XDG_DATA_HOME/livewire/livewire.db
// 3. ~/.local/share/livewire/livewire.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LIVEWIRE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "livewire", "livewire.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
