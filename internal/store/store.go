package store

import (
	"database/sql"

	"github.com/uniplaces/carbon"
)

// Store is the mysql-backed implementation of the KV interface.
type Store struct {
	db *sql.DB
}

// New creates a new Store instance
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetDB returns the underlying sql.DB instance
func (store *Store) GetDB() *sql.DB {
	return store.db
}

// EnsureSchema creates the kv_store table if it is missing.
func (store *Store) EnsureSchema() error {
	_, err := store.db.Exec("CREATE TABLE IF NOT EXISTS kv_store (k VARCHAR(191) NOT NULL PRIMARY KEY, v MEDIUMTEXT NOT NULL, updated_at DATETIME NOT NULL)")
	return err
}

func (store *Store) Get(key string) (string, bool, error) {
	var value string
	err := store.db.QueryRow("SELECT v FROM kv_store WHERE k = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (store *Store) Set(key, value string) error {
	_, err := store.db.Exec("INSERT INTO kv_store (k, v, updated_at) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v), updated_at = VALUES(updated_at)", key, value, carbon.Now().DateTimeString())
	return err
}

func (store *Store) Remove(key string) error {
	_, err := store.db.Exec("DELETE FROM kv_store WHERE k = ?", key)
	return err
}
