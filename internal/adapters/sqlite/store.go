package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"careerpath/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

const durableNamespace = "durable"

const connPragmas = "?_pragma=busy_timeout(5000)" +
	"&_pragma=journal_mode(WAL)" +
	"&_pragma=synchronous(NORMAL)" +
	"&_pragma=temp_store(MEMORY)"

// DB is the local SQLite database holding every KV namespace
type DB struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open opens (creating if needed) the database at path.
// An empty path uses the default location under XDG_DATA_HOME.
func Open(path string) (*DB, error) {
	if path == "" {
		path = DefaultPath()
	}

	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// database/sql pools connections, so per-connection pragmas go in the
	// DSN where the driver applies them to every new connection
	db, err := sql.Open("sqlite", path+connPragmas)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value BLOB NOT NULL,
			expires_at INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL,
			PRIMARY KEY (namespace, key)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_kv_expires ON kv(expires_at) WHERE expires_at > 0;
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &DB{db: db, path: path, now: time.Now}, nil
}

// DefaultPath returns the database location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "careerpath", "careerpath.db")
}

// Close closes the database connection
func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Path returns the database file location
func (d *DB) Path() string {
	return d.path
}

// SchemaVersion returns the version recorded in the meta table
func (d *DB) SchemaVersion(ctx context.Context) (string, error) {
	return d.meta(ctx, "schema_version")
}

func (d *DB) meta(ctx context.Context, key string) (string, error) {
	var value string
	err := d.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

// Durable returns the store whose entries survive across sessions
func (d *DB) Durable() *Store {
	return &Store{db: d, namespace: durableNamespace}
}

// Namespace returns a store over an arbitrary namespace
func (d *DB) Namespace(ns string) *Store {
	return &Store{db: d, namespace: ns}
}

// Store implements ports.KVStore over one namespace of the kv table
type Store struct {
	db        *DB
	namespace string
}

var (
	_ ports.KVStore   = (*Store)(nil)
	_ ports.KeyLister = (*Store)(nil)
)

// Namespace returns the namespace this store reads and writes
func (s *Store) Namespace() string {
	return s.namespace
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt int64

	err := s.db.db.QueryRowContext(ctx, `
		SELECT value, expires_at FROM kv WHERE namespace = ? AND key = ?
	`, s.namespace, key).Scan(&value, &expiresAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if expiresAt > 0 && s.db.now().UnixMilli() >= expiresAt {
		return nil, ports.ErrKeyNotFound
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.db.withTx(ctx, func(tx *kvTx) error {
		return tx.set(s.namespace, key, value, ttl)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.db.ExecContext(ctx, `DELETE FROM kv WHERE namespace = ? AND key = ?`, s.namespace, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the live keys of the namespace starting with prefix
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.db.db.QueryContext(ctx, `
		SELECT key FROM kv
		WHERE namespace = ? AND instr(key, ?) = 1 AND (expires_at = 0 OR expires_at > ?)
		ORDER BY key
	`, s.namespace, prefix, s.db.now().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Clear removes every entry of the namespace
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.db.ExecContext(ctx, `DELETE FROM kv WHERE namespace = ?`, s.namespace)
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", s.namespace, err)
	}
	return nil
}
