package factstore

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

// SQLiteStore persists fact sets to SQLite.
// It is suitable for single-process use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (creating if needed) a SQLite fact store.
// The path should be a file path (e.g., "./facts.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A ":memory:" database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS fact_sets (
			name TEXT PRIMARY KEY,
			id TEXT NOT NULL,
			revision INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			data BLOB NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(name string, facts *vars.Map) (Info, error) {
	if name == "" {
		return Info{}, ErrInvalidName
	}
	data, err := encode(facts)
	if err != nil {
		return Info{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Info{}, ErrStoreClosed
	}

	info := Info{
		Name:      name,
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Size:      int64(len(data)),
	}
	err = s.db.QueryRow(`
		INSERT INTO fact_sets (name, id, revision, timestamp, data)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			id = excluded.id,
			revision = fact_sets.revision + 1,
			timestamp = excluded.timestamp,
			data = excluded.data
		RETURNING revision
	`, name, info.ID, info.Timestamp.Format(time.RFC3339Nano), data).Scan(&info.Revision)
	if err != nil {
		return Info{}, fmt.Errorf("save fact set: %w", err)
	}
	return info, nil
}

// Load implements Store.
func (s *SQLiteStore) Load(name string) (*vars.Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var data []byte
	err := s.db.QueryRow(`
		SELECT data FROM fact_sets WHERE name = ?
	`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load fact set: %w", err)
	}
	return decode(data)
}

// List implements Store.
func (s *SQLiteStore) List() ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT name, id, revision, timestamp, LENGTH(data)
		FROM fact_sets
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list fact sets: %w", err)
	}
	defer rows.Close()

	infos := []Info{}
	for rows.Next() {
		var info Info
		var timestamp string
		if err := rows.Scan(&info.Name, &info.ID, &info.Revision, &timestamp, &info.Size); err != nil {
			return nil, fmt.Errorf("scan fact set info: %w", err)
		}
		info.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fact sets: %w", err)
	}
	return infos, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM fact_sets WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete fact set: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
