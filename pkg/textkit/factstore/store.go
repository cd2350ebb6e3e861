// Package factstore persists named fact sets so a render can be repeated
// against the facts that produced it.
package factstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

// Store persists named snapshots of a *vars.Map.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a snapshot of facts under name, replacing any previous
	// snapshot with that name. Each save gets a fresh ID and the next
	// revision number for name.
	Save(name string, facts *vars.Map) (Info, error)

	// Load returns the latest snapshot saved under name.
	// Returns ErrNotFound if there is none.
	Load(name string) (*vars.Map, error)

	// List returns every stored fact set, ordered by name.
	// Returns an empty slice (not error) if the store is empty.
	List() ([]Info, error)

	// Delete removes a fact set. Returns nil if it doesn't exist.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info describes a stored fact set without loading it.
type Info struct {
	Name      string
	ID        string
	Revision  int
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates a fact set doesn't exist.
	ErrNotFound = errors.New("fact set not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("fact store closed")

	// ErrInvalidName indicates an empty fact set name.
	ErrInvalidName = errors.New("fact set name must not be empty")
)

// fact is one stored entry. Keys and values are []byte so that JSON
// carries them as base64 and arbitrary bytes survive the round trip.
type fact struct {
	Key   []byte `json:"k"`
	Value []byte `json:"v"`
}

// encode serialises facts as a JSON list of entries sorted by key.
func encode(facts *vars.Map) ([]byte, error) {
	entries := make([]fact, 0, facts.Len())
	for _, k := range facts.Keys().All() {
		v, _ := facts.Get(k)
		entries = append(entries, fact{Key: []byte(k), Value: []byte(v)})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode facts: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*vars.Map, error) {
	var entries []fact
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode facts: %w", err)
	}
	facts := vars.New()
	for _, e := range entries {
		facts.Set(string(e.Key), string(e.Value))
	}
	return facts, nil
}
