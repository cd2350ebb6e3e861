package factstore

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

// MemoryStore is an in-memory fact store for tests and one-shot runs.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	sets   map[string]snapshot
	closed bool
}

// snapshot holds encoded facts with the metadata List reports.
type snapshot struct {
	data []byte
	info Info
}

// NewMemoryStore creates a new in-memory fact store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sets: make(map[string]snapshot),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(name string, facts *vars.Map) (Info, error) {
	if name == "" {
		return Info{}, ErrInvalidName
	}
	data, err := encode(facts)
	if err != nil {
		return Info{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Info{}, ErrStoreClosed
	}

	info := Info{
		Name:      name,
		ID:        uuid.NewString(),
		Revision:  m.sets[name].info.Revision + 1,
		Timestamp: time.Now().UTC(),
		Size:      int64(len(data)),
	}
	m.sets[name] = snapshot{data: data, info: info}
	return info, nil
}

// Load implements Store.
func (m *MemoryStore) Load(name string) (*vars.Map, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	snap, ok := m.sets[name]
	if !ok {
		return nil, ErrNotFound
	}
	return decode(snap.data)
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.sets))
	for _, snap := range m.sets {
		infos = append(infos, snap.info)
	}
	slices.SortFunc(infos, func(a, b Info) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.sets, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.sets = nil
	return nil
}

// Len returns the number of stored fact sets.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sets)
}
