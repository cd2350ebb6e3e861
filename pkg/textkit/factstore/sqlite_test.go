package factstore_test

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/textkit/pkg/textkit/factstore"
	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

func TestSQLiteStore_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "facts.db")

	store1, err := factstore.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	_, err = store1.Save("host", hostFacts())
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	// Reopen the database
	store2, err := factstore.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store2.Close()

	loaded, err := store2.Load("host")
	require.NoError(t, err)
	assert.Equal(t, hostFacts().ToMap(), loaded.ToMap())

	info, err := store2.Save("host", hostFacts())
	require.NoError(t, err)
	assert.Equal(t, 2, info.Revision)
}

func TestSQLiteStore_InvalidPath(t *testing.T) {
	_, err := factstore.NewSQLiteStore("/nonexistent/path/facts.db")
	assert.Error(t, err)
}

func TestSQLiteStore_Concurrent(t *testing.T) {
	store, err := factstore.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	const numGoroutines = 20
	const numOps = 10

	var wg sync.WaitGroup
	for g := range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("set-%d", g)
			for i := range numOps {
				facts := vars.New()
				facts.Set("i", fmt.Sprint(i))
				if _, err := store.Save(name, facts); err != nil {
					t.Error(err)
					return
				}
				if _, err := store.Load(name); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	infos, err := store.List()
	require.NoError(t, err)
	assert.Len(t, infos, numGoroutines)
	for _, info := range infos {
		assert.Equal(t, numOps, info.Revision)
	}
}

func TestSQLiteStore_LargeFactSet(t *testing.T) {
	store, err := factstore.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	facts := vars.New()
	for i := range 5000 {
		facts.Set(fmt.Sprintf("key.%04d", i), fmt.Sprintf("value-%d", i))
	}

	_, err = store.Save("large", facts)
	require.NoError(t, err)

	loaded, err := store.Load("large")
	require.NoError(t, err)
	assert.Equal(t, 5000, loaded.Len())
}
