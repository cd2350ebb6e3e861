package factstore_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/textkit/pkg/textkit/factstore"
	"github.com/randalmurphal/textkit/pkg/textkit/vars"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) factstore.Store

func hostFacts() *vars.Map {
	return vars.FromMap(map[string]string{
		"name":             "Clockwork",
		"multi.level.fact": "MULTILEVEL",
	})
}

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Save_and_Load", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		info, err := store.Save("host", hostFacts())
		require.NoError(t, err)
		assert.Equal(t, "host", info.Name)
		assert.Equal(t, 1, info.Revision)
		assert.False(t, info.Timestamp.IsZero())
		assert.Positive(t, info.Size)
		_, err = uuid.Parse(info.ID)
		assert.NoError(t, err)

		loaded, err := store.Load("host")
		require.NoError(t, err)
		assert.Equal(t, hostFacts().ToMap(), loaded.ToMap())
	})

	t.Run(name+"/Save_CopiesFacts", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		facts := hostFacts()
		_, err := store.Save("host", facts)
		require.NoError(t, err)
		facts.Set("name", "changed")

		loaded, err := store.Load("host")
		require.NoError(t, err)
		v, _ := loaded.Get("name")
		assert.Equal(t, "Clockwork", v)
	})

	t.Run(name+"/Save_ArbitraryBytes", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		facts := vars.FromMap(map[string]string{
			"k":    "\xff\xfe",
			"\xc3": "v",
		})
		_, err := store.Save("raw", facts)
		require.NoError(t, err)

		loaded, err := store.Load("raw")
		require.NoError(t, err)
		assert.Equal(t, facts.ToMap(), loaded.ToMap())
		v, ok := loaded.Get("\xc3")
		require.True(t, ok)
		assert.Equal(t, "v", v)
		v, _ = loaded.Get("k")
		assert.Equal(t, []byte{0xff, 0xfe}, []byte(v))
	})

	t.Run(name+"/Save_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Save("empty", nil)
		require.NoError(t, err)

		loaded, err := store.Load("empty")
		require.NoError(t, err)
		assert.Zero(t, loaded.Len())
	})

	t.Run(name+"/Save_InvalidName", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Save("", hostFacts())
		assert.ErrorIs(t, err, factstore.ErrInvalidName)
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Load("nonexistent")
		assert.ErrorIs(t, err, factstore.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		first, err := store.Save("host", vars.FromMap(map[string]string{"v": "first"}))
		require.NoError(t, err)
		second, err := store.Save("host", vars.FromMap(map[string]string{"v": "second"}))
		require.NoError(t, err)

		assert.Equal(t, 2, second.Revision)
		assert.NotEqual(t, first.ID, second.ID)

		loaded, err := store.Load("host")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"v": "second"}, loaded.ToMap())
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		infos, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run(name+"/List_OrderedByName", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		for _, n := range []string{"web", "db", "cache"} {
			_, err := store.Save(n, hostFacts())
			require.NoError(t, err)
		}
		_, err := store.Save("db", hostFacts())
		require.NoError(t, err)

		infos, err := store.List()
		require.NoError(t, err)
		require.Len(t, infos, 3)

		assert.Equal(t, "cache", infos[0].Name)
		assert.Equal(t, "db", infos[1].Name)
		assert.Equal(t, "web", infos[2].Name)
		assert.Equal(t, 2, infos[1].Revision)
		assert.Equal(t, 1, infos[2].Revision)
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Save("host", hostFacts())
		require.NoError(t, err)
		require.NoError(t, store.Delete("host"))

		_, err = store.Load("host")
		assert.ErrorIs(t, err, factstore.ErrNotFound)

		// Deleting again is not an error
		assert.NoError(t, store.Delete("host"))

		info, err := store.Save("host", hostFacts())
		require.NoError(t, err)
		assert.Equal(t, 1, info.Revision, "revision restarts after delete")
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())
		assert.NoError(t, store.Close(), "close is idempotent")

		_, err := store.Save("host", hostFacts())
		assert.ErrorIs(t, err, factstore.ErrStoreClosed)

		_, err = store.Load("host")
		assert.ErrorIs(t, err, factstore.ErrStoreClosed)

		_, err = store.List()
		assert.ErrorIs(t, err, factstore.ErrStoreClosed)

		assert.ErrorIs(t, store.Delete("host"), factstore.ErrStoreClosed)
	})
}

// TestMemoryStore runs contract tests against MemoryStore.
func TestMemoryStore(t *testing.T) {
	factory := func(t *testing.T) factstore.Store {
		return factstore.NewMemoryStore()
	}
	storeContractTest(t, "MemoryStore", factory)
}

// TestSQLiteStore runs contract tests against SQLiteStore.
func TestSQLiteStore(t *testing.T) {
	factory := func(t *testing.T) factstore.Store {
		store, err := factstore.NewSQLiteStore(":memory:")
		require.NoError(t, err)
		return store
	}
	storeContractTest(t, "SQLiteStore", factory)
}
