package vars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_SetGet(t *testing.T) {
	m := New()
	m.Set("ref1", "this is a reference")
	m.Set("multi.level.fact", "MULTILEVEL")

	v, ok := m.Get("ref1")
	require.True(t, ok)
	assert.Equal(t, "this is a reference", v)

	v, ok = m.Get("multi.level.fact")
	require.True(t, ok)
	assert.Equal(t, "MULTILEVEL", v)

	v, ok = m.Get("unknown")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestMap_LastWriteWins(t *testing.T) {
	m := New()
	m.Set("k", "one")
	m.Set("k", "two")

	v, _ := m.Get("k")
	assert.Equal(t, "two", v)
	assert.Equal(t, 1, m.Len())
}

func TestMap_EmptyValueIsPresent(t *testing.T) {
	m := New()
	m.Set("empty", "")
	v, ok := m.Get("empty")
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.True(t, m.Has("empty"))
}

func TestMap_Delete(t *testing.T) {
	m := New()
	m.Set("a", "1")
	m.Delete("a")
	m.Delete("never-set")
	assert.False(t, m.Has("a"))
	assert.Zero(t, m.Len())
}

func TestMap_Keys(t *testing.T) {
	m := FromMap(map[string]string{"name": "x", "kernel_version": "2.6", "arch": "amd64"})
	assert.Equal(t, []string{"arch", "kernel_version", "name"}, m.Keys().Strings())
	assert.Zero(t, New().Keys().Len())
}

func TestMap_FromMapCopies(t *testing.T) {
	src := map[string]string{"a": "1"}
	m := FromMap(src)
	src["a"] = "changed"

	v, _ := m.Get("a")
	assert.Equal(t, "1", v)

	out := m.ToMap()
	out["a"] = "also changed"
	v, _ = m.Get("a")
	assert.Equal(t, "1", v)
}

func TestMap_Merge(t *testing.T) {
	base := FromMap(map[string]string{"a": "1", "b": "2"})
	base.Merge(FromMap(map[string]string{"b": "override", "c": "3"}))
	base.Merge(nil)

	assert.Equal(t, map[string]string{"a": "1", "b": "override", "c": "3"}, base.ToMap())
}

func TestMap_ZeroValue(t *testing.T) {
	var m Map
	m.Set("k", "v")
	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMap_ZeroValueMerge(t *testing.T) {
	var m Map
	m.Merge(FromMap(map[string]string{"a": "1"}))
	assert.Equal(t, map[string]string{"a": "1"}, m.ToMap())
}

func TestMap_NilReceiver(t *testing.T) {
	var m *Map

	t.Run("reads and no-op writes", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.False(t, m.Has("k"))
			assert.Zero(t, m.Keys().Len())
			assert.Empty(t, m.ToMap())
			m.Delete("k")
			m.Merge(nil)
			m.Merge(New())
		})
	})

	t.Run("Set panics", func(t *testing.T) {
		assert.Panics(t, func() { m.Set("k", "v") })
	})

	t.Run("Merge with entries panics", func(t *testing.T) {
		assert.Panics(t, func() { m.Merge(FromMap(map[string]string{"k": "v"})) })
	})
}

func TestMap_Clear(t *testing.T) {
	t.Run("nil map", func(t *testing.T) {
		var m *Map
		assert.NotPanics(t, func() { m.Clear() })
		assert.Zero(t, m.Len())
		_, ok := m.Get("k")
		assert.False(t, ok)
	})

	t.Run("clears entries", func(t *testing.T) {
		m := FromMap(map[string]string{"a": "1", "b": "2"})
		m.Clear()
		assert.Zero(t, m.Len())
		m.Set("c", "3")
		assert.Equal(t, 1, m.Len())
	})
}
