package benchmarks

import (
	"testing"

	"github.com/randalmurphal/textkit/pkg/textkit/factstore"
)

// BenchmarkMemoryStore_Save measures in-memory snapshots of 100 facts.
func BenchmarkMemoryStore_Save(b *testing.B) {
	store := factstore.NewMemoryStore()
	defer store.Close()
	facts := benchFacts(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Save("bench", facts)
	}
}

// BenchmarkSQLiteStore_Save measures SQLite snapshots of 100 facts.
func BenchmarkSQLiteStore_Save(b *testing.B) {
	store, err := factstore.NewSQLiteStore(":memory:")
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()
	facts := benchFacts(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Save("bench", facts)
	}
}

// BenchmarkSQLiteStore_Load measures loading a 100-fact snapshot.
func BenchmarkSQLiteStore_Load(b *testing.B) {
	store, err := factstore.NewSQLiteStore(":memory:")
	if err != nil {
		b.Fatal(err)
	}
	defer store.Close()
	if _, err := store.Save("bench", benchFacts(100)); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Load("bench")
	}
}
