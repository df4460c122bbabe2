package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type snapshot struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	require.NoError(t, s.Set(ctx, "k", snapshot{Name: "Serum", Price: 9.5}))

	var got snapshot
	require.NoError(t, s.Get(ctx, "k", &got))
	assert.Equal(t, snapshot{Name: "Serum", Price: 9.5}, got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	var v []string
	assert.ErrorIs(t, s.Get(context.Background(), "absent", &v), ErrNotFound)
}

func TestMemoryStoreCorruptValue(t *testing.T) {
	s := NewMemoryStore()
	s.data["k"] = []byte("{not json")

	var v map[string]string
	assert.ErrorIs(t, s.Get(context.Background(), "k", &v), ErrCorrupt)
}

func TestMemoryStoreUpdateStartsFromStored(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []int{1, 2}))

	var v []int
	require.NoError(t, s.Update(ctx, "k", &v, func() error {
		v = append(v, 3)
		return nil
	}))

	var got []int
	require.NoError(t, s.Get(ctx, "k", &got))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMemoryStoreUpdateAbsentKey(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var v []int
	require.NoError(t, s.Update(ctx, "k", &v, func() error {
		v = append(v, 1)
		return nil
	}))

	var got []int
	require.NoError(t, s.Get(ctx, "k", &got))
	assert.Equal(t, []int{1}, got)
}

// Concurrent appends through Update must not lose writes: that is the whole
// point of serializing the read-modify-write.
func TestMemoryStoreUpdateSerializesWriters(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var v []int
			_ = s.Update(ctx, "k", &v, func() error {
				v = append(v, 1)
				return nil
			})
		}()
	}
	wg.Wait()

	var got []int
	require.NoError(t, s.Get(ctx, "k", &got))
	assert.Len(t, got, writers)
}

func TestMemoryStoreFailWrites(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	s.FailWrites = true

	assert.ErrorIs(t, s.Set(ctx, "k", 1), ErrPersistence)

	var v int
	err := s.Update(ctx, "k", &v, func() error { return nil })
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))

	var v string
	assert.ErrorIs(t, s.Get(ctx, "k", &v), ErrNotFound)
}
