package datastore_test

import (
	"testing"
	"time"

	"github.com/arthur-debert/witd/pkg/datastore"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := datastore.NewMemoryStore()

	_, ok := store.Get("./a.txt")
	assert.False(t, ok, "empty store returns nothing")
	assert.Equal(t, 0, store.Len())

	first := types.File{Path: "./a.txt", Name: "a.txt", ModifiedAt: time.Unix(10, 0)}
	store.Put(first)

	got, ok := store.Get("./a.txt")
	require.True(t, ok)
	assert.Equal(t, first, got)

	second := first
	second.ModifiedAt = time.Unix(20, 0)
	store.Put(second)

	got, _ = store.Get("./a.txt")
	assert.Equal(t, second, got, "put replaces the entry for the same path")
	assert.Equal(t, 1, store.Len())

	store.Put(types.File{Path: "./b.txt"})
	assert.ElementsMatch(t, []string{"./a.txt", "./b.txt"}, store.Paths())
}

func TestMemoryStore_ImplementsStore(t *testing.T) {
	var _ datastore.Store = datastore.NewMemoryStore()
}
