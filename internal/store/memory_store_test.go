package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreKV(t *testing.T) {
	m := NewMemoryStore()

	entry, err := m.Get("theme")
	require.NoError(t, err)
	assert.False(t, entry.Found)

	require.NoError(t, m.Put("theme", "light"))
	entry, err = m.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, Entry{Value: "light", Found: true}, entry)

	require.NoError(t, m.Delete("theme"))
	entry, _ = m.Get("theme")
	assert.False(t, entry.Found)
}

func TestMemoryStoreHistory(t *testing.T) {
	m := NewMemoryStore()
	for _, r := range []string{"1", "2", "3"} {
		_, err := m.AppendHistory(r, r)
		require.NoError(t, err)
	}

	recent, err := m.RecentHistory(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].Result)
	assert.Equal(t, "2", recent[1].Result)

	all, _ := m.RecentHistory(0)
	assert.Len(t, all, 3)

	require.NoError(t, m.ClearHistory())
	all, _ = m.RecentHistory(0)
	assert.Empty(t, all)
}
