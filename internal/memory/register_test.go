package memory

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abacus/internal/store"
)

// brokenKV fails every call.
type brokenKV struct{}

var errBroken = errors.New("storage unavailable")

func (brokenKV) Get(string) (store.Entry, error) { return store.Entry{}, errBroken }
func (brokenKV) Put(string, string) error        { return errBroken }
func (brokenKV) Delete(string) error             { return errBroken }

func TestRegisterDefaultsToZero(t *testing.T) {
	r := NewRegister(store.NewMemoryStore())
	assert.Equal(t, 0.0, r.Value())

	v, ok := r.Recall()
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestRegisterAddSub(t *testing.T) {
	kv := store.NewMemoryStore()
	r := NewRegister(kv)

	r.Add(3)
	r.Add(2.5)
	r.Sub(1)
	assert.Equal(t, 4.5, r.Value())

	entry, err := kv.Get(Key)
	require.NoError(t, err)
	assert.Equal(t, "4.5", entry.Value)
}

func TestRegisterClear(t *testing.T) {
	kv := store.NewMemoryStore()
	r := NewRegister(kv)
	r.Add(9)
	r.Clear()

	entry, err := kv.Get(Key)
	require.NoError(t, err)
	assert.False(t, entry.Found)
	assert.Equal(t, 0.0, r.Value())
}

func TestRegisterCorruptValue(t *testing.T) {
	for _, stored := range []string{"not-a-number", "NaN", "Inf", "+Inf", "-infinity"} {
		t.Run(stored, func(t *testing.T) {
			kv := store.NewMemoryStore()
			require.NoError(t, kv.Put(Key, stored))
			r := NewRegister(kv)

			assert.Equal(t, 0.0, r.Value())
			v, ok := r.Recall()
			assert.True(t, ok)
			assert.Equal(t, 0.0, v)

			r.Add(2)
			assert.Equal(t, 2.0, r.Value())
		})
	}
}

func TestRegisterRejectsOverflow(t *testing.T) {
	kv := store.NewMemoryStore()
	r := NewRegister(kv)
	r.Add(math.MaxFloat64)
	r.Add(math.MaxFloat64)

	assert.Equal(t, math.MaxFloat64, r.Value())
	entry, err := kv.Get(Key)
	require.NoError(t, err)
	assert.NotContains(t, entry.Value, "Inf")
}

func TestRegisterSwallowsStorageFailures(t *testing.T) {
	r := NewRegister(brokenKV{})

	assert.NotPanics(t, func() {
		r.Add(1)
		r.Sub(1)
		r.Clear()
	})
	v, ok := r.Recall()
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 0.0, r.Value())
}

func TestRegisterSharedAcrossInstances(t *testing.T) {
	path := t.TempDir() + "/abacus.db"
	s, err := store.NewLocalStore(path)
	require.NoError(t, err)
	NewRegister(s).Add(3)
	require.NoError(t, s.Close())

	s2, err := store.NewLocalStore(path)
	require.NoError(t, err)
	defer s2.Close()
	assert.Equal(t, 3.0, NewRegister(s2).Value())
}
