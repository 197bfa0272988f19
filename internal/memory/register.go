// Package memory implements the calculator's persisted memory register.
//
// Every operation degrades instead of failing: an unset or unparsable
// register reads as 0, and a store that cannot be read or written turns the
// operation into a no-op. Failures are logged to the memory category.
package memory

import (
	"math"
	"strconv"

	"abacus/internal/logging"
	"abacus/internal/store"
)

// Key is the store key holding the register.
const Key = "memory"

// KV is the storage the register needs.
type KV interface {
	Get(key string) (store.Entry, error)
	Put(key, value string) error
	Delete(key string) error
}

// Register is a single float64 accumulator kept in a KV.
type Register struct {
	kv KV
}

// NewRegister returns a register backed by kv.
func NewRegister(kv KV) *Register {
	return &Register{kv: kv}
}

// load reads the register. ok is false only when the store failed.
func (r *Register) load() (value float64, ok bool) {
	entry, err := r.kv.Get(Key)
	if err != nil {
		logging.MemoryWarn("read failed, ignoring: %v", err)
		return 0, false
	}
	if !entry.Found {
		return 0, true
	}
	v, err := strconv.ParseFloat(entry.Value, 64)
	if err != nil || !finite(v) {
		logging.MemoryWarn("corrupt register %q, using 0", entry.Value)
		return 0, true
	}
	return v, true
}

// Value returns the register, 0 when unset, corrupt or unreadable.
func (r *Register) Value() float64 {
	v, _ := r.load()
	return v
}

// Recall returns the register. ok is false when the store could not be read
// and the caller should leave its display alone.
func (r *Register) Recall() (value float64, ok bool) {
	return r.load()
}

// Add adds x to the register.
func (r *Register) Add(x float64) {
	r.update(x)
}

// Sub subtracts x from the register.
func (r *Register) Sub(x float64) {
	r.update(-x)
}

func (r *Register) update(delta float64) {
	current, ok := r.load()
	if !ok {
		return
	}
	next := current + delta
	if !finite(next) {
		logging.MemoryWarn("register %g %+g is not finite, ignoring", current, delta)
		return
	}
	if err := r.kv.Put(Key, strconv.FormatFloat(next, 'g', -1, 64)); err != nil {
		logging.MemoryWarn("write failed, ignoring: %v", err)
		return
	}
	logging.Memory("register %g -> %g", current, next)
}

// Clear removes the register so it reads as 0.
func (r *Register) Clear() {
	if err := r.kv.Delete(Key); err != nil {
		logging.MemoryWarn("delete failed, ignoring: %v", err)
		return
	}
	logging.Memory("register cleared")
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
