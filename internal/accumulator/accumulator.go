// Package accumulator implements a keyed floating-point accumulator
// partitioned into independently-locked shards, used by the parallel
// scoring path to avoid a single contended map. See spec §4.6.
package accumulator

import "sync"

type shard struct {
	mu     sync.Mutex
	values map[int]float64
}

// Accumulator is a sharded map from document id to accumulated
// relevance. Each shard owns the ids whose value, modulo the shard
// count, selects it.
type Accumulator struct {
	shards []shard
}

// New creates an accumulator with shardCount independently-locked
// buckets.
func New(shardCount int) *Accumulator {
	if shardCount < 1 {
		shardCount = 1
	}
	a := &Accumulator{shards: make([]shard, shardCount)}
	for i := range a.shards {
		a.shards[i].values = make(map[int]float64)
	}
	return a
}

func (a *Accumulator) shardFor(key int) *shard {
	n := len(a.shards)
	idx := key % n
	if idx < 0 {
		idx += n
	}
	return &a.shards[idx]
}

// Handle is a guarded reference to a single key's value. It keeps the
// owning shard's lock held for its lifetime; Release must be called
// exactly once to release it. Add performs the accumulation under that
// held lock, so callers never need a compare-and-swap loop.
type Handle struct {
	s   *shard
	key int
}

// At locks the shard owning key, inserting key with value 0.0 if
// absent, and returns a handle that keeps the lock held until
// Release is called.
func (a *Accumulator) At(key int) *Handle {
	s := a.shardFor(key)
	s.mu.Lock()
	if _, ok := s.values[key]; !ok {
		s.values[key] = 0
	}
	return &Handle{s: s, key: key}
}

// Add accumulates delta into the handle's value.
func (h *Handle) Add(delta float64) {
	h.s.values[h.key] += delta
}

// Value returns the handle's current value.
func (h *Handle) Value() float64 {
	return h.s.values[h.key]
}

// Release unlocks the shard this handle was holding. The handle must
// not be used again afterward.
func (h *Handle) Release() {
	h.s.mu.Unlock()
}

// Erase removes key from the accumulator if present, locking only the
// shard that owns it.
func (a *Accumulator) Erase(key int) {
	s := a.shardFor(key)
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
}

// BuildOrdinaryMap acquires every shard's lock in order and returns a
// single ordinary map holding the union of all shards. The shards are
// disjoint by construction, so no merge conflicts can occur.
func (a *Accumulator) BuildOrdinaryMap() map[int]float64 {
	for i := range a.shards {
		a.shards[i].mu.Lock()
	}
	defer func() {
		for i := range a.shards {
			a.shards[i].mu.Unlock()
		}
	}()

	out := make(map[int]float64)
	for i := range a.shards {
		for k, v := range a.shards[i].values {
			out[k] = v
		}
	}
	return out
}
