package arena

import (
	"fmt"
	"sync"
)

// DefaultArenaSize is the initial backing capacity of a freshly created arena.
const DefaultArenaSize = 4 << 10

// Pool hands out arenas keyed by endpoint slot index. Each slot keeps its own
// free list, so arenas grown by a hot endpoint stay with that endpoint and
// peak retained memory is bounded by workers x slots. Arenas are reset, not
// freed, on release.
type Pool struct {
	slots []sync.Pool
	size  int
}

// NewPool creates a pool for the given number of endpoint slots. Arenas are
// created lazily with an initial capacity of size bytes the first time a
// worker acquires one for a slot.
func NewPool(slots, size int) *Pool {
	if size <= 0 {
		size = DefaultArenaSize
	}
	p := &Pool{
		slots: make([]sync.Pool, slots),
		size:  size,
	}
	for i := range p.slots {
		p.slots[i].New = func() any { return New(size) }
	}
	return p
}

// Acquire returns an arena for the slot. The arena is owned exclusively by
// the caller until it is released; the pool never hands the same arena to two
// concurrent requests.
func (p *Pool) Acquire(slot int) (*Arena, error) {
	if slot < 0 || slot >= len(p.slots) {
		return nil, fmt.Errorf("arena: slot %d out of range [0,%d)", slot, len(p.slots))
	}
	return p.slots[slot].Get().(*Arena), nil
}

// Release resets the arena and returns it to the slot's free list. Must be
// called only after the response for the request using it is fully flushed.
func (p *Pool) Release(slot int, a *Arena) {
	if a == nil || slot < 0 || slot >= len(p.slots) {
		return
	}
	a.Reset()
	p.slots[slot].Put(a)
}

// Slots returns the number of endpoint slots the pool was sized for.
func (p *Pool) Slots() int {
	return len(p.slots)
}
