package tagpool

import (
	"errors"
	"fmt"
	"sync"
)

// ErrExhausted is returned once every tag in the pool has been handed out.
var ErrExhausted = errors.New("tag pool exhausted")

// Assignment binds the n-th allocation to its tag.
type Assignment struct {
	Index uint64
	Tag   Tag
}

// Allocator hands out pool tags in order, each exactly once. It never wraps
// around. All methods are goroutine-safe.
type Allocator struct {
	mu   sync.Mutex
	pool *Pool
	next uint64
}

// NewAllocator returns an allocator positioned at the first tag of pool.
func NewAllocator(pool *Pool) *Allocator {
	return &Allocator{pool: pool}
}

// Next returns the next unused tag.
func (a *Allocator) Next() (Assignment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.pool.Contains(a.next) {
		size, _ := a.pool.Size()
		return Assignment{}, fmt.Errorf("%w: all %d tags assigned", ErrExhausted, size)
	}
	tag, err := a.pool.At(a.next)
	if err != nil {
		return Assignment{}, err
	}
	as := Assignment{Index: a.next, Tag: tag}
	a.next++
	return as, nil
}

// Used is the number of tags handed out so far.
func (a *Allocator) Used() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.next
}

// Remaining returns how many tags are left. ok is false for unbounded pools.
func (a *Allocator) Remaining() (n uint64, ok bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	size, bounded := a.pool.Size()
	if !bounded {
		return 0, false
	}
	return size - a.next, true
}

// Fits reports whether n more tags can be allocated, so callers can fail
// before doing any work.
func (a *Allocator) Fits(n int) error {
	if n < 0 {
		return fmt.Errorf("negative tag count %d", n)
	}
	left, bounded := a.Remaining()
	if bounded && uint64(n) > left {
		return fmt.Errorf("%w: %d pairs but only %d tags left", ErrExhausted, n, left)
	}
	return nil
}
