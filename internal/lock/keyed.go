// Package lock provides a mutex per key whose acquisition honours context deadlines.
package lock

import (
	"context"
	"sync"
)

// Keyed serializes holders of the same key while letting different keys
// proceed in parallel. Entries are dropped once no goroutine holds or waits on them.
type Keyed[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

type entry struct {
	slot chan struct{}
	refs int
}

// NewKeyed creates an empty keyed lock
func NewKeyed[K comparable]() *Keyed[K] {
	return &Keyed[K]{entries: make(map[K]*entry)}
}

// Acquire blocks until the key is free or ctx is done. On success the
// returned release func must be called exactly once; extra calls are no-ops.
func (k *Keyed[K]) Acquire(ctx context.Context, key K) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := k.ref(key)

	select {
	case e.slot <- struct{}{}:
	case <-ctx.Done():
		k.unref(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.slot
			k.unref(key, e)
		})
	}, nil
}

// Len returns the number of keys currently held or waited on
func (k *Keyed[K]) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *Keyed[K]) ref(key K) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{slot: make(chan struct{}, 1)}
		k.entries[key] = e
	}
	e.refs++
	return e
}

func (k *Keyed[K]) unref(key K, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.entries, key)
	}
}
