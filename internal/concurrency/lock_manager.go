// Package concurrency provides in-process keyed locks.
package concurrency

import (
	"context"
	"sync"
)

// LockManager hands out one lock per key. A key's entry is dropped once no
// goroutine holds or waits for it, so the map stays bounded by the number of
// keys in use.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until the lock for key is held or ctx is done. The returned
// function releases the lock and must be called exactly once.
func (lm *LockManager) Lock(ctx context.Context, key string) (unlock func(), err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := lm.ref(key)
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		lm.unref(key, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			lm.unref(key, l)
		})
	}, nil
}

// Len reports how many keys currently have holders or waiters
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

func (lm *LockManager) ref(key string) *keyLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		lm.locks[key] = l
	}
	l.refs++
	return l
}

func (lm *LockManager) unref(key string, l *keyLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()

	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}
