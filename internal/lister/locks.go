package lister

import "sync"

// itemLocks serializes list and unlist operations per item id.
type itemLocks struct {
	mu   sync.Mutex
	held map[string]*itemLock
}

type itemLock struct {
	sync.Mutex
	refs int
}

// acquire blocks until id is free and returns the release func. Entries are
// dropped once no caller holds or waits on them.
func (k *itemLocks) acquire(id string) func() {
	k.mu.Lock()
	if k.held == nil {
		k.held = make(map[string]*itemLock)
	}
	lk, ok := k.held[id]
	if !ok {
		lk = &itemLock{}
		k.held[id] = lk
	}
	lk.refs++
	k.mu.Unlock()

	lk.Lock()
	return func() {
		lk.Unlock()
		k.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(k.held, id)
		}
		k.mu.Unlock()
	}
}

func (k *itemLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.held)
}
