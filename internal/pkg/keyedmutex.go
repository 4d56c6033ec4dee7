package pkg

import "sync"

// KeyedMutex - serializes work per string key. Every room id gets its own
// lock, so the full read-modify-write-persist cycle for one room never
// interleaves with another writer of the same room.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock - locks the mutex for the given key, creating it on first use.
func (that *KeyedMutex) Lock(key string) {
	that.mu.Lock()
	lock, ok := that.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[key] = lock
	}
	that.mu.Unlock()

	lock.Lock()
}

// Unlock - unlocks the mutex for the given key.
func (that *KeyedMutex) Unlock(key string) {
	that.mu.Lock()
	lock, ok := that.locks[key]
	that.mu.Unlock()

	if ok {
		lock.Unlock()
	}
}
