package service

import "sync"

// keyedMutex serializes writers per entry id. Writers to different entries
// never contend. Mutexes are kept for the process lifetime; the entry space
// is small enough that no eviction is needed.
type keyedMutex struct {
	locks sync.Map // entry id -> *sync.Mutex
}

func (k *keyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()

	return mu.Unlock
}
