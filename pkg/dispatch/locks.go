package dispatch

import "sync"

// threadLocks serializes pipeline execution per thread id. Entries are
// refcounted and removed when the last holder releases, so the registry
// stays proportional to in-flight threads rather than all threads ever
// seen.
type threadLocks struct {
	mu    sync.Mutex
	locks map[string]*threadLock
}

type threadLock struct {
	mu   sync.Mutex
	refs int
}

func newThreadLocks() *threadLocks {
	return &threadLocks{locks: make(map[string]*threadLock)}
}

// Lock acquires the per-thread lock and returns its release function.
// Callers must release with defer so a panic mid-pipeline cannot strand
// the thread.
func (l *threadLocks) Lock(threadID string) func() {
	l.mu.Lock()
	entry, ok := l.locks[threadID]
	if !ok {
		entry = &threadLock{}
		l.locks[threadID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.mu.Unlock()
			l.mu.Lock()
			entry.refs--
			if entry.refs == 0 {
				delete(l.locks, threadID)
			}
			l.mu.Unlock()
		})
	}
}

// held reports how many lock entries are live. Unexported, used by tests.
func (l *threadLocks) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
