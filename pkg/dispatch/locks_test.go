package dispatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreadLocks_SerializesSameThread(t *testing.T) {
	locks := newThreadLocks()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("thread-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Zero(t, locks.held(), "entries are removed when the last holder releases")
}

func TestThreadLocks_IndependentThreadsDoNotBlock(t *testing.T) {
	locks := newThreadLocks()

	unlockA := locks.Lock("thread-a")
	defer unlockA()

	// A different thread's lock must be acquirable while thread-a is held.
	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("thread-b")
		unlockB()
		close(done)
	}()
	<-done

	assert.Equal(t, 1, locks.held())
}

func TestThreadLocks_UnlockIsIdempotent(t *testing.T) {
	locks := newThreadLocks()

	unlock := locks.Lock("thread-1")
	unlock()
	unlock() // second call must not panic or corrupt refcounts

	assert.Zero(t, locks.held())
}
