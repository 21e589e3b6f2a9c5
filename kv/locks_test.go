package kv

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocksSerializeReadModifyWrite(t *testing.T) {
	store := NewMemoryStore()
	locks := new(Locks)
	ctx := context.Background()

	const writers = 16
	const appends = 25

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < appends; j++ {
				unlock := locks.Key("buddies:u")
				list, err := GetList(ctx, store, "buddies:u")
				require.NoError(t, err)
				list = append(list, "x")
				require.NoError(t, SetJSON(ctx, store, "buddies:u", list))
				unlock()
			}
		}()
	}
	wg.Wait()

	list, err := GetList(ctx, store, "buddies:u")
	require.NoError(t, err)
	assert.Len(t, list, writers*appends)
}

func TestLocksKeysOverlapNoDeadlock(t *testing.T) {
	locks := new(Locks)

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				unlock := locks.Keys("buddies:a", "buddies:b")
				unlock()
			}()
			go func() {
				defer wg.Done()
				unlock := locks.Keys("buddies:b", "buddies:a")
				unlock()
			}()
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("lock ordering deadlocked")
	}
}

func TestLocksKeysSameStripe(t *testing.T) {
	locks := new(Locks)

	// same key twice must dedupe to a single stripe acquisition
	unlock := locks.Keys("chat:a:b", "chat:a:b")
	unlock()
}
