package kv

import (
	"sort"
	"sync"

	"github.com/segmentio/fasthash/fnv1a"
)

const LOCK_STRIPES = 32

// Locks serializes read-modify-write sequences on list-valued keys within
// this process. Keys map onto a fixed table of striped mutexes by fnv1a hash.
// This closes the lost-update window between two handlers in one server; two
// server instances sharing a store can still race (see DESIGN.md).
type Locks struct {
	stripes [LOCK_STRIPES]sync.Mutex
}

func (l *Locks) stripe(key string) uint32 {
	return fnv1a.HashString32(key) % LOCK_STRIPES
}

// Key locks the stripe for one key and returns its unlock
func (l *Locks) Key(key string) func() {
	m := &l.stripes[l.stripe(key)]
	m.Lock()
	return m.Unlock
}

// Keys locks the stripes for several keys and returns one unlock for all of
// them. Stripes are deduplicated and acquired in index order so two callers
// locking overlapping key sets cannot deadlock.
func (l *Locks) Keys(keys ...string) func() {
	seen := make(map[uint32]bool, len(keys))
	stripes := make([]uint32, 0, len(keys))
	for _, key := range keys {
		s := l.stripe(key)
		if !seen[s] {
			seen[s] = true
			stripes = append(stripes, s)
		}
	}
	sort.Slice(stripes, func(i, j int) bool { return stripes[i] < stripes[j] })
	for _, s := range stripes {
		l.stripes[s].Lock()
	}
	return func() {
		for i := len(stripes) - 1; i >= 0; i-- {
			l.stripes[stripes[i]].Unlock()
		}
	}
}
