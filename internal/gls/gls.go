// Package gls provides goroutine local storage; the map contains one entry
// for each goroutine that is started to power a generator.
package gls

import "sync"

// TOOD: the global mutex is likely going to become a contention point in
// highly parallel programs, here's how we should fix:
//
//   - create a sharded map with 64 buckets, each bucket contains a map
//   - use a sync.Mutex in each bucket for synchronization; cheaper than
//     RWMutex
//   - mask the goroutine id to determine in which bucket its GLS is stored
var (
	gmutex sync.RWMutex
	gstate map[G]any
)

// G is a reference to a goroutine, and provides a way to load, store and
// clear a goroutine local context.
type G uint64

// Context retrieves the goroutine local storage for contexts.
func Context() G {
	return G(goid())
}

// Load loads the goroutine local context.
func (g G) Load() any {
	gmutex.RLock()
	v := gstate[g]
	gmutex.RUnlock()
	return v
}

// Store stores the goroutine local context.
func (g G) Store(c any) {
	gmutex.Lock()
	if gstate == nil {
		gstate = make(map[G]any)
	}
	gstate[g] = c
	gmutex.Unlock()
}

// Clear clears the goroutine local context.
func (g G) Clear() {
	gmutex.Lock()
	delete(gstate, g)
	gmutex.Unlock()
}
