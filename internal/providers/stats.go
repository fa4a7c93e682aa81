package providers

import "sync"

// Stats is a concurrent named-counter store. Workers increment counters
// while they run; profiles read them back through `{stats.<name>}`
// special variables.
//
// sync.Map fits the access pattern: the key space stabilizes early (the
// engine registers its counters up front) while values update constantly
// from many goroutines.
type Stats struct {
	counters sync.Map // string -> *counter
}

type counter struct {
	mu  sync.Mutex
	val uint64
}

// NewStats returns an empty counter store.
func NewStats() *Stats {
	return &Stats{}
}

// Add increments the named counter by delta, creating it at zero first if
// needed.
func (s *Stats) Add(name string, delta uint64) {
	c := s.counter(name)
	c.mu.Lock()
	c.val += delta
	c.mu.Unlock()
}

// Set overwrites the named counter.
func (s *Stats) Set(name string, val uint64) {
	c := s.counter(name)
	c.mu.Lock()
	c.val = val
	c.mu.Unlock()
}

// Get returns the named counter's value, reporting whether it exists.
func (s *Stats) Get(name string) (uint64, bool) {
	v, ok := s.counters.Load(name)
	if !ok {
		return 0, false
	}
	c := v.(*counter)
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val, true
}

func (s *Stats) counter(name string) *counter {
	v, _ := s.counters.LoadOrStore(name, &counter{})
	return v.(*counter)
}
