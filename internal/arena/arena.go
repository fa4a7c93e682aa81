package arena

import (
	"errors"
	"strings"
	"sync"
)

// ErrExhausted is returned when an allocation would exceed the arena budget.
var ErrExhausted = errors.New("arena: budget exhausted")

// Cost of one accounted entity, in budget units. The exact figure does not
// matter as long as it is uniform; it approximates the C layout where every
// entity was a fixed-size shared-memory slab.
const entityCost = 64

// Arena is a bounded accounting allocator. All methods are safe for
// concurrent use, although in practice every allocation happens during the
// single-actor configuration phase.
type Arena struct {
	mu     sync.Mutex
	budget uint64
	used   uint64

	entities uint64
	strings  uint64
}

// New returns an Arena with the given budget in bytes. A zero budget means
// unbounded, which is what tests and small tools want.
func New(budget uint64) *Arena {
	return &Arena{budget: budget}
}

// Reserve charges the arena for one entity (a variable, descriptor, or
// generator). It returns ErrExhausted when the budget is spent.
func (a *Arena) Reserve() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.charge(entityCost); err != nil {
		return err
	}
	a.entities++
	return nil
}

// InternString charges the arena for a copy of s and returns the interned
// string. The returned string is valid for the arena's lifetime, matching
// the shared-memory string pool the engine's workers read from.
func (a *Arena) InternString(s string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.charge(uint64(len(s)) + 1); err != nil {
		return "", err
	}
	a.strings++
	// Clone detaches s from any larger backing array, so the arena holds
	// exactly what it accounted for.
	return strings.Clone(s), nil
}

// Stats reports current usage for diagnostics.
func (a *Arena) Stats() (used, budget, entities, strings uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.used, a.budget, a.entities, a.strings
}

func (a *Arena) charge(n uint64) error {
	if a.budget != 0 && a.used+n > a.budget {
		return ErrExhausted
	}
	a.used += n
	return nil
}

