package evaluator

import (
	"sort"

	"github.com/ytsao/Marabou/pkg/interval"
)

// Bindings is a read-only view of variable bounds. Implementations must be safe for concurrent
// reads; an evaluator never modifies or retains ownership of its bindings.
type Bindings interface {
	Lookup(name string) (interval.Interval, bool)
}

// VariableBounds is the plain map implementation of Bindings.
type VariableBounds map[string]interval.Interval

func (b VariableBounds) Lookup(name string) (interval.Interval, bool) {
	v, ok := b[name]
	return v, ok
}

// Names returns the bound variable names in sorted order.
func (b VariableBounds) Names() []string {
	names := make([]string, 0, len(b))
	for n := range b {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Scope resolves variables during evaluation of a tree.
type Scope interface {
	VariableValue(name string) (interval.Interval, error)
}
