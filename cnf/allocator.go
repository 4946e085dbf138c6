package cnf

import (
	"strconv"

	"github.com/npillmayer/gocnf/grammar"
)

// SymbolAllocator generates fresh non-terminal names. A fresh name is
// guaranteed to be distinct from every reserved symbol and from every name
// generated before by the same allocator.
//
// Names are built from a prefix and a per-prefix counter, starting at 1:
//
//     alloc := NewSymbolAllocator("T1")
//     alloc.Fresh("T")   // => "T2", as T1 is reserved
//     alloc.Fresh("Z")   // => "Z1"
//     alloc.Fresh("T")   // => "T3"
//
// A SymbolAllocator is not safe for concurrent use. Create one per conversion.
type SymbolAllocator struct {
	used      map[string]struct{}
	counters  map[string]int
	generated []string
}

// NewSymbolAllocator creates an allocator which will never hand out any of
// the reserved names.
func NewSymbolAllocator(reserved ...string) *SymbolAllocator {
	alloc := &SymbolAllocator{
		used:     make(map[string]struct{}, len(reserved)),
		counters: make(map[string]int),
	}
	alloc.Reserve(reserved...)
	return alloc
}

// AllocatorFor creates an allocator reserving every symbol of g, including
// undeclared ones.
func AllocatorFor(g *grammar.Grammar) *SymbolAllocator {
	return NewSymbolAllocator(g.Symbols().Values()...)
}

// Reserve marks names as used.
func (alloc *SymbolAllocator) Reserve(names ...string) {
	for _, n := range names {
		alloc.used[n] = struct{}{}
	}
}

// IsUsed checks if a name is reserved or has been generated.
func (alloc *SymbolAllocator) IsUsed(name string) bool {
	_, ok := alloc.used[name]
	return ok
}

// Fresh returns a new name prefix+N, probing increasing N until an unused
// name is found.
func (alloc *SymbolAllocator) Fresh(prefix string) string {
	idx := alloc.counters[prefix]
	if idx < 1 {
		idx = 1
	}
	for {
		name := prefix + strconv.Itoa(idx)
		if !alloc.IsUsed(name) {
			alloc.used[name] = struct{}{}
			alloc.counters[prefix] = idx + 1
			alloc.generated = append(alloc.generated, name)
			tracer().Debugf("allocated fresh symbol %s", name)
			return name
		}
		idx++
	}
}

// Generated returns the names handed out so far, in order of allocation.
func (alloc *SymbolAllocator) Generated() []string {
	g := make([]string, len(alloc.generated))
	copy(g, alloc.generated)
	return g
}
