package cnf

import (
	"github.com/npillmayer/gocnf/grammar"
)

// NullableSet computes the set of non-terminals deriving ε, directly or
// transitively.
//
// The set is seeded with every left hand side having an ε-body. Then full
// passes over all productions add every left hand side with a body consisting
// of nullable non-terminals only, until a pass adds nothing.
func NullableSet(g *grammar.Grammar) *grammar.SymbolSet {
	nullable := grammar.NewSymbolSet()
	g.EachProduction(func(A string, rhs grammar.RHS) {
		if rhs.IsEpsilon() {
			nullable.Add(A)
		}
	})
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		g.EachProduction(func(A string, rhs grammar.RHS) {
			if nullable.Contains(A) {
				return
			}
			if nullable.ContainsAll(rhs) {
				nullable.Add(A)
				changed = true
			}
		})
	}
	tracer().Debugf("nullable set after %d passes: %s", passes, nullable)
	return nullable
}
