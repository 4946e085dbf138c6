package cnf

import (
	"github.com/npillmayer/gocnf/grammar"
	"github.com/npillmayer/gocnf/sparse"
)

// UnitPairs computes for every non-terminal A the set unit(A) of non-terminals
// B with A ⇒* B by unit productions only. The relation is reflexive.
// Left hand sides which have not been declared as non-terminals are
// included as well.
//
// Returns the symbols in index order and the closed relation.
func UnitPairs(g *grammar.Grammar) ([]string, *sparse.Relation) {
	syms := g.NonTerminalSet()
	syms.Add(g.LHS()...)
	index := make(map[string]int, syms.Size())
	symbols := syms.Values()
	for i, sym := range symbols {
		index[sym] = i
	}
	R := sparse.Identity(len(symbols))
	g.EachProduction(func(A string, rhs grammar.RHS) {
		if len(rhs) != 1 {
			return
		}
		if j, ok := index[rhs[0]]; ok {
			R.Add(index[A], j)
		}
	})
	passes := R.Close()
	tracer().Debugf("unit pairs after %d passes: %s", passes, R)
	return symbols, R
}

// EliminateUnits removes all unit productions A → B from g.
// The new bodies of A are the non-unit bodies of all B ∈ unit(A), A's own
// bodies first, then the others in symbol order.
func EliminateUnits(g *grammar.Grammar, rep *Report) *grammar.Grammar {
	symbols, R := UnitPairs(g)
	isUnit := func(rhs grammar.RHS) bool {
		return len(rhs) == 1 && (g.IsNonTerminal(rhs[0]) || g.HasProductions(rhs[0]))
	}
	b := grammar.Derive(g, g.Name())
	for i, A := range symbols {
		targets := []string{A}
		for _, j := range R.Row(i) {
			if j != i {
				targets = append(targets, symbols[j])
			}
		}
		for _, B := range targets {
			for _, rhs := range g.RHS(B) {
				if !isUnit(rhs) {
					b.Add(A, rhs)
				}
			}
		}
	}
	return build(b)
}
