package cnf

import (
	"fmt"

	"github.com/npillmayer/gocnf/grammar"
)

// Prefixes for fresh non-terminals.
const (
	TermPrefix = "T" // isolates a terminal in bodies of length ≥ 2
	BinPrefix  = "Z" // chains binarized bodies
)

// Term isolates terminals: in every body of length ≥ 2, each terminal t is
// replaced by a fresh non-terminal T with production T → t. Fresh symbols are
// memoized per terminal. Bodies of length 1 are left unchanged.
func Term(g *grammar.Grammar, alloc *SymbolAllocator) *grammar.Grammar {
	b := grammar.Derive(g, g.Name())
	isolated := make(map[string]string) // terminal -> fresh non-terminal
	g.EachProduction(func(A string, rhs grammar.RHS) {
		if len(rhs) < 2 {
			b.Add(A, rhs)
			return
		}
		body := rhs.Copy()
		for i, sym := range body {
			if !g.IsTerminal(sym) {
				continue
			}
			T, ok := isolated[sym]
			if !ok {
				T = alloc.Fresh(TermPrefix)
				isolated[sym] = T
				b.NonTerminals(T)
				b.Add(T, grammar.RHS{sym})
				tracer().Debugf("TERM: %s -> %s", T, sym)
			}
			body[i] = T
		}
		b.Add(A, body)
	})
	return build(b)
}

// Bin binarizes every body s1 … sn with n > 2 by a chain of fresh
// non-terminals:
//
//     A → s1 Z1,  Z1 → s2 Z2,  …,  Z(n-2) → s(n-1) sn
//
// Passes over the grammar are repeated until no body is longer than 2.
func Bin(g *grammar.Grammar, alloc *SymbolAllocator) *grammar.Grammar {
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		b := grammar.Derive(g, g.Name())
		g.EachProduction(func(A string, rhs grammar.RHS) {
			if len(rhs) <= 2 {
				b.Add(A, rhs)
				return
			}
			changed = true
			lhs := A
			for i := 0; i < len(rhs)-2; i++ {
				Z := alloc.Fresh(BinPrefix)
				b.NonTerminals(Z)
				b.Add(lhs, grammar.RHS{rhs[i], Z})
				lhs = Z
			}
			b.Add(lhs, grammar.RHS{rhs[len(rhs)-2], rhs[len(rhs)-1]})
		})
		g = build(b)
	}
	tracer().Debugf("BIN: done after %d passes", passes)
	return g
}

// TransformCNF runs TERM, then BIN.
func TransformCNF(g *grammar.Grammar, alloc *SymbolAllocator) *grammar.Grammar {
	return Bin(Term(g, alloc), alloc)
}

// CheckCNF checks if every production of g is of the form A → a or A → B C.
// The error names the first offending production.
func CheckCNF(g *grammar.Grammar) error {
	var err error
	g.EachProduction(func(A string, rhs grammar.RHS) {
		if err != nil {
			return
		}
		switch len(rhs) {
		case 1:
			if g.IsTerminal(rhs[0]) {
				return
			}
		case 2:
			if g.IsNonTerminal(rhs[0]) && g.IsNonTerminal(rhs[1]) {
				return
			}
		}
		err = fmt.Errorf("production %s → %s is not in Chomsky normal form", A, rhs)
	})
	return err
}
