package cnf

import (
	"fmt"

	"github.com/npillmayer/gocnf/grammar"
)

// build returns the grammar of a builder derived from a well-formed grammar.
// Stages only declare fresh non-terminals, so the terminal and non-terminal
// sets stay disjoint.
func build(b *grammar.Builder) *grammar.Grammar {
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Sprintf("cnf: stage produced inconsistent grammar: %v", err))
	}
	return g
}

// emptyLanguage creates the canonical grammar for the empty language: no
// productions, no terminals, and the start symbol as the only non-terminal,
// if it has been declared.
func emptyLanguage(g *grammar.Grammar) *grammar.Grammar {
	b := grammar.NewBuilder(g.Name())
	b.Start(g.Start())
	if g.HasStart() {
		b.NonTerminals(g.Start())
	}
	return build(b)
}

// checkStart reports InvalidStartSymbol if the start symbol of g is not a
// declared non-terminal.
func checkStart(g *grammar.Grammar, rep *Report, stage Stage) bool {
	if g.HasStart() {
		return true
	}
	rep.add(Condition{Kind: InvalidStartSymbol, Stage: stage, Symbol: g.Start()})
	return false
}

// reportUndeclared reports a MalformedSymbolReference for every distinct
// undeclared symbol in the bodies of g, with its number of occurrences.
func reportUndeclared(g *grammar.Grammar, rep *Report, stage Stage) {
	if rep == nil {
		return
	}
	counts := make(map[string]int)
	g.EachProduction(func(A string, rhs grammar.RHS) {
		for _, sym := range rhs {
			if !g.IsDeclared(sym) {
				counts[sym]++
			}
		}
	})
	for _, sym := range g.Undeclared() {
		rep.add(Condition{Kind: MalformedSymbolReference, Stage: stage, Symbol: sym, Count: counts[sym]})
	}
}

// rederiveTerminals declares every symbol of rhs which is a terminal of ref.
func rederiveTerminals(b *grammar.Builder, ref *grammar.Grammar, rhs grammar.RHS) {
	for _, sym := range rhs {
		if ref.IsTerminal(sym) {
			b.Terminals(sym)
		}
	}
}
