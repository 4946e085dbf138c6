package cnf

import (
	"github.com/npillmayer/gocnf/grammar"
)

// ProductiveSymbols computes the set of non-terminals deriving some string of
// terminals. ε-bodies do not count as productive.
func ProductiveSymbols(g *grammar.Grammar) *grammar.SymbolSet {
	productive := grammar.NewSymbolSet()
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		g.EachProduction(func(A string, rhs grammar.RHS) {
			if productive.Contains(A) || !g.IsNonTerminal(A) {
				return
			}
			if derivesTerminals(g, productive, rhs) {
				productive.Add(A)
				changed = true
			}
		})
	}
	tracer().Debugf("productive symbols after %d passes: %s", passes, productive)
	return productive
}

// Productivity prunes every non-terminal which does not derive a terminal
// string, together with every body referencing one. Terminals are re-derived
// from surviving bodies.
//
// If the start symbol is not productive, the empty-language grammar is
// returned and EmptyLanguageProductivity is reported, unless an empty
// language has already been reported before.
func Productivity(g *grammar.Grammar, rep *Report) *grammar.Grammar {
	reportUndeclared(g, rep, StageProductivity)
	if !checkStart(g, rep, StageProductivity) {
		return emptyLanguage(g)
	}
	productive := ProductiveSymbols(g)
	if !productive.Contains(g.Start()) {
		if !rep.emptyLanguage() {
			rep.add(Condition{Kind: EmptyLanguageProductivity, Stage: StageProductivity, Symbol: g.Start()})
		}
		return emptyLanguage(g)
	}
	b := grammar.NewBuilder(g.Name())
	b.Start(g.Start())
	b.NonTerminals(productive.Values()...)
	g.EachProduction(func(A string, rhs grammar.RHS) {
		if productive.Contains(A) && derivesTerminals(g, productive, rhs) {
			b.Add(A, rhs)
			rederiveTerminals(b, g, rhs)
		}
	})
	h := build(b)
	tracer().Infof("productivity: %d of %d non-terminals productive",
		productive.Size(), len(g.NonTerminals()))
	return h
}

// derivesTerminals checks if rhs is a non-empty body of terminals and
// productive non-terminals.
func derivesTerminals(g *grammar.Grammar, productive *grammar.SymbolSet, rhs grammar.RHS) bool {
	if rhs.IsEpsilon() {
		return false
	}
	for _, sym := range rhs {
		if !g.IsTerminal(sym) && !productive.Contains(sym) {
			return false
		}
	}
	return true
}
