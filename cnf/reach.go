package cnf

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/gocnf/grammar"
)

// ReachableSymbols computes the set of symbols reachable from the start
// symbol of g, by breadth-first search. Undeclared symbols are included,
// if they occur in a reachable body.
func ReachableSymbols(g *grammar.Grammar) *grammar.SymbolSet {
	reached := grammar.NewSymbolSet()
	if g.Start() == "" {
		return reached
	}
	reached.Add(g.Start())
	worklist := arraylist.New()
	worklist.Add(g.Start())
	for i := 0; i < worklist.Size(); i++ {
		v, _ := worklist.Get(i)
		A := v.(string)
		for _, rhs := range g.RHS(A) {
			for _, sym := range rhs {
				if reached.Add(sym) {
					worklist.Add(sym)
				}
			}
		}
	}
	tracer().Debugf("reachable symbols: %s", reached)
	return reached
}

// Reachability prunes every symbol not reachable from the start symbol.
//
// Unreached non-terminals and terminals are removed, together with the
// productions of unreached left hand sides. Bodies referencing a removed or
// undeclared symbol are dropped (undeclared symbols are reported as
// MalformedSymbolReference). Terminals are re-derived from surviving bodies.
//
// If the start symbol is not a declared non-terminal, the result is the empty
// grammar and InvalidStartSymbol is reported. If the start symbol is left
// without productions, the empty-language grammar is returned and
// EmptyLanguageReachability is reported.
func Reachability(g *grammar.Grammar, rep *Report) *grammar.Grammar {
	reportUndeclared(g, rep, StageReachability)
	if !checkStart(g, rep, StageReachability) {
		return emptyLanguage(g)
	}
	reached := ReachableSymbols(g)
	b := grammar.NewBuilder(g.Name())
	b.Start(g.Start())
	reached.Each(func(sym string) {
		if g.IsNonTerminal(sym) {
			b.NonTerminals(sym)
		}
	})
	keep := func(rhs grammar.RHS) bool {
		for _, sym := range rhs {
			if !reached.Contains(sym) || !g.IsDeclared(sym) {
				return false
			}
		}
		return true
	}
	g.EachProduction(func(A string, rhs grammar.RHS) {
		if !reached.Contains(A) || !g.IsNonTerminal(A) || !keep(rhs) {
			return
		}
		b.Add(A, rhs)
		rederiveTerminals(b, g, rhs)
	})
	h := build(b)
	if !h.HasProductions(h.Start()) {
		if !rep.emptyLanguage() {
			rep.add(Condition{Kind: EmptyLanguageReachability, Stage: StageReachability, Symbol: g.Start()})
		}
		return emptyLanguage(g)
	}
	tracer().Infof("reachability: %d of %d symbols reachable", h.Symbols().Size(), g.Symbols().Size())
	return h
}
