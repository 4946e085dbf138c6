package grammar

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// Grammar is an immutable snapshot of a context-free grammar. Create grammars with
// a Builder.
//
// A Grammar does not insist on being well-formed: the start symbol may be
// undeclared, and right hand sides may reference undeclared symbols. Such
// conditions are detected and reported by the normalization stages of package cnf.
// The only hard invariant is that non-terminals and terminals are disjoint.
type Grammar struct {
	name         string
	start        string
	nonterminals *SymbolSet
	terminals    *SymbolSet
	productions  map[string][]RHS // LHS -> ordered list of right hand sides
}

// Name returns the (informational) name of the grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// HasStart is true if the start symbol is a declared non-terminal.
func (g *Grammar) HasStart() bool {
	return g.start != "" && g.nonterminals.Contains(g.start)
}

// NonTerminals returns the declared non-terminals in sorted order.
func (g *Grammar) NonTerminals() []string {
	return g.nonterminals.Values()
}

// Terminals returns the declared terminals in sorted order.
func (g *Grammar) Terminals() []string {
	return g.terminals.Values()
}

// NonTerminalSet returns a copy of the set of declared non-terminals.
func (g *Grammar) NonTerminalSet() *SymbolSet {
	return g.nonterminals.Copy()
}

// TerminalSet returns a copy of the set of declared terminals.
func (g *Grammar) TerminalSet() *SymbolSet {
	return g.terminals.Copy()
}

// IsNonTerminal checks if sym is a declared non-terminal.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonterminals.Contains(sym)
}

// IsTerminal checks if sym is a declared terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Contains(sym)
}

// IsDeclared checks if sym is either a terminal or a non-terminal.
func (g *Grammar) IsDeclared(sym string) bool {
	return g.IsNonTerminal(sym) || g.IsTerminal(sym)
}

// LHS returns all symbols which have at least one production, in sorted order.
// This may include symbols which are not declared as non-terminals.
func (g *Grammar) LHS() []string {
	lhs := make([]string, 0, len(g.productions))
	for A := range g.productions {
		lhs = append(lhs, A)
	}
	sort.Strings(lhs)
	return lhs
}

// RHS returns a copy of the right hand sides for non-terminal A, in the
// order they have been added.
func (g *Grammar) RHS(A string) []RHS {
	rhss := g.productions[A]
	if len(rhss) == 0 {
		return nil
	}
	c := make([]RHS, len(rhss))
	for i, rhs := range rhss {
		c[i] = rhs.Copy()
	}
	return c
}

// HasProductions is true if A has at least one right hand side.
func (g *Grammar) HasProductions(A string) bool {
	return len(g.productions[A]) > 0
}

// EachProduction calls f for every production. Left hand sides are visited in
// sorted order, right hand sides in insertion order. f must not modify rhs.
func (g *Grammar) EachProduction(f func(A string, rhs RHS)) {
	for _, A := range g.LHS() {
		for _, rhs := range g.productions[A] {
			f(A, rhs.Copy())
		}
	}
}

// ProductionCount returns the total number of right hand sides.
func (g *Grammar) ProductionCount() int {
	cnt := 0
	for _, rhss := range g.productions {
		cnt += len(rhss)
	}
	return cnt
}

// IsEmpty is true for a grammar without any productions.
func (g *Grammar) IsEmpty() bool {
	return g.ProductionCount() == 0
}

// Undeclared returns the symbols occuring in right hand sides which are neither
// terminals nor non-terminals, in sorted order.
func (g *Grammar) Undeclared() []string {
	U := NewSymbolSet()
	g.EachProduction(func(A string, rhs RHS) {
		for _, sym := range rhs {
			if !g.IsDeclared(sym) {
				U.Add(sym)
			}
		}
	})
	return U.Values()
}

// Symbols returns every symbol known to the grammar: declared ones, left hand sides,
// symbols used in right hand sides, and the start symbol.
func (g *Grammar) Symbols() *SymbolSet {
	S := g.nonterminals.Union(g.terminals)
	g.EachProduction(func(A string, rhs RHS) {
		S.Add(A)
		S.Add(rhs...)
	})
	if g.start != "" {
		S.Add(g.start)
	}
	return S
}

// --- Fingerprints ----------------------------------------------------------

// canonical is the hashable form of a grammar. Productions are sorted, thus
// the fingerprint does not depend on the order of construction.
type canonical struct {
	Start        string
	NonTerminals []string
	Terminals    []string
	Productions  []string
}

// Fingerprint returns a content hash of the grammar. Two grammars with the same
// start symbol, the same symbol sets and the same set of productions have equal
// fingerprints. The grammar's name is not part of the fingerprint.
func (g *Grammar) Fingerprint() string {
	c := canonical{
		Start:        g.start,
		NonTerminals: g.NonTerminals(),
		Terminals:    g.Terminals(),
	}
	g.EachProduction(func(A string, rhs RHS) {
		c.Productions = append(c.Productions, A+"\x01"+rhs.key())
	})
	sort.Strings(c.Productions)
	hash, err := structhash.Hash(c, 1)
	if err != nil { // structhash never fails on plain structs
		panic(fmt.Sprintf("cannot hash grammar %q: %v", g.name, err))
	}
	return hash
}

// --- Debugging -------------------------------------------------------------

// Dump is a debugging helper, tracing the grammar at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.name)
	tracer().Debugf("VN = %v", g.nonterminals)
	tracer().Debugf("VT = %v", g.terminals)
	tracer().Debugf("S  = %s", g.start)
	n := 0
	g.EachProduction(func(A string, rhs RHS) {
		tracer().Debugf("%3d: [%s] ::= [%s]", n, A, rhs)
		n++
	})
	tracer().Debugf("-------------------------------------------------------")
}

func (g *Grammar) String() string {
	return fmt.Sprintf("<grammar %s: |VN|=%d |VT|=%d |P|=%d S=%s>", g.name,
		g.nonterminals.Size(), g.terminals.Size(), g.ProductionCount(), g.start)
}
