package grammar

import (
	"fmt"
	"strings"
)

// Builder is used to construct grammars. Clients usually use the fluent interface
// starting with LHS(…), whereas grammar transformations use the lower level
// methods Add(…), NonTerminals(…), Terminals(…) and Start(…).
//
// Adding a right hand side which is already present for a left hand side is
// a no-op.
type Builder struct {
	name         string
	start        string
	firstLHS     string
	nonterminals *SymbolSet
	terminals    *SymbolSet
	productions  map[string][]RHS
	seen         map[string]map[string]struct{} // LHS -> set of RHS keys
}

var exists = struct{}{}

// NewBuilder creates an empty builder for a grammar named name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:         name,
		nonterminals: NewSymbolSet(),
		terminals:    NewSymbolSet(),
		productions:  make(map[string][]RHS),
		seen:         make(map[string]map[string]struct{}),
	}
}

// Derive creates a builder for a grammar with the same start symbol and the
// same declared symbols as g, but without any productions.
func Derive(g *Grammar, name string) *Builder {
	b := NewBuilder(name)
	b.start = g.start
	b.nonterminals = g.nonterminals.Copy()
	b.terminals = g.terminals.Copy()
	return b
}

// Start sets the start symbol. It is not declared as a non-terminal implicitly.
func (b *Builder) Start(sym string) *Builder {
	b.start = sym
	return b
}

// NonTerminals declares symbols as non-terminals.
func (b *Builder) NonTerminals(symbols ...string) *Builder {
	b.nonterminals.Add(symbols...)
	return b
}

// Terminals declares symbols as terminals.
func (b *Builder) Terminals(symbols ...string) *Builder {
	b.terminals.Add(symbols...)
	return b
}

// Add appends a right hand side for A. Neither A nor the symbols of rhs are
// declared implicitly. Returns false if rhs has already been present for A.
func (b *Builder) Add(A string, rhs RHS) bool {
	if b.firstLHS == "" {
		b.firstLHS = A
	}
	k := rhs.key()
	set, ok := b.seen[A]
	if !ok {
		set = make(map[string]struct{})
		b.seen[A] = set
	}
	if _, dup := set[k]; dup {
		return false
	}
	set[k] = exists
	b.productions[A] = append(b.productions[A], rhs.Copy())
	return true
}

// Has checks if a right hand side rhs for A has already been added.
func (b *Builder) Has(A string, rhs RHS) bool {
	_, ok := b.seen[A][rhs.key()]
	return ok
}

// LHS starts a new rule for non-terminal A, which is declared implicitly.
func (b *Builder) LHS(A string) *RuleBuilder {
	b.nonterminals.Add(A)
	if b.firstLHS == "" {
		b.firstLHS = A
	}
	return &RuleBuilder{b: b, lhs: A, rhs: RHS{}}
}

// Grammar returns the grammar under construction. The builder may be used to
// build further grammars afterwards. An error is returned if a symbol has been
// declared both as a terminal and as a non-terminal.
func (b *Builder) Grammar() (*Grammar, error) {
	if clash := b.nonterminals.Intersection(b.terminals); !clash.Empty() {
		return nil, fmt.Errorf("grammar %q: symbols declared as terminal and non-terminal: %s",
			b.name, strings.Join(clash.Values(), ", "))
	}
	g := &Grammar{
		name:         b.name,
		start:        b.start,
		nonterminals: b.nonterminals.Copy(),
		terminals:    b.terminals.Copy(),
		productions:  make(map[string][]RHS, len(b.productions)),
	}
	if g.start == "" {
		g.start = b.firstLHS
	}
	for A, rhss := range b.productions {
		if len(rhss) == 0 {
			continue
		}
		c := make([]RHS, len(rhss))
		for i, rhs := range rhss {
			c[i] = rhs.Copy()
		}
		g.productions[A] = c
	}
	return g, nil
}

// --- Rule builder ----------------------------------------------------------

// RuleBuilder is a helper type to construct a single rule. Create one with
// Builder.LHS(…) and finish it with End() or Epsilon().
type RuleBuilder struct {
	b   *Builder
	lhs string
	rhs RHS
}

// N appends a non-terminal to the right hand side, declaring it.
func (rb *RuleBuilder) N(sym string) *RuleBuilder {
	rb.b.nonterminals.Add(sym)
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// T appends a terminal to the right hand side, declaring it.
func (rb *RuleBuilder) T(sym string) *RuleBuilder {
	rb.b.terminals.Add(sym)
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// End finishes the rule. Returns false if the rule is a duplicate.
func (rb *RuleBuilder) End() bool {
	if len(rb.rhs) == 0 {
		tracer().Debugf("rule for %s has an empty right hand side, treating it as ε", rb.lhs)
	}
	return rb.b.Add(rb.lhs, rb.rhs)
}

// Epsilon finishes the rule as an ε-production, discarding symbols appended so far.
func (rb *RuleBuilder) Epsilon() bool {
	rb.rhs = RHS{}
	return rb.b.Add(rb.lhs, rb.rhs)
}
