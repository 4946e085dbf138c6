/*
Package grammar implements immutable snapshots of context-free grammars.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Grammars may contain
epsilon-productions.

Example:

    b := grammar.NewBuilder("G")
    b.LHS("S").N("A").N("B").End()     // S  ->  A B
    b.LHS("A").T("a").End()            // A  ->  a
    b.LHS("A").Epsilon()               // A  ->  ε
    b.LHS("B").T("b").End()            // B  ->  b
    g, err := b.Grammar()

The first left hand side is taken as the start symbol, unless the client sets
one with b.Start(…). Symbols introduced with N(…) and T(…) are declared as
non-terminals and terminals, respectively. Declaring a symbol as both will
make b.Grammar() fail.

Snapshots

A Grammar is never changed after construction. Transformations (see package cnf)
create new grammars with the help of a builder. Accessors return copies of
internal data, thus clients cannot accidentally modify a snapshot.

Symbols are plain strings. A right hand side (RHS) is a sequence of symbols;
the empty sequence denotes ε.

Inspecting Grammars

Classify tells if a grammar is regular or context-free. Generate derives
random words from the start symbol, which is handy for eyeballing the
language of a grammar before and after normalization:

    d, err := grammar.Generate(g, rand.New(rand.NewSource(1)), 20)
    fmt.Println(d)  // S ⇒ A B ⇒ a B ⇒ a b

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocnf.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("gocnf.grammar")
}
