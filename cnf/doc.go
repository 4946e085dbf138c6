/*
Package cnf transforms context-free grammars into Chomsky normal form.

A grammar is in Chomsky normal form (CNF) if every production is of the form
A → a (a single terminal) or A → B C (exactly two non-terminals).
Conversion is done by a pipeline of stages, each of which consumes an
immutable grammar snapshot and produces a new one:

    ε-elimination → unit elimination → reachability → productivity → TERM → BIN

The stages are exported as well and may be used on their own:

    nullable := cnf.NullableSet(g)           // non-terminals deriving ε
    g1 := cnf.EliminateEpsilon(g, rep)       // drop ε-productions
    g2 := cnf.EliminateUnits(g1, rep)        // drop renamings A → B
    g3 := cnf.Reachability(g2, rep)          // prune unreachable symbols
    g4 := cnf.Productivity(g3, rep)          // prune non-productive symbols
    g5 := cnf.TransformCNF(g4, alloc)        // TERM, then BIN

Most clients will simply call

    result, err := cnf.ConvertToCNF(g)

Stages do not abort on malformed input. Anomalies, such as an undeclared start
symbol or a grammar generating the empty language, are collected in a Report
and the pipeline produces a well-defined (possibly empty) grammar. The only
error returned by a conversion is for a nil grammar.

Setting the configuration flag "panic-on-grammar-anomaly" turns every
non-informational condition into a panic, which is handy for post-mortem
debugging.

Fresh non-terminals are generated by a SymbolAllocator, which is scoped to
a single conversion. Conversions of different grammars may therefore run
concurrently without any locking.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocnf.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("gocnf.cnf")
}
