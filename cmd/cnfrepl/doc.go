/*
Command cnfrepl is an interactive command line tool for converting
context-free grammars to Chomsky normal form.

Grammars are loaded from files in the notation of package notation, or in
Go-style EBNF with flag -ebnf. Productions may also be typed in directly,
every input line containing "->" is added to the current grammar:

    cnf> S -> a S b | ε
    cnf> cnf

Commands are

    load <file>          load a grammar, replacing the current one
    show                 print the current grammar
    nullable             print the nullable non-terminals
    cnf                  convert to CNF and print result and conditions
    steps                convert and print the grammar after every stage
    order <reach|prod>   select the order of the pruning stages
    dot <file>           write the dependency graph of the grammar (GraphViz)
    check                check if the current grammar is in CNF
    classify             print the Chomsky type of the current grammar
    generate [n]         derive n random words (default 1)
    clear                forget the current grammar
    help                 print this list
    quit                 leave the REPL (or <ctrl>D)

With flag -batch the grammar given by -f is converted and printed, without
entering interactive mode.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocnf.repl'
func tracer() tracing.Trace {
	return tracing.Select("gocnf.repl")
}
