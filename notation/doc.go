/*
Package notation reads and writes grammars in a small textual notation.

A grammar is given by its non-terminals, terminals, start symbol and
productions:

    VN={S, A, B} VT={a, b} S=S
    P={
      S -> A B | B
      A -> a
      B -> b | ε
    }

Items may appear in any order, and productions may also be written outside of
P={…}. Alternatives are separated by '|', '→' may be used instead of '->',
and ε denotes the empty right hand side. Productions may be separated by ','
or ';', but line breaks work just as well. Comments start with '//'.

Symbols in a right hand side are separated by spaces. A word which is not a
declared symbol is split into declared symbols, if possible, so

    S -> aB

is read as S → a B if a and B are declared. Unquoted symbols consist of
ASCII letters, digits and the characters _+*()[].!?<%&^#:~@ only. Every other
symbol has to be quoted with single quotes, in particular symbols containing
'-', '>' or any non-ASCII character:

    E -> E '-' T
    S -> 'ä' S | 'ö'

If VN is missing, the non-terminals are the left hand sides of the productions.
If VT is missing, the terminals are all the other symbols of the right hand
sides. If S is missing, the first left hand side is the start symbol.

Function String renders a grammar in the same notation, such that parsing
the output reproduces the grammar.

EBNF

FromEBNF imports grammars written in the EBNF dialect of the Go language
specification (see golang.org/x/exp/ebnf). Capitalised productions become
non-terminals, tokens and lexical (lower case) productions become terminals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocnf.notation'.
func tracer() tracing.Trace {
	return tracing.Select("gocnf.notation")
}
