/*
Package gocnf is a toolbox for normalizing context-free grammars.

GoCNF transforms arbitrary context-free grammars into Chomsky Normal Form,
where every production either has the form A ➞ a or A ➞ B C. Package structure is
as follows:

■ grammar: Package grammar implements immutable grammar snapshots, together with a
builder and some debugging helpers.

■ cnf: Package cnf implements the normalization pipeline (ε-elimination, unit
elimination, pruning of unreachable and non-productive symbols, TERM and BIN).

■ notation: Package notation reads and writes grammars in a small textual notation
and imports EBNF grammars.

■ sparse: Package sparse implements boolean relations over symbol indices as sparse
matrices, used for closures.

■ scanner: Package scanner defines a tokenizer interface and an adapter for
lexmachine, used for reading grammar notations.

■ cmd/cnfrepl: An interactive command line tool for experiments with grammar
normalization.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gocnf
