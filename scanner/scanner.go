/*
Package scanner defines an interface for scanners to be used with the grammar
notation readers of GoCNF.

A default implementation is provided as an adapter for lexmachine.
For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

A lexer is built from rules, each adding patterns for one or more token
types. Token names are mapped to token types by the client:

	ids := map[string]int{"WORD": 1, "{": 10, "}": 11, "ε": 12}
	LM, err := scanner.NewLMAdapter(ids,
		scanner.Ignore(`//[^\n]*\n?`),        // comments
		scanner.Pattern("WORD", `[a-z]+`),
		scanner.Ignore(`( |\t|\n|\r)+`),
		scanner.Literals("{", "}"),
		scanner.Keywords("ε"),
	)

NewLMAdapter will return an error if compiling the DFA failed.

A scanner is instantiated for each concrete input sequence. Tokens are read
until EOF.

	scan, err := LM.Scanner("input string to tokenize")
	token := scan.NextToken()
	for token.TokType() != scanner.EOF {
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"text/scanner"

	"github.com/npillmayer/gocnf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocnf.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("gocnf.scanner")
}

// EOF is identical to text/scanner.EOF.
const EOF = scanner.EOF

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() gocnf.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// lexmachine scanner.
type DefaultToken struct {
	kind   gocnf.TokType
	lexeme string
	span   gocnf.Span
	line   int
}

var _ gocnf.Token = DefaultToken{}

// MakeDefaultToken creates a token. Span is the column range within line.
func MakeDefaultToken(typ gocnf.TokType, lexeme string, span gocnf.Span, line int) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
		line:   line,
	}
}

func (t DefaultToken) TokType() gocnf.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() gocnf.Span {
	return t.span
}

func (t DefaultToken) Line() int {
	return t.line
}
