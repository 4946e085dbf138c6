package gocnf

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// Tokens represent input tokens. They are produced by a scanner for grammar
// notations and carry their position, to be used for error messages.
//
//    TokType = Arrow       // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "->"        // lexeme how it appeared in the input stream
//    Span    = 12…14       // occured from column 12 in the input line
//    Line    = 3
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
	Line() int
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span
// denotes a start column and the column of the last character.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}
