package scanner

import (
	"fmt"
	"strings"

	"github.com/npillmayer/gocnf"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// --- Lexer rules -----------------------------------------------------------

// Rule adds patterns to a lexer under construction. ids maps token names
// to token types.
type Rule func(lexer *lexmachine.Lexer, ids map[string]int) error

// Literals matches each of lits verbatim. The token name of a literal is the
// literal itself.
func Literals(lits ...string) Rule {
	return func(lexer *lexmachine.Lexer, ids map[string]int) error {
		for _, lit := range lits {
			if err := addToken(lexer, ids, lit, escape(lit)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Keywords matches each of words verbatim. Keywords must not contain regular
// expression operators.
func Keywords(words ...string) Rule {
	return func(lexer *lexmachine.Lexer, ids map[string]int) error {
		for _, w := range words {
			if err := addToken(lexer, ids, w, w); err != nil {
				return err
			}
		}
		return nil
	}
}

// Pattern matches regex and produces tokens of type ids[name].
func Pattern(name, regex string) Rule {
	return func(lexer *lexmachine.Lexer, ids map[string]int) error {
		return addToken(lexer, ids, name, regex)
	}
}

// Ignore matches regex and drops the match, e.g. for white space and comments.
func Ignore(regex string) Rule {
	return func(lexer *lexmachine.Lexer, ids map[string]int) error {
		lexer.Add([]byte(regex), skip)
		return nil
	}
}

func addToken(lexer *lexmachine.Lexer, ids map[string]int, name, regex string) error {
	id, ok := ids[name]
	if !ok {
		return fmt.Errorf("no token type for %q", name)
	}
	lexer.Add([]byte(regex), emit(id))
	return nil
}

// escape quotes ASCII punctuation of lit for use in a lexmachine pattern.
func escape(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if r < 0x80 && !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func emit(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// --- Adapter ---------------------------------------------------------------

// LMAdapter wraps a compiled lexmachine DFA. It is safe to create scanners
// from one adapter concurrently.
type LMAdapter struct {
	lexer *lexmachine.Lexer
}

// NewLMAdapter compiles a DFA from rules. Patterns added earlier take
// precedence for matches of equal length. An error is returned if a rule
// refers to a token name missing from ids, or if the DFA does not compile.
func NewLMAdapter(ids map[string]int, rules ...Rule) (*LMAdapter, error) {
	lexer := lexmachine.NewLexer()
	for _, rule := range rules {
		if err := rule(lexer, ids); err != nil {
			return nil, err
		}
	}
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("cannot compile DFA: %v", err)
		return nil, err
	}
	return &LMAdapter{lexer: lexer}, nil
}

// Scanner creates a Tokenizer for input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &LMScanner{scanner: s, onError: logError}, nil
}

// LMScanner reads tokens from a single input.
type LMScanner struct {
	scanner *lexmachine.Scanner
	onError func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets the handler for unmatched input. nil restores the
// default, which traces errors.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	lms.onError = h
}

// NextToken returns the next token, or a token of type EOF at the end of
// input. Unmatched input is reported to the error handler and skipped.
func (lms *LMScanner) NextToken() gocnf.Token {
	tok, eof := lms.next()
	if eof {
		return MakeDefaultToken(EOF, "", gocnf.Span{}, 0)
	}
	tracer().Debugf("token %d %q at %d:%d", tok.Type, tok.Lexeme, tok.StartLine, tok.StartColumn)
	return MakeDefaultToken(
		gocnf.TokType(tok.Type),
		string(tok.Lexeme),
		gocnf.Span{uint64(tok.StartColumn), uint64(tok.EndColumn)},
		tok.StartLine,
	)
}

// next skips over unmatched input until a token or EOF is found.
func (lms *LMScanner) next() (*lexmachine.Token, bool) {
	for {
		tok, err, eof := lms.scanner.Next()
		switch {
		case eof:
			return nil, true
		case err != nil:
			lms.onError(err)
			ui, ok := err.(*machines.UnconsumedInput)
			if !ok {
				return nil, true
			}
			lms.scanner.TC = ui.FailTC
		default:
			return tok.(*lexmachine.Token), false
		}
	}
}
