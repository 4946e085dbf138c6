package notation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/gocnf/scanner"
)

// Token types of the grammar notation
const (
	tokWord   = 1 // unquoted symbol or sequence of symbols
	tokQuoted = 2 // quoted symbol
)

// The tokens representing literal lexemes
var literals = []string{"{", "}", "=", ",", ";", "|", "->"}

// The keyword tokens
var keywords = []string{"ε", "→"}

// All of the tokens (including literals and keywords)
var tokens = []string{"WORD", "QUOTED"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["WORD"] = tokWord
		tokenIds["QUOTED"] = tokQuoted
		for i, tok := range append(literals, keywords...) {
			tokenIds[tok] = i + 10
		}
	})
}

// token returns the token type for a token name.
func token(t string) int {
	id, ok := tokenIds[t]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", t))
	}
	return id
}

// Characters allowed in unquoted symbols, besides ASCII letters and digits.
// '-' and '>' are excluded, as they form the arrow.
const wordPunct = "_+*()[].!?<%&^#:~@"

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		strings.ContainsRune(wordPunct, r)
}

var lexer *scanner.LMAdapter
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the lexmachine lexer for the grammar notation.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		tracer().Debugf("creating lexer for grammar notation")
		lexer, lexerErr = scanner.NewLMAdapter(tokenIds,
			scanner.Ignore(`//[^\n]*\n?`), // comments
			scanner.Pattern("QUOTED", `'[^']*'`),
			scanner.Pattern("WORD", `([a-z]|[A-Z]|[0-9]|_|\+|\*|\(|\)|\[|\]|\.|\!|\?|\<|\%|\&|\^|\#|:|~|@)+`),
			scanner.Ignore(`( |\t|\n|\r)+`),
			scanner.Literals(literals...),
			scanner.Keywords(keywords...),
		)
	})
	return lexer, lexerErr
}
