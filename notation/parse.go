package notation

import (
	"unicode/utf8"

	"github.com/npillmayer/gocnf"
	"github.com/npillmayer/gocnf/grammar"
	"github.com/npillmayer/gocnf/scanner"
	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine/machines"
)

// --- Grammar of the notation -----------------------------------------------
//
// Document   ::=  { Item | Production | ',' | ';' }
// Item       ::=  'VN' '=' Set | 'VT' '=' Set | 'S' '=' Symbol
//              |  'P' '=' '{' { Production | ',' | ';' } '}'
// Set        ::=  '{' [ Symbol { [','] Symbol } ] '}'
// Production ::=  Symbol Arrow Body { '|' Body }
// Body       ::=  { Symbol | 'ε' }
// Arrow      ::=  '->' | '→'
//
// A body ends before a symbol which is followed by an arrow or by '='.

// word is an unsegmented run of symbols in a right hand side.
type word struct {
	text   string
	quoted bool
}

type rawProduction struct {
	lhs  string
	alts [][]word
}

type parser struct {
	scan     scanner.Tokenizer
	la       []gocnf.Token // lookahead buffer
	errs     []error       // errors from the scanner
	vn, vt   []string
	hasVN    bool
	hasVT    bool
	start    string
	hasStart bool
	prods    []rawProduction
}

// Parse reads a grammar in the textual notation. name is used for error
// messages and as the grammar's name.
func Parse(name, src string) (*grammar.Grammar, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create lexer for grammar notation")
	}
	sc, err := lex.Scanner(src)
	if err != nil {
		return nil, errors.Wrapf(err, "grammar %q", name)
	}
	p := &parser{scan: sc}
	sc.SetErrorHandler(func(e error) {
		p.errs = append(p.errs, errors.Wrap(e, illegalInput(src, e)))
	})
	if err = p.document(); err == nil && len(p.errs) > 0 {
		err = p.errs[0]
	}
	if err != nil {
		return nil, errors.Wrapf(err, "grammar %q", name)
	}
	return p.grammar(name)
}

// illegalInput describes a scanner error. Unquoted symbols are limited to
// ASCII, which users are reminded of.
func illegalInput(src string, e error) string {
	ui, ok := e.(*machines.UnconsumedInput)
	if !ok || ui.StartTC < 0 || ui.StartTC >= len(src) {
		return "illegal input"
	}
	end := ui.FailTC + 1
	if end > len(src) || end <= ui.StartTC {
		end = ui.StartTC + 1
	}
	for i := ui.StartTC; i < end; i++ {
		if src[i] >= utf8.RuneSelf {
			return "illegal input, symbols with non-ASCII characters have to be quoted"
		}
	}
	return "illegal input"
}

// --- Token handling --------------------------------------------------------

func (p *parser) peek(k int) gocnf.Token {
	for len(p.la) <= k {
		p.la = append(p.la, p.scan.NextToken())
	}
	return p.la[k]
}

func (p *parser) next() gocnf.Token {
	t := p.peek(0)
	if t.TokType() != scanner.EOF {
		p.la = p.la[1:]
	}
	return t
}

func is(t gocnf.Token, tok string) bool {
	return int(t.TokType()) == token(tok)
}

func isArrow(t gocnf.Token) bool {
	return is(t, "->") || is(t, "→")
}

func isSymbol(t gocnf.Token) bool {
	return t.TokType() == tokWord || t.TokType() == tokQuoted
}

func isSeparator(t gocnf.Token) bool {
	return is(t, ",") || is(t, ";")
}

// symbolText returns the symbol of a word or quoted token.
func symbolText(t gocnf.Token) string {
	if t.TokType() == tokQuoted {
		lx := t.Lexeme()
		return lx[1 : len(lx)-1]
	}
	return t.Lexeme()
}

func (p *parser) errorf(t gocnf.Token, format string, args ...interface{}) error {
	if t.TokType() == scanner.EOF {
		return errors.Errorf("at end of input: "+format, args...)
	}
	return errors.Errorf("line %d, column %d: "+format,
		append([]interface{}{t.Line(), t.Span().From()}, args...)...)
}

func (p *parser) expect(tok string) error {
	if t := p.next(); !is(t, tok) {
		return p.errorf(t, "expected '%s', found %q", tok, t.Lexeme())
	}
	return nil
}

// --- Recursive descent -----------------------------------------------------

func (p *parser) document() error {
	for {
		t := p.peek(0)
		switch {
		case t.TokType() == scanner.EOF:
			return nil
		case isSeparator(t):
			p.next()
		case t.TokType() == tokWord && is(p.peek(1), "="):
			if err := p.item(); err != nil {
				return err
			}
		case isSymbol(t) && isArrow(p.peek(1)):
			p.production()
		default:
			return p.errorf(t, "expected item or production, found %q", t.Lexeme())
		}
	}
}

func (p *parser) item() error {
	name := p.next()
	p.next() // '='
	var err error
	switch name.Lexeme() {
	case "VN":
		var syms []string
		syms, err = p.set()
		p.vn, p.hasVN = append(p.vn, syms...), true
	case "VT":
		var syms []string
		syms, err = p.set()
		p.vt, p.hasVT = append(p.vt, syms...), true
	case "S":
		t := p.next()
		if !isSymbol(t) {
			return p.errorf(t, "expected start symbol, found %q", t.Lexeme())
		}
		p.start, p.hasStart = symbolText(t), true
	case "P":
		err = p.productions()
	default:
		err = p.errorf(name, "unknown item %q, expected one of VN, VT, S, P", name.Lexeme())
	}
	return err
}

func (p *parser) set() ([]string, error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	var syms []string
	for {
		t := p.next()
		switch {
		case is(t, "}"):
			return syms, nil
		case is(t, ","):
		case isSymbol(t):
			syms = append(syms, symbolText(t))
		default:
			return nil, p.errorf(t, "expected symbol or '}', found %q", t.Lexeme())
		}
	}
}

func (p *parser) productions() error {
	if err := p.expect("{"); err != nil {
		return err
	}
	for {
		t := p.peek(0)
		switch {
		case is(t, "}"):
			p.next()
			return nil
		case isSeparator(t):
			p.next()
		case isSymbol(t) && isArrow(p.peek(1)):
			p.production()
		default:
			return p.errorf(t, "expected production or '}', found %q", t.Lexeme())
		}
	}
}

// production is called with a symbol and an arrow as lookahead.
func (p *parser) production() {
	prod := rawProduction{lhs: symbolText(p.next())}
	p.next() // arrow
	var body []word
loop:
	for {
		t := p.peek(0)
		switch {
		case is(t, "|"):
			p.next()
			prod.alts = append(prod.alts, body)
			body = nil
		case is(t, "ε"):
			p.next()
		case isSymbol(t) && !p.startsDefinition():
			p.next()
			body = append(body, word{text: symbolText(t), quoted: t.TokType() == tokQuoted})
		default:
			break loop
		}
	}
	prod.alts = append(prod.alts, body)
	tracer().Debugf("parsed production %s with %d alternatives", prod.lhs, len(prod.alts))
	p.prods = append(p.prods, prod)
}

// startsDefinition checks if the lookahead is the start of a production or
// of an item.
func (p *parser) startsDefinition() bool {
	t, la := p.peek(0), p.peek(1)
	return isSymbol(t) && isArrow(la) || t.TokType() == tokWord && is(la, "=")
}

// --- Grammar construction --------------------------------------------------

func (p *parser) grammar(name string) (*grammar.Grammar, error) {
	lhs := grammar.NewSymbolSet()
	for _, prod := range p.prods {
		lhs.Add(prod.lhs)
	}
	nonterms := lhs
	if p.hasVN {
		nonterms = grammar.NewSymbolSet(p.vn...)
	}
	known := nonterms.Union(lhs)
	if p.hasVT {
		known.Add(p.vt...)
	}
	seg := newSegmenter(known, !p.hasVT)
	b := grammar.NewBuilder(name)
	b.NonTerminals(nonterms.Values()...)
	if p.hasVT {
		b.Terminals(p.vt...)
	}
	for _, prod := range p.prods {
		for _, alt := range prod.alts {
			rhs := grammar.RHS{}
			for _, w := range alt {
				if w.quoted {
					rhs = append(rhs, w.text)
				} else {
					rhs = append(rhs, seg.split(w.text)...)
				}
			}
			if !p.hasVT {
				for _, sym := range rhs {
					if !known.Contains(sym) {
						b.Terminals(sym)
					}
				}
			}
			b.Add(prod.lhs, rhs)
		}
	}
	if p.hasStart {
		b.Start(p.start)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, errors.Wrap(err, "inconsistent grammar")
	}
	return g, nil
}
