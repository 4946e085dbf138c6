package notation

import (
	"io"
	"strings"

	"github.com/npillmayer/gocnf/grammar"
	"github.com/pkg/errors"
)

// Render writes g in the textual notation. Productions of the start symbol
// are written first, then the others in symbol order.
func Render(w io.Writer, g *grammar.Grammar) error {
	var b strings.Builder
	b.WriteString("VN=" + symbolList(g.NonTerminals()) + "\n")
	b.WriteString("VT=" + symbolList(g.Terminals()) + "\n")
	if g.Start() != "" {
		b.WriteString("S=" + quote(g.Start()) + "\n")
	}
	b.WriteString("P={\n")
	lhs := g.LHS()
	if g.HasProductions(g.Start()) {
		lhs = append([]string{g.Start()}, without(lhs, g.Start())...)
	}
	for _, A := range lhs {
		b.WriteString("  " + quote(A) + " -> ")
		for i, rhs := range g.RHS(A) {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(body(g, rhs))
		}
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrapf(err, "cannot write grammar %q", g.Name())
	}
	return nil
}

// String returns g in the textual notation.
func String(g *grammar.Grammar) string {
	var b strings.Builder
	_ = Render(&b, g) // writing to a strings.Builder does not fail
	return b.String()
}

// RenderProductions writes the productions of g only, one line per left hand
// side.
func RenderProductions(w io.Writer, g *grammar.Grammar) error {
	var b strings.Builder
	g.EachProduction(func(A string, rhs grammar.RHS) {
		b.WriteString(quote(A) + " -> " + body(g, rhs) + "\n")
	})
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "cannot write productions")
}

func body(g *grammar.Grammar, rhs grammar.RHS) string {
	if rhs.IsEpsilon() {
		return grammar.Epsilon
	}
	syms := make([]string, len(rhs))
	for i, sym := range rhs {
		if g.IsDeclared(sym) {
			syms[i] = quote(sym)
		} else { // undeclared symbols must not be split when read back
			syms[i] = "'" + sym + "'"
		}
	}
	return strings.Join(syms, " ")
}

func symbolList(syms []string) string {
	q := make([]string, len(syms))
	for i, sym := range syms {
		q[i] = quote(sym)
	}
	return "{" + strings.Join(q, ", ") + "}"
}

// quote puts a symbol in single quotes if it cannot be read as a word.
func quote(sym string) string {
	if sym == "" {
		return "''"
	}
	for _, r := range sym {
		if !isWordRune(r) {
			return "'" + sym + "'"
		}
	}
	return sym
}

func without(syms []string, sym string) []string {
	var r []string
	for _, s := range syms {
		if s != sym {
			r = append(r, s)
		}
	}
	return r
}
