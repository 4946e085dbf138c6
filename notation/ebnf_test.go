package notation

import (
	"strings"
	"testing"

	"github.com/npillmayer/gocnf/cnf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprEBNF = `
Expr   = Term { ( "+" | "-" ) Term } .
Term   = Factor [ "*" Factor ] .
Factor = Digit | "(" Expr ")" | ident .
Digit  = "0" … "2" .
ident  = "x" .
`

func TestFromEBNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.notation")
	defer teardown()
	//
	g, err := FromEBNF("expr.ebnf", strings.NewReader(exprEBNF), "")
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", String(g))
	if g.Start() != "Expr" {
		t.Errorf("Expected start symbol Expr, is %q", g.Start())
	}
	if s := rhsStrings(g, "Expr"); s != "Term R1" {
		t.Errorf("Expected Expr -> Term R1, is Expr -> %s", s)
	}
	if s := rhsStrings(g, "R1"); s != "+ Term R1 | - Term R1 | ε" {
		t.Errorf("Expected R1 -> + Term R1 | - Term R1 | ε, is R1 -> %s", s)
	}
	if s := rhsStrings(g, "Term"); s != "Factor * Factor | Factor" {
		t.Errorf("Expected Term -> Factor * Factor | Factor, is Term -> %s", s)
	}
	if s := rhsStrings(g, "Digit"); s != "0 | 1 | 2" {
		t.Errorf("Expected Digit -> 0 | 1 | 2, is Digit -> %s", s)
	}
	if !g.IsTerminal("ident") || g.HasProductions("ident") {
		t.Errorf("Expected lexical production ident to be a terminal")
	}
	res, _ := cnf.ConvertToCNF(g)
	if err := cnf.CheckCNF(res.Grammar); err != nil {
		t.Error(err)
	}
}

func TestFromEBNFStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.notation")
	defer teardown()
	//
	g, err := FromEBNF("expr.ebnf", strings.NewReader(exprEBNF), "Term")
	if err != nil {
		t.Fatal(err)
	}
	if g.Start() != "Term" {
		t.Errorf("Expected start symbol Term, is %q", g.Start())
	}
	if _, err := FromEBNF("expr.ebnf", strings.NewReader(exprEBNF), "Nope"); err == nil {
		t.Errorf("Expected error for unknown start symbol")
	}
	if _, err := FromEBNF("bad.ebnf", strings.NewReader("Expr = Term"), ""); err == nil {
		t.Errorf("Expected syntax error for missing period")
	}
}
