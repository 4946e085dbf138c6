package grammar

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGenerate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").T("a").N("S").T("b").End() // S -> a S b
	b.LHS("S").T("a").T("b").End()        // S -> a b
	g, _ := b.Grammar()
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		d, err := Generate(g, rnd, 10)
		if err != nil {
			t.Fatal(err)
		}
		if d[0].String() != "S" {
			t.Errorf("Expected derivation to start with S, is %s", d[0])
		}
		w := strings.Join(d.Word(), "")
		n := len(w) / 2
		if n == 0 || w != strings.Repeat("a", n)+strings.Repeat("b", n) {
			t.Errorf("Expected word a^n b^n, is %q", w)
		}
		if len(d) != n+1 {
			t.Errorf("Expected %d steps for %q, have %d", n, w, len(d)-1)
		}
	}
}

func TestGenerateTerminates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").N("S").N("S").N("S").End() // S -> S S S
	b.LHS("S").T("a").End()               // S -> a
	g, _ := b.Grammar()
	d, err := Generate(g, rand.New(rand.NewSource(1)), 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, sym := range d.Word() {
		if sym != "a" {
			t.Errorf("Expected word of a's only, is %v", d.Word())
		}
	}
	d, err = Generate(g, nil, 0)
	if err != nil || d.String() != "S ⇒ a" {
		t.Errorf("Expected shortest derivation S ⇒ a, is %v (%v)", d, err)
	}
}

func TestGenerateFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.grammar")
	defer teardown()
	//
	b := NewBuilder("G")
	b.LHS("S").T("a").N("S").End() // S -> a S
	g, _ := b.Grammar()
	if _, err := Generate(g, nil, 3); err == nil {
		t.Errorf("Expected error for non-productive start symbol")
	}
	b = NewBuilder("G")
	b.NonTerminals("A").Start("S")
	g, _ = b.Grammar()
	if _, err := Generate(g, nil, 3); err == nil {
		t.Errorf("Expected error for undeclared start symbol")
	}
	b = NewBuilder("G")
	b.LHS("S").Epsilon()
	g, _ = b.Grammar()
	d, err := Generate(g, nil, 3)
	if err != nil || !d.Word().IsEpsilon() {
		t.Errorf("Expected empty word, is %v (%v)", d, err)
	}
}
