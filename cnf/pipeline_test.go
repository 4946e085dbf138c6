package cnf

import (
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/gocnf/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func textbook(t *testing.T) *grammar.Grammar {
	return makeGrammar(t, "S -> A S A | a B", "A -> B | S", "B -> b | ε")
}

func checkCNFResult(t *testing.T, res *Result) {
	if err := CheckCNF(res.Grammar); err != nil {
		t.Errorf("Expected result to be in CNF: %v", err)
	}
	checkNoEpsilon(t, res.Grammar)
	checkNoUnits(t, res.Grammar)
}

func TestConvertExample1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	g := makeGrammar(t, "S -> A B", "A -> a | ε", "B -> b")
	res, err := ConvertToCNF(g)
	if err != nil {
		t.Fatal(err)
	}
	res.Grammar.Dump()
	checkCNFResult(t, res)
	h := res.Grammar
	if s := strings.Join(rhsStrings(h, "S"), "|"); s != "A B|b" {
		t.Errorf("Expected S -> A B | b, is S -> %s", s)
	}
	if s := strings.Join(rhsStrings(h, "A"), "|"); s != "a" {
		t.Errorf("Expected A -> a, is A -> %s", s)
	}
	if s := strings.Join(rhsStrings(h, "B"), "|"); s != "b" {
		t.Errorf("Expected B -> b, is B -> %s", s)
	}
	if len(res.Generated) != 0 {
		t.Errorf("Expected no fresh symbols, have %v", res.Generated)
	}
	if len(res.Report.Conditions()) != 0 || res.NullableStart {
		t.Errorf("Expected no conditions, have %v", res.Report.Conditions())
	}
}

func TestConvertExample2(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	res, err := ConvertToCNF(textbook(t))
	if err != nil {
		t.Fatal(err)
	}
	res.Grammar.Dump()
	checkCNFResult(t, res)
	if res.Grammar.Start() != "S" || !res.Grammar.HasProductions("S") {
		t.Errorf("Expected start symbol S to keep its productions")
	}
	if len(res.Generated) == 0 {
		t.Errorf("Expected fresh symbols for TERM and BIN")
	}
	if res.Report.Err() != nil {
		t.Errorf("Expected no anomalies, have %v", res.Report.Err())
	}
}

func TestConvertIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	res, _ := ConvertToCNF(textbook(t))
	h := res.Grammar
	if k := TransformCNF(h, AllocatorFor(h)); k.Fingerprint() != h.Fingerprint() {
		t.Errorf("Expected CNF transformation of a CNF grammar to be identity, is %v", k)
	}
	again, _ := ConvertToCNF(h)
	if again.Grammar.Fingerprint() != h.Fingerprint() {
		t.Errorf("Expected conversion of a CNF grammar to be identity, is %v", again.Grammar)
	}
	if len(again.Generated) != 0 {
		t.Errorf("Expected no fresh symbols, have %v", again.Generated)
	}
}

func TestFreshSymbolUniqueness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	g := makeGrammar(t, "S -> a T1 b Z1 c | Z2 a", "T1 -> t", "Z1 -> z", "Z2 -> T2 Z1 a", "T2 -> u")
	original := g.Symbols()
	res, _ := ConvertToCNF(g)
	checkCNFResult(t, res)
	seen := grammar.NewSymbolSet()
	for _, sym := range res.Generated {
		if original.Contains(sym) {
			t.Errorf("Expected fresh symbol %s to be distinct from input symbols", sym)
		}
		if !seen.Add(sym) {
			t.Errorf("Expected fresh symbol %s to be generated once", sym)
		}
	}
}

func TestConvertEmptyLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	for _, order := range []Order{ReachabilityFirst, ProductivityFirst} {
		g := makeGrammar(t, "S -> a S | A", "A -> b A")
		res, _ := NewPipeline(WithOrder(order)).Convert(g)
		if !res.Grammar.IsEmpty() || len(res.Grammar.Terminals()) != 0 {
			t.Errorf("%s: Expected empty productions and terminals, is %v", order, res.Grammar)
		}
		if !res.Report.Has(EmptyLanguageProductivity) {
			t.Errorf("%s: Expected EmptyLanguageProductivity to be reported", order)
		}
		if res.Report.Err() == nil {
			t.Errorf("%s: Expected report to carry an error", order)
		}
		if err := CheckCNF(res.Grammar); err != nil {
			t.Errorf("%s: Expected empty grammar to be in CNF: %v", order, err)
		}
	}
}

func TestConvertInvalidStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	b := grammar.NewBuilder("G")
	b.LHS("A").T("a").End()
	b.Start("S")
	g, _ := b.Grammar()
	res, err := ConvertToCNF(g)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Report.Has(InvalidStartSymbol) {
		t.Errorf("Expected InvalidStartSymbol to be reported")
	}
	if res.Report.Has(EmptyLanguageProductivity) || res.Report.Has(EmptyLanguageReachability) {
		t.Errorf("Expected empty language not to be reported twice, have %v", res.Report.Conditions())
	}
	h := res.Grammar
	if !h.IsEmpty() || len(h.NonTerminals()) != 0 || len(h.Terminals()) != 0 {
		t.Errorf("Expected empty grammar, is %v", h)
	}
}

func TestConvertMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	b := grammar.NewBuilder("G")
	b.NonTerminals("S").Terminals("a", "b").Start("S")
	b.Add("S", grammar.RHS{"a", "X"})
	b.Add("S", grammar.RHS{"a", "b"})
	g, _ := b.Grammar()
	for _, order := range []Order{ReachabilityFirst, ProductivityFirst} {
		res, _ := NewPipeline(WithOrder(order)).Convert(g)
		checkCNFResult(t, res)
		if res.Report.Count(MalformedSymbolReference) != 1 {
			t.Errorf("%s: Expected 1 malformed symbol reference, have %v", order, res.Report.Conditions())
		}
		if res.Grammar.Symbols().Contains("X") {
			t.Errorf("%s: Expected X to be pruned", order)
		}
	}
}

func TestConvertNullableStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	res, _ := ConvertToCNF(makeGrammar(t, "S -> a S b | ε"))
	if !res.NullableStart || !res.Report.Has(NullableStartNotReinjected) {
		t.Errorf("Expected nullable start symbol to be flagged")
	}
	checkCNFResult(t, res)
}

func TestConvertNullableLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	g := makeGrammar(t, "S -> A A A b", "A -> a | ε")
	res, _ := ConvertToCNF(g)
	if res.Report.Has(NullableExplosion) {
		t.Errorf("Expected no NullableExplosion by default")
	}
	full := res.Grammar.ProductionCount()
	res, _ = NewPipeline(WithNullableLimit(2)).Convert(g)
	if !res.Report.Has(NullableExplosion) {
		t.Errorf("Expected NullableExplosion with limit 2")
	}
	if res.Report.Err() == nil {
		t.Errorf("Expected NullableExplosion to be an anomaly")
	}
	checkCNFResult(t, res)
	if res.Grammar.ProductionCount() >= full {
		t.Errorf("Expected fewer productions with limit, is %d vs. %d", res.Grammar.ProductionCount(), full)
	}
}

func TestConvertNil(t *testing.T) {
	if _, err := ConvertToCNF(nil); err != ErrNilGrammar {
		t.Errorf("Expected ErrNilGrammar, is %v", err)
	}
}

func TestOrderVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	grammars := []*grammar.Grammar{
		makeGrammar(t, "S -> A B", "A -> a | ε", "B -> b"),
		textbook(t),
	}
	for _, g := range grammars {
		r1, _ := NewPipeline(WithOrder(ReachabilityFirst)).Convert(g)
		r2, _ := NewPipeline(WithOrder(ProductivityFirst)).Convert(g)
		if r1.Grammar.Fingerprint() != r2.Grammar.Fingerprint() {
			t.Errorf("Expected both orders to agree, have\n%v\nand\n%v", r1.Grammar, r2.Grammar)
		}
	}
}

func TestSnapshots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	res, _ := NewPipeline(KeepSnapshots(true), WithOrder(ProductivityFirst)).Convert(textbook(t))
	stages := []Stage{StageInput, StageEpsilon, StageUnit, StageProductivity, StageReachability,
		StageTerm, StageBin}
	if len(res.Snapshots) != len(stages) {
		t.Fatalf("Expected %d snapshots, have %d", len(stages), len(res.Snapshots))
	}
	for i, s := range res.Snapshots {
		if s.Stage != stages[i] {
			t.Errorf("Expected snapshot %d to be of stage %s, is %s", i, stages[i], s.Stage)
		}
	}
	if last := res.Snapshots[len(stages)-1]; last.Fingerprint != res.Grammar.Fingerprint() {
		t.Errorf("Expected last snapshot to be the result")
	}
	checkNoEpsilon(t, res.Snapshots[1].Grammar)
	checkNoUnits(t, res.Snapshots[2].Grammar)
	if res, _ := ConvertToCNF(textbook(t)); len(res.Snapshots) != 0 {
		t.Errorf("Expected no snapshots by default")
	}
}

func TestConcurrentConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocnf.cnf")
	defer teardown()
	//
	g := textbook(t)
	expected, _ := ConvertToCNF(g)
	p := NewPipeline()
	var wg sync.WaitGroup
	fps := make([]string, 16)
	for i := range fps {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, _ := p.Convert(g)
			fps[i] = res.Grammar.Fingerprint()
		}(i)
	}
	wg.Wait()
	for i, fp := range fps {
		if fp != expected.Grammar.Fingerprint() {
			t.Errorf("Expected conversion %d to match sequential conversion", i)
		}
	}
}
