package notation

import (
	"io"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/gocnf/cnf"
	"github.com/npillmayer/gocnf/grammar"
	"github.com/pkg/errors"
	"golang.org/x/exp/ebnf"
)

// RepetitionPrefix is the prefix for non-terminals introduced for EBNF
// repetitions.
const RepetitionPrefix = "R"

// FromEBNF imports a grammar in EBNF, as used for the Go language
// specification:
//
//     Expr   = Term { ( "+" | "-" ) Term } .
//     Term   = Factor [ "*" Factor ] .
//     Factor = number | "(" Expr ")" .
//
// Capitalised productions become non-terminals. Tokens and lexical (lower case)
// productions become terminals. Alternatives and groups are expanded into
// separate right hand sides, an option [x] becomes x | ε, and a repetition {x}
// is replaced by a fresh non-terminal R with R → x R | ε. A range "a" … "c"
// expands to the single-character terminals a, b and c.
//
// If start is empty, the first non-lexical production of the source is the
// start symbol. References to undefined non-lexical productions are kept as
// undeclared symbols.
func FromEBNF(filename string, src io.Reader, start string) (*grammar.Grammar, error) {
	eg, err := ebnf.Parse(filename, src)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse EBNF grammar %q", filename)
	}
	imp := &importer{
		eg:      eg,
		b:       grammar.NewBuilder(filename),
		defined: make(map[string]bool),
	}
	var names []string
	for name := range eg {
		if !isLexical(name) {
			names = append(names, name)
			imp.defined[name] = true
		}
	}
	if len(names) == 0 {
		return nil, errors.Errorf("EBNF grammar %q has no non-lexical productions", filename)
	}
	sort.Slice(names, func(i, j int) bool { // source order
		return eg[names[i]].Name.Pos().Offset < eg[names[j]].Name.Pos().Offset
	})
	if start == "" {
		start = names[0]
	} else if !imp.defined[start] {
		return nil, errors.Errorf("EBNF grammar %q has no production for start symbol %q", filename, start)
	}
	imp.alloc = cnf.NewSymbolAllocator(imp.reserved()...)
	imp.b.Start(start)
	imp.b.NonTerminals(names...)
	for _, name := range names {
		for _, rhs := range imp.expand(eg[name].Expr) {
			imp.b.Add(name, rhs)
		}
	}
	g, err := imp.b.Grammar()
	if err != nil {
		return nil, errors.Wrapf(err, "inconsistent EBNF grammar %q", filename)
	}
	tracer().Infof("imported EBNF grammar %q: %d productions, %d repetitions",
		filename, g.ProductionCount(), len(imp.alloc.Generated()))
	return g, nil
}

type importer struct {
	eg      ebnf.Grammar
	b       *grammar.Builder
	alloc   *cnf.SymbolAllocator
	defined map[string]bool // non-lexical productions
}

// isLexical checks if a production name denotes a lexical production.
func isLexical(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return !unicode.IsUpper(ch)
}

// reserved collects every production name and token of the EBNF grammar.
func (imp *importer) reserved() []string {
	var names []string
	var walk func(ebnf.Expression)
	walk = func(x ebnf.Expression) {
		switch x := x.(type) {
		case ebnf.Alternative:
			for _, y := range x {
				walk(y)
			}
		case ebnf.Sequence:
			for _, y := range x {
				walk(y)
			}
		case *ebnf.Name:
			names = append(names, x.String)
		case *ebnf.Token:
			names = append(names, x.String)
		case *ebnf.Range:
			names = append(names, x.Begin.String, x.End.String)
		case *ebnf.Group:
			walk(x.Body)
		case *ebnf.Option:
			walk(x.Body)
		case *ebnf.Repetition:
			walk(x.Body)
		}
	}
	for name, prod := range imp.eg {
		names = append(names, name)
		walk(prod.Expr)
	}
	return names
}

// expand returns the alternatives an expression stands for.
func (imp *importer) expand(x ebnf.Expression) []grammar.RHS {
	switch x := x.(type) {
	case nil:
		return []grammar.RHS{{}}
	case ebnf.Alternative:
		var alts []grammar.RHS
		for _, y := range x {
			alts = append(alts, imp.expand(y)...)
		}
		return alts
	case ebnf.Sequence:
		alts := []grammar.RHS{{}}
		for _, y := range x {
			alts = product(alts, imp.expand(y))
		}
		return alts
	case *ebnf.Name:
		if isLexical(x.String) {
			imp.b.Terminals(x.String)
		}
		return []grammar.RHS{{x.String}}
	case *ebnf.Token:
		if x.String == "" {
			return []grammar.RHS{{}}
		}
		imp.b.Terminals(x.String)
		return []grammar.RHS{{x.String}}
	case *ebnf.Range:
		var alts []grammar.RHS
		lo, _ := utf8.DecodeRuneInString(x.Begin.String)
		hi, _ := utf8.DecodeRuneInString(x.End.String)
		for r := lo; r <= hi; r++ {
			imp.b.Terminals(string(r))
			alts = append(alts, grammar.RHS{string(r)})
		}
		return alts
	case *ebnf.Group:
		return imp.expand(x.Body)
	case *ebnf.Option:
		return append(imp.expand(x.Body), grammar.RHS{})
	case *ebnf.Repetition:
		R := imp.alloc.Fresh(RepetitionPrefix)
		imp.b.NonTerminals(R)
		for _, rhs := range imp.expand(x.Body) {
			imp.b.Add(R, append(rhs, R))
		}
		imp.b.Add(R, grammar.RHS{})
		return []grammar.RHS{{R}}
	}
	tracer().Errorf("ignoring EBNF expression of type %T", x)
	return []grammar.RHS{{}}
}

// product returns the concatenation of every body of left with every body
// of right.
func product(left, right []grammar.RHS) []grammar.RHS {
	alts := make([]grammar.RHS, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			rhs := make(grammar.RHS, 0, len(l)+len(r))
			rhs = append(append(rhs, l...), r...)
			alts = append(alts, rhs)
		}
	}
	return alts
}
