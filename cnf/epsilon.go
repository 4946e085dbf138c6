package cnf

import (
	"github.com/npillmayer/gocnf/grammar"
)

// nullableOccurrences returns the positions of nullable symbols in rhs.
func nullableOccurrences(rhs grammar.RHS, nullable *grammar.SymbolSet) []int {
	var occ []int
	for i, sym := range rhs {
		if nullable.Contains(sym) {
			occ = append(occ, i)
		}
	}
	return occ
}

// DropSubsets enumerates every way to drop nullable symbols from rhs.
// With k nullable occurrences in rhs, the result has 2^k entries. Entry m
// corresponds to bitmask m, where bit i set means the i-th nullable occurrence
// is dropped. Entry 0 therefore is rhs itself, and the last entry has all
// nullable occurrences removed (it may be empty). Results are not deduplicated.
func DropSubsets(rhs grammar.RHS, nullable *grammar.SymbolSet) []grammar.RHS {
	return dropSubsets(rhs, nullableOccurrences(rhs, nullable))
}

func dropSubsets(rhs grammar.RHS, occ []int) []grammar.RHS {
	k := len(occ)
	results := make([]grammar.RHS, 0, 1<<uint(k))
	for mask := 0; mask < 1<<uint(k); mask++ {
		variant := make(grammar.RHS, 0, len(rhs))
		next := 0 // index into occ
		for i, sym := range rhs {
			if next < k && occ[next] == i {
				drop := mask&(1<<uint(next)) != 0
				next++
				if drop {
					continue
				}
			}
			variant = append(variant, sym)
		}
		results = append(results, variant)
	}
	return results
}

// EliminateEpsilon removes all ε-productions from g.
//
// Every body is replaced by all its variants with nullable symbols dropped
// (see DropSubsets). Empty variants are discarded, ε is never re-added.
// Non-terminals left without bodies are dropped from the productions, but
// stay declared. If the start symbol is nullable, NullableStartNotReinjected
// is reported.
func EliminateEpsilon(g *grammar.Grammar, rep *Report) *grammar.Grammar {
	return EliminateEpsilonLimited(g, rep, 0)
}

// EliminateEpsilonLimited is EliminateEpsilon with a bound on the number of
// nullable occurrences per body. Bodies with more than limit occurrences are
// kept unexpanded and reported as NullableExplosion. The resulting grammar
// then may lose words derived by dropping those occurrences. A limit ≤ 0
// expands every body.
func EliminateEpsilonLimited(g *grammar.Grammar, rep *Report, limit int) *grammar.Grammar {
	nullable := NullableSet(g)
	if nullable.Contains(g.Start()) {
		rep.add(Condition{Kind: NullableStartNotReinjected, Stage: StageEpsilon, Symbol: g.Start()})
	}
	b := grammar.Derive(g, g.Name())
	g.EachProduction(func(A string, rhs grammar.RHS) {
		if rhs.IsEpsilon() {
			return
		}
		occ := nullableOccurrences(rhs, nullable)
		if limit > 0 && len(occ) > limit {
			rep.add(Condition{Kind: NullableExplosion, Stage: StageEpsilon, Symbol: A, Count: len(occ)})
			b.Add(A, rhs)
			return
		}
		for _, variant := range dropSubsets(rhs, occ) {
			if len(variant) > 0 {
				b.Add(A, variant)
			}
		}
	})
	return build(b)
}
