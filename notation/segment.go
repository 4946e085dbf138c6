package notation

import (
	"unicode/utf8"

	"github.com/npillmayer/gocnf/grammar"
)

// segmenter splits words of a right hand side into known symbols.
// Longer symbols are preferred, with backtracking if a split fails.
//
// If runes is set, characters not matching any known symbol are split off as
// single-character symbols, but only if the word contains at least one known
// symbol. Otherwise a word which cannot be split is kept as a whole.
type segmenter struct {
	known *grammar.SymbolSet
	runes bool
}

func newSegmenter(known *grammar.SymbolSet, runes bool) segmenter {
	return segmenter{known: known, runes: runes}
}

func (seg segmenter) split(w string) []string {
	if seg.known.Contains(w) {
		return []string{w}
	}
	if parts := seg.splitFrom(w, 0, false, make(map[int][]string)); parts != nil {
		tracer().Debugf("split %q into %v", w, parts)
		return parts
	}
	if seg.runes {
		parts := seg.splitFrom(w, 0, true, make(map[int][]string))
		for _, part := range parts {
			if seg.known.Contains(part) {
				tracer().Debugf("split %q into %v", w, parts)
				return parts
			}
		}
	}
	return []string{w}
}

// splitFrom splits w[i:]. It returns nil if w[i:] cannot be split. Failed
// positions are memoized with an empty, non-nil slice.
func (seg segmenter) splitFrom(w string, i int, runes bool, memo map[int][]string) []string {
	if i == len(w) {
		return []string{}
	}
	if parts, ok := memo[i]; ok {
		if len(parts) == 0 {
			return nil
		}
		return parts
	}
	for j := len(w); j > i; j-- {
		if !seg.known.Contains(w[i:j]) {
			continue
		}
		if rest := seg.splitFrom(w, j, runes, memo); rest != nil {
			parts := append([]string{w[i:j]}, rest...)
			memo[i] = parts
			return parts
		}
	}
	if runes {
		_, size := utf8.DecodeRuneInString(w[i:])
		if rest := seg.splitFrom(w, i+size, runes, memo); rest != nil {
			parts := append([]string{w[i : i+size]}, rest...)
			memo[i] = parts
			return parts
		}
	}
	memo[i] = []string{}
	return nil
}
