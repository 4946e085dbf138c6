package grammar

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Epsilon is the printable representation of an empty right hand side.
const Epsilon = "ε"

// --- Right hand sides ------------------------------------------------------

// RHS is the right hand side of a production. An empty RHS denotes ε.
type RHS []string

// IsEpsilon is true for the empty right hand side.
func (rhs RHS) IsEpsilon() bool {
	return len(rhs) == 0
}

// Copy returns a copy of rhs which does not share storage with rhs.
func (rhs RHS) Copy() RHS {
	if rhs == nil {
		return RHS{}
	}
	c := make(RHS, len(rhs))
	copy(c, rhs)
	return c
}

// Equals compares two right hand sides symbol by symbol.
func (rhs RHS) Equals(other RHS) bool {
	if len(rhs) != len(other) {
		return false
	}
	for i, sym := range rhs {
		if other[i] != sym {
			return false
		}
	}
	return true
}

// Contains is true if sym occurs somewhere in rhs.
func (rhs RHS) Contains(sym string) bool {
	for _, s := range rhs {
		if s == sym {
			return true
		}
	}
	return false
}

// key is a map key for de-duplication. Symbols never contain NUL.
func (rhs RHS) key() string {
	return strings.Join(rhs, "\x00")
}

func (rhs RHS) String() string {
	if rhs.IsEpsilon() {
		return Epsilon
	}
	return strings.Join(rhs, " ")
}

// --- Symbol sets -----------------------------------------------------------

// SymbolSet is a set of grammar symbols. Iteration order is lexicographic, which
// makes every algorithm built on top of it deterministic.
//
// The zero value is not usable, create sets with NewSymbolSet.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set, optionally containing initial symbols.
func NewSymbolSet(symbols ...string) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWithStringComparator()}
	S.Add(symbols...)
	return S
}

// Add inserts symbols. Returns true if at least one of them has not been
// present before.
func (S *SymbolSet) Add(symbols ...string) bool {
	added := false
	for _, sym := range symbols {
		if !S.set.Contains(sym) {
			S.set.Add(sym)
			added = true
		}
	}
	return added
}

// Remove deletes symbols from S.
func (S *SymbolSet) Remove(symbols ...string) {
	for _, sym := range symbols {
		S.set.Remove(sym)
	}
}

// Contains checks for membership of sym.
func (S *SymbolSet) Contains(sym string) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(sym)
}

// ContainsAll checks if every symbol of rhs is in S. This is trivially true for ε.
func (S *SymbolSet) ContainsAll(rhs RHS) bool {
	for _, sym := range rhs {
		if !S.Contains(sym) {
			return false
		}
	}
	return true
}

// Size returns the number of symbols in S.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is true for a set without symbols.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the symbols of S in sorted order.
func (S *SymbolSet) Values() []string {
	if S == nil {
		return nil
	}
	vals := make([]string, 0, S.set.Size())
	for _, v := range S.set.Values() {
		vals = append(vals, v.(string))
	}
	return vals
}

// Each calls f for every symbol, in sorted order.
func (S *SymbolSet) Each(f func(sym string)) {
	for _, sym := range S.Values() {
		f(sym)
	}
}

// Copy returns a new set with the same symbols.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Values()...)
}

// Union returns a new set containing the symbols of S and T.
func (S *SymbolSet) Union(T *SymbolSet) *SymbolSet {
	U := S.Copy()
	U.Add(T.Values()...)
	return U
}

// Intersection returns a new set containing the symbols present in both S and T.
func (S *SymbolSet) Intersection(T *SymbolSet) *SymbolSet {
	I := NewSymbolSet()
	S.Each(func(sym string) {
		if T.Contains(sym) {
			I.Add(sym)
		}
	})
	return I
}

// Equals compares two sets.
func (S *SymbolSet) Equals(T *SymbolSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	for _, sym := range S.Values() {
		if !T.Contains(sym) {
			return false
		}
	}
	return true
}

func (S *SymbolSet) String() string {
	return "{" + strings.Join(S.Values(), ", ") + "}"
}
