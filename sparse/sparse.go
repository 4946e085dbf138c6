/*
Package sparse implements a simple type for sparse boolean relations over
integer indices. It is mainly used for closures of relations between grammar
symbols, such as the unit-pair relation of a grammar.

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
pairs kept in row-major order.

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// Relation is a type for a sparse binary relation on {0…n-1}. Construct with
//
//     R := NewRelation(10)
//
// Now
//
//     R.Add(2, 3)          // returns true, (2,3) is new
//     R.Add(2, 3)          // returns false
//     R.Has(2, 3)          // returns true
//     cnt := R.Size()      // returns 1
//     R.Row(2)             // returns [3]
//
// Pairs cannot be deleted.
type Relation struct {
	pairs []pair
	n     int
}

// Pairs to store
type pair struct {
	row, col int
}

// NewRelation creates a new relation on n elements.
func NewRelation(n int) *Relation {
	return &Relation{
		pairs: []pair{},
		n:     n,
	}
}

// Identity creates a new relation on n elements containing (i,i) for all i.
func Identity(n int) *Relation {
	R := NewRelation(n)
	for i := 0; i < n; i++ {
		R.pairs = append(R.pairs, pair{i, i})
	}
	return R
}

// N returns the number of elements the relation is defined on.
func (R *Relation) N() int {
	return R.n
}

// Size returns the number of pairs in the relation.
func (R *Relation) Size() int {
	return len(R.pairs)
}

// index of the first pair not stored left of (i,j)
func (R *Relation) search(i, j int) int {
	return sort.Search(len(R.pairs), func(k int) bool {
		return !R.pairs[k].storedLeftOf(i, j)
	})
}

// Has checks if (i,j) is in the relation.
func (R *Relation) Has(i, j int) bool {
	at := R.search(i, j)
	return at < len(R.pairs) && R.pairs[at].storedAt(i, j)
}

// Add puts (i,j) into the relation. Returns true if the pair has not been
// present before. Indices out of range are ignored.
func (R *Relation) Add(i, j int) bool {
	if i < 0 || j < 0 || i >= R.n || j >= R.n {
		return false
	}
	at := R.search(i, j)
	if at < len(R.pairs) && R.pairs[at].storedAt(i, j) {
		return false
	}
	pnew := pair{row: i, col: j}
	// the following 3 lines have to work for at being the right edge or not
	R.pairs = append(R.pairs, pnew)    // make room
	copy(R.pairs[at+1:], R.pairs[at:]) // copy remainder pairs one index to right
	R.pairs[at] = pnew                 // if not append-case: insert new pair
	return true
}

// Row returns all j with (i,j) in the relation, in increasing order.
func (R *Relation) Row(i int) []int {
	var row []int
	for at := R.search(i, 0); at < len(R.pairs) && R.pairs[at].row == i; at++ {
		row = append(row, R.pairs[at].col)
	}
	return row
}

// Close extends R to its transitive closure by repeated relaxation: whenever
// (i,k) and (k,j) are in R, (i,j) is added. Passes are repeated until a pass
// adds nothing. Returns the number of passes.
func (R *Relation) Close() int {
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for i := 0; i < R.n; i++ {
			for _, k := range R.Row(i) {
				for _, j := range R.Row(k) {
					if R.Add(i, j) {
						changed = true
					}
				}
			}
		}
	}
	return passes
}

func (R *Relation) String() string {
	var b strings.Builder
	b.WriteString("{")
	for k, p := range R.pairs {
		if k > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("(%d,%d)", p.row, p.col))
	}
	b.WriteString("}")
	return b.String()
}

func (p pair) storedLeftOf(i, j int) bool {
	return p.row < i || p.row == i && p.col < j
}

func (p pair) storedAt(i, j int) bool {
	return (p.row == i && p.col == j)
}
