package sparse

import (
	"testing"
)

func TestRelationAdd(t *testing.T) {
	R := NewRelation(5)
	if !R.Add(2, 3) {
		t.Errorf("Expected (2,3) to be new")
	}
	if R.Add(2, 3) {
		t.Errorf("Expected (2,3) to be present")
	}
	R.Add(4, 0)
	R.Add(0, 4)
	R.Add(2, 1)
	if R.Size() != 4 {
		t.Errorf("Expected size 4, is %d", R.Size())
	}
	if R.String() != "{(0,4) (2,1) (2,3) (4,0)}" {
		t.Errorf("Expected pairs in row-major order, are %s", R)
	}
	if !R.Has(4, 0) || R.Has(0, 0) {
		t.Errorf("Expected (4,0) in R and (0,0) not in R")
	}
	if R.Add(5, 0) {
		t.Errorf("Expected index out of range to be ignored")
	}
}

func TestRelationRow(t *testing.T) {
	R := NewRelation(4)
	R.Add(1, 3)
	R.Add(1, 0)
	R.Add(2, 2)
	row := R.Row(1)
	if len(row) != 2 || row[0] != 0 || row[1] != 3 {
		t.Errorf("Expected row 1 = [0 3], is %v", row)
	}
	if len(R.Row(0)) != 0 {
		t.Errorf("Expected row 0 to be empty, is %v", R.Row(0))
	}
}

func TestRelationClose(t *testing.T) {
	R := Identity(4) // 0 -> 1 -> 2 -> 3
	R.Add(0, 1)
	R.Add(1, 2)
	R.Add(2, 3)
	R.Close()
	if !R.Has(0, 3) || !R.Has(1, 3) || !R.Has(0, 2) {
		t.Errorf("Expected transitive pairs in closure, have %s", R)
	}
	if R.Has(3, 0) {
		t.Errorf("Expected (3,0) not in closure")
	}
	if R.Size() != 10 {
		t.Errorf("Expected 10 pairs in closure, have %d", R.Size())
	}
}
