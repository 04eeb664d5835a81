/*
Package sparse implements a simple type for sparse integer matrices.
It is used for transition accelerators of grammar DFAs, where rows are DFA
states and columns are label ids. Every entry in the matrix is a pair (int32,int32).

This implementation uses the COO algorithm (a.k.a. triplet-encoding), with
triplets kept in row-major order so lookups may use binary search.

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
)

// PairMatrix is a sparse matrix of int32 pairs. Construct with
//
//     M := NewPairMatrix(10, 300, -1)  // last parameter is M's null-value
//
// Now
//
//     ok := M.SetOnce(2, 3, 4, 256)    // true, pair stored
//     a, b := M.Pair(2, 3)             // returns (4, 256)
//     ok = M.SetOnce(2, 3, 5, 0)       // false, (2,3) is already occupied
//     cnt := M.ValueCount()            // returns 1 (one position set)
//     a, b = M.Pair(9, 9)              // returns (-1, -1), i.e. the null-value
//
// Values cannot be deleted or overwritten. A PairMatrix is not safe for concurrent writes, but
// concurrent reads of a completely filled matrix are fine.
type PairMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	a, b     int32
}

// NewPairMatrix creates a new matrix, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewPairMatrix(m, n int, nullValue int32) *PairMatrix {
	return &PairMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *PairMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *PairMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *PairMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of occupied positions in the matrix.
func (m *PairMatrix) ValueCount() int {
	return len(m.values)
}

// Pair returns the pair stored at position (i,j), or (NullValue, NullValue).
func (m *PairMatrix) Pair(i, j int) (int32, int32) {
	if k, found := m.find(i, j); found {
		return m.values[k].a, m.values[k].b
	}
	return m.nullval, m.nullval
}

// SetOnce stores a pair at position (i,j), if the position is not yet occupied.
// It returns false if an entry is already present, leaving it untouched.
func (m *PairMatrix) SetOnce(i, j int, a, b int32) bool {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse matrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	at, found := m.find(i, j)
	if found {
		return false
	}
	tnew := triplet{row: i, col: j, a: a, b: b}
	// the following 3 lines have to work for at being the right edge of values or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return true
}

// Row calls f for every occupied column of row i, in column order.
func (m *PairMatrix) Row(i int, f func(j int, a, b int32)) {
	k := sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, 0)
	})
	for ; k < len(m.values) && m.values[k].row == i; k++ {
		f(m.values[k].col, m.values[k].a, m.values[k].b)
	}
}

// find returns the index of (i,j) or the insertion point for it.
func (m *PairMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=[%d,%d]", t.row, t.col, t.a, t.b)
}
