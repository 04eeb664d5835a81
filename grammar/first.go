package grammar

import (
	"golang.org/x/tools/container/intsets"
)

// FirstSet is a set of label ids which may start a derivation of a non-terminal.
// It is filled once, when tables are built, and is read-only afterwards.
type FirstSet struct {
	labels intsets.Sparse
}

// NewFirstSet creates a first set from label ids.
func NewFirstSet(labels ...int) *FirstSet {
	fs := &FirstSet{}
	fs.labels.Clear() // initialize, so that later reads never write
	for _, l := range labels {
		fs.labels.Insert(l)
	}
	return fs
}

// Has is a predicate: is label a member of the first set?
func (fs *FirstSet) Has(label int) bool {
	if fs == nil {
		return false
	}
	return fs.labels.Has(label)
}

// Len returns the number of labels in the set.
func (fs *FirstSet) Len() int {
	if fs == nil {
		return 0
	}
	return fs.labels.Len()
}

// Labels returns the members of the set in increasing order.
func (fs *FirstSet) Labels() []int {
	if fs == nil {
		return nil
	}
	return fs.labels.AppendTo(nil)
}

func (fs *FirstSet) String() string {
	if fs == nil {
		return "{}"
	}
	return fs.labels.String()
}
