// Package symbols provides jump reference tracking for disassembly listings.
package symbols

import (
	"slices"

	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/retrogolib/set"
)

// Table groups jump targets by their destination address.
type Table struct {
	refs  map[uint16][]program.JumpTarget
	order []uint16 // destinations in first seen order
	used  set.Set[uint16]
}

// New creates a new symbol table.
func New() *Table {
	return &Table{
		refs: make(map[uint16][]program.JumpTarget),
		used: set.New[uint16](),
	}
}

// NewFromTargets creates a table containing the given targets.
func NewFromTargets(targets []program.JumpTarget) *Table {
	t := New()
	for _, target := range targets {
		t.Add(target)
	}
	return t
}

// Add records a jump target.
func (t *Table) Add(target program.JumpTarget) {
	refs, ok := t.refs[target.To]
	if !ok {
		t.order = append(t.order, target.To)
	}
	t.refs[target.To] = append(refs, target)
}

// At returns all targets jumping to the address, in recording order.
func (t *Table) At(address uint16) []program.JumpTarget {
	return t.refs[address]
}

// Has returns whether any target jumps to the address.
func (t *Table) Has(address uint16) bool {
	_, ok := t.refs[address]
	return ok
}

// Len returns the number of distinct destinations.
func (t *Table) Len() int {
	return len(t.refs)
}

// Destinations returns all destinations sorted by address.
func (t *Table) Destinations() []uint16 {
	dests := slices.Clone(t.order)
	slices.Sort(dests)
	return dests
}

// MarkUsed marks a destination as matched by a listing line.
func (t *Table) MarkUsed(address uint16) {
	t.used.Add(address)
}

// IsUsed returns whether the destination was matched by a listing line.
func (t *Table) IsUsed(address uint16) bool {
	return t.used.Contains(address)
}

// Unused returns the destinations that were not matched by any line, these
// point into other banks or into the middle of an instruction.
func (t *Table) Unused() []uint16 {
	var unused []uint16
	for _, dest := range t.order {
		if !t.used.Contains(dest) {
			unused = append(unused, dest)
		}
	}
	slices.Sort(unused)
	return unused
}
