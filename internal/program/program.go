// Package program represents the disassembly listing of a ROM bank.
package program

import "github.com/retroenv/gbextract/internal/arch/gbz80"

// Line defines the content of one listing line that can represent an
// instruction or cartridge header data.
type Line struct {
	Offset  int    // absolute ROM offset of the first byte
	Address uint16 // address as seen by the CPU
	Raw     []byte // all bytes that are part of the line
	Code    string // mnemonic or data directive

	Type LineType
}

// JumpTarget is a statically known control flow destination.
type JumpTarget struct {
	From uint16 // address of the jump instruction
	To   uint16
	Kind gbz80.JumpKind
}

// Listing is the result of disassembling a single ROM bank.
type Listing struct {
	Bank    int
	Lines   []*Line
	Targets []JumpTarget
}

// New creates a new listing for the given bank.
func New(bank int) *Listing {
	return &Listing{
		Bank: bank,
	}
}

// Size returns the number of ROM bytes covered by the listing.
func (l *Listing) Size() int {
	var size int
	for _, line := range l.Lines {
		size += len(line.Raw)
	}
	return size
}
