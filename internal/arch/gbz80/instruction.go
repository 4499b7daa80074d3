package gbz80

import (
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// UndefinedText is the mnemonic text of opcodes without table entry.
const UndefinedText = "undefined opcode"

// Instruction is a decoded instruction at a ROM offset.
type Instruction struct {
	Offset  int     // absolute ROM offset of the first byte
	Opcode  *Opcode // nil for undefined opcodes
	Raw     []byte
	Operand uint16 // immediate value or resolved relative destination
	Text    string
}

// Len returns the encoded length of the instruction.
func (i Instruction) Len() int {
	return len(i.Raw)
}

// Undefined returns whether the opcode has no table entry.
func (i Instruction) Undefined() bool {
	return i.Opcode == nil
}

// Address returns the address of the instruction as seen by the CPU.
func (i Instruction) Address() uint16 {
	return rom.Relativize(i.Offset)
}

// Destination returns the statically known jump destination of a control
// flow instruction.
func (i Instruction) Destination() (uint16, bool) {
	if i.Opcode == nil || i.Opcode.Jump == NoJump || i.Opcode.Operand == NoOperand {
		return 0, false
	}
	return i.Operand, true
}

// Decode decodes the instruction at the absolute ROM offset. Undefined
// opcodes are returned as a one byte instruction without error. An error is
// only returned if the image ends inside the instruction, the returned
// instruction then contains the bytes that could be read.
func Decode(img *rom.Image, offset int) (Instruction, error) {
	ins := Instruction{Offset: offset}

	value, err := img.U8(offset)
	if err != nil {
		return ins, fmt.Errorf("reading opcode: %w", err)
	}
	ins.Raw = append(ins.Raw, value)
	pc := offset + 1

	opcode := Lookup(value)
	if value == ExtendedPrefix {
		value, err = img.U8(pc)
		if err != nil {
			ins.Text = UndefinedText
			return ins, fmt.Errorf("reading extended opcode: %w", err)
		}
		ins.Raw = append(ins.Raw, value)
		pc++
		opcode = LookupExtended(value)
	}

	if opcode == nil {
		ins.Text = UndefinedText
		return ins, nil
	}

	params, err := img.Slice(pc, opcode.Operand.Size())
	if err != nil {
		ins.Text = UndefinedText
		return ins, fmt.Errorf("reading operand of opcode %02x: %w", opcode.Value, err)
	}
	ins.Raw = append(ins.Raw, params...)
	ins.Opcode = opcode
	pc += len(params)

	switch opcode.Operand {
	case Immediate8:
		ins.Operand = uint16(params[0])
	case Relative8:
		ins.Operand = rom.Relativize(pc + int(int8(params[0])))
	case Immediate16:
		ins.Operand = uint16(params[0]) | uint16(params[1])<<8
	case NoOperand:
		ins.Text = opcode.Mnemonic
		return ins, nil
	}

	ins.Text = fmt.Sprintf(opcode.Mnemonic, ins.Operand)
	return ins, nil
}
