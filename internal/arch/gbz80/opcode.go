package gbz80

// ExtendedPrefix is the opcode that selects the extended instruction table.
const ExtendedPrefix = 0xCB

// OperandType defines the operand that follows an opcode.
type OperandType uint8

// operand types.
const (
	NoOperand   OperandType = iota
	Immediate8              // unsigned byte
	Relative8               // signed displacement
	Immediate16             // little-endian word
)

// Size returns the number of operand bytes.
func (t OperandType) Size() int {
	switch t {
	case Immediate8, Relative8:
		return 1
	case Immediate16:
		return 2
	default:
		return 0
	}
}

// JumpKind classifies control flow instructions.
type JumpKind uint8

// jump kinds.
const (
	NoJump JumpKind = iota
	RelativeJump
	AbsoluteJump
	Call
)

func (k JumpKind) String() string {
	switch k {
	case RelativeJump:
		return "jr"
	case AbsoluteJump:
		return "jp"
	case Call:
		return "call"
	default:
		return ""
	}
}

// Opcode describes a single opcode table entry.
type Opcode struct {
	Value    byte
	Extended bool   // opcode follows the 0xCB prefix
	Mnemonic string // format template receiving the operand
	Operand  OperandType
	Jump     JumpKind
}

// Size returns the full instruction size including prefix and operand.
func (o *Opcode) Size() int {
	size := 1 + o.Operand.Size()
	if o.Extended {
		size++
	}
	return size
}

// Lookup returns the base table entry for the opcode, nil is returned for
// undefined opcodes and for the extended prefix.
func Lookup(value byte) *Opcode {
	return baseOpcodes[value]
}

// LookupExtended returns the entry of the extended table for the opcode that
// follows the 0xCB prefix.
func LookupExtended(value byte) *Opcode {
	return extendedOpcodes[value]
}
