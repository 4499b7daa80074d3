package program

// LineType defines the type of a listing line.
type LineType uint8

// line types.
const (
	UnknownLine LineType = 0
	CodeLine    LineType = 1 << iota
	HeaderData           // cartridge header bytes that are never executed
	Undefined            // opcode without table entry
	ForceBlank           // an empty line follows, used after ret
)

// IsType returns whether the line is of given type.
func (l *Line) IsType(typ LineType) bool {
	return l.Type&typ != 0
}

// SetType sets the type of the line.
func (l *Line) SetType(typ LineType) {
	l.Type |= typ
}

// ClearType unsets the type of the line.
func (l *Line) ClearType(typ LineType) {
	l.Type &^= typ
}
