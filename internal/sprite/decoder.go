// Package sprite implements the decompression of Pokémon Red/Blue sprites.
//
// A compressed sprite is a header byte with the dimensions followed by a
// bit stream that encodes two bit planes. The planes are written as runs of
// 2 bit codes into a work buffer, column by column, and are finally
// reconstructed by one of three packing modes that combine delta decoding
// and XOR merging.
package sprite

import (
	"errors"
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// sizes of the decoder work buffer.
const (
	PlaneSize  = 0x188
	BufferSize = 2 * PlaneSize

	maxRotation      = 3
	maxRunLengthBits = 15 // larger prefixes overflow the 16 bit run length
)

// errors returned by the decoder.
var (
	ErrUnexpectedEOF = errors.New("unexpected end of sprite data")
	ErrMalformed     = errors.New("malformed sprite data")
)

// StepResult is the outcome of advancing the decoder by one cell.
type StepResult uint8

// step results.
const (
	NotYetReady StepResult = iota // more cells have to be written
	Done                          // both planes are complete and reconstructed
	Restart                       // first plane is complete, decoding restarts for the second one
)

func (r StepResult) String() string {
	switch r {
	case NotYetReady:
		return "not yet ready"
	case Done:
		return "done"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("StepResult(%d)", uint8(r))
	}
}

// delta decoding tables, indexed by the encoded nibble divided by two.
// Even nibbles use the high and odd nibbles the low half of the entry.
var (
	deltaTable0        = [8]byte{0x01, 0x32, 0x76, 0x45, 0xFE, 0xCD, 0x89, 0xBA}
	deltaTable1        = [8]byte{0xFE, 0xCD, 0x89, 0xBA, 0x01, 0x32, 0x76, 0x45}
	deltaTableFlipped0 = [8]byte{0x08, 0xC4, 0xE6, 0x2A, 0xF7, 0x3B, 0x19, 0xD5}
	deltaTableFlipped1 = [8]byte{0xF7, 0x3B, 0x19, 0xD5, 0x08, 0xC4, 0xE6, 0x2A}

	nibbleReverse = [16]byte{
		0x0, 0x8, 0x4, 0xC, 0x2, 0xA, 0x6, 0xE,
		0x1, 0x9, 0x5, 0xD, 0x3, 0xB, 0x7, 0xF,
	}
)

// DecoderState holds the complete state of a single sprite decompression.
// It is created for every decode and must not be shared.
type DecoderState struct {
	bits *BitReader
	buf  [BufferSize]byte

	p1 uint16 // cell that is written next
	p2 uint16 // first cell of the current column

	tileX  uint8 // column counter in pixels
	tileY  uint8 // row counter
	width  uint8 // in pixels
	height uint8 // in pixels, equals the bytes per column

	rotation    uint8 // selects the 2 bit slot of the cell byte
	orientation uint8 // bit 0 selects the plane written first, bit 1 marks the second pass
	packing     uint8
	flipped     bool
}

// NewDecoder returns a decoder for the stream at the absolute ROM offset.
func NewDecoder(img *rom.Image, offset int) *DecoderState {
	return &DecoderState{
		bits:     NewBitReader(img, offset),
		rotation: maxRotation,
	}
}

// SetFlipped selects the mirrored delta tables and the nibble reversal that
// produce a horizontally flipped sprite.
func (d *DecoderState) SetFlipped(flipped bool) {
	d.flipped = flipped
}

// Buffer returns the work buffer. After a successful Run the first plane is
// stored at offset 0 and the second one at PlaneSize.
func (d *DecoderState) Buffer() *[BufferSize]byte {
	return &d.buf
}

// Packing returns the packing mode that was read from the stream.
func (d *DecoderState) Packing() uint8 {
	return d.packing
}

// Dimensions returns the sprite size in tiles as stored in the header.
func (d *DecoderState) Dimensions() (width, height int) {
	return int(d.width / 8), int(d.height / 8)
}

// Decode decompresses the sprite at the absolute ROM offset and returns the
// work buffer containing both planes.
func Decode(img *rom.Image, offset int) (*[BufferSize]byte, error) {
	d := NewDecoder(img, offset)
	if err := d.Run(); err != nil {
		return nil, err
	}
	return d.Buffer(), nil
}

// Run decompresses the sprite.
func (d *DecoderState) Run() error {
	header, err := d.bits.Byte()
	if err != nil {
		return fmt.Errorf("reading sprite header: %w", err)
	}
	d.width = (header >> 4) * 8
	d.height = (header & 0x0f) * 8
	if d.width == 0 || d.height == 0 {
		return fmt.Errorf("%w: invalid dimensions 0x%02x", ErrMalformed, header)
	}

	d.orientation, err = d.bits.Bit()
	if err != nil {
		return err
	}

	for {
		result, err := d.pass()
		if err != nil {
			return err
		}
		if result == Done {
			return nil
		}
	}
}

// pass decodes packets from the setup state until a plane is complete.
func (d *DecoderState) pass() (StepResult, error) {
	if err := d.setup(); err != nil {
		return NotYetReady, err
	}

	bit, err := d.bits.Bit()
	if err != nil {
		return NotYetReady, err
	}
	runLength := bit == 0

	for {
		var result StepResult
		if runLength {
			result, err = d.runLengthPacket()
		} else {
			result, err = d.directPacket()
		}
		if err != nil || result != NotYetReady {
			return result, err
		}
		runLength = !runLength
	}
}

func (d *DecoderState) setup() error {
	start := uint16(0)
	if d.orientation&1 != 0 {
		start = PlaneSize
	}
	d.p1, d.p2 = start, start

	if d.orientation&2 == 0 {
		return nil
	}

	b, err := d.bits.Bit()
	if err != nil {
		return err
	}
	if b != 0 {
		b, err = d.bits.Bit()
		if err != nil {
			return err
		}
		b++
	}
	d.packing = b
	return nil
}

// directPacket writes non zero codes until a zero code is read.
func (d *DecoderState) directPacket() (StepResult, error) {
	for {
		code, err := d.bits.Bits(2)
		if err != nil {
			return NotYetReady, err
		}
		if code == 0 {
			return NotYetReady, nil
		}

		d.writeCode(byte(code))
		if result := d.Advance(); result != NotYetReady {
			return result, nil
		}
	}
}

// runLengthPacket skips a run of zero codes.
func (d *DecoderState) runLengthPacket() (StepResult, error) {
	var prefix int
	for {
		bit, err := d.bits.Bit()
		if err != nil {
			return NotYetReady, err
		}
		if bit == 0 {
			break
		}
		prefix++
		if prefix > maxRunLengthBits {
			return NotYetReady, fmt.Errorf("%w: run length prefix exceeds %d bits at offset 0x%06x",
				ErrMalformed, maxRunLengthBits, d.bits.Offset())
		}
	}

	value, err := d.bits.Bits(prefix + 1)
	if err != nil {
		return NotYetReady, err
	}
	base := uint16(1)<<(prefix+1) - 1
	count := int(value + base)
	if count == 0 {
		count = 0x10000 // 16 bit counter wrapped around
	}

	for range count {
		d.writeCode(0)
		if result := d.Advance(); result != NotYetReady {
			return result, nil
		}
	}
	return NotYetReady, nil
}

// transform moves a 2 bit code to the slot of the cell byte that is
// selected by the rotation counter.
func transform(code, rotation uint8) byte {
	switch rotation {
	case 1:
		return code << 2
	case 2:
		return code<<4 | code>>4
	case 3:
		return code<<6 | code>>2
	default:
		return code
	}
}

func (d *DecoderState) writeCode(code byte) {
	d.write(d.p1, d.read(d.p1)|transform(code, d.rotation))
}

func (d *DecoderState) read(addr uint16) byte {
	if addr < BufferSize {
		return d.buf[addr]
	}
	return 0
}

func (d *DecoderState) write(addr uint16, value byte) {
	if addr < BufferSize {
		d.buf[addr] = value
	}
}

// Advance moves the write position to the next cell. Cells are filled top
// to bottom inside a column of a plane, four times per column with a
// different rotation, then column by column.
func (d *DecoderState) Advance() StepResult {
	if d.tileY+1 != d.height {
		d.tileY++
		d.p1++
		return NotYetReady
	}

	d.tileY = 0
	if d.rotation != 0 {
		d.rotation--
		d.p1 = d.p2
		return NotYetReady
	}

	d.rotation = maxRotation
	d.tileX += 8
	if d.tileX != d.width {
		d.p1++
		d.p2 = d.p1
		return NotYetReady
	}

	d.tileX = 0
	if d.orientation&2 == 0 {
		d.orientation = (d.orientation ^ 1) | 2
		return Restart
	}

	d.reconstruct()
	return Done
}

// reconstruct combines the two written planes depending on the packing mode.
func (d *DecoderState) reconstruct() {
	switch d.packing {
	case 2:
		flipped := d.flipped
		d.resetPointers()
		d.flipped = false
		d.deltaDecode(d.p2)
		d.resetPointers()
		d.flipped = flipped
		d.xorPlanes()

	case 1:
		d.xorPlanes()

	default:
		d.deltaDecode(0)
		d.deltaDecode(PlaneSize)
	}
}

// resetPointers points p1 to the plane written first and p2 to the other.
func (d *DecoderState) resetPointers() {
	if d.orientation&1 != 0 {
		d.p1, d.p2 = 0, PlaneSize
	} else {
		d.p1, d.p2 = PlaneSize, 0
	}
}

// deltaDecode decodes the plane at p in place. Every row of the sprite is a
// chain of nibbles that encode the difference to the previous nibble.
func (d *DecoderState) deltaDecode(p uint16) {
	d.tileX, d.tileY = 0, 0
	d.p1, d.p2 = p, p

	var previous byte
	for {
		z := d.read(d.p1)
		high := d.decodeNibble(z>>4, previous)
		low := d.decodeNibble(z&0x0f, high)
		d.write(d.p1, high<<4|low)
		previous = low

		d.p1 += uint16(d.height)
		d.tileX += 8
		if d.tileX != d.width {
			continue
		}

		previous = 0
		d.tileX = 0
		d.tileY++
		if d.tileY == d.height {
			d.tileY = 0
			return
		}
		d.p2++
		d.p1 = d.p2
	}
}

func (d *DecoderState) decodeNibble(nibble, previous byte) byte {
	var table *[8]byte
	if d.flipped {
		table = &deltaTableFlipped0
		if previous&8 != 0 {
			table = &deltaTableFlipped1
		}
	} else {
		table = &deltaTable0
		if previous&1 != 0 {
			table = &deltaTable1
		}
	}

	value := table[nibble>>1]
	if nibble&1 == 0 {
		value >>= 4
	}
	return value & 0x0f
}

// xorPlanes delta decodes the plane written first and merges it into the
// other plane.
func (d *DecoderState) xorPlanes() {
	d.tileX, d.tileY = 0, 0
	d.resetPointers()
	d.deltaDecode(d.p1)
	d.resetPointers()

	src, dst := d.p1, d.p2
	for {
		if d.flipped {
			v := d.read(dst)
			d.write(dst, nibbleReverse[v>>4]<<4|nibbleReverse[v&0x0f])
		}
		d.write(dst, d.read(dst)^d.read(src))
		src++
		dst++

		d.tileY++
		if d.tileY != d.height {
			continue
		}
		d.tileY = 0
		d.tileX += 8
		if d.tileX != d.width {
			continue
		}
		d.tileX = 0
		return
	}
}
