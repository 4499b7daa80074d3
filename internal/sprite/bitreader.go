package sprite

import (
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// BitReader reads a compressed sprite stream from the ROM, bits are
// returned from the most significant to the least significant one.
type BitReader struct {
	img     *rom.Image
	offset  int
	current byte
	left    uint8 // bits of current that were not returned yet
}

// NewBitReader returns a reader for the stream starting at the absolute offset.
func NewBitReader(img *rom.Image, offset int) *BitReader {
	return &BitReader{
		img:    img,
		offset: offset,
	}
}

// Offset returns the offset of the next byte that will be fetched.
func (r *BitReader) Offset() int {
	return r.offset
}

// Byte reads a full byte from the stream. It must only be called before the
// first bit is read.
func (r *BitReader) Byte() (byte, error) {
	b, err := r.img.U8(r.offset)
	if err != nil {
		return 0, fmt.Errorf("%w at offset 0x%06x: %w", ErrUnexpectedEOF, r.offset, err)
	}
	r.offset++
	return b, nil
}

// Bit reads the next bit.
func (r *BitReader) Bit() (byte, error) {
	if r.left == 0 {
		b, err := r.Byte()
		if err != nil {
			return 0, err
		}
		r.current = b
		r.left = 8
	}
	r.left--
	return r.current >> r.left & 1, nil
}

// Bits reads n bits and returns them as a number, the first bit read is the
// most significant one.
func (r *BitReader) Bits(n int) (uint16, error) {
	var value uint16
	for range n {
		bit, err := r.Bit()
		if err != nil {
			return 0, err
		}
		value = value<<1 | uint16(bit)
	}
	return value, nil
}
