package sprite

import (
	"errors"
	"testing"

	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/tile"
	"github.com/retroenv/retrogolib/assert"
)

// The streams describe a 1x1 tile sprite. Every plane consists of 32 cells:
// 8 rows written with 4 different rotations.
//
// all zero, packing 0:
//
//	0 0 11110 00001 | 0 0 11110 00001
//	^ ^ run of 32     ^ ^ run of 32
//	| first packet    | first packet
//	orientation       packing mode 0
//
// single code 3 in the first cell of the first plane:
//
//	0 1 11 00 11110 00000 | <mode bits> 0 11110 00001
//
// the first plane gets 0xC0 which delta decodes to 0x80.
//
//nolint:funlen // test functions can be long
func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		stream   []byte
		flipped  bool
		packing  uint8
		expected map[int]byte // all other buffer bytes are zero
	}{
		{
			name:     "all zero",
			stream:   []byte{0x11, 0x3c, 0x13, 0xc1},
			expected: map[int]byte{},
		},
		{
			name:     "packing 0 decodes both planes",
			stream:   []byte{0x11, 0x73, 0xc0, 0x3c, 0x10},
			expected: map[int]byte{0x000: 0x80},
		},
		{
			name:     "delta decoding continues into the low nibble",
			stream:   []byte{0x11, 0x63, 0xc0, 0x3c, 0x10},
			expected: map[int]byte{0x000: 0xff},
		},
		{
			name:     "packing 1 merges the first plane into the second",
			stream:   []byte{0x11, 0x73, 0xc0, 0x9e, 0x08},
			packing:  1,
			expected: map[int]byte{0x000: 0x80, PlaneSize: 0x80},
		},
		{
			name:     "packing 1 with raw second plane",
			stream:   []byte{0x11, 0x73, 0xc0, 0xa9, 0xe0, 0x00},
			packing:  1,
			expected: map[int]byte{0x000: 0x80, PlaneSize: 0xc0},
		},
		{
			name:     "packing 2 decodes the second plane before merging",
			stream:   []byte{0x11, 0x73, 0xc0, 0xe9, 0xe0, 0x00},
			packing:  2,
			expected: map[int]byte{0x000: 0x80, PlaneSize: 0xff},
		},
		{
			name:     "packing 2 without second plane data",
			stream:   []byte{0x11, 0x73, 0xc0, 0xde, 0x08},
			packing:  2,
			expected: map[int]byte{0x000: 0x80, PlaneSize: 0x80},
		},
		{
			name:     "orientation 1 writes the second plane first",
			stream:   []byte{0x11, 0xf3, 0xc0, 0x3c, 0x10},
			expected: map[int]byte{PlaneSize: 0x80},
		},
		{
			name:     "flipped packing 1",
			stream:   []byte{0x11, 0x73, 0xc0, 0x9e, 0x08},
			flipped:  true,
			packing:  1,
			expected: map[int]byte{0x000: 0x10, PlaneSize: 0x10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder(rom.New(tt.stream), 0)
			d.SetFlipped(tt.flipped)
			assert.NoError(t, d.Run())
			assert.Equal(t, tt.packing, d.Packing())

			width, height := d.Dimensions()
			assert.Equal(t, 1, width)
			assert.Equal(t, 1, height)

			buf := d.Buffer()
			for i, b := range buf {
				assert.Equal(t, tt.expected[i], b)
			}
		})
	}
}

func TestDecodeRestart(t *testing.T) {
	d := NewDecoder(rom.New([]byte{0x11}), 0)
	d.width, d.height = 8, 8

	var results []StepResult
	for range 4 * 8 {
		results = append(results, d.Advance())
	}

	for _, result := range results[:31] {
		assert.Equal(t, NotYetReady, result)
	}
	assert.Equal(t, Restart, results[31])
	assert.Equal(t, uint8(3), d.orientation)
	assert.Equal(t, uint8(maxRotation), d.rotation)
	assert.Equal(t, uint8(0), d.tileX)
	assert.Equal(t, uint8(0), d.tileY)
}

func TestDecoderAdvance(t *testing.T) {
	d := NewDecoder(rom.New(nil), 0)
	d.width, d.height = 16, 8
	d.orientation = 2

	for range 7 {
		assert.Equal(t, NotYetReady, d.Advance())
	}
	assert.Equal(t, uint16(7), d.p1)

	assert.Equal(t, NotYetReady, d.Advance())
	assert.Equal(t, uint8(2), d.rotation)
	assert.Equal(t, uint16(0), d.p1)

	for range 3 * 8 {
		assert.Equal(t, NotYetReady, d.Advance())
	}
	assert.Equal(t, uint8(8), d.tileX)
	assert.Equal(t, uint16(8), d.p1)
	assert.Equal(t, uint16(8), d.p2)

	for range 4*8 - 1 {
		assert.Equal(t, NotYetReady, d.Advance())
	}
	assert.Equal(t, Done, d.Advance())
}

func TestDecodeDeterministic(t *testing.T) {
	img := rom.New([]byte{0x11, 0x73, 0xc0, 0xa9, 0xe0, 0x00})

	first, err := Decode(img, 0)
	assert.NoError(t, err)
	second, err := Decode(img, 0)
	assert.NoError(t, err)
	assert.Equal(t, *first, *second)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		stream []byte
		target error
	}{
		{"empty stream", nil, ErrUnexpectedEOF},
		{"truncated stream", []byte{0x11, 0x73}, ErrUnexpectedEOF},
		{"zero dimension", []byte{0x01, 0x00}, ErrMalformed},
		{"run length prefix too long", []byte{0x11, 0x3f, 0xff, 0xff}, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(rom.New(tt.stream), 0)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.target))
		})
	}
}

func TestTransform(t *testing.T) {
	assert.Equal(t, byte(0x40), transform(1, 3))
	assert.Equal(t, byte(0x10), transform(1, 2))
	assert.Equal(t, byte(0x04), transform(1, 1))
	assert.Equal(t, byte(0x01), transform(1, 0))
	assert.Equal(t, byte(0xc0), transform(3, 3))
	assert.Equal(t, byte(0x20), transform(2, 2))
	assert.Equal(t, byte(0), transform(0, 3))
}

func TestBitReader(t *testing.T) {
	r := NewBitReader(rom.New([]byte{0xa5, 0x0f}), 0)

	b, err := r.Byte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0xa5), b)

	v, err := r.Bits(3)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0), v)

	v, err = r.Bits(5)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0f), v)
	assert.Equal(t, 2, r.Offset())

	_, err = r.Bit()
	assert.True(t, errors.Is(err, ErrUnexpectedEOF))
	assert.True(t, errors.Is(err, rom.ErrAddressOutOfRange))
}

func TestAssemble(t *testing.T) {
	buf, err := Decode(rom.New([]byte{0x11, 0x73, 0xc0, 0xa9, 0xe0, 0x00}), 0)
	assert.NoError(t, err)

	frame, err := Assemble(buf, 0x11)
	assert.NoError(t, err)

	// column 3, tile row 6
	offset := 3*FrameTiles*tile.Size + 6*tile.Size
	assert.Equal(t, byte(0x80), frame.Data[2*offset])
	assert.Equal(t, byte(0xc0), frame.Data[2*offset+1])
	assert.Equal(t, byte(0x80), frame.Tile(3, 6)[0])

	img := frame.RGB(tile.Default)
	assert.Equal(t, FramePixels, img.Bounds().Dx())
	assert.Len(t, img.Pix, FramePixels*FramePixels*3)
	assert.Equal(t, tile.Default[3], img.RGBAAt(24, 48))
	assert.Equal(t, tile.Default[1], img.RGBAAt(25, 48))
	assert.Equal(t, tile.Default[0], img.RGBAAt(26, 48))
	assert.Equal(t, tile.Default[0], img.RGBAAt(24, 49))
	assert.Equal(t, tile.Default[0], img.RGBAAt(0, 0))
}

func TestAssembleFullFrame(t *testing.T) {
	var buf [BufferSize]byte
	for i := range buf {
		buf[i] = byte(i)
	}

	frame, err := Assemble(&buf, 0x77)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), frame.Data[0])
	assert.Equal(t, byte(PlaneSize&0xff), frame.Data[1])
	assert.Equal(t, byte(0x87), frame.Data[2*(PlaneSize-1)])

	_, err = Assemble(&buf, 0x80)
	assert.True(t, errors.Is(err, ErrMalformed))
}
