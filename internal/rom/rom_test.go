package rom

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		bank int
		addr uint16
		want int
	}{
		{"bank 0 low address", 0, 0x0150, 0x0150},
		{"switched bank ignores low address", 5, 0x3fff, 0x3fff},
		{"bank 1 window start", 1, 0x4000, 0x4000},
		{"bank 3 pointer", 3, 0x423d, 0xc23d},
		{"bank 0x11 table", 0x11, 0x6a40, 0x46a40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.bank, tt.addr))
		})
	}
}

func TestResolveRelativizeRoundTrip(t *testing.T) {
	for offset := BankSize; offset < 0x40*BankSize; offset += 0x1fd {
		bank := BankOf(offset)
		assert.Equal(t, offset, Resolve(bank, Relativize(offset)))
	}
}

func TestResolveBankZeroIdentity(t *testing.T) {
	for addr := 0; addr < BankSize; addr += 0x3f {
		for _, bank := range []int{0, 1, 0x1d, 0x3f} {
			assert.Equal(t, addr, Resolve(bank, uint16(addr)))
		}
	}
}

func TestRelativize(t *testing.T) {
	assert.Equal(t, uint16(0x0104), Relativize(0x0104))
	assert.Equal(t, uint16(0x4000), Relativize(0x4000))
	assert.Equal(t, uint16(0x7fff), Relativize(0x7fff))
	assert.Equal(t, uint16(0x5024), Relativize(0x41024))
}

func TestImageReads(t *testing.T) {
	img := New([]byte{0x34, 0x12, 0xff})

	b, err := img.U8(2)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xff), b)

	w, err := img.U16(0)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), w)

	_, err = img.U16(2)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	var rangeErr *RangeError
	assert.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 2, rangeErr.Offset)
	assert.Equal(t, 3, rangeErr.Size)

	_, err = img.U8(-1)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestImageBank(t *testing.T) {
	img := New(make([]byte, BankSize+0x10))
	assert.Equal(t, 2, img.Banks())

	bank, err := img.Bank(1)
	assert.NoError(t, err)
	assert.Len(t, bank, 0x10)

	_, err = img.Bank(2)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}

func TestImagePointer(t *testing.T) {
	data := make([]byte, 3*BankSize)
	data[0x10] = 0x34
	data[0x11] = 0x52
	img := New(data)

	offset, err := img.Pointer(2, 0x10)
	assert.NoError(t, err)
	assert.Equal(t, 2*BankSize+0x1234, offset)
}

func TestReaderStickyError(t *testing.T) {
	img := New([]byte{0x01, 0x02, 0x03})
	r := NewReader(img, 0)

	assert.Equal(t, byte(0x01), r.U8())
	assert.Equal(t, uint16(0x0302), r.U16())
	assert.NoError(t, r.Err())

	assert.Equal(t, uint16(0), r.U16())
	assert.Equal(t, byte(0), r.U8())
	assert.True(t, errors.Is(r.Err(), ErrAddressOutOfRange))
}

func TestAddress(t *testing.T) {
	a := Address{Bank: 0x0e, Addr: 0x43de}
	assert.Equal(t, 0x383de, a.Offset())
	assert.Equal(t, "0E:43FA", a.Add(0x1c).String())
}
