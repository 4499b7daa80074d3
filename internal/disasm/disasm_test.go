package disasm

import (
	"testing"

	"github.com/retroenv/gbextract/internal/arch/gbz80"
	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func linesByAddress(listing *program.Listing) map[uint16]*program.Line {
	lines := make(map[uint16]*program.Line, len(listing.Lines))
	for _, line := range listing.Lines {
		lines[line.Address] = line
	}
	return lines
}

//nolint:funlen // test functions can be long
func TestDisasmBank(t *testing.T) {
	data := make([]byte, rom.BankSize+0x15)
	copy(data[0x4000:], []byte{0xc3, 0x10, 0x40, 0xc9})
	copy(data[0x4010:], []byte{0xcd, 0x00, 0x40, 0x18, 0xfb})

	dis := New(rom.New(data), log.NewTestLogger(t))
	listing, err := dis.Bank(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, listing.Bank)
	assert.Len(t, listing.Lines, 16)
	assert.Equal(t, 0x15, listing.Size())

	lines := linesByAddress(listing)
	assert.Equal(t, "jp 4010h", lines[0x4000].Code)
	assert.Equal(t, 0x4000, lines[0x4000].Offset)
	assert.True(t, lines[0x4000].IsType(program.CodeLine))

	assert.Equal(t, "ret", lines[0x4003].Code)
	assert.True(t, lines[0x4003].IsType(program.ForceBlank))
	assert.False(t, lines[0x4004].IsType(program.ForceBlank))

	assert.Equal(t, "call 4000h", lines[0x4010].Code)
	assert.Equal(t, "jr 4010h", lines[0x4013].Code)

	expected := []program.JumpTarget{
		{From: 0x4000, To: 0x4010, Kind: gbz80.AbsoluteJump},
		{From: 0x4010, To: 0x4000, Kind: gbz80.Call},
		{From: 0x4013, To: 0x4010, Kind: gbz80.RelativeJump},
	}
	assert.Equal(t, expected, listing.Targets)
}

//nolint:funlen // test functions can be long
func TestDisasmHeaderRegion(t *testing.T) {
	data := make([]byte, 2*rom.BankSize)
	copy(data[0x100:], []byte{0x00, 0xc3, 0x50, 0x01})
	copy(data[0x104:], []byte{0xce, 0xed, 0x66, 0x66})
	copy(data[0x144:], []byte{0x30, 0x31})
	data[0x147] = 0x13
	copy(data[0x14e:], []byte{0x91, 0xe6})

	listing, err := New(rom.New(data), log.NewTestLogger(t)).Bank(0)
	assert.NoError(t, err)
	assert.Equal(t, rom.BankSize, listing.Size())

	lines := linesByAddress(listing)
	assert.Equal(t, "jp 0150h", lines[0x0101].Code)

	tests := []struct {
		address uint16
		size    int
		code    string
	}{
		{0x0104, 16, "db CE,ED,66,66,00,00,00,00,00,00,00,00,00,00,00,00"},
		{0x0114, 16, "db 00,00,00,00,00,00,00,00,00,00,00,00,00,00,00,00"},
		{0x0134, 16, "db 00,00,00,00,00,00,00,00,00,00,00,00,00,00,00,00"},
		{0x0144, 2, "db 30,31"},
		{0x0146, 1, "db 00"},
		{0x0147, 1, "db 13"},
		{0x014d, 1, "db 00"},
		{0x014e, 2, "db 91,E6"},
	}
	for _, tt := range tests {
		line, ok := lines[tt.address]
		assert.True(t, ok)
		assert.True(t, line.IsType(program.HeaderData))
		assert.Len(t, line.Raw, tt.size)
		assert.Equal(t, tt.code, line.Code)
	}

	code, ok := lines[0x0150]
	assert.True(t, ok)
	assert.True(t, code.IsType(program.CodeLine))
	assert.Equal(t, "nop", code.Code)
}

func TestDisasmUndefinedContinues(t *testing.T) {
	data := make([]byte, rom.BankSize+3)
	copy(data[0x4000:], []byte{0xd3, 0x3e, 0x01})

	listing, err := New(rom.New(data), log.NewTestLogger(t)).Bank(1)
	assert.NoError(t, err)
	assert.Len(t, listing.Lines, 2)
	assert.True(t, listing.Lines[0].IsType(program.Undefined))
	assert.Equal(t, gbz80.UndefinedText, listing.Lines[0].Code)
	assert.Equal(t, "ld a,01h", listing.Lines[1].Code)
}

func TestDisasmTruncated(t *testing.T) {
	data := make([]byte, rom.BankSize+3)
	copy(data[0x4000:], []byte{0x00, 0xcd, 0x12})

	listing, err := New(rom.New(data), log.NewTestLogger(t)).Bank(1)
	assert.NoError(t, err)
	assert.Len(t, listing.Lines, 2)

	last := listing.Lines[1]
	assert.True(t, last.IsType(program.Undefined))
	assert.Equal(t, []byte{0xcd, 0x12}, last.Raw)
	assert.Equal(t, 3, listing.Size())
	assert.Equal(t, 0, len(listing.Targets))
}

func TestDisasmInvalidBank(t *testing.T) {
	dis := New(rom.New(make([]byte, rom.BankSize)), log.NewTestLogger(t))
	_, err := dis.Bank(1)
	assert.Error(t, err)

	_, err = New(rom.New(nil), log.NewTestLogger(t)).All()
	assert.Error(t, err)
}

func TestDisasmAll(t *testing.T) {
	dis := New(rom.New(make([]byte, rom.BankSize+4)), log.NewTestLogger(t))
	listings, err := dis.All()
	assert.NoError(t, err)
	assert.Len(t, listings, 2)
	assert.Equal(t, 4, listings[1].Size())
}

func TestDisasmInstructionCrossingBankEnd(t *testing.T) {
	data := make([]byte, 2*rom.BankSize)
	copy(data[rom.BankSize-2:], []byte{0xcd, 0x34, 0x12})

	listing, err := New(rom.New(data), log.NewTestLogger(t)).Bank(0)
	assert.NoError(t, err)
	assert.Equal(t, rom.BankSize, listing.Size())

	last := listing.Lines[len(listing.Lines)-1]
	assert.True(t, last.IsType(program.Undefined))
	assert.Equal(t, "db CD,34", last.Code)
	assert.Equal(t, 0, len(listing.Targets))
}
