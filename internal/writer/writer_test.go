package writer

import (
	"bytes"
	"testing"

	"github.com/retroenv/gbextract/internal/arch/gbz80"
	"github.com/retroenv/gbextract/internal/program"
	"github.com/retroenv/retrogolib/assert"
)

func testListing() *program.Listing {
	listing := program.New(1)
	listing.Lines = []*program.Line{
		{Address: 0x4000, Raw: []byte{0xc3, 0x05, 0x40}, Code: "jp 4005h", Type: program.CodeLine},
		{Address: 0x4003, Raw: []byte{0xc9}, Code: "ret", Type: program.CodeLine | program.ForceBlank},
		{Address: 0x4004, Raw: []byte{0x00}, Code: "nop", Type: program.CodeLine},
		{Address: 0x4005, Raw: []byte{0xcd, 0x00, 0x40}, Code: "call 4000h", Type: program.CodeLine},
	}
	listing.Targets = []program.JumpTarget{
		{From: 0x4000, To: 0x4005, Kind: gbz80.AbsoluteJump},
		{From: 0x4005, To: 0x4000, Kind: gbz80.Call},
		{From: 0x4010, To: 0x4004, Kind: gbz80.RelativeJump},
		{From: 0x4020, To: 0x4005, Kind: gbz80.AbsoluteJump},
	}
	return listing
}

func TestWriteReferences(t *testing.T) {
	expected := "; Jump here from: 4005 (call)\n" +
		"ROM1:4000 C3 05 40         jp 4005h\n" +
		"ROM1:4003 C9               ret\n" +
		"\n" +
		"; Jump here from: 4010 (jr)\n" +
		"ROM1:4004 00               nop\n" +
		"\n" +
		"; Jump here from: 4000 (jp), 4020 (jp)\n" +
		"ROM1:4005 CD 00 40         call 4000h\n"

	buf := &bytes.Buffer{}
	w := New(buf, Options{References: true})
	assert.NoError(t, w.Write(testListing()))
	assert.Equal(t, expected, buf.String())
}

func TestWriteWithoutReferences(t *testing.T) {
	expected := "ROM1:4000 C3 05 40         jp 4005h\n" +
		"ROM1:4003 C9               ret\n" +
		"\n" +
		"ROM1:4004 00               nop\n" +
		"ROM1:4005 CD 00 40         call 4000h\n"

	buf := &bytes.Buffer{}
	w := New(buf, Options{})
	assert.NoError(t, w.Write(testListing()))
	assert.Equal(t, expected, buf.String())
}

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name     string
		bank     int
		line     *program.Line
		expected string
	}{
		{
			name:     "extended opcode in high bank",
			bank:     0x1a,
			line:     &program.Line{Address: 0x4000, Raw: []byte{0xcb, 0x3f}, Code: "srl a"},
			expected: "RO1A:4000 CB 3F            srl a",
		},
		{
			name:     "header bytes",
			bank:     0,
			line:     &program.Line{Address: 0x0104, Raw: []byte{0xce, 0xed, 0x66, 0x66, 0x00}, Code: "db CE,ED,66,66,00"},
			expected: "ROM0:0104 CE ED 66 66+     db CE,ED,66,66,00",
		},
		{
			name:     "header word",
			bank:     0,
			line:     &program.Line{Address: 0x0144, Raw: []byte{0x30, 0x31}, Code: "db 30,31"},
			expected: "ROM0:0144 30 31            db 30,31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatLine(tt.bank, tt.line))
		})
	}
}
