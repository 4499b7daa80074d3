package pokedex

import (
	"errors"
	"testing"

	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/sprite"
	"github.com/retroenv/gbextract/internal/text"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// 1x1 tile sprite, decodes to 0x80 in the first byte of both planes.
var spriteStream = []byte{0x11, 0x73, 0xc0, 0xa9, 0xe0, 0x00}

type testROM struct {
	data []byte
}

func newTestROM() *testROM {
	return &testROM{data: make([]byte, 0x11*rom.BankSize)}
}

func (r *testROM) u16(offset int, v uint16) {
	r.data[offset] = byte(v)
	r.data[offset+1] = byte(v >> 8)
}

// str writes an encoded string followed by the terminator.
func (r *testROM) str(t *testing.T, offset int, s string, terminator byte) {
	t.Helper()
	b, err := text.Encode(s)
	assert.NoError(t, err)
	copy(r.data[offset:], append(b, terminator))
}

// species writes the order table entry and a header of a species.
func (r *testROM) species(romID, dexID byte, h Header) {
	r.data[orderTable.Offset()+int(romID)-1] = dexID
	offset := headerOffset(dexID)
	copy(r.data[offset:], []byte{
		dexID, h.HP, h.Attack, h.Defense, h.Speed, h.Special,
		h.Types[0], h.Types[1], h.CaptureRate, h.BaseExperience, h.FrontDim,
	})
	r.u16(offset+0x0B, h.Front)
	r.u16(offset+0x0D, h.Back)
	copy(r.data[offset+0x0F:], h.Attacks[:])
	r.data[offset+0x13] = h.GrowthRate
	copy(r.data[offset+0x14:], h.Machines[:])
}

func (r *testROM) image() *rom.Image {
	return rom.New(r.data)
}

func TestBank(t *testing.T) {
	tests := []struct {
		romID byte
		bank  int
	}{
		{0x01, 0x09},
		{0x15, 0x01},
		{0x1E, 0x09},
		{0x1F, 0x0A},
		{0x49, 0x0A},
		{0x4A, 0x0B},
		{0x73, 0x0B},
		{0x74, 0x0C},
		{0x98, 0x0C},
		{0x99, 0x0D},
		{0xB6, 0x0B},
		{0xB7, 0x0D},
		{0xFF, 0x0D},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bank, Bank(tt.romID))
	}
}

func TestDexID(t *testing.T) {
	r := newTestROM()
	r.species(0x01, 112, Header{})
	r.species(mewRomID, mewDexID, Header{})
	img := r.image()

	dex, err := DexID(img, 0x01)
	assert.NoError(t, err)
	assert.Equal(t, byte(112), dex)

	rid, err := RomID(img, 112)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x01), rid)

	rid, err = RomID(img, mewDexID)
	assert.NoError(t, err)
	assert.Equal(t, byte(mewRomID), rid)

	_, err = RomID(img, 5)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = DexID(img, 0)
	assert.True(t, errors.Is(err, ErrInvalidID))

	_, err = ReadHeader(img, 152)
	assert.True(t, errors.Is(err, ErrInvalidID))
}

func TestReadHeader(t *testing.T) {
	r := newTestROM()
	expected := Header{
		DexID: 112, HP: 105, Attack: 130, Defense: 120, Speed: 40, Special: 45,
		Types: [2]byte{0x04, 0x05}, CaptureRate: 60, BaseExperience: 204,
		FrontDim: 0x77, Front: 0x4ABC, Back: 0x5DEF,
		Attacks: [4]byte{0x1E, 0x17, 0, 0}, GrowthRate: 5,
		Machines: [8]byte{0xE2, 0xFF, 0xC7, 0xAF, 0xA8, 0x3A, 0x88, 0x00},
	}
	r.species(0x01, 112, expected)
	r.species(mewRomID, mewDexID, Header{HP: 100})
	img := r.image()

	h, err := ReadHeader(img, 112)
	assert.NoError(t, err)
	assert.Equal(t, expected, *h)

	h, err = ReadHeader(img, mewDexID)
	assert.NoError(t, err)
	assert.Equal(t, byte(mewDexID), h.DexID)
	assert.Equal(t, byte(100), h.HP)
}

//nolint:funlen // test functions can be long
func TestSprite(t *testing.T) {
	r := newTestROM()
	r.species(0x01, 112, Header{FrontDim: 0x11, Front: 0x4000, Back: 0x4010})
	copy(r.data[rom.Resolve(0x09, 0x4000):], spriteStream)
	copy(r.data[rom.Resolve(0x09, 0x4010):], spriteStream)

	r.species(mewRomID, mewDexID, Header{FrontDim: 0x11, Front: 0x6000})
	copy(r.data[rom.Resolve(0x01, 0x6000):], spriteStream)

	copy(r.data[rom.Resolve(0x0D, 0x6536):], spriteStream)
	img := r.image()

	tests := []struct {
		name   string
		romID  byte
		side   sprite.Side
		column int
		row    int
		err    error
	}{
		{name: "front", romID: 0x01, side: sprite.Front, column: 3, row: 6},
		{name: "back", romID: 0x01, side: sprite.Back, column: 2, row: 3},
		{name: "mew", romID: mewRomID, side: sprite.Front, column: 3, row: 6},
		{name: "fossil", romID: 0xB7, side: sprite.Front, column: 0, row: 0},
		{name: "fossil back", romID: 0xB7, side: sprite.Back, err: ErrSkipped},
		{name: "skipped", romID: 193, side: sprite.Front, err: ErrSkipped},
		{name: "zero", romID: 0, side: sprite.Front, err: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := Sprite(img, tt.romID, tt.side)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, byte(0x80), frame.Tile(tt.column, tt.row)[0])
		})
	}
}

func TestSpriteDecodeError(t *testing.T) {
	r := newTestROM()
	r.species(0x01, 1, Header{FrontDim: 0x11, Front: 0x4000})
	_, err := Sprite(r.image(), 0x01, sprite.Front)
	assert.True(t, errors.Is(err, sprite.ErrMalformed))
}

//nolint:funlen // test functions can be long
func TestLoadEntry(t *testing.T) {
	r := newTestROM()
	r.species(0x01, 1, Header{
		Types:      [2]byte{0x16, 0x03},
		Attacks:    [4]byte{1, 2, 0, 0},
		GrowthRate: byte(MediumSlow),
		Machines:   [8]byte{0x01, 0, 0, 0, 0, 0, 0x04, 0},
	})
	r.species(0x02, 2, Header{})
	r.str(t, rom.Resolve(7, 0x421E), "BULBASAUR", text.End)

	// attack names in a list at 0x3000
	r.u16(0x375D+2, 0x3000)
	r.str(t, 0x3000, "TACKLE", text.End)
	r.str(t, 0x3007, "GROWL", text.End)
	r.str(t, 0x300D, "VINE WHIP", text.End)

	// details with a far text description
	r.u16(details.Offset(), 0x5800)
	detail := rom.Resolve(0x10, 0x5800)
	r.str(t, detail, "SEED", text.End)
	copy(r.data[detail+5:], []byte{2, 4, 150, 0, 0x17, 0x00, 0x34, 0x00})
	r.str(t, 0x3401, "A SEED", text.DexEnd)

	r.u16(typeNames.Offset()+2*0x16, 0x3200)
	r.u16(typeNames.Offset()+2*0x03, 0x3210)
	r.str(t, 0x3200, "GRASS", text.End)
	r.str(t, 0x3210, "POISON", text.End)

	// level 16 evolution into rom id 2, vine whip at level 7
	r.u16(events.Offset(), 0x7100)
	copy(r.data[rom.Resolve(0x0E, 0x7100):], []byte{1, 16, 2, 0, 7, 3, 0})

	r.data[machines.Offset()] = 2
	r.data[machines.Offset()+50] = 3

	e, err := LoadEntry(r.image(), log.NewTestLogger(t), 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x01), e.RomID)
	assert.Equal(t, "BULBASAUR", e.Name)
	assert.Equal(t, "SEED", e.Species)
	assert.Equal(t, "2'04\"", e.Height)
	assert.Equal(t, "15.0lb", e.Weight)
	assert.Equal(t, "A SEED", e.Description)
	assert.Equal(t, []string{"GRASS", "POISON"}, e.Types)
	assert.Equal(t, "Medium Slow", e.Growth.String())
	assert.Equal(t, []Attack{
		{Name: "TACKLE"},
		{Name: "GROWL"},
		{Level: 7, Name: "VINE WHIP"},
	}, e.Learnset)
	assert.Equal(t, []Evolution{{Kind: ByLevel, Level: 16, DexID: 2}}, e.Evolutions)
	assert.Equal(t, []Machine{
		{Item: "TM01", Move: "GROWL"},
		{Item: "HM01", Move: "VINE WHIP"},
	}, e.Learnable)
}

func TestLoadEntryMissingDetails(t *testing.T) {
	r := newTestROM()
	r.species(0x01, 1, Header{Types: [2]byte{0x16, 0x16}})
	r.u16(typeNames.Offset()+2*0x16, 0x3200)
	r.str(t, 0x3200, "GRASS", text.End)

	e, err := LoadEntry(r.image(), log.NewTestLogger(t), 1)
	assert.NoError(t, err)
	assert.Equal(t, []string{"GRASS"}, e.Types)
	assert.Equal(t, "Medium Fast", e.Growth.String())
	assert.Equal(t, 0, len(e.Evolutions))
}
