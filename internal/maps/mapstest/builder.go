// Package mapstest builds small synthetic ROM images containing maps.
package mapstest

import (
	"encoding/binary"

	"github.com/retroenv/gbextract/internal/maps"
	"github.com/retroenv/gbextract/internal/rom"
)

// Size is the size of the built ROM images.
const Size = 2 * rom.BankSize

// table locations of the built images.
const (
	mapBanks          = 0x1000
	mapPointers       = 0x1100
	tilesets          = 0x1300
	entityDecals      = 0x1400
	WildPointers      = 0x1500
	WildProbabilities = 0x1700
	HiddenMaps        = 0x1800
	HiddenPointers    = 0x1900
	emptyWild         = 0x1B00

	// TilesOffset is the offset of the tile graphics of tileset 0.
	TilesOffset = 0x2000
	// BlocksOffset is the offset of the block definitions of tileset 0.
	BlocksOffset = 0x3000
	// DecalOffset is the offset of the entity decal graphics.
	DecalOffset = 0x3800

	mapArea = rom.BankSize
	mapSize = 0x200
)

// Layout is the table layout of the built images.
var Layout = maps.Layout{
	MapBanks:          rom.Address{Addr: mapBanks},
	MapPointers:       rom.Address{Addr: mapPointers},
	Tilesets:          rom.Address{Addr: tilesets},
	EntityDecals:      rom.Address{Addr: entityDecals},
	Wild:              rom.Address{Addr: WildPointers},
	WildProbabilities: rom.Address{Addr: WildProbabilities},
	HiddenMaps:        rom.Address{Addr: HiddenMaps},
	HiddenPointers:    rom.Address{Addr: HiddenPointers},
	HiddenItemScript:  maps.RedBlue.HiddenItemScript,
	HiddenCoinScript:  maps.RedBlue.HiddenCoinScript,
}

// Map describes a map to add to the image.
type Map struct {
	ID          byte
	Width       byte
	Height      byte
	Connections []maps.Connection
	Objects     []byte // object data, defaults to no objects
	Blocks      []byte // block ids, defaults to block 0
	TextPointer uint16
}

// Builder builds a ROM image.
type Builder struct {
	Data []byte
}

// New returns a builder for an image without maps. Tileset 0 uses the tile
// and block areas at TilesOffset and BlocksOffset.
func New() *Builder {
	b := &Builder{Data: make([]byte, Size)}
	for id := range maps.MaxMaps {
		b.PutU16(WildPointers+2*id, emptyWild)
	}
	b.Data[HiddenMaps] = 0xFF
	// tileset 0: bank, blocks, tiles
	b.Data[tilesets] = 0
	b.PutU16(tilesets+1, BlocksOffset)
	b.PutU16(tilesets+3, TilesOffset)
	// picture 1: address, tile count, bank
	b.PutU16(entityDecals, DecalOffset)
	b.Data[entityDecals+2] = 12
	return b
}

// PutU16 stores a little-endian word.
func (b *Builder) PutU16(offset int, value uint16) {
	binary.LittleEndian.PutUint16(b.Data[offset:], value)
}

// Offset returns the header offset of a map id.
func Offset(id byte) int {
	return mapArea + int(id%32)*mapSize
}

// AddMap writes the header, connections and objects of a map into bank 1
// and registers it in the map tables.
func (b *Builder) AddMap(m Map) {
	offset := Offset(m.ID)
	b.Data[mapBanks+int(m.ID)] = 1
	b.PutU16(mapPointers+2*int(m.ID), rom.Relativize(offset))

	var connectByte byte
	for _, c := range m.Connections {
		connectByte |= byte(c.Direction)
	}

	blocks := offset + 0x100
	objects := offset + 0x180
	d := b.Data[offset:]
	d[0] = 0 // tileset
	d[1] = m.Height
	d[2] = m.Width
	binary.LittleEndian.PutUint16(d[3:], rom.Relativize(blocks))
	binary.LittleEndian.PutUint16(d[5:], m.TextPointer)
	d[9] = connectByte

	pos := offset + maps.HeaderSize
	for _, dir := range maps.Directions {
		for _, c := range m.Connections {
			if c.Direction != dir {
				continue
			}
			b.Data[pos] = c.MapID
			b.Data[pos+5] = c.Bigness
			b.Data[pos+6] = c.Width
			b.Data[pos+7] = c.YAlign
			b.Data[pos+8] = c.XAlign
			pos += maps.ConnectionSize
		}
	}
	b.PutU16(pos, rom.Relativize(objects))

	copy(b.Data[blocks:], m.Blocks)
	obj := m.Objects
	if obj == nil {
		obj = []byte{0, 0, 0, 0}
	}
	copy(b.Data[objects:], obj)
}

// Image returns the built image.
func (b *Builder) Image() *rom.Image {
	return rom.New(b.Data)
}
