package maps

import (
	"fmt"

	"github.com/retroenv/gbextract/internal/rom"
)

// tileset constants.
const (
	TilesetSize   = 12
	BlockCount    = 256
	TilesPerBlock = 16
)

// Tileset describes the graphics of a map.
type Tileset struct {
	Bank       byte    `json:"bank"`
	Blocks     uint16  `json:"blocks"`
	Tiles      uint16  `json:"tiles"`
	Collisions uint16  `json:"collisions"`
	Counters   [3]byte `json:"counters"`
	Grass      byte    `json:"grass"`
	Animation  byte    `json:"animation"`
}

func readTileset(img *rom.Image, layout Layout, id byte) (Tileset, error) {
	r := rom.NewReader(img, layout.Tilesets.Offset()+int(id)*TilesetSize)
	ts := Tileset{
		Bank:       r.U8(),
		Blocks:     r.U16(),
		Tiles:      r.U16(),
		Collisions: r.U16(),
	}
	copy(ts.Counters[:], r.Bytes(len(ts.Counters)))
	ts.Grass = r.U8()
	ts.Animation = r.U8()
	if err := r.Err(); err != nil {
		return ts, fmt.Errorf("reading tileset %d: %w", id, err)
	}
	return ts, nil
}

// BlocksOffset returns the absolute offset of the block definitions.
func (t Tileset) BlocksOffset() int {
	return rom.Resolve(int(t.Bank), t.Blocks)
}

// TilesOffset returns the absolute offset of the tile graphics.
func (t Tileset) TilesOffset() int {
	return rom.Resolve(int(t.Bank), t.Tiles)
}

// BlockTiles returns the absolute tile offsets of a block in row major order.
// Missing block data results in tile offsets of tile id 0.
func (t Tileset) BlockTiles(img *rom.Image, block byte) [TilesPerBlock]int {
	var tiles [TilesPerBlock]int
	start := t.BlocksOffset() + int(block)*TilesPerBlock
	ids, _ := img.Slice(start, TilesPerBlock)
	base := t.TilesOffset()
	for i := range tiles {
		var id byte
		if i < len(ids) {
			id = ids[i]
		}
		tiles[i] = int(id)<<4 + base
	}
	return tiles
}
