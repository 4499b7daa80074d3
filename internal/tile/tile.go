// Package tile decodes 2bpp Game Boy tiles into RGB pixels.
package tile

import (
	"image/color"
)

const (
	// Size is the width and height of a tile in pixels.
	Size = 8
	// Bytes is the encoded size of a 2bpp tile.
	Bytes = 16
)

// Palette maps the 2 bit color index of a pixel to a color.
type Palette [4]color.RGBA

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// fixed palettes, selected by the map object covering a tile.
var (
	Default = Palette{rgb(0xE8E8E8), rgb(0x585858), rgb(0xA0A0A0), rgb(0x101010)}
	Warp    = Palette{rgb(0xE8C0C0), rgb(0xC05858), rgb(0xC0A0A0), rgb(0xC01010)}
	Sign    = Palette{rgb(0xC0C0E8), rgb(0x5858C0), rgb(0xA0A0C0), rgb(0x1010C0)}
	Entity  = Palette{rgb(0xE8C0E8), rgb(0xC058C0), rgb(0xC0A0C0), rgb(0xC010C0)}
)

// Tile is a decoded 8x8 tile in row major order.
type Tile [Size * Size]color.RGBA

// Decode decodes 16 bytes of 2bpp data. Every row is encoded as two bytes,
// the bit of the first byte is the high bit of the color index. Missing
// source bytes are treated as zero.
func (t *Tile) Decode(src []byte, palette Palette) {
	for y := range Size {
		var b1, b2 byte
		if 2*y < len(src) {
			b1 = src[2*y]
		}
		if 2*y+1 < len(src) {
			b2 = src[2*y+1]
		}

		for x := range Size {
			shift := 7 - x
			index := (b1>>shift&1)<<1 | b2>>shift&1
			t[y*Size+x] = palette[index]
		}
	}
}

// Flip mirrors the tile horizontally.
func (t *Tile) Flip() {
	for y := range Size {
		row := t[y*Size : (y+1)*Size]
		for x := range Size / 2 {
			row[x], row[Size-1-x] = row[Size-1-x], row[x]
		}
	}
}

// Merge copies all pixels of src into the tile that differ from the
// transparent color.
func (t *Tile) Merge(src *Tile, transparent color.RGBA) {
	for i, c := range src {
		if c != transparent {
			t[i] = c
		}
	}
}

// Draw copies the tile into the image with its top left corner at x, y.
func (t *Tile) Draw(dst *RGB, x, y int) {
	for ty := range Size {
		for tx := range Size {
			dst.SetRGBA(x+tx, y+ty, t[ty*Size+tx])
		}
	}
}
