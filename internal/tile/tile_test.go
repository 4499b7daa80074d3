package tile

import (
	"image"
	"image/color"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTileDecode(t *testing.T) {
	src := make([]byte, Bytes)
	src[0] = 0b1010_0000 // high bits of row 0
	src[1] = 0b1100_0000 // low bits of row 0
	src[15] = 0x01

	var tl Tile
	tl.Decode(src, Default)

	assert.Equal(t, Default[3], tl[0])
	assert.Equal(t, Default[1], tl[1])
	assert.Equal(t, Default[2], tl[2])
	assert.Equal(t, Default[0], tl[3])
	assert.Equal(t, Default[1], tl[7*Size+7])
	assert.Equal(t, Default[0], tl[7*Size+6])
}

func TestTileDecodeShortSource(t *testing.T) {
	var tl Tile
	tl.Decode([]byte{0xff}, Warp)

	for x := range Size {
		assert.Equal(t, Warp[2], tl[x])
	}
	assert.Equal(t, Warp[0], tl[Size])
}

func TestTileFlip(t *testing.T) {
	var tl Tile
	tl.Decode([]byte{0x80, 0x01}, Sign)
	tl.Flip()

	assert.Equal(t, Sign[1], tl[0])
	assert.Equal(t, Sign[2], tl[7])
	assert.Equal(t, Sign[0], tl[3])
}

func TestTileMerge(t *testing.T) {
	var background, sprite Tile
	background.Decode([]byte{0xff, 0xff}, Default)
	sprite.Decode([]byte{0x0f, 0x00}, Entity)

	background.Merge(&sprite, Entity[0])

	for x := range 4 {
		assert.Equal(t, Default[3], background[x])
	}
	for x := 4; x < Size; x++ {
		assert.Equal(t, Entity[2], background[x])
	}
}

func TestRGB(t *testing.T) {
	img := NewRGB(image.Rect(0, 0, 16, 8))
	assert.Len(t, img.Pix, 16*8*3)

	var tl Tile
	tl.Decode([]byte{0x80, 0x80}, Default)
	tl.Draw(img, 8, 0)

	assert.Equal(t, Default[3], img.RGBAAt(8, 0))
	assert.Equal(t, Default[0], img.RGBAAt(9, 0))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(100, 100))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(-1, 0))

	img.Set(1, 1, color.RGBA{R: 0xff, A: 0xff})
	assert.Equal(t, []uint8{0xff, 0, 0}, img.Row(1)[3:6])
}
