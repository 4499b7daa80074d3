package sprite

import (
	"fmt"
	"image"

	"github.com/retroenv/gbextract/internal/tile"
)

// frame layout constants.
const (
	FrameTiles  = 7 // tiles per row and column
	FramePixels = FrameTiles * tile.Size
	FrameSize   = FrameTiles * FrameTiles * tile.Bytes

	columnSize = FrameTiles * tile.Size // bytes of a tile column in a plane
)

// Frame is a 7x7 tile sprite in 2bpp format. Tiles are stored column major,
// tile k is displayed in column k/7 and row k%7.
type Frame struct {
	Data [FrameSize]byte
}

// Assemble positions the two decoded planes of the work buffer inside a 7x7
// frame, bottom aligned and horizontally centered, and interleaves them
// into 2bpp rows. The high nibble of dim is the sprite height and the low
// nibble the sprite width in tiles.
func Assemble(buf *[BufferSize]byte, dim byte) (*Frame, error) {
	columns := int(dim & 0x0f)
	rows := int(dim >> 4)
	if columns < 1 || columns > FrameTiles || rows < 1 || rows > FrameTiles {
		return nil, fmt.Errorf("%w: sprite dimensions 0x%02x exceed the frame", ErrMalformed, dim)
	}

	offset := tile.Size * (FrameTiles*((8-columns)>>1) + FrameTiles - rows)
	var planeA, planeB [PlaneSize]byte
	fill(planeA[:], buf[:PlaneSize], offset, columns, rows*tile.Size)
	fill(planeB[:], buf[PlaneSize:], offset, columns, rows*tile.Size)

	frame := &Frame{}
	for i := range PlaneSize {
		frame.Data[2*i] = planeA[i]
		frame.Data[2*i+1] = planeB[i]
	}
	return frame, nil
}

// fill copies count chunks of size bytes from src into dst, every chunk
// starts at the next tile column.
func fill(dst, src []byte, offset, count, size int) {
	var i int
	for range count {
		copy(dst[offset:offset+size], src[i:i+size])
		i += size
		offset += columnSize
	}
}

// Tile returns the 2bpp data of the tile at the given column and row.
func (f *Frame) Tile(column, row int) []byte {
	k := column*FrameTiles + row
	return f.Data[k*tile.Bytes : (k+1)*tile.Bytes]
}

// RGB renders the frame using the palette.
func (f *Frame) RGB(palette tile.Palette) *tile.RGB {
	img := tile.NewRGB(image.Rect(0, 0, FramePixels, FramePixels))

	var t tile.Tile
	for column := range FrameTiles {
		for row := range FrameTiles {
			t.Decode(f.Tile(column, row), palette)
			t.Draw(img, column*tile.Size, row*tile.Size)
		}
	}
	return img
}
