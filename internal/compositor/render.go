package compositor

import (
	"image"
	"image/color"

	"github.com/retroenv/gbextract/internal/maps"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/tile"
	"github.com/retroenv/retrogolib/log"
)

const (
	tilesPerBlock = 4
	decalSize     = 4 * tile.Bytes // 2x2 tiles
	highlightSize = StepPixels - 1
	noPosition    = 0xFF
)

// orientations of an entity.
const (
	facingNorth = 1
	facingWest  = 2
	facingEast  = 3
)

var highlight = image.NewUniform(color.RGBA{R: 0xFF, A: 0xFF})

// overlay describes how a tile is drawn, depending on the object that
// covers its step.
type overlay struct {
	palette tile.Palette
	entity  int // absolute offset of the entity decal, 0 for none
	flip    bool
}

// RenderSubmap renders a single map, each block is 32x32 pixels. Hidden
// objects are highlighted by a red box.
func (c *Compositor) RenderSubmap(s *maps.Submap) *tile.RGB {
	width := int(s.Header.Width)
	height := int(s.Header.Height)
	dst := tile.NewRGB(image.Rect(0, 0, width*BlockPixels, height*BlockPixels))

	var bg, fg tile.Tile
	for by := range height {
		for bx := range width {
			tiles := s.Tileset.BlockTiles(c.img, s.Block(c.img, bx, by))

			for j := range tilesPerBlock {
				for i := range tilesPerBlock {
					o := c.overlayAt(s, bx*2+i/2, by*2+j/2)
					addr := tiles[j*tilesPerBlock+i]

					if o.entity != 0 {
						n := (j%2)*2 + (i+boolToInt(o.flip))%2
						c.decode(&fg, o.entity+n*tile.Bytes, o.palette)
						if o.flip {
							fg.Flip()
						}
						c.decode(&bg, addr, tile.Default)
						bg.Merge(&fg, tile.Entity[0])
					} else {
						c.decode(&bg, addr, o.palette)
					}
					bg.Draw(dst, bx*BlockPixels+i*tile.Size, by*BlockPixels+j*tile.Size)
				}
			}
		}
	}

	c.highlightHidden(dst, s)
	return dst
}

// decode decodes the tile at the absolute offset, tiles outside of the ROM
// are blank.
func (c *Compositor) decode(t *tile.Tile, offset int, palette tile.Palette) {
	src, err := c.img.Slice(offset, tile.Bytes)
	if err != nil {
		*t = tile.Tile{}
		return
	}
	t.Decode(src, palette)
}

// overlayAt returns the overlay of a step, warps have priority over signs
// and signs over entities.
func (c *Compositor) overlayAt(s *maps.Submap, x, y int) overlay {
	for _, w := range s.Warps {
		if int(w.X) == x && int(w.Y) == y {
			return overlay{palette: tile.Warp}
		}
	}
	for _, sign := range s.Signs {
		if int(sign.X) == x && int(sign.Y) == y {
			return overlay{palette: tile.Sign}
		}
	}
	for _, e := range s.Entities {
		if int(e.X) == x && int(e.Y) == y {
			return c.entityOverlay(e)
		}
	}
	return overlay{palette: tile.Default}
}

// entityOverlay looks up the decal graphics of an entity, the orientation
// selects the facing direction.
func (c *Compositor) entityOverlay(e maps.Entity) overlay {
	o := overlay{palette: tile.Entity}
	if e.Picture == 0 {
		return o
	}

	entry := c.options.Layout.EntityDecals.Offset() + 4*(int(e.Picture)-1)
	r := rom.NewReader(c.img, entry)
	addr := r.U16()
	r.Skip(1) // tile count
	bank := r.U8()
	if r.Err() != nil {
		return o
	}

	var decal int
	switch e.Orientation & 0x0F {
	case facingNorth:
		decal = decalSize
	case facingWest:
		decal = 2 * decalSize
	case facingEast:
		decal = 2 * decalSize
		o.flip = true
	}
	o.entity = rom.Resolve(int(bank), addr+uint16(decal))
	return o
}

// highlightHidden draws a box around every hidden object. The first
// object with an unset coordinate ends the list.
func (c *Compositor) highlightHidden(dst *tile.RGB, s *maps.Submap) {
	bounds := dst.Bounds()
	for _, h := range s.Hidden {
		if h.X == noPosition || h.Y == noPosition {
			return
		}

		x := int(h.X) * StepPixels
		y := int(h.Y) * StepPixels
		box := image.Rect(x, y, x+StepPixels, y+StepPixels)
		if !box.In(bounds) {
			c.logger.Warn("Hidden object outside of map",
				log.Hex("map", s.ID),
				log.Int("x", int(h.X)),
				log.Int("y", int(h.Y)))
			continue
		}
		drawOutlineBox(dst, highlight, x, y, highlightSize, highlightSize)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
