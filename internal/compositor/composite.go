package compositor

import (
	"image"

	"github.com/retroenv/gbextract/internal/maps"
	"github.com/retroenv/gbextract/internal/tile"
	"github.com/retroenv/retrogolib/log"
)

// Composite renders the members of a group and stitches them into a single
// map. Member positions are shifted so that the top left corner of the
// bounding box is at 0,0. The origin of the group is always part of the
// bounding box.
func (c *Compositor) Composite(members []maps.Member) *Map {
	var xmin, ymin, xmax, ymax int
	for _, m := range members {
		w := 2 * int(m.Submap.Header.Width)
		h := 2 * int(m.Submap.Header.Height)
		xmin = min(xmin, m.X)
		ymin = min(ymin, m.Y)
		xmax = max(xmax, m.X+w)
		ymax = max(ymax, m.Y+h)
	}
	// the size is counted in steps of 2x2 tiles
	width := xmax - xmin
	height := ymax - ymin

	result := &Map{
		Width:   width,
		Height:  height,
		Image:   tile.NewRGB(image.Rect(0, 0, width*StepPixels, height*StepPixels)),
		Objects: map[image.Point]Object{},
	}

	for i, m := range members {
		s := m.Submap
		member := Member{
			Submap: s,
			X:      m.X - xmin,
			Y:      m.Y - ymin,
		}
		result.Members = append(result.Members, member)
		if i == 0 || s.ID < result.ID {
			result.ID = s.ID
		}

		c.copyRows(result.Image, c.RenderSubmap(s), member)
		addObjects(result.Objects, member)
	}

	if c.options.Labels {
		drawLabels(result.Image, result.Members)
	}
	return result
}

// copyRows copies the rendered map row by row into the canvas, rows that do
// not fit are clipped.
func (c *Compositor) copyRows(dst, src *tile.RGB, m Member) {
	x := m.X * StepPixels
	y := m.Y * StepPixels
	bounds := dst.Bounds()
	clipped := false

	for row := range src.Bounds().Dy() {
		if y+row >= bounds.Max.Y {
			clipped = true
			break
		}
		line := dst.Row(y + row)[x*tile.BytesPerPixel:]
		if copy(line, src.Row(row)) < src.Stride {
			clipped = true
		}
	}

	if clipped {
		c.logger.Warn("Map clipped at canvas edge",
			log.Hex("map", m.Submap.ID),
			log.Int("x", m.X),
			log.Int("y", m.Y))
	}
}

// addObjects indexes the objects of a member by their canvas position, later
// objects replace earlier ones at the same position.
func addObjects(objects map[image.Point]Object, m Member) {
	s := m.Submap
	for i := range s.Warps {
		w := &s.Warps[i]
		pos := image.Pt(m.X+int(w.X), m.Y+int(w.Y))
		objects[pos] = Object{MapID: s.ID, X: pos.X, Y: pos.Y, Warp: w}
	}
	for i := range s.Signs {
		sign := &s.Signs[i]
		pos := image.Pt(m.X+int(sign.X), m.Y+int(sign.Y))
		objects[pos] = Object{MapID: s.ID, X: pos.X, Y: pos.Y, Sign: sign}
	}
	for i := range s.Entities {
		e := &s.Entities[i]
		pos := image.Pt(m.X+int(e.X), m.Y+int(e.Y))
		objects[pos] = Object{MapID: s.ID, X: pos.X, Y: pos.Y, Entity: e}
	}
}
