// Package compositor renders maps and stitches connected maps into a single
// picture.
package compositor

import (
	"context"
	"fmt"
	"image"

	"github.com/retroenv/gbextract/internal/maps"
	"github.com/retroenv/gbextract/internal/rom"
	"github.com/retroenv/gbextract/internal/tile"
	"github.com/retroenv/retrogolib/log"
)

// sizes in pixels.
const (
	StepPixels  = 16 // a step is 2x2 tiles, the unit of map coordinates
	BlockPixels = 32 // a block is 4x4 tiles
)

// Options of the compositor.
type Options struct {
	Labels bool        // draw the map id of every member onto composite maps
	Layout maps.Layout // table layout, defaults to maps.RedBlue
}

// Member is a map placed on a composite map, its position is in steps
// relative to the top left corner.
type Member struct {
	Submap *maps.Submap
	X      int
	Y      int
}

// Object is a warp, sign or entity referenced by its position on a
// composite map.
type Object struct {
	MapID  byte         `json:"mapId"`
	X      int          `json:"x"`
	Y      int          `json:"y"`
	Warp   *maps.Warp   `json:"warp,omitempty"`
	Sign   *maps.Sign   `json:"sign,omitempty"`
	Entity *maps.Entity `json:"entity,omitempty"`
}

// Map is a composite map.
type Map struct {
	ID      byte // smallest member map id
	Width   int  // in steps
	Height  int  // in steps
	Image   *tile.RGB
	Members []Member
	Objects map[image.Point]Object
}

// Compositor renders maps.
type Compositor struct {
	img     *rom.Image
	logger  *log.Logger
	options Options
}

// New returns a new compositor.
func New(img *rom.Image, logger *log.Logger, options Options) *Compositor {
	if options.Layout == (maps.Layout{}) {
		options.Layout = maps.RedBlue
	}
	return &Compositor{
		img:     img,
		logger:  logger,
		options: options,
	}
}

// Render renders all map groups of the loader.
func (c *Compositor) Render(ctx context.Context, loader *maps.Loader) ([]*Map, error) {
	groups := loader.Groups()
	result := make([]*Map, 0, len(groups))

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("rendering maps: %w", err)
		}

		m := c.Composite(group.Members)
		result = append(result, m)
		c.logger.Debug("Map rendered",
			log.Hex("id", m.ID),
			log.Int("members", len(m.Members)),
			log.Int("width", m.Width),
			log.Int("height", m.Height))
	}
	return result, nil
}
