package compositor

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// label offset inside of the top left step of a map.
const (
	labelX = 2
	labelY = 14
)

// drawOutlineBox draws a rectangle outline spanning w+1 by h+1 pixels.
func drawOutlineBox(g draw.Image, clr image.Image, x, y int, w, h int) {
	draw.Draw(g, image.Rect(x, y, x+w, y+1), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x+w, y, x+w+1, y+h+1), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x, y+h, x+w, y+h+1), clr, image.Point{}, draw.Over)
	draw.Draw(g, image.Rect(x, y, x+1, y+h), clr, image.Point{}, draw.Over)
}

func drawShadowedString(g draw.Image, clr image.Image, dot fixed.Point26_6, s string) {
	for oy := -1; oy <= 1; oy++ {
		for ox := -1; ox <= 1; ox++ {
			(&font.Drawer{
				Dst:  g,
				Src:  image.Black,
				Face: inconsolata.Bold8x16,
				Dot:  fixed.Point26_6{X: dot.X + fixed.I(ox), Y: dot.Y + fixed.I(oy)},
			}).DrawString(s)
		}
	}

	(&font.Drawer{
		Dst:  g,
		Src:  clr,
		Face: inconsolata.Bold8x16,
		Dot:  dot,
	}).DrawString(s)
}

// drawLabels writes the id of every member map at its top left corner.
func drawLabels(g draw.Image, members []Member) {
	for _, m := range members {
		dot := fixed.P(m.X*StepPixels+labelX, m.Y*StepPixels+labelY)
		drawShadowedString(g, image.White, dot, fmt.Sprintf("%02X", m.Submap.ID))
	}
}
