// Package render rasterizes race frames onto a terminal cell buffer.
//
// The play field is measured in pixels; every terminal cell stands for a
// block of pixels and shows the sprite pixel under its center, drawn with a
// shade glyph and the nearest palette color.
package render

import (
	"image/color"

	"github.com/vovakirdan/dasher/internal/assets"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/race"
)

// Shade glyphs from darkest to brightest.
var shades = []rune{'░', '▒', '▓', '█'}

// palette holds the approximate RGB value of each terminal color.
var palette = []struct {
	color core.Color
	rgb   color.RGBA
}{
	{core.ColorRed, color.RGBA{205, 0, 0, 255}},
	{core.ColorGreen, color.RGBA{0, 205, 0, 255}},
	{core.ColorYellow, color.RGBA{205, 205, 0, 255}},
	{core.ColorBlue, color.RGBA{0, 0, 238, 255}},
	{core.ColorMagenta, color.RGBA{205, 0, 205, 255}},
	{core.ColorCyan, color.RGBA{0, 205, 205, 255}},
	{core.ColorWhite, color.RGBA{229, 229, 229, 255}},
	{core.ColorBrightRed, color.RGBA{255, 0, 0, 255}},
	{core.ColorBrightMagenta, color.RGBA{255, 0, 255, 255}},
	{core.ColorBrightCyan, color.RGBA{0, 255, 255, 255}},
	{core.ColorOrange, color.RGBA{255, 135, 0, 255}},
	{core.ColorGray, color.RGBA{138, 138, 138, 255}},
	{core.ColorDarkGray, color.RGBA{68, 68, 68, 255}},
}

// Renderer draws frames using the images of an atlas.
type Renderer struct {
	atlas *assets.Atlas
}

// New creates a renderer for the given atlas.
func New(atlas *assets.Atlas) *Renderer {
	return &Renderer{atlas: atlas}
}

// Draw clears dst and draws f onto it, scaled to fill the whole buffer.
func (r *Renderer) Draw(dst *core.Screen, f race.Frame) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || f.Width <= 0 || f.Height <= 0 {
		return
	}

	v := viewport{
		cellW: float64(f.Width) / float64(dst.Width()),
		cellH: float64(f.Height) / float64(dst.Height()),
	}

	for _, op := range f.Sprites() {
		r.drawSprite(dst, v, op)
	}
	if op, ok := f.Text(); ok {
		x, y := v.cell(op.Pos)
		dst.DrawText(x, y, op.Text, core.ColorBrightRed)
	}

	if f.Paused {
		drawBanner(dst, "PAUSED")
	}
}

// viewport maps play-field pixels to cells.
type viewport struct {
	cellW, cellH float64
}

// cell returns the cell containing pixel p.
func (v viewport) cell(p core.Vec) (int, int) {
	return int(p.X / v.cellW), int(p.Y / v.cellH)
}

// center returns the pixel at the center of cell (x, y).
func (v viewport) center(x, y int) core.Vec {
	return core.Vec{X: (float64(x) + 0.5) * v.cellW, Y: (float64(y) + 0.5) * v.cellH}
}

func (r *Renderer) drawSprite(dst *core.Screen, v viewport, op race.DrawOp) {
	scale := op.Scale
	if scale <= 0 {
		scale = 1
	}
	dest := core.RectAt(op.Pos, op.Src.W*scale, op.Src.H*scale)

	x0, y0 := v.cell(dest.Pos())
	x1, y1 := v.cell(core.Vec{X: dest.Right(), Y: dest.Bottom()})
	x0 = core.Clamp(x0-1, 0, dst.Width()-1)
	y0 = core.Clamp(y0-1, 0, dst.Height()-1)
	x1 = core.Clamp(x1+1, 0, dst.Width()-1)
	y1 = core.Clamp(y1+1, 0, dst.Height()-1)

	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			p := v.center(cx, cy)
			if p.X < dest.X || p.X >= dest.Right() || p.Y < dest.Y || p.Y >= dest.Bottom() {
				continue
			}
			sx := int(op.Src.X + (p.X-dest.X)/scale)
			sy := int(op.Src.Y + (p.Y-dest.Y)/scale)
			c := r.atlas.At(op.Sprite, sx, sy)
			if c.A == 0 {
				continue
			}
			dst.SetCell(cx, cy, Shade(c), Nearest(c))
		}
	}
}

// drawBanner writes a message in the middle of the screen on a blank strip.
func drawBanner(dst *core.Screen, msg string) {
	w := len(msg) + 4
	x := (dst.Width() - w) / 2
	y := dst.Height() / 2
	dst.FillRect(x, y-1, w, 3, ' ', core.ColorDefault)
	dst.DrawText(x+2, y, msg, core.ColorYellow)
}

// Shade picks a glyph for a pixel by its brightness.
func Shade(c color.RGBA) rune {
	lum := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	idx := lum * len(shades) / 256
	return shades[min(idx, len(shades)-1)]
}

// Nearest returns the palette color closest to c.
func Nearest(c color.RGBA) core.Color {
	best := core.ColorDefault
	bestDist := -1
	for _, p := range palette {
		dr := int(c.R) - int(p.rgb.R)
		dg := int(c.G) - int(p.rgb.G)
		db := int(c.B) - int(p.rgb.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = p.color, d
		}
	}
	return best
}
