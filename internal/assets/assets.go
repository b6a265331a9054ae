// Package assets draws placeholder sprite sheets in memory. Each sheet has
// the size and frame grid given by the configuration, so the animation
// rectangles produced by the race sample sensible regions.
package assets

import (
	"image"
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/dasher/internal/anim"
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/race"
)

// Atlas holds one image per sprite name.
type Atlas struct {
	images map[race.Sprite]*image.RGBA
}

// Build generates every sheet the race can reference.
func Build(cfg config.DasherConfig) *Atlas {
	a := &Atlas{images: make(map[race.Sprite]*image.RGBA)}

	a.images[race.SpriteRun] = runnerSheet(cfg.Player.Sheet, false)
	a.images[race.SpriteJump] = runnerSheet(cfg.Player.JumpSheet, true)
	a.images[race.SpriteNebula] = nebulaSheet(cfg.Nebulae.Sheet)

	for i, l := range cfg.Background.Layers {
		a.images[race.Sprite(l.Name)] = layerImage(l.Width, l.Height, i, len(cfg.Background.Layers))
	}
	return a
}

// Image returns the image for a sprite.
func (a *Atlas) Image(s race.Sprite) (image.Image, bool) {
	img, ok := a.images[s]
	if !ok {
		return nil, false
	}
	return img, true
}

// At returns the color of a sprite's pixel, or transparent when the sprite
// is unknown or the point lies outside it.
func (a *Atlas) At(s race.Sprite, x, y int) color.RGBA {
	img, ok := a.images[s]
	if !ok || !image.Pt(x, y).In(img.Bounds()) {
		return color.RGBA{}
	}
	return img.RGBAAt(x, y)
}

// Len returns the number of sprites in the atlas.
func (a *Atlas) Len() int {
	return len(a.images)
}

// Names returns the sprite names in the atlas, sorted.
func (a *Atlas) Names() []race.Sprite {
	names := make([]race.Sprite, 0, len(a.images))
	for name := range a.images {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// runnerSheet draws a stick runner in every frame of the sheet. Running
// frames swing the legs; jumping frames tuck them.
func runnerSheet(sh anim.Sheet, jumping bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sh.Width, sh.Height))
	fw, fh := int(sh.FrameWidth()), int(sh.FrameHeight())

	for row := 0; row < sh.Rows; row++ {
		for col := 0; col < sh.Columns; col++ {
			ox, oy := col*fw, row*fh
			cx := ox + fw/2

			// Head and torso
			fillCircle(img, cx, oy+fh/5, fh/10, colornames.Peachpuff)
			fillRect(img, cx-fw/10, oy+fh/5+fh/10, fw/5, fh*2/5, colornames.Orange)

			// Scarf trails behind and flaps with the frame
			flap := (col % 2) * fh / 32
			fillRect(img, cx-fw/3, oy+fh/3+flap, fw/4, fh/24+1, colornames.Crimson)

			hip := oy + fh*7/10
			legLen := fh * 3 / 10
			if jumping {
				fillRect(img, cx-fw/8, hip, fw/4, legLen/2, colornames.Saddlebrown)
				continue
			}
			swing := float64(col) / float64(max(sh.Columns, 1)) * 2 * math.Pi
			stride := int(math.Sin(swing) * float64(fw) / 6)
			fillRect(img, cx-fw/16+stride, hip, fw/8, legLen, colornames.Saddlebrown)
			fillRect(img, cx-fw/16-stride, hip, fw/8, legLen, colornames.Sienna)
		}
	}
	return img
}

// nebulaSheet draws a pulsing glow whose radius follows the column.
func nebulaSheet(sh anim.Sheet) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sh.Width, sh.Height))
	fw, fh := int(sh.FrameWidth()), int(sh.FrameHeight())
	size := min(fw, fh)

	for row := 0; row < sh.Rows; row++ {
		for col := 0; col < sh.Columns; col++ {
			cx, cy := col*fw+fw/2, row*fh+fh/2
			phase := float64(col) / float64(max(sh.Columns, 1)) * 2 * math.Pi
			r := int(float64(size)*0.3 + math.Sin(phase)*float64(size)*0.06)
			fillCircle(img, cx, cy, r, colornames.Mediumorchid)
			fillCircle(img, cx, cy, r*3/5, colornames.Violet)
			fillCircle(img, cx, cy, r/4, colornames.Lavenderblush)
		}
	}
	return img
}

// layerImage draws a strip of building silhouettes. Index 0 is the farthest
// layer and is opaque; nearer layers leave the sky transparent.
func layerImage(w, h, index, total int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	palette := []color.RGBA{colornames.Darkslateblue, colornames.Slateblue, colornames.Dimgray}
	fill := palette[min(index, len(palette)-1)]

	if index == 0 {
		fillRect(img, 0, 0, w, h, colornames.Midnightblue)
	}

	if total > 0 && index == total-1 {
		// Foreground is the street
		ground := h / 8
		fillRect(img, 0, h-ground, w, ground, fill)
		for x := 0; x < w; x += 32 {
			fillRect(img, x, h-ground, 16, 2, colornames.Gold)
		}
		return img
	}

	const buildingW = 24
	for i, x := 0, 0; x < w; i, x = i+1, x+buildingW+4 {
		bh := h/4 + ((i*37+index*53)%(h/3+1))
		fillRect(img, x, h-bh, buildingW, bh, fill)
		for wy := h - bh + 6; wy < h-6; wy += 12 {
			if (i+wy)%3 != 0 {
				fillRect(img, x+6, wy, 4, 4, colornames.Khaki)
			}
		}
	}
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	b := image.Rect(cx-r, cy-r, cx+r+1, cy+r+1).Intersect(img.Bounds())
	for py := b.Min.Y; py < b.Max.Y; py++ {
		for px := b.Min.X; px < b.Max.X; px++ {
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(px, py, c)
			}
		}
	}
}
