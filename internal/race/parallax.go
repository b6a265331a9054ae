package race

import (
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
)

// Layer is one endlessly scrolling background strip. It is drawn twice, side
// by side, and jumps back to 0 once the first copy has fully left the screen.
type Layer struct {
	Name   string
	X      float64 // Offset of the first copy
	Width  float64 // Unscaled image width
	Height float64 // Unscaled image height
	Speed  float64 // Leftward speed in pixels/second
	Scale  float64
}

// NewLayers builds the background layers described by cfg, back to front.
func NewLayers(cfg config.BackgroundConfig) []Layer {
	layers := make([]Layer, 0, len(cfg.Layers))
	for _, l := range cfg.Layers {
		layers = append(layers, Layer{
			Name:   l.Name,
			Width:  float64(l.Width),
			Height: float64(l.Height),
			Speed:  l.Speed,
			Scale:  cfg.Scale,
		})
	}
	return layers
}

// ScaledWidth returns the on-screen width of one copy.
func (l Layer) ScaledWidth() float64 {
	return l.Width * l.Scale
}

// Scroll moves the layer left by Speed*dt, wrapping to 0 once the first copy
// is completely off screen.
func (l Layer) Scroll(dt float64) Layer {
	l.X -= l.Speed * dt
	if l.X <= -l.ScaledWidth() {
		l.X = 0
	}
	return l
}

// Positions returns where the two copies are drawn.
func (l Layer) Positions() [2]core.Vec {
	return [2]core.Vec{
		{X: l.X, Y: 0},
		{X: l.X + l.ScaledWidth(), Y: 0},
	}
}

// Source returns the full image rectangle of the layer.
func (l Layer) Source() core.Rect {
	return core.NewRect(0, 0, l.Width, l.Height)
}
