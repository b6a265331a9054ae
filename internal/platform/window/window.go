// Package window runs the race in a desktop window with Ebiten, drawing the
// race's sprite sheets at their native pixel size.
package window

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dasher/internal/assets"
	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
	"github.com/vovakirdan/dasher/internal/race"
)

// basicFontSize is the pixel height of basicfont.Face7x13.
const basicFontSize = 13

// Options configures a window session.
type Options struct {
	Config   config.DasherConfig
	Preset   config.DifficultyPreset
	TickRate int // Updates per second
	Scale    int // Window pixels per play-field pixel
	Logger   *log.Logger
}

// Game adapts a race to ebiten.Game.
type Game struct {
	race    *race.Game
	cfg     config.DasherConfig
	preset  config.DifficultyPreset
	sprites map[race.Sprite]*ebiten.Image
	face    text.Face
	keys    KeyReader
	dt      float64
	logger  *log.Logger
}

// New creates a window game. Sprite images are created lazily on the first
// Draw, since Ebiten images need a running graphics context.
func New(opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		race:   race.New(opts.Config),
		cfg:    opts.Config,
		preset: opts.Preset,
		face:   text.NewGoXFace(basicfont.Face7x13),
		keys:   ebitenKeys{},
		dt:     1 / float64(opts.TickRate),
		logger: logger,
	}
}

// Update samples the keyboard and advances the race by one tick.
func (g *Game) Update() error {
	if g.keys.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	in := Sample(g.keys)
	if in.Has(core.ActionRestart) && g.race.State().Terminal() {
		g.race.Reset()
		g.logger.Info("race started", "preset", g.preset)
		return nil
	}

	before := g.race.State()
	after := g.race.Update(g.dt, in)
	if !before.Terminal() && after.Terminal() {
		g.logger.Info("race finished",
			"outcome", after,
			"elapsed", fmt.Sprintf("%.2fs", g.race.Elapsed()),
			"frames", g.race.Frames(),
		)
	}
	return nil
}

// Draw renders the race's draw list.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.sprites == nil {
		g.sprites = loadSprites(assets.Build(g.cfg))
	}

	screen.Fill(colornames.Gray)

	f := g.race.Frame()
	for _, op := range f.Sprites() {
		g.drawSprite(screen, op)
	}
	if op, ok := f.Text(); ok {
		g.drawText(screen, op.Text, op.Pos, op.Size)
	}

	if f.Paused {
		g.drawText(screen, "PAUSED", core.Vec{X: float64(f.Width) / 2.5, Y: float64(f.Height) / 3}, race.EndTextSize)
	}
}

func (g *Game) drawSprite(screen *ebiten.Image, op race.DrawOp) {
	img, ok := g.sprites[op.Sprite]
	if !ok {
		return
	}
	src := image.Rect(
		int(op.Src.X), int(op.Src.Y),
		int(op.Src.Right()), int(op.Src.Bottom()),
	)
	sub, ok := img.SubImage(src).(*ebiten.Image)
	if !ok {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(op.Scale, op.Scale)
	opts.GeoM.Translate(op.Pos.X, op.Pos.Y)
	screen.DrawImage(sub, opts)
}

func (g *Game) drawText(screen *ebiten.Image, msg string, pos core.Vec, size int) {
	scale := float64(size) / basicFontSize
	opts := &text.DrawOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(pos.X, pos.Y)
	opts.ColorScale.ScaleWithColor(colornames.Red)
	text.Draw(screen, msg, g.face, opts)
}

// Layout returns the fixed play-field size; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Race returns the race being played.
func (g *Game) Race() *race.Game {
	return g.race
}

// loadSprites uploads every atlas image to the GPU.
func loadSprites(atlas *assets.Atlas) map[race.Sprite]*ebiten.Image {
	sprites := make(map[race.Sprite]*ebiten.Image, atlas.Len())
	for _, name := range atlas.Names() {
		img, _ := atlas.Image(name)
		sprites[name] = ebiten.NewImageFromImage(img)
	}
	return sprites
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(opts Options) error {
	g := New(opts)

	scale := max(opts.Scale, 1)
	ebiten.SetWindowSize(opts.Config.Window.Width*scale, opts.Config.Window.Height*scale)
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(1/g.dt + 0.5))

	g.logger.Info("race started", "preset", opts.Preset, "tps", ebiten.TPS())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
