package race

import (
	"math"
	"testing"

	"github.com/vovakirdan/dasher/internal/config"
	"github.com/vovakirdan/dasher/internal/core"
)

const testDT = 1.0 / 60.0

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func inputWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// clearTrack moves every nebula far to the right so nothing can collide.
func clearTrack(g *Game) {
	for i := range g.nebulae {
		g.nebulae[i].Pos.X = 1e6 + float64(i)*1000
	}
}

func TestNewInitialState(t *testing.T) {
	g := New(config.DefaultConfig())

	p := g.Player()
	if p.Pos.X != 192 || p.Pos.Y != 122 {
		t.Errorf("player at %v, expected (192, 122)", p.Pos)
	}
	if !p.Grounded || p.Velocity != 0 {
		t.Errorf("player should start at rest on the ground, got %+v", p)
	}

	nebulae := g.Nebulae()
	if len(nebulae) != 10 {
		t.Fatalf("len(Nebulae()) = %d, expected 10", len(nebulae))
	}
	for i, n := range nebulae {
		if want := 512 + float64(i)*300; n.Pos.X != want {
			t.Errorf("nebula %d x = %v, expected %v", i, n.Pos.X, want)
		}
		if n.Pos.Y != 150 {
			t.Errorf("nebula %d y = %v, expected 150", i, n.Pos.Y)
		}
		if n.Anim.Rect.W != 100 || n.Anim.Rect.H != 100 {
			t.Errorf("nebula %d frame = %vx%v, expected 100x100", i, n.Anim.Rect.W, n.Anim.Rect.H)
		}
	}

	if g.FinishLine() != 3212 {
		t.Errorf("FinishLine() = %v, expected 3212", g.FinishLine())
	}
	if g.State() != Playing {
		t.Errorf("State() = %v, expected Playing", g.State())
	}
}

func TestNebulaeAndFinishLineScroll(t *testing.T) {
	g := New(config.DefaultConfig())
	g.Update(0.5, noInput())

	if got := g.Nebulae()[0].Pos.X; got != 412 {
		t.Errorf("nebula 0 x = %v, expected 412", got)
	}
	if got := g.FinishLine(); got != 3112 {
		t.Errorf("FinishLine() = %v, expected 3112", got)
	}
}

func TestJumpIsVisibleSameFrame(t *testing.T) {
	g := New(config.DefaultConfig())
	dt := 1.0 / 12.0

	g.Update(dt, inputWith(core.ActionJump))
	p := g.Player()
	if p.Velocity != -600 {
		t.Errorf("Velocity = %v, expected -600", p.Velocity)
	}
	if want := 122 - 600*dt; math.Abs(p.Pos.Y-want) > 1e-9 {
		t.Errorf("Pos.Y = %v, expected %v", p.Pos.Y, want)
	}

	// The jump frame still counts as grounded for animation
	if g.run.Frame != 1 || g.jump.Frame != 0 {
		t.Errorf("run/jump frame = %d/%d, expected 1/0", g.run.Frame, g.jump.Frame)
	}

	g.Update(1.0/6.0, noInput())
	if g.run.Frame != 1 || g.jump.Frame != 1 {
		t.Errorf("airborne frame should advance the jump sheet, run/jump = %d/%d", g.run.Frame, g.jump.Frame)
	}
	if g.Player().Grounded {
		t.Error("player should be airborne after the second frame")
	}
}

func TestNoJumpLoses(t *testing.T) {
	g := New(config.DefaultConfig())

	for i := 0; i < 600 && g.State() == Playing; i++ {
		g.Update(testDT, noInput())
	}

	if g.State() != Lost {
		t.Fatalf("State() = %v, expected Lost", g.State())
	}
	x := g.Nebulae()[0].Pos.X
	if x > 260 || x < 260-200*testDT-1e-9 {
		t.Errorf("first hit with nebula 0 at x = %v, expected just inside 260", x)
	}
}

func TestCollisionIsSticky(t *testing.T) {
	g := New(config.DefaultConfig())
	for g.State() == Playing {
		g.Update(testDT, noInput())
	}
	before := g.Nebulae()[0].Pos.X

	// Run long enough for every nebula to pass the player
	for i := 0; i < 60*20; i++ {
		if got := g.Update(testDT, noInput()); got != Lost {
			t.Fatalf("frame %d: State() = %v, expected Lost", i, got)
		}
	}
	if !g.Collided() {
		t.Error("Collided() should stay true")
	}
	if after := g.Nebulae()[0].Pos.X; after >= before {
		t.Errorf("nebulae should keep scrolling after the race ends, x %v -> %v", before, after)
	}
}

func TestFreezeOnEnd(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Behavior.FreezeOnEnd = true
	g := New(cfg)
	for g.State() == Playing {
		g.Update(testDT, noInput())
	}

	before := g.Nebulae()
	finish := g.FinishLine()
	for i := 0; i < 30; i++ {
		g.Update(testDT, noInput())
	}
	after := g.Nebulae()

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("nebula %d changed after the race ended: %+v -> %+v", i, before[i], after[i])
		}
	}
	if g.FinishLine() != finish {
		t.Errorf("FinishLine() moved from %v to %v", finish, g.FinishLine())
	}
}

func TestWinBoundary(t *testing.T) {
	tests := []struct {
		name     string
		finish   float64
		expected RaceState
	}{
		{"finish line reaches player exactly", 292, Won},
		{"finish line passes player", 250, Won},
		{"finish line just short", 292.5, Playing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New(config.DefaultConfig())
			clearTrack(g)
			g.finishLine = tc.finish

			// velocity -200 over 0.5s moves the finish line by -100
			if got := g.Update(0.5, noInput()); got != tc.expected {
				t.Errorf("Update() = %v, expected %v (finish %v, player %v)",
					got, tc.expected, g.FinishLine(), g.Player().Pos.X)
			}
		})
	}
}

func TestCollisionBeatsWin(t *testing.T) {
	g := New(config.DefaultConfig())
	g.finishLine = g.Player().Pos.X
	g.nebulae[0].Pos.X = 200

	if got := g.Update(testDT, noInput()); got != Lost {
		t.Errorf("Update() = %v, expected Lost when both conditions hold", got)
	}
}

func TestWonRaceIgnoresLaterOverlap(t *testing.T) {
	g := New(config.DefaultConfig())
	g.finishLine = g.Player().Pos.X
	if got := g.Update(testDT, noInput()); got != Won {
		t.Fatalf("Update() = %v, expected Won", got)
	}

	g.nebulae[0].Pos.X = 200
	if got := g.Update(testDT, noInput()); got != Won {
		t.Errorf("Update() = %v after an overlap, expected Won", got)
	}
	if g.Collided() {
		t.Error("Collided() should stay false once the race is won")
	}
}

func TestAutopilotWinsScenario(t *testing.T) {
	g := New(config.DefaultConfig())

	for i := 0; i < 60*20 && g.State() == Playing; i++ {
		g.Update(testDT, Autopilot(g))
	}

	if g.State() != Won {
		t.Fatalf("State() = %v after %.2fs, expected Won", g.State(), g.Elapsed())
	}
	if g.Collided() {
		t.Error("Collided() should be false on a win")
	}
	if g.FinishLine() > g.Player().Pos.X {
		t.Errorf("finish line %v should have reached player %v", g.FinishLine(), g.Player().Pos.X)
	}
	// (3212 - 192) / 200
	if math.Abs(g.Elapsed()-15.1) > 0.05 {
		t.Errorf("Elapsed() = %v, expected about 15.1", g.Elapsed())
	}

	// A reached outcome is final
	for i := 0; i < 120; i++ {
		if got := g.Update(testDT, noInput()); got != Won {
			t.Fatalf("State() = %v after winning, expected Won", got)
		}
	}
	if g.Collided() {
		t.Error("Collided() should be false after a win")
	}
}

func TestAutopilotPresets(t *testing.T) {
	for _, preset := range []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyHard} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := config.DefaultConfig()
			config.ApplyPreset(&cfg, preset)
			g := New(cfg)

			for i := 0; i < 60*40 && g.State() == Playing; i++ {
				g.Update(testDT, Autopilot(g))
			}
			if g.State() != Won {
				t.Errorf("State() = %v, expected Won", g.State())
			}
		})
	}
}

func TestDash(t *testing.T) {
	tests := []struct {
		name     string
		realDash bool
		moved    bool
	}{
		{"classic dash is a no-op", false, false},
		{"real dash moves the player", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Behavior.RealDash = tc.realDash
			g := New(cfg)
			clearTrack(g)

			g.Update(testDT, inputWith(core.ActionJump))
			for i := 0; i < 10; i++ {
				g.Update(testDT, inputWith(core.ActionDash))
			}

			moved := g.Player().Pos.X != 192
			if moved != tc.moved {
				t.Errorf("player x = %v, moved = %v, expected %v", g.Player().Pos.X, moved, tc.moved)
			}
		})
	}
}

func TestGroundedDashIgnored(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Behavior.RealDash = true
	g := New(cfg)
	clearTrack(g)

	g.Update(testDT, inputWith(core.ActionDash))
	if g.Player().Pos.X != 192 {
		t.Errorf("dash on the ground moved the player to %v", g.Player().Pos.X)
	}
}

func TestPause(t *testing.T) {
	g := New(config.DefaultConfig())

	g.Update(testDT, inputWith(core.ActionPause))
	if !g.Paused() {
		t.Fatal("Paused() should be true after the pause action")
	}
	x := g.Nebulae()[0].Pos.X
	for i := 0; i < 10; i++ {
		g.Update(testDT, noInput())
	}
	if g.Nebulae()[0].Pos.X != x || g.Frames() != 0 {
		t.Error("a paused race should not advance")
	}
	if !g.Frame().Paused {
		t.Error("Frame().Paused should be set")
	}

	g.Update(testDT, inputWith(core.ActionPause))
	if g.Paused() {
		t.Error("second pause action should resume")
	}
	if g.Nebulae()[0].Pos.X == x {
		t.Error("the resuming frame should advance the race")
	}
}

func TestReset(t *testing.T) {
	g := New(config.DefaultConfig())
	for g.State() == Playing {
		g.Update(testDT, noInput())
	}

	g.Reset()
	fresh := New(config.DefaultConfig())
	if g.State() != Playing || g.Collided() {
		t.Errorf("Reset() left state %v, collided %v", g.State(), g.Collided())
	}
	if g.FinishLine() != fresh.FinishLine() || g.Player() != fresh.Player() || g.Elapsed() != 0 {
		t.Error("Reset() should restore the starting positions")
	}
}

func TestUpdatePanicsOnNegativeDelta(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Update() with negative dt should panic")
		}
	}()
	New(config.DefaultConfig()).Update(-0.01, noInput())
}

func TestRaceStateStrings(t *testing.T) {
	tests := []struct {
		state    RaceState
		name     string
		message  string
		terminal bool
	}{
		{Playing, "Playing", "", false},
		{Lost, "Lost", "Game Over!", true},
		{Won, "Won", "YOU WIN!", true},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.name {
			t.Errorf("String() = %q, expected %q", got, tc.name)
		}
		if got := tc.state.Message(); got != tc.message {
			t.Errorf("%v.Message() = %q, expected %q", tc.state, got, tc.message)
		}
		if got := tc.state.Terminal(); got != tc.terminal {
			t.Errorf("%v.Terminal() = %v, expected %v", tc.state, got, tc.terminal)
		}
	}
}
