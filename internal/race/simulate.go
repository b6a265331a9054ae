package race

import (
	"fmt"

	"github.com/vovakirdan/dasher/internal/core"
)

// Pilot decides the input for the next frame of a race.
type Pilot func(g *Game) core.InputFrame

// Idle is a pilot that never presses anything.
func Idle(*Game) core.InputFrame {
	return core.NewInputFrame()
}

// SimResult summarizes a headless run.
type SimResult struct {
	State    RaceState
	Elapsed  float64 // Race time in seconds
	Frames   int
	Collided bool
}

// Simulate steps g with a fixed dt until the race ends or duration seconds
// have been simulated. It panics if dt is not positive.
func Simulate(g *Game, dt, duration float64, pilot Pilot) SimResult {
	if dt <= 0 {
		panic(fmt.Sprintf("race: non-positive simulation step %v", dt))
	}
	if pilot == nil {
		pilot = Idle
	}

	steps := int(duration/dt + 0.5)
	for i := 0; i < steps && !g.State().Terminal(); i++ {
		g.Update(dt, pilot(g))
	}

	return SimResult{
		State:    g.State(),
		Elapsed:  g.Elapsed(),
		Frames:   g.Frames(),
		Collided: g.Collided(),
	}
}
