package core

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	c := NewClock()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if dt := c.Tick(start); dt != 0 {
		t.Errorf("first Tick() = %v, expected 0", dt)
	}

	if dt := c.Tick(start.Add(16 * time.Millisecond)); dt != 0.016 {
		t.Errorf("Tick() = %v, expected 0.016", dt)
	}

	// Going backwards yields zero, never a negative delta
	if dt := c.Tick(start); dt != 0 {
		t.Errorf("Tick() backwards = %v, expected 0", dt)
	}

	// Long stalls are capped
	if dt := c.Tick(start.Add(5 * time.Second)); dt != DefaultMaxDelta {
		t.Errorf("Tick() after stall = %v, expected %v", dt, DefaultMaxDelta)
	}

	c.Reset()
	if dt := c.Tick(start.Add(10 * time.Second)); dt != 0 {
		t.Errorf("Tick() after Reset = %v, expected 0", dt)
	}
}

func TestClockUncapped(t *testing.T) {
	c := &Clock{}
	start := time.Unix(0, 0)
	c.Tick(start)
	if dt := c.Tick(start.Add(2 * time.Second)); dt != 2 {
		t.Errorf("uncapped Tick() = %v, expected 2", dt)
	}
}
