package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	want := DefaultConfig()

	if cfg.Window != want.Window {
		t.Errorf("Window = %+v, expected %+v", cfg.Window, want.Window)
	}
	if cfg.Physics != want.Physics {
		t.Errorf("Physics = %+v, expected %+v", cfg.Physics, want.Physics)
	}
	if cfg.Player.Sheet != want.Player.Sheet || cfg.Player.JumpSheet != want.Player.JumpSheet {
		t.Errorf("Player sheets differ: %+v", cfg.Player)
	}
	if cfg.Nebulae.Count != want.Nebulae.Count || cfg.Nebulae.Spacing != want.Nebulae.Spacing ||
		cfg.Nebulae.Velocity != want.Nebulae.Velocity || cfg.Nebulae.Sheet != want.Nebulae.Sheet {
		t.Errorf("Nebulae = %+v, expected %+v", cfg.Nebulae, want.Nebulae)
	}
	if cfg.Collision != want.Collision || cfg.Behavior != want.Behavior {
		t.Errorf("Collision/Behavior differ: %+v %+v", cfg.Collision, cfg.Behavior)
	}
	if len(cfg.Background.Layers) != len(want.Background.Layers) {
		t.Errorf("Background layers = %d, expected %d", len(cfg.Background.Layers), len(want.Background.Layers))
	}

	durations := []struct {
		name      string
		got, want float64
	}{
		{"player.frame_duration", cfg.Player.FrameDuration, want.Player.FrameDuration},
		{"player.jump_frame_duration", cfg.Player.JumpFrameDuration, want.Player.JumpFrameDuration},
		{"nebulae.frame_duration", cfg.Nebulae.FrameDuration, want.Nebulae.FrameDuration},
	}
	for _, d := range durations {
		if math.Abs(d.got-d.want) > 1e-6 {
			t.Errorf("%s = %v, expected %v", d.name, d.got, d.want)
		}
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DasherConfig)
		want   string
	}{
		{"zero gravity", func(c *DasherConfig) { c.Physics.Gravity = 0 }, "physics.gravity"},
		{"downward jump", func(c *DasherConfig) { c.Physics.JumpImpulse = 600 }, "physics.jump_impulse"},
		{"rightward nebulae", func(c *DasherConfig) { c.Nebulae.Velocity = 200 }, "nebulae.velocity"},
		{"zero frame duration", func(c *DasherConfig) { c.Nebulae.FrameDuration = 0 }, "nebulae.frame_duration"},
		{"max frame past sheet", func(c *DasherConfig) { c.Player.MaxFrame = 6 }, "player.max_frame"},
		{"negative max frame", func(c *DasherConfig) { c.Player.JumpMaxFrame = -1 }, "player.jump_max_frame"},
		{"negative padding", func(c *DasherConfig) { c.Collision.Padding = -1 }, "collision.padding"},
		{"padding swallows nebula", func(c *DasherConfig) { c.Collision.Padding = 50 }, "leaves no collision area"},
		{"empty sheet", func(c *DasherConfig) { c.Nebulae.Sheet.Columns = 0 }, "nebulae.sheet"},
		{"no nebulae", func(c *DasherConfig) { c.Nebulae.Count = 0 }, "nebulae.count"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error = %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Physics.Gravity = -1
	cfg.Nebulae.Count = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "physics.gravity") || !strings.Contains(msg, "nebulae.count") {
		t.Errorf("Validate() should report every violation, got %q", msg)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("nebulae:\n  count: 3\nbehavior:\n  freeze_on_end: true\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Nebulae.Count != 3 {
		t.Errorf("Nebulae.Count = %d, expected 3", cfg.Nebulae.Count)
	}
	if !cfg.Behavior.FreezeOnEnd {
		t.Error("Behavior.FreezeOnEnd should be set")
	}
	// Untouched keys keep their defaults
	if cfg.Nebulae.Spacing != 300 || cfg.Physics.Gravity != 1000 {
		t.Errorf("defaults should survive a partial file, got %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("window: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
	if _, err := Parse([]byte("physics:\n  gravity: -5\n")); err == nil {
		t.Error("Parse() should fail validation")
	}
}

func TestResolveCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("nebulae:\n  velocity: -350\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Nebulae.Velocity != -350 {
		t.Errorf("Nebulae.Velocity = %v, expected -350", cfg.Nebulae.Velocity)
	}

	if _, _, err := Resolve(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Resolve() should fail for a missing custom path")
	}
}

func TestResolveFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Window.Width != 512 {
		t.Errorf("Window.Width = %d, expected 512", cfg.Window.Width)
	}
}

func TestResolveLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "dasher.yaml"), []byte("nebulae:\n  count: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if source != filepath.Join("configs", "dasher.yaml") {
		t.Errorf("source = %q", source)
	}
	if cfg.Nebulae.Count != 4 {
		t.Errorf("Nebulae.Count = %d, expected 4", cfg.Nebulae.Count)
	}
}

func TestResolveRejectsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	path := filepath.Join(home, ".dasher", "dasher.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("physics:\n  gravity: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, source, err := Resolve("")
	if err == nil {
		t.Fatal("Resolve() should fail for an invalid user config")
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if !strings.Contains(err.Error(), "physics.gravity") {
		t.Errorf("error %q should name the invalid field", err)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if _, err := Parse(data); err != nil {
		t.Errorf("marshaled defaults should parse: %v", err)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   string
		velocity float64
		spacing  float64
	}{
		{"", -200, 300},
		{"normal", -200, 300},
		{"easy", -200, 450},
		{"hard", -240, 375},
	}

	for _, tc := range tests {
		t.Run(tc.preset, func(t *testing.T) {
			p, ok := ParsePreset(tc.preset)
			if !ok {
				t.Fatalf("ParsePreset(%q) failed", tc.preset)
			}
			cfg := DefaultConfig()
			ApplyPreset(&cfg, p)
			if math.Abs(cfg.Nebulae.Velocity-tc.velocity) > 1e-9 || math.Abs(cfg.Nebulae.Spacing-tc.spacing) > 1e-9 {
				t.Errorf("velocity/spacing = %v/%v, expected %v/%v",
					cfg.Nebulae.Velocity, cfg.Nebulae.Spacing, tc.velocity, tc.spacing)
			}
		})
	}

	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dasher.yaml")
	if err := os.WriteFile(path, []byte("nebulae:\n  count: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("nebulae:\n  count: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event path = %q, expected %q", got, w.Path())
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change event received")
	}
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
