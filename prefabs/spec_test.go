package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadGameSpecEmbedded(t *testing.T) {
	spec, err := LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}

	if spec.Screen.Width != 320 || spec.Screen.Height != 180 || spec.Screen.TPS != 60 {
		t.Fatalf("unexpected screen %+v", spec.Screen)
	}
	if spec.World.GroundY != 164 {
		t.Fatalf("expected ground_y 164, got %v", spec.World.GroundY)
	}
	if spec.Player.JumpSpeed != 220 || spec.Player.SwipeThreshold != 10 {
		t.Fatalf("unexpected player tuning %+v", spec.Player)
	}
	if got := spec.Player.DuckHitbox; got.Width != 13.5 || got.Height != 12 || got.OffsetX != 2.25 || got.OffsetY != 6 {
		t.Fatalf("unexpected duck hitbox %+v", got)
	}
	if got := spec.Spawn.Mineral.Options; len(got) != 3 || got[2] != "gold" {
		t.Fatalf("unexpected mineral options %v", got)
	}
	if spec.Spawn.Mineral.PeriodMS != 1800 || spec.Spawn.Obstacle.PeriodMS != 1200 {
		t.Fatalf("unexpected spawn periods %+v", spec.Spawn)
	}
	if spec.HUD.GameOverTitle != "¡Perdiste!" {
		t.Fatalf("unexpected game over title %q", spec.HUD.GameOverTitle)
	}
	if got := spec.HUD.ScoreColor.RGBA8(); got != (color.RGBA{R: 0xff, G: 0xd7, A: 0xff}) {
		t.Fatalf("unexpected score colour %v", got)
	}
}

func TestPeriodTicks(t *testing.T) {
	cases := []struct {
		name string
		ms   int
		tps  int
		want int
	}{
		{"obstacle", 1200, 60, 72},
		{"mineral", 1800, 60, 108},
		{"pulse", 150, 60, 9},
		{"rounds", 10, 60, 1},
		{"floor_of_one", 1, 60, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PeriodTicks(c.ms, c.tps); got != c.want {
				t.Fatalf("PeriodTicks(%d, %d) = %d, want %d", c.ms, c.tps, got, c.want)
			}
		})
	}
}

func TestParseGameSpecValidation(t *testing.T) {
	base, err := Load(GameFile)
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(s string) string { return s },
		},
		{
			name:    "zero_jump",
			mutate:  func(s string) string { return strings.Replace(s, "jump_speed: 220", "jump_speed: 0", 1) },
			wantErr: "jump_speed",
		},
		{
			name:    "zero_obstacle_period",
			mutate:  func(s string) string { return strings.Replace(s, "period_ms: 1200", "period_ms: 0", 1) },
			wantErr: "obstacle period_ms",
		},
		{
			name:    "unknown_mineral_option",
			mutate:  func(s string) string { return strings.Replace(s, "[copper, silver, gold]", "[copper, diamond]", 1) },
			wantErr: "diamond",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseGameSpec([]byte(c.mutate(string(base))))
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", c.wantErr)
			}
			if !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected %q in %v", c.wantErr, err)
			}
		})
	}

	if _, err := ParseGameSpec([]byte("screen: [")); err == nil || errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected a decode error, got %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	spec, err := ParseGameSpec([]byte(strings.Replace(mustLoad(t, GameFile), `hazard_tint: "#FF0000"`, `hazard_tint: "#00FF0080"`, 1)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := spec.Player.HazardTint.RGBA8(); got != (color.RGBA{G: 0xff, A: 0x80}) {
		t.Fatalf("unexpected tint %v", got)
	}

	if _, err := ParseGameSpec([]byte(strings.Replace(mustLoad(t, GameFile), `hazard_tint: "#FF0000"`, `hazard_tint: "red"`, 1))); err == nil {
		t.Fatalf("expected invalid colour to fail")
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"spawn.tengo", "scripts/spawn.tengo", "prefabs/scripts/spawn.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if !strings.Contains(string(data), "__result") {
			t.Fatalf("%s does not look like the spawn script", name)
		}
	}
	if _, err := LoadScript("missing.tengo"); err == nil {
		t.Fatalf("expected missing script to fail")
	}
}

func TestWatcherReportsSpecEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "game.yaml" {
			t.Fatalf("unexpected event for %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close should be a no-op: %v", err)
	}
}

func mustLoad(t *testing.T, name string) string {
	t.Helper()
	data, err := Load(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return string(data)
}
