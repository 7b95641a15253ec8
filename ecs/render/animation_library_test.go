package render

import (
	"testing"

	"github.com/milk9111/minerunner/prefabs"
)

func TestBuildAnimationFromGameSpec(t *testing.T) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}

	anim, err := BuildAnimation(spec.Player.Animation)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if anim.Current != "run" || !anim.Playing {
		t.Fatalf("expected run playing, got %+v", anim)
	}
	down, ok := anim.Defs["down"]
	if !ok || down.SheetKey != "minerdown.png" || down.FrameCount != 6 || down.FPS != 10 || !down.Loop {
		t.Fatalf("unexpected down clip %+v", down)
	}
	if down.Sheet != nil {
		t.Fatalf("sheet should stay nil when the image was never loaded")
	}

	bat, err := BuildAnimation(spec.Bat.Animation)
	if err != nil {
		t.Fatalf("build bat: %v", err)
	}
	if fly := bat.Defs["fly"]; fly.FrameCount != 4 || fly.FPS != 8 {
		t.Fatalf("unexpected fly clip %+v", fly)
	}
}

func TestBuildAnimationErrors(t *testing.T) {
	cases := []struct {
		name string
		spec prefabs.AnimationSpec
	}{
		{"no_clips", prefabs.AnimationSpec{}},
		{"no_frames", prefabs.AnimationSpec{Defs: map[string]prefabs.AnimationDefSpec{"run": {FrameW: 16, FrameH: 16}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := BuildAnimation(c.spec); err == nil {
				t.Fatalf("expected error")
			}
		})
	}

	anim, err := BuildAnimation(prefabs.AnimationSpec{
		Current: "missing",
		Defs:    map[string]prefabs.AnimationDefSpec{"idle": {FrameCount: 1, FrameW: 8, FrameH: 8}},
	})
	if err != nil || anim.Current != "idle" {
		t.Fatalf("expected fallback to the first clip, got %q err=%v", anim.Current, err)
	}
}

func TestImageKeys(t *testing.T) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load game spec: %v", err)
	}
	keys := ImageKeys(spec)
	want := map[string]bool{
		"background.png": true, "groundBase.png": true, "ground.png": true,
		"miner.png": true, "minerdown.png": true, "bat.png": true,
		"spike.png": true, "copper.png": true, "silver.png": true, "gold.png": true,
	}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for _, k := range keys {
		if !want[k] {
			t.Fatalf("unexpected key %q", k)
		}
	}
}

func TestAnimationLibrary(t *testing.T) {
	lib := NewAnimationLibrary()
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatal(err)
	}
	anim, err := BuildAnimation(spec.Bat.Animation)
	if err != nil {
		t.Fatal(err)
	}
	lib.Register("bat", anim)
	lib.Register("", anim)

	if got := lib.Keys(); len(got) != 1 || got[0] != "bat" {
		t.Fatalf("unexpected keys %v", got)
	}
	if _, ok := lib.Get("bat"); !ok {
		t.Fatalf("expected bat animation")
	}
	if _, ok := lib.Get("miner"); ok {
		t.Fatalf("did not expect miner animation")
	}
}
