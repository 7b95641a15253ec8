package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/minerunner/assets"
	"github.com/milk9111/minerunner/prefabs"
)

// LoadImage loads an image from assets or filesystem and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

// Preload loads every image a game spec refers to.
func Preload(spec *prefabs.GameSpec) error {
	for _, key := range ImageKeys(spec) {
		if _, err := LoadImage(key); err != nil {
			return fmt.Errorf("render: preload %s: %w", key, err)
		}
	}
	return nil
}

// ImageKeys lists the distinct image keys referenced by spec.
func ImageKeys(spec *prefabs.GameSpec) []string {
	if spec == nil {
		return nil
	}
	seen := map[string]bool{}
	var keys []string
	add := func(key string) {
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		keys = append(keys, key)
	}
	for _, layer := range spec.Layers {
		add(layer.Image)
	}
	for _, name := range sortedDefNames(spec.Player.Animation) {
		add(spec.Player.Animation.Defs[name].Sheet)
	}
	for _, name := range sortedDefNames(spec.Bat.Animation) {
		add(spec.Bat.Animation.Defs[name].Sheet)
	}
	add(spec.Spike.Image)
	for _, key := range spec.Spawn.Mineral.Options {
		add(spec.Minerals[key].Image)
	}
	return keys
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	return nil, fmt.Errorf("failed to load image %s", path)
}
