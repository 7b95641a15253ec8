package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw hitboxes and hot reload prefabs/game.yaml")
	seed := flag.Uint64("seed", 1, "spawn generator seed")
	scale := flag.Int("scale", 3, "window scale over the 320x180 screen")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	if err := render.Preload(spec); err != nil {
		log.Fatalf("main: %v", err)
	}

	if *scale < 1 {
		*scale = 1
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.Screen.Width**scale, spec.Screen.Height**scale)
	ebiten.SetWindowTitle(spec.Name)
	ebiten.SetTPS(spec.Screen.TPS)

	game, err := NewGame(spec, *seed, *debug)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
