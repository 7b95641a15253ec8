package main

import (
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/ecs/system"
	"github.com/milk9111/minerunner/prefabs"
	"github.com/milk9111/minerunner/scene"
)

type Game struct {
	scene    *scene.Scene
	renderer *system.RenderSystem
	debug    bool
	watcher  *prefabs.Watcher

	gameOverUI   *ebitenui.UI
	gameOverShow bool
}

func NewGame(spec *prefabs.GameSpec, seed uint64, debug bool) (*Game, error) {
	sc, err := scene.New(spec, scene.WithInput(system.NewEbitenInput()), scene.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	g := &Game{
		scene:      sc,
		renderer:   system.NewRenderSystem(spec),
		debug:      debug,
		gameOverUI: NewGameOverUI(spec),
	}
	if debug {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.reload()

	if err := g.scene.Tick(); err != nil {
		return err
	}

	_, g.gameOverShow = g.scene.World().First(component.GameOverTextComponent.Kind())
	if g.gameOverShow {
		g.gameOverUI.Update()
	}
	return nil
}

// reload applies edits to the prefabs directory picked up by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Printf("game: reload %v: %v", changed, err)
		return
	}
	if err := render.Preload(spec); err != nil {
		log.Printf("game: reload images: %v", err)
		return
	}
	if err := g.scene.SetSpec(spec); err != nil {
		log.Printf("game: apply reload: %v", err)
		return
	}
	g.renderer = system.NewRenderSystem(spec)
	g.gameOverUI = NewGameOverUI(spec)
	log.Printf("game: reloaded %v", changed)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.scene.World(), screen)
	if g.gameOverShow {
		g.gameOverUI.Draw(screen)
	}
	if g.debug {
		system.DrawPhysicsDebug(g.scene.Physics(), screen)
		system.DrawRunDebug(g.scene.World(), screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	spec := g.scene.Spec()
	return float64(spec.Screen.Width), float64(spec.Screen.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
