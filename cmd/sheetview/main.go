// Command sheetview previews one animation clip from game.yaml, scaled up
// with nearest filtering.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/prefabs"
)

const viewSize = 256

type sheetGame struct {
	name      string
	def       component.AnimationDef
	frame     int
	tick      int
	ticksPerF int
}

func (g *sheetGame) Update() error {
	if g.def.FrameCount <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerF {
		g.tick = 0
		g.frame = (g.frame + 1) % g.def.FrameCount
	}
	return nil
}

func (g *sheetGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	if g.def.Sheet == nil {
		return
	}
	x := (g.def.ColStart + g.frame) * g.def.FrameW
	y := g.def.Row * g.def.FrameH
	sub, ok := g.def.Sheet.SubImage(image.Rect(x, y, x+g.def.FrameW, y+g.def.FrameH)).(*ebiten.Image)
	if !ok {
		return
	}
	scale := float64(viewSize/2) / float64(max(g.def.FrameW, g.def.FrameH))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((viewSize-float64(g.def.FrameW)*scale)/2, (viewSize-float64(g.def.FrameH)*scale)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sub, op)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s frame %d/%d @%gfps", g.name, g.frame+1, g.def.FrameCount, g.def.FPS), 4, 4)
}

func (g *sheetGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// clips lists every animation in game.yaml as "owner.clip".
func clips(spec *prefabs.GameSpec) map[string]prefabs.AnimationSpec {
	out := map[string]prefabs.AnimationSpec{}
	for owner, anim := range map[string]prefabs.AnimationSpec{"player": spec.Player.Animation, "bat": spec.Bat.Animation} {
		for name, def := range anim.Defs {
			out[owner+"."+name] = prefabs.AnimationSpec{Current: name, Defs: map[string]prefabs.AnimationDefSpec{name: def}}
		}
	}
	return out
}

func main() {
	anim := flag.String("anim", "player.run", "clip to preview, as owner.clip")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatalf("sheetview: %v", err)
	}
	all := clips(spec)
	clip, ok := all[*anim]
	if !ok {
		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		sort.Strings(names)
		log.Fatalf("sheetview: unknown clip %q (have %s)", *anim, strings.Join(names, ", "))
	}

	def := clip.Defs[clip.Current]
	if _, err := render.LoadImage(def.Sheet); err != nil {
		log.Fatalf("sheetview: %v", err)
	}
	built, err := render.BuildAnimation(clip)
	if err != nil {
		log.Fatalf("sheetview: %v", err)
	}

	g := &sheetGame{name: *anim, def: built.Defs[built.Current], ticksPerF: 1}
	if g.def.FPS > 0 {
		g.ticksPerF = max(1, int(60/g.def.FPS))
	}
	ebiten.SetWindowSize(viewSize*2, viewSize*2)
	ebiten.SetWindowTitle("sheetview " + *anim)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
