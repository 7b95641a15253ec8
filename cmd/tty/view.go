package main

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/prefabs"
	"github.com/milk9111/minerunner/scene"
)

type cell struct{ w, h float64 }

// cellSize maps the logical screen onto an 80 column grid.
func cellSize(spec *prefabs.GameSpec) cell {
	w := float64(spec.Screen.Width) / 80
	return cell{w: w, h: w * 2}
}

var (
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHazard  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleScore   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorDarkRed).Bold(true)
	stylePrompt  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	mineralStyle = map[component.MineralKind]tcell.Style{
		component.MineralCopper: tcell.StyleDefault.Foreground(tcell.ColorOrange),
		component.MineralSilver: tcell.StyleDefault.Foreground(tcell.ColorSilver),
		component.MineralGold:   tcell.StyleDefault.Foreground(tcell.ColorGold),
	}
)

type view struct {
	screen tcell.Screen
	spec   *prefabs.GameSpec
	cell   cell
}

func newView(screen tcell.Screen, spec *prefabs.GameSpec) *view {
	return &view{screen: screen, spec: spec, cell: cellSize(spec)}
}

func (v *view) worldY(row int) float64 {
	return float64(row) * v.cell.h
}

func (v *view) put(x, y float64, r rune, style tcell.Style) {
	v.screen.SetContent(int(x/v.cell.w), int(y/v.cell.h), r, nil, style)
}

func (v *view) text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

func (v *view) draw(sc *scene.Scene) {
	w := sc.World()
	v.screen.Clear()

	groundRow := int(v.spec.World.GroundY / v.cell.h)
	cols := int(float64(v.spec.Screen.Width) / v.cell.w)
	for col := 0; col < cols; col++ {
		v.screen.SetContent(col, groundRow, '=', nil, styleGround)
	}

	ecs.ForEach2(w, component.ObstacleComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, o *component.Obstacle, t *component.Transform) {
		r := '^'
		if o.Kind == component.ObstacleBat {
			r = 'w'
		}
		v.put(t.X, t.Y, r, styleHazard)
	})
	ecs.ForEach2(w, component.MineralComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Mineral, t *component.Transform) {
		v.put(t.X, t.Y, '*', mineralStyle[m.Kind])
	})

	if player, ok := sc.Player(); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			style := stylePlayer
			if ecs.Has(w, player, component.TintComponent.Kind()) {
				style = styleHit
			}
			r := '@'
			if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok && p.Pose == component.PoseDuck {
				r = 'o'
			}
			v.put(t.X, t.Y, r, style)
		}
	}

	if rs := sc.RunState(); rs != nil {
		v.text(1, 0, strconv.Itoa(rs.Score), styleScore)
	}
	if e, ok := w.First(component.GameOverTextComponent.Kind()); ok {
		if text, ok := ecs.Get(w, e, component.GameOverTextComponent.Kind()); ok {
			mid := groundRow / 2
			v.text((cols-len([]rune(text.Title)))/2, mid-1, text.Title, styleTitle)
			v.text((cols-len([]rune(text.Prompt)))/2, mid+1, text.Prompt, stylePrompt)
		}
	}

	v.screen.Show()
}
