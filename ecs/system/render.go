package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
	"github.com/milk9111/minerunner/ecs/render"
	"github.com/milk9111/minerunner/prefabs"
	"golang.org/x/image/font/basicfont"
)

type RenderSystem struct {
	face        *text.GoXFace
	scoreColor  color.RGBA
	shadowColor color.RGBA
}

func NewRenderSystem(spec *prefabs.GameSpec) *RenderSystem {
	r := &RenderSystem{
		face:        text.NewGoXFace(basicfont.Face7x13),
		scoreColor:  color.RGBA{R: 0xff, G: 0xd7, A: 0xff},
		shadowColor: color.RGBA{A: 0xff},
	}
	if spec != nil {
		r.scoreColor = spec.HUD.ScoreColor.RGBA8()
		r.shadowColor = spec.HUD.ShadowColor.RGBA8()
	}
	return r
}

// Draw paints the world back to front by render layer, then the score.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerIndex(w, entities[i]), layerIndex(w, entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Hidden {
			continue
		}
		if s.Image == nil && s.Key != "" {
			s.Image = render.GetImage(s.Key)
		}
		if s.Image == nil {
			continue
		}

		if layer, ok := ecs.Get(w, e, component.ScrollLayerComponent.Kind()); ok {
			drawScrollLayer(screen, s.Image, layer)
			continue
		}

		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		if s.FlipX {
			sx = -sx
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(t.X, t.Y)
		if tint, ok := ecs.Get(w, e, component.TintComponent.Kind()); ok {
			op.ColorScale.ScaleWithColor(tint.Color)
		}

		screen.DrawImage(img, op)
	}

	ecs.ForEach(w, component.ScoreLabelComponent.Kind(), func(e ecs.Entity, label *component.ScoreLabel) {
		if label.Visible {
			r.drawScore(screen, label)
		}
	})
}

// drawScrollLayer tiles img across the screen width, shifted left by the
// layer offset.
func drawScrollLayer(screen, img *ebiten.Image, layer *component.ScrollLayer) {
	tile := layer.TileWidth
	if tile <= 0 {
		tile = float64(img.Bounds().Dx())
	}
	if tile <= 0 {
		return
	}
	sy := 1.0
	if layer.Height > 0 && img.Bounds().Dy() > 0 {
		sy = layer.Height / float64(img.Bounds().Dy())
	}
	sx := tile / float64(img.Bounds().Dx())

	width := float64(screen.Bounds().Dx())
	for x := -math.Mod(layer.Offset, tile); x < width; x += tile {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, layer.Y)
		screen.DrawImage(img, op)
	}
}

func (r *RenderSystem) drawScore(screen *ebiten.Image, label *component.ScoreLabel) {
	scale := label.Scale
	if scale <= 0 {
		scale = 1
	}
	for _, pass := range []struct {
		dx, dy float64
		c      color.RGBA
	}{
		{1, 1, r.shadowColor},
		{0, 0, r.scoreColor},
	} {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(label.X+pass.dx, label.Y+pass.dy)
		op.ColorScale.ScaleWithColor(pass.c)
		text.Draw(screen, label.Text, r.face, op)
	}
}

func layerIndex(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
