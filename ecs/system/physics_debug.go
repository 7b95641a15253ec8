package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

var (
	debugSolid   = cp.FColor{R: 0.1, G: 0.8, B: 0.1, A: 0.9}
	debugPlayer  = cp.FColor{R: 0.2, G: 0.5, B: 1, A: 0.9}
	debugProbe   = cp.FColor{R: 0.2, G: 1, B: 1, A: 0.9}
	debugHazard  = cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
	debugMineral = cp.FColor{R: 1, G: 0.85, B: 0.1, A: 0.9}
)

// DrawPhysicsDebug outlines every shape in the physics space.
func DrawPhysicsDebug(ps *PhysicsSystem, screen *ebiten.Image) {
	if ps == nil || ps.space == nil || screen == nil {
		return
	}
	cp.DrawSpace(ps.space, &physicsDebugDrawer{screen: screen, ps: ps})
}

// DrawRunDebug prints the run state and player pose in the corner.
func DrawRunDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	rs, ok := runState(w)
	if !ok {
		return
	}
	pose := "none"
	grounded := false
	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
			pose = p.Pose.String()
		}
		if pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind()); ok {
			grounded = pc.Grounded
		}
	}
	msg := fmt.Sprintf("tick %d score %d\npose %s grounded %v\nover %v paused %v", rs.Tick, rs.Score, pose, grounded, rs.GameOver, rs.PhysicsPaused)
	ebitenutil.DebugPrintAt(screen, msg, 4, 120)
}

type physicsDebugDrawer struct {
	screen *ebiten.Image
	ps     *PhysicsSystem
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], outline)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.9, G: 0.9, B: 0.9, A: 0.9}
}

// ShapeColor colours colliders by what touching them does.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if _, ok := d.ps.groundShapes[shape]; ok {
		return debugProbe
	}
	e, ok := d.ps.shapeOwners[shape]
	if !ok {
		return debugSolid
	}
	info := d.ps.entities[e]
	if info == nil {
		return debugSolid
	}
	switch info.kind {
	case component.CollisionPlayer:
		return debugPlayer
	case component.CollisionHazard:
		return debugHazard
	case component.CollisionMineral:
		return debugMineral
	default:
		return debugSolid
	}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	vector.StrokeLine(d.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, toNRGBA(c), false)
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
