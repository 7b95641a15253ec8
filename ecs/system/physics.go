package system

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/minerunner/ecs"
	"github.com/milk9111/minerunner/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypePlayerGround
	collisionTypeSolid
	collisionTypeHazard
	collisionTypeMineral
)

// groundSensorDepth is how far below the collider the ground probe reaches.
const groundSensorDepth = 2.0

type PhysicsSystem struct {
	space         *cp.Space
	dt            float64
	handlersReady bool

	entities     map[ecs.Entity]*bodyInfo
	shapeOwners  map[*cp.Shape]ecs.Entity
	groundShapes map[*cp.Shape]ecs.Entity

	grounded map[ecs.Entity]bool
	contacts []ecs.CollisionEvent
}

type bodyInfo struct {
	body        *cp.Body
	mainShape   *cp.Shape
	groundShape *cp.Shape
	static      bool
	kind        component.CollisionKind
}

// NewPhysicsSystem creates a space with downward gravity stepped at tps
// ticks per second.
func NewPhysicsSystem(gravity float64, tps int) *PhysicsSystem {
	if tps <= 0 {
		tps = 60
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		space:        space,
		dt:           1.0 / float64(tps),
		entities:     make(map[ecs.Entity]*bodyInfo),
		shapeOwners:  make(map[*cp.Shape]ecs.Entity),
		groundShapes: make(map[*cp.Shape]ecs.Entity),
		grounded:     make(map[ecs.Entity]bool),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.space == nil {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	if rs, ok := runState(w); ok && rs.PhysicsPaused {
		return
	}

	clear(ps.grounded)
	ps.contacts = ps.contacts[:0]

	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.flushPlayerContacts(w)
	ps.publishContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	groundHandler := ps.space.NewCollisionHandler(collisionTypePlayerGround, collisionTypeSolid)
	groundHandler.UserData = ps
	groundHandler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		playerEntity, ok := sys.groundShapes[shapeA]
		if !ok {
			playerEntity, ok = sys.groundShapes[shapeB]
			if !ok {
				return true
			}
		}
		sys.grounded[playerEntity] = true
		return true
	}

	overlap := func(kind ecs.CollisionEventKind) cp.CollisionBeginFunc {
		return func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return true
			}
			shapeA, shapeB := arb.Shapes()
			player, okA := sys.shapeOwners[shapeA]
			other, okB := sys.shapeOwners[shapeB]
			if !okA || !okB {
				return true
			}
			sys.contacts = append(sys.contacts, ecs.CollisionEvent{Player: player, Other: other, Kind: kind})
			return true
		}
	}

	hazardHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeHazard)
	hazardHandler.UserData = ps
	hazardHandler.BeginFunc = overlap(ecs.CollisionEventHitHazard)

	mineralHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeMineral)
	mineralHandler.UserData = ps
	mineralHandler.BeginFunc = overlap(ecs.CollisionEventCollect)

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(e, transform, bodyComp)
			if info == nil {
				continue
			}
			ps.entities[e] = info
		} else if bodyComp.Dirty {
			ps.rebuildShapes(e, info, bodyComp)
		}

		bodyComp.Dirty = false
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
	}
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	if bodyComp.Width <= 0 || bodyComp.Height <= 0 {
		return nil
	}

	info := &bodyInfo{static: bodyComp.Static, kind: bodyComp.Collision}

	switch {
	case bodyComp.Static:
		// Static shapes live on the space's static body in world coordinates.
		bb := colliderBB(bodyComp)
		bb.L += transform.X
		bb.R += transform.X
		bb.B += transform.Y
		bb.T += transform.Y
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetCollisionType(collisionType(bodyComp.Collision))
		shape.SetSensor(bodyComp.Sensor)
		ps.space.AddShape(shape)
		info.body = ps.space.StaticBody
		info.mainShape = shape
		ps.shapeOwners[shape] = e
		return info
	case bodyComp.Kinematic:
		info.body = cp.NewKinematicBody()
	default:
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		info.body = cp.NewBody(mass, cp.INFINITY)
	}

	info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	info.body.SetVelocity(bodyComp.VelocityX, bodyComp.VelocityY)
	ps.space.AddBody(info.body)
	ps.addShapes(e, info, bodyComp)
	return info
}

func (ps *PhysicsSystem) addShapes(e ecs.Entity, info *bodyInfo, bodyComp *component.PhysicsBody) {
	shape := cp.NewBox2(info.body, colliderBB(bodyComp), 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetCollisionType(collisionType(bodyComp.Collision))
	shape.SetSensor(bodyComp.Sensor)
	ps.space.AddShape(shape)
	info.mainShape = shape
	ps.shapeOwners[shape] = e

	if bodyComp.Collision == component.CollisionPlayer {
		ground := ps.createGroundSensor(bodyComp, info.body)
		ps.space.AddShape(ground)
		info.groundShape = ground
		ps.groundShapes[ground] = e
	}
}

// rebuildShapes swaps the collider of a live body, keeping its position
// and velocity.
func (ps *PhysicsSystem) rebuildShapes(e ecs.Entity, info *bodyInfo, bodyComp *component.PhysicsBody) {
	if info.static || bodyComp.Width <= 0 || bodyComp.Height <= 0 {
		return
	}
	ps.removeShapes(info)
	ps.addShapes(e, info, bodyComp)
}

func (ps *PhysicsSystem) removeShapes(info *bodyInfo) {
	for _, shape := range []*cp.Shape{info.mainShape, info.groundShape} {
		if shape == nil {
			continue
		}
		ps.space.RemoveShape(shape)
		delete(ps.shapeOwners, shape)
		delete(ps.groundShapes, shape)
	}
	info.mainShape = nil
	info.groundShape = nil
}

func (ps *PhysicsSystem) createGroundSensor(bodyComp *component.PhysicsBody, body *cp.Body) *cp.Shape {
	groundBB := cp.BB{
		L: bodyComp.OffsetX - bodyComp.Width*0.45,
		B: bodyComp.OffsetY + bodyComp.Height/2.0,
		R: bodyComp.OffsetX + bodyComp.Width*0.45,
		T: bodyComp.OffsetY + bodyComp.Height/2.0 + groundSensorDepth,
	}

	groundShape := cp.NewBox2(body, groundBB, 0)
	groundShape.SetSensor(true)
	groundShape.SetCollisionType(collisionTypePlayerGround)
	return groundShape
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil || bodyComp.Static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

func (ps *PhysicsSystem) flushPlayerContacts(w *ecs.World) {
	ecs.ForEach(w, component.PlayerCollisionComponent.Kind(), func(e ecs.Entity, pc *component.PlayerCollision) {
		pc.Grounded = ps.grounded[e]
	})
}

// publishContacts emits the overlaps that began during the last step, in
// entity order so runs with the same seed replay identically.
func (ps *PhysicsSystem) publishContacts(w *ecs.World) {
	if len(ps.contacts) == 0 {
		return
	}
	sort.SliceStable(ps.contacts, func(i, j int) bool {
		return uint64(ps.contacts[i].Other) < uint64(ps.contacts[j].Other)
	})
	events := w.Events()
	for _, c := range ps.contacts {
		if !w.IsAlive(c.Player) || !w.IsAlive(c.Other) {
			continue
		}
		events.Push(ecs.Event{Type: ecs.EventTypeCollision, Data: c})
	}
	ps.contacts = ps.contacts[:0]
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		ps.removeShapes(info)
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
		delete(ps.grounded, e)
	}
}

// colliderBB is the collider box in body-local coordinates.
func colliderBB(bodyComp *component.PhysicsBody) cp.BB {
	hw, hh := bodyComp.Width/2, bodyComp.Height/2
	return cp.BB{
		L: bodyComp.OffsetX - hw,
		B: bodyComp.OffsetY - hh,
		R: bodyComp.OffsetX + hw,
		T: bodyComp.OffsetY + hh,
	}
}

func collisionType(kind component.CollisionKind) cp.CollisionType {
	switch kind {
	case component.CollisionPlayer:
		return collisionTypePlayer
	case component.CollisionHazard:
		return collisionTypeHazard
	case component.CollisionMineral:
		return collisionTypeMineral
	default:
		return collisionTypeSolid
	}
}
