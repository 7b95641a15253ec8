package ecs

import "fmt"

// Entity is a generational handle: the low 32 bits index the entity store
// and the high 32 bits count how often that slot has been recycled. The
// zero Entity never refers to a live entity.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

const generationShift = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<generationShift | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(e & 0xffffffff)
}

func (e Entity) generation() generation {
	return generation(e >> generationShift)
}

// String formats the handle as id/generation.
func (e Entity) String() string {
	return fmt.Sprintf("%d/%d", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e.id() != 0
}
