package ecs

import "fmt"

// Entity is a generational handle. The low 32 bits hold the slot and the
// high 32 bits count how many times that slot has been reused, so a handle
// kept past DestroyEntity stops matching once the slot is recycled.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

// String prints slot and generation, e.g. "12v3".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.id(), e.generation())
}

// Valid is false for the zero handle; slot 0 is never handed out.
func (e Entity) Valid() bool {
	return e.id() > 0
}
