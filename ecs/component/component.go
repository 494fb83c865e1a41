// Package component holds the plain data types attached to game entities.
// Each type is registered once at package init through NewComponent, which
// hands out the storage id used by the ecs package.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes a component store inside a world.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the typed key for the store holding values of T.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

// Name is the label given at registration, used in builder errors.
func (k ComponentKind[T]) Name() string { return k.name }

// Valid is false for the zero kind, which never owns a store.
func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// ComponentHandle is the package-level registration of one component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers T under name and reserves the next store id.
func NewComponent[T any](name string) ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{
		id:   ComponentID(nextComponentID.Add(1)),
		name: name,
	}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }

func (h ComponentHandle[T]) Name() string { return h.kind.name }
