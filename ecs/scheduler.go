package ecs

import (
	"fmt"
	"strings"
)

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) { f(w) }

// Scheduler runs its systems in insertion order.
type Scheduler struct {
	systems []System
	names   []string
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

// Add appends system, skipping nil. The name shown by Names is the
// system's type without package or pointer prefix.
func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
	s.names = append(s.names, systemName(system))
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.systems)
}

// Names lists the systems in run order.
func (s *Scheduler) Names() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.names...)
}

func systemName(system System) string {
	name := fmt.Sprintf("%T", system)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
