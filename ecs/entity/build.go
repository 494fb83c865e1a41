package entity

import (
	"fmt"

	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
)

// attach adds one component, naming the builder and the component on failure.
func attach[T any](w *ecs.World, e ecs.Entity, handle component.ComponentHandle[T], value *T, owner string) error {
	if err := ecs.Add(w, e, handle.Kind(), value); err != nil {
		return fmt.Errorf("%s: add %s: %w", owner, handle.Name(), err)
	}
	return nil
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
