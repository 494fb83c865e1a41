package entity

import (
	"github.com/milk9111/superanimalrun/ecs"
	"github.com/milk9111/superanimalrun/ecs/component"
	"github.com/milk9111/superanimalrun/tuning"
)

func NewPlatform(w *ecs.World, kind component.PlatformKind, x, y, width, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	err := firstErr(
		attach(w, e, component.PlatformComponent, &component.Platform{Kind: kind, Width: width, Height: height}, "platform"),
		attach(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}, "platform"),
	)
	return e, err
}

func NewCoin(w *ecs.World, x, y, size, phase float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	err := firstErr(
		attach(w, e, component.CoinComponent, &component.Coin{Width: size, Height: size, Phase: phase}, "coin"),
		attach(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}, "coin"),
	)
	return e, err
}

func NewGoal(w *ecs.World, cfg tuning.Config, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	err := firstErr(
		attach(w, e, component.GoalComponent, &component.Goal{Width: cfg.Goal.Width, Height: cfg.Goal.Height}, "goal"),
		attach(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}, "goal"),
	)
	return e, err
}

func NewCamera(w *ecs.World, cfg tuning.Config) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	err := firstErr(
		attach(w, e, component.CameraTagComponent, &component.CameraTag{}, "camera"),
		attach(w, e, component.CameraComponent, &component.Camera{Smoothness: cfg.Camera.Smoothness, Lead: cfg.Camera.Lead}, "camera"),
	)
	return e, err
}

func NewLevelBounds(w *ecs.World, width, height float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	return e, attach(w, e, component.LevelBoundsComponent, &component.LevelBounds{Width: width, Height: height}, "level")
}

// NewRun stores the scoreboard singleton.
func NewRun(w *ecs.World, run component.Run) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	return e, attach(w, e, component.RunComponent, &run, "run")
}

func NewStar(w *ecs.World, star component.Star) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	return e, attach(w, e, component.StarComponent, &star, "star")
}

func NewCloud(w *ecs.World, cloud component.Cloud) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	return e, attach(w, e, component.CloudComponent, &cloud, "cloud")
}

func NewMountain(w *ecs.World, mountain component.Mountain) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	return e, attach(w, e, component.MountainComponent, &mountain, "mountain")
}
