package system

import (
	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/defs"
	"go-forager/internal/entity"
	"go-forager/internal/event"
	"go-forager/internal/types"
	"go-forager/pkg/geom"
)

func newTestECS() *entity.ECS {
	ecs := entity.NewECS(
		geom.NewRect(0, 0, config.WorldWidth, config.WorldHeight),
		geom.NewRect(config.SafeMinX, config.SafeMinY, config.SafeSize, config.SafeSize),
	)
	ecs.Player.Rect = geom.NewRect(100, 100, config.PlayerSize, config.PlayerSize)
	ecs.Player.Speed = 5
	ecs.Player.MineAnim = component.NewAnimation(config.AnimationFrames, 0.25)
	return ecs
}

func addBlock(ecs *entity.ECS, kind defs.BlockKind, x, y float64, animated bool) types.EntityID {
	return ecs.AddBlock(component.NewBlock(kind, x, y, animated, 0.2, config.AnimationFrames))
}

// recorder запоминает все события заданных типов.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func record(d *event.Dispatcher, kinds ...event.EventType) *recorder {
	r := &recorder{}
	for _, t := range kinds {
		d.Subscribe(t, r)
	}
	return r
}
