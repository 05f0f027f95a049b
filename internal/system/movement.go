// internal/system/movement.go
package system

import (
	"go-forager/internal/component"
	"go-forager/internal/entity"
	"go-forager/pkg/geom"
)

// MoveAndCollide сдвигает r на (dx, dy) сначала по горизонтали, затем по вертикали.
// После каждого шага r прижимается вплотную к препятствию со стороны движения.
// При нескольких пересечениях побеждает последнее препятствие в списке.
func MoveAndCollide(r *geom.Rect, dx, dy float64, obstacles []geom.Rect) {
	if dx != 0 {
		r.X += dx
		for _, o := range obstacles {
			if !r.Intersects(o) {
				continue
			}
			if dx > 0 {
				r.SetRight(o.Left())
			} else {
				r.SetLeft(o.Right())
			}
		}
	}

	if dy != 0 {
		r.Y += dy
		for _, o := range obstacles {
			if !r.Intersects(o) {
				continue
			}
			if dy > 0 {
				r.SetBottom(o.Top())
			} else {
				r.SetTop(o.Bottom())
			}
		}
	}
}

// MovementSystem двигает игрока по вводу с клавиатуры
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(in component.Input) {
	player := s.ecs.Player
	// Пока игрок копает, он стоит на месте
	if player.Mining {
		return
	}

	dx, dy := 0.0, 0.0
	player.Facing = component.FacingIdle
	if in.Left {
		dx -= player.Speed
		player.Facing = component.FacingLeft
	}
	if in.Right {
		dx += player.Speed
		player.Facing = component.FacingRight
	}
	if in.Up {
		dy -= player.Speed
	}
	if in.Down {
		dy += player.Speed
	}
	if dx == 0 && dy == 0 {
		return
	}

	MoveAndCollide(&player.Rect, dx, dy, s.ecs.Obstacles())
}
