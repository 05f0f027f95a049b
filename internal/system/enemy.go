// internal/system/enemy.go
package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"go-forager/internal/entity"
	"go-forager/internal/event"
	"go-forager/pkg/geom"
)

// EnemySystem ведёт врагов к игроку с простым обходом препятствий.
// Это жадная локальная эвристика, а не поиск пути: в вогнутом препятствии враг
// может застрять навсегда.
type EnemySystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Steer возвращает смещение врага за тик: прямо к цели, иначе в сторону
// (направление, повёрнутое на 90°), иначе ноль.
func Steer(from geom.Rect, target geom.Rect, speed float64, obstacles []geom.Rect) (float64, float64) {
	fx, fy := from.Center()
	tx, ty := target.Center()
	dir := mgl64.Vec2{tx - fx, ty - fy}
	if dir.Len() == 0 {
		return 0, 0
	}
	unit := dir.Normalize()

	forward := unit.Mul(speed)
	if !collidesAny(from.Moved(forward.X(), forward.Y()), obstacles) {
		return forward.X(), forward.Y()
	}

	side := mgl64.Vec2{-unit.Y(), unit.X()}.Mul(speed)
	if !collidesAny(from.Moved(side.X(), side.Y()), obstacles) {
		return side.X(), side.Y()
	}
	return 0, 0
}

func collidesAny(r geom.Rect, obstacles []geom.Rect) bool {
	for _, o := range obstacles {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

func (s *EnemySystem) Update() {
	if len(s.ecs.Enemies) == 0 {
		return
	}
	obstacles := s.ecs.Obstacles()
	player := s.ecs.Player
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		dx, dy := Steer(enemy.Rect, player.Rect, enemy.Speed, obstacles)
		enemy.Rect.Translate(dx, dy)

		// Поймавший игрока враг исчезает, а добыча прерывается
		if enemy.Rect.Intersects(player.Rect) {
			delete(s.ecs.Enemies, id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerCaught, Data: id})
		}
	}
}
