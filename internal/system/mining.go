// internal/system/mining.go
package system

import (
	"time"

	"go-forager/internal/component"
	"go-forager/internal/entity"
	"go-forager/internal/event"
	"go-forager/internal/types"
)

// MiningSystem ведёт добычу: выбор цели по клику, отсчёт времени, отмена.
type MiningSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	duration        time.Duration
	reach           float64
}

func NewMiningSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, duration time.Duration, reach float64) *MiningSystem {
	s := &MiningSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		duration:        duration,
		reach:           reach,
	}
	eventDispatcher.Subscribe(event.PlayerCaught, s)
	return s
}

// OnEvent прерывает добычу, если игрока поймал враг.
func (s *MiningSystem) OnEvent(e event.Event) {
	if e.Type == event.PlayerCaught {
		s.Cancel()
	}
}

// HandleInput начинает добычу по нажатию и отменяет по отпусканию кнопки мыши.
func (s *MiningSystem) HandleInput(in component.Input) {
	if in.MouseReleased && s.ecs.Player.Mining {
		s.Cancel()
		return
	}
	if in.MousePressed && !s.ecs.Player.Mining {
		s.TryStart()
	}
}

// TryStart ищет целый блок рядом с игроком и начинает его добывать.
// Блоки перебираются по возрастанию ID, побеждает первый подходящий.
func (s *MiningSystem) TryStart() (types.EntityID, bool) {
	player := s.ecs.Player
	reachBox := player.Rect.Inflate(s.reach, s.reach)
	for _, id := range s.ecs.BlockIDs() {
		block := s.ecs.Blocks[id]
		if !block.Intact() || !reachBox.Intersects(block.Rect) {
			continue
		}
		player.Mining = true
		player.MiningElapsed = 0
		player.Target = id
		player.Facing = component.FacingMining
		player.MineAnim.Reset()
		s.eventDispatcher.Dispatch(event.Event{Type: event.MiningStarted, Data: id})
		return id, true
	}
	return 0, false
}

// Cancel прерывает добычу без награды.
func (s *MiningSystem) Cancel() {
	if !s.ecs.Player.Mining && s.ecs.Player.Target == 0 {
		return
	}
	s.ecs.Player.StopMining()
	s.eventDispatcher.Dispatch(event.Event{Type: event.MiningStopped})
}

// Update продвигает добычу на dt.
func (s *MiningSystem) Update(dt time.Duration) {
	player := s.ecs.Player
	if !player.Mining {
		return
	}

	// Цель могла исчезнуть из мира или уже разрушиться
	block, ok := s.ecs.Blocks[player.Target]
	if !ok || !block.Intact() {
		s.Cancel()
		return
	}

	player.MiningElapsed += dt
	player.MineAnim.Advance()
	if player.MiningElapsed < s.duration {
		return
	}

	target := player.Target
	player.StopMining()
	s.eventDispatcher.Dispatch(event.Event{Type: event.BlockMined, Data: target})
}

// Progress возвращает долю выполненной добычи в диапазоне [0, 1].
func (s *MiningSystem) Progress() float64 {
	player := s.ecs.Player
	if !player.Mining || s.duration <= 0 {
		return 0
	}
	p := float64(player.MiningElapsed) / float64(s.duration)
	if p > 1 {
		p = 1
	}
	return p
}
