// internal/system/player_system.go
package system

import (
	"go-forager/internal/entity"
	"go-forager/internal/event"
)

// PlayerSystem отвечает за опыт и уровни игрока.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	xpPerBlock      int
	needStep        int
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, xpPerBlock, firstNeed, needStep int) *PlayerSystem {
	ecs.PlayerState.Level = 1
	ecs.PlayerState.CurrentXP = 0
	ecs.PlayerState.XPToNextLevel = firstNeed
	s := &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		xpPerBlock:      xpPerBlock,
		needStep:        needStep,
	}
	eventDispatcher.Subscribe(event.BlockMined, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.BlockMined {
		return
	}
	s.ecs.PlayerState.BlocksMined++
	s.AwardXP(s.xpPerBlock)
}

// AwardXP начисляет опыт. Если опыта хватает на несколько уровней,
// они все повышаются в этом же вызове.
func (s *PlayerSystem) AwardXP(amount int) {
	state := s.ecs.PlayerState
	if amount <= 0 {
		return
	}
	state.CurrentXP += amount
	for state.XPToNextLevel > 0 && state.CurrentXP >= state.XPToNextLevel {
		state.CurrentXP -= state.XPToNextLevel
		state.Level++
		state.XPToNextLevel += s.needStep
		s.eventDispatcher.Dispatch(event.Event{Type: event.LevelUp, Data: state.Level})
	}
}
