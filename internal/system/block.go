// internal/system/block.go
package system

import (
	"time"

	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/entity"
	"go-forager/internal/event"
	"go-forager/internal/types"
)

// BlockSystem разрушает блоки, крутит анимацию разрушения и убирает обломки.
type BlockSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	policy          config.BrokenPolicy
	destroyDelay    time.Duration
}

func NewBlockSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, policy config.BrokenPolicy, destroyDelay time.Duration) *BlockSystem {
	s := &BlockSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		policy:          policy,
		destroyDelay:    destroyDelay,
	}
	eventDispatcher.Subscribe(event.BlockMined, s)
	return s
}

// OnEvent разрушает добытый блок.
func (s *BlockSystem) OnEvent(e event.Event) {
	if e.Type != event.BlockMined {
		return
	}
	if id, ok := e.Data.(types.EntityID); ok {
		s.Break(id)
	}
}

// Break запускает разрушение блока. Для видов с анимацией она начинается с первого
// кадра, остальные разрушаются сразу. Повторный вызов для уже разрушаемого блока
// ничего не делает.
func (s *BlockSystem) Break(id types.EntityID) bool {
	block, ok := s.ecs.Blocks[id]
	if !ok || !block.Intact() {
		return false
	}
	if block.Animated {
		block.Animating = true
		block.Frame.Reset()
		return true
	}
	s.markBroken(id, block, 0)
	return true
}

func (s *BlockSystem) markBroken(id types.EntityID, block *component.Block, delay time.Duration) {
	block.Animating = false
	block.Broken = true
	if s.policy == config.BrokenRemove {
		block.DestroyAt = s.ecs.GameTime + delay
		block.HasDeadline = true
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BlockBroken, Data: id})
}

// Update продвигает анимации и удаляет блоки с истёкшим сроком.
func (s *BlockSystem) Update() {
	for _, id := range s.ecs.BlockIDs() {
		block := s.ecs.Blocks[id]
		if block.Animating && block.Frame.Advance() {
			s.markBroken(id, block, s.destroyDelay)
		}
		if block.Broken && block.HasDeadline && s.ecs.GameTime >= block.DestroyAt {
			delete(s.ecs.Blocks, id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.BlockRemoved, Data: id})
		}
	}
}
