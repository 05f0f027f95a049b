// internal/entity/ecs.go
package entity

import (
	"sort"
	"time"

	"go-forager/internal/component"
	"go-forager/internal/types"
	"go-forager/pkg/geom"
)

// ECS - всё изменяемое состояние одной партии.
// Блоки и враги хранятся в мапах по ID: членство уникально, порядок не важен.
type ECS struct {
	GameTime    time.Duration // игровые часы, идут только в режиме игры
	NextID      types.EntityID
	World       geom.Rect
	SafeZone    geom.Rect
	Player      *component.Player
	PlayerState *component.PlayerStateComponent
	Walls       []component.Wall
	Blocks      map[types.EntityID]*component.Block
	Enemies     map[types.EntityID]*component.Enemy
}

func NewECS(world, safeZone geom.Rect) *ECS {
	return &ECS{
		NextID:      1,
		World:       world,
		SafeZone:    safeZone,
		Player:      &component.Player{},
		PlayerState: &component.PlayerStateComponent{},
		Blocks:      make(map[types.EntityID]*component.Block),
		Enemies:     make(map[types.EntityID]*component.Enemy),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddBlock регистрирует блок и возвращает его ID.
func (ecs *ECS) AddBlock(b *component.Block) types.EntityID {
	id := ecs.NewEntity()
	ecs.Blocks[id] = b
	return id
}

// AddEnemy регистрирует врага и возвращает его ID.
func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	id := ecs.NewEntity()
	ecs.Enemies[id] = e
	return id
}

// BlockIDs возвращает ID блоков по возрастанию.
// Нужен там, где важен детерминированный порядок обхода (выбор цели добычи).
func (ecs *ECS) BlockIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Blocks))
	for id := range ecs.Blocks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// EnemyIDs возвращает ID врагов по возрастанию.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Enemies))
	for id := range ecs.Enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Obstacles собирает хитбоксы стен и блоков: сначала стены, затем блоки по ID.
func (ecs *ECS) Obstacles() []geom.Rect {
	rects := make([]geom.Rect, 0, len(ecs.Walls)+len(ecs.Blocks))
	for _, w := range ecs.Walls {
		rects = append(rects, w.Rect)
	}
	for _, id := range ecs.BlockIDs() {
		rects = append(rects, ecs.Blocks[id].Rect)
	}
	return rects
}
