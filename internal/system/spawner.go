// internal/system/spawner.go
package system

import (
	"time"

	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/defs"
	"go-forager/internal/entity"
	"go-forager/internal/event"
	"go-forager/internal/types"
	"go-forager/internal/utils"
	"go-forager/pkg/geom"
)

// enemyClearance - насколько увеличивается хитбокс игрока при проверке места для врага,
// чтобы враг не появлялся вплотную.
const enemyClearance = 100

// SpawnArea - диапазон координат левого верхнего угла при спавне, включительно.
type SpawnArea struct {
	MinX, MinY, MaxX, MaxY int
}

// DefaultSpawnArea - внутренняя зона мира с отступами от её стен.
func DefaultSpawnArea() SpawnArea {
	return SpawnArea{
		MinX: config.SafeMinX + config.SpawnInset,
		MinY: config.SafeMinY + config.SpawnInset,
		MaxX: config.SafeMaxX - config.SpawnFarInset,
		MaxY: config.SafeMaxY - config.SpawnFarInset,
	}
}

// SpawnerSystem периодически добавляет блоки и врагов в свободные места.
type SpawnerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	tuning          config.Tuning
	area            SpawnArea
	blockTimer      *IntervalTimer
	enemyTimer      *IntervalTimer
}

func NewSpawnerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, tuning config.Tuning, area SpawnArea) *SpawnerSystem {
	return &SpawnerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		tuning:          tuning,
		area:            area,
		blockTimer:      NewIntervalTimer(tuning.BlockSpawnInterval()),
		enemyTimer:      NewIntervalTimer(tuning.EnemySpawnInterval()),
	}
}

// Update проверяет таймеры спавна. Неудачная попытка просто ждёт следующего срабатывания.
func (s *SpawnerSystem) Update(dt time.Duration) {
	if s.blockTimer.Tick(dt) {
		s.SpawnBlock()
	}
	if s.tuning.Enemies.Enabled && s.enemyTimer.Tick(dt) {
		s.SpawnEnemy()
	}
}

// pickKind подбрасывает монетку между рудой и деревом, затем выбирает вид внутри категории.
func (s *SpawnerSystem) pickKind() defs.BlockKind {
	category := defs.CategoryOre
	if s.tuning.Blocks.Trees && !s.rng.Bool() {
		category = defs.CategoryTree
	}
	kinds := defs.KindsOf(category)
	return kinds[s.rng.Intn(len(kinds))]
}

// SpawnBlock пытается поставить новый блок. При неудаче мир не меняется.
func (s *SpawnerSystem) SpawnBlock() (types.EntityID, bool) {
	if limit := s.tuning.Blocks.MaxAlive; limit > 0 && len(s.ecs.Blocks) >= limit {
		return 0, false
	}
	kind := s.pickKind()
	animated := s.tuning.IsAnimated(string(kind))

	for i := 0; i < s.tuning.Blocks.SpawnAttempts; i++ {
		x := float64(s.rng.IntRange(s.area.MinX, s.area.MaxX))
		y := float64(s.rng.IntRange(s.area.MinY, s.area.MaxY))
		block := component.NewBlock(kind, x, y, animated, s.tuning.Blocks.FrameStep, config.AnimationFrames)

		if s.blockedForBlock(block.Rect) {
			continue
		}
		id := s.ecs.AddBlock(block)
		s.eventDispatcher.Dispatch(event.Event{Type: event.BlockSpawned, Data: id})
		return id, true
	}
	return 0, false
}

func (s *SpawnerSystem) blockedForBlock(r geom.Rect) bool {
	if r.Intersects(s.ecs.Player.Rect) {
		return true
	}
	for _, b := range s.ecs.Blocks {
		if r.Intersects(b.Rect) {
			return true
		}
	}
	// Блок поверх врага запер бы его навсегда
	for _, e := range s.ecs.Enemies {
		if r.Intersects(e.Rect) {
			return true
		}
	}
	for _, w := range s.ecs.Walls {
		if r.Intersects(w.Rect) {
			return true
		}
	}
	return false
}

// SpawnEnemy пытается поставить нового врага. При неудаче мир не меняется.
func (s *SpawnerSystem) SpawnEnemy() (types.EntityID, bool) {
	if limit := s.tuning.Enemies.MaxAlive; limit > 0 && len(s.ecs.Enemies) >= limit {
		return 0, false
	}
	for i := 0; i < s.tuning.Enemies.SpawnAttempts; i++ {
		x := float64(s.rng.IntRange(s.area.MinX, s.area.MaxX))
		y := float64(s.rng.IntRange(s.area.MinY, s.area.MaxY))
		rect := geom.NewRect(x, y, config.EnemySize, config.EnemySize)

		if s.blockedForEnemy(rect) {
			continue
		}
		id := s.ecs.AddEnemy(&component.Enemy{Rect: rect, Speed: s.tuning.Enemies.Speed})
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
		return id, true
	}
	return 0, false
}

func (s *SpawnerSystem) blockedForEnemy(r geom.Rect) bool {
	if r.Intersects(s.ecs.Player.Rect.Inflate(enemyClearance, enemyClearance)) {
		return true
	}
	for _, e := range s.ecs.Enemies {
		if r.Intersects(e.Rect) {
			return true
		}
	}
	for _, b := range s.ecs.Blocks {
		if r.Intersects(b.Rect) {
			return true
		}
	}
	for _, w := range s.ecs.Walls {
		if r.Intersects(w.Rect) {
			return true
		}
	}
	return false
}
