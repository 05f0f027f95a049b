// internal/app/game.go
package app

import (
	"time"

	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/entity"
	"go-forager/internal/event"
	"go-forager/internal/system"
	"go-forager/internal/utils"
	"go-forager/pkg/geom"
)

// Game - одна партия: мир, системы и камера.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Tuning          config.Tuning
	Camera          *system.Camera

	MovementSystem *system.MovementSystem
	MiningSystem   *system.MiningSystem
	BlockSystem    *system.BlockSystem
	EnemySystem    *system.EnemySystem
	SpawnerSystem  *system.SpawnerSystem
	PlayerSystem   *system.PlayerSystem
}

// NewGame создаёт новую партию. Порядок подписок важен: блок разрушается
// раньше, чем начисляется опыт за него.
func NewGame(tuning config.Tuning, rng *utils.PRNGService) *Game {
	ecs := entity.NewECS(
		geom.NewRect(0, 0, config.WorldWidth, config.WorldHeight),
		geom.NewRect(config.SafeMinX, config.SafeMinY, config.SafeSize, config.SafeSize),
	)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Tuning:          tuning,
		Camera:          system.NewCamera(config.ScreenWidth, config.ScreenHeight),
	}

	g.createWalls()
	g.createPlayer()

	g.MovementSystem = system.NewMovementSystem(ecs)
	g.MiningSystem = system.NewMiningSystem(ecs, eventDispatcher, tuning.MiningDuration(), tuning.Mining.Reach)
	g.BlockSystem = system.NewBlockSystem(ecs, eventDispatcher, tuning.Blocks.BrokenPolicy, tuning.DestroyDelay())
	g.PlayerSystem = system.NewPlayerSystem(ecs, eventDispatcher, tuning.XP.PerBlock, tuning.XP.FirstNeed, tuning.XP.NeedStep)
	g.EnemySystem = system.NewEnemySystem(ecs, eventDispatcher)
	g.SpawnerSystem = system.NewSpawnerSystem(ecs, eventDispatcher, rng, tuning, system.DefaultSpawnArea())

	g.Camera.Follow(ecs.Player.Rect, ecs.World)
	return g
}

// createWalls строит рамку мира и стены внутренней зоны.
func (g *Game) createWalls() {
	const (
		m = config.FrameMargin
		t = config.WallThickness
		w = config.WorldWidth
		h = config.WorldHeight
	)
	g.ECS.Walls = []component.Wall{
		{Rect: geom.NewRect(m, m, w-2*m, t), Color: config.FrameWallColor},
		{Rect: geom.NewRect(m, h-m-t, w-2*m, t), Color: config.FrameWallColor},
		{Rect: geom.NewRect(m, m, t, h-2*m), Color: config.FrameWallColor},
		{Rect: geom.NewRect(w-m-t, m, t, h-2*m), Color: config.FrameWallColor},

		// Внутренняя зона: северная и западная стены голубые, южная и восточная жёлтые
		{Rect: geom.NewRect(config.SafeMinX, config.SafeMinY, config.SafeSize, t), Color: config.NorthWallColor},
		{Rect: geom.NewRect(config.SafeMinX, config.SafeMaxY, config.SafeSize, t), Color: config.SouthWallColor},
		{Rect: geom.NewRect(config.SafeMinX, config.SafeMinY, t, config.SafeSize+t), Color: config.NorthWallColor},
		{Rect: geom.NewRect(config.SafeMaxX, config.SafeMinY+t, t, config.SafeSize), Color: config.SouthWallColor},
	}
}

func (g *Game) createPlayer() {
	player := g.ECS.Player
	player.Rect = geom.NewRectCentered(config.WorldWidth/2, config.WorldHeight/2, config.PlayerSize, config.PlayerSize)
	player.Speed = g.Tuning.Player.Speed
	player.Facing = component.FacingIdle
	player.MineAnim = component.NewAnimation(config.AnimationFrames, g.Tuning.Player.MineAnimStep)
}

// Update продвигает партию на один тик.
func (g *Game) Update(dt time.Duration, in component.Input) {
	g.ECS.GameTime += dt

	g.MiningSystem.HandleInput(in)
	g.MovementSystem.Update(in)
	g.MiningSystem.Update(dt)
	g.BlockSystem.Update()
	if g.Tuning.Enemies.Enabled {
		g.EnemySystem.Update()
	}
	g.SpawnerSystem.Update(dt)

	g.Camera.Follow(g.ECS.Player.Rect, g.ECS.World)
}

// MiningProgress возвращает долю выполненной добычи для HUD.
func (g *Game) MiningProgress() float64 {
	return g.MiningSystem.Progress()
}

// Stats возвращает уровень, опыт и число добытых блоков.
func (g *Game) Stats() component.PlayerStateComponent {
	return *g.ECS.PlayerState
}
