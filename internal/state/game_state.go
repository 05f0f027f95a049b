// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/ui"
)

// GameState - экран партии: мир и HUD.
type GameState struct {
	sm          *StateMachine
	levelBar    *ui.PlayerLevelIndicator
	miningBar   *ui.ProgressBar
	pauseButton *ui.PauseButton
	debug       bool
}

func NewGameState(sm *StateMachine) *GameState {
	miningX := float32(config.ScreenWidth-config.MiningBarWidth) / 2
	return &GameState{
		sm:          sm,
		levelBar:    ui.NewPlayerLevelIndicator(sm.ctx.Fonts.Small),
		miningBar:   ui.NewProgressBar(miningX, config.MiningBarY, config.MiningBarWidth, config.MiningBarHeight, config.MiningBarColor),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-30, 30, 10, config.ButtonColor),
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(dt time.Duration, in component.Input) error {
	session := g.sm.ctx.Session

	// Клик по кнопке паузы не должен начинать добычу
	if g.pauseButton.IsClicked(in.MouseX, in.MouseY, in.MousePressed) {
		in.MousePressed = false
		in.PauseToggled = true
	}
	if in.DebugToggled {
		g.debug = !g.debug
	}

	session.Update(dt, in)
	if session.Mode == component.ModePaused {
		g.sm.SetState(NewPauseState(g.sm, g))
	}
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.sm.ctx.Session.Game
	if game == nil {
		return
	}
	g.sm.ctx.Renderer.Draw(screen, game.ECS, game.Camera)

	stats := game.Stats()
	g.levelBar.Draw(screen, stats.Level, stats.CurrentXP, stats.XPToNextLevel)
	if game.ECS.Player.Mining {
		g.miningBar.Draw(screen, game.MiningProgress())
	}
	g.pauseButton.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nblocks: %d enemies: %d\nmined: %d",
			ebiten.ActualTPS(), len(game.ECS.Blocks), len(game.ECS.Enemies), stats.BlocksMined))
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
