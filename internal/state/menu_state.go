// internal/state/menu_state.go
package state

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/ui"
)

// MenuState - главное меню: Start и Quit, ниже лучший забег.
type MenuState struct {
	sm     *StateMachine
	start  *ui.Button
	quit   *ui.Button
	best   string
	mx, my int
}

func NewMenuState(sm *StateMachine) *MenuState {
	buttons := ui.NewButtonColumn(config.MenuButtonsY, sm.ctx.Fonts.Regular, "Start", "Quit")
	return &MenuState{sm: sm, start: buttons[0], quit: buttons[1]}
}

func (m *MenuState) Enter() {
	m.best = ""
	if m.sm.ctx.Best == nil {
		return
	}
	run, ok, err := m.sm.ctx.Best.BestRun()
	if err != nil {
		log.Warn("cannot load best run", "err", err)
		return
	}
	if ok {
		m.best = fmt.Sprintf("Best: level %d, %d blocks", run.Level, run.BlocksMined)
	}
}

func (m *MenuState) Update(dt time.Duration, in component.Input) error {
	m.mx, m.my = in.MouseX, in.MouseY
	switch {
	case m.start.IsClicked(in.MouseX, in.MouseY, in.MousePressed):
		m.sm.ctx.Session.Start()
		m.sm.SetState(NewGameState(m.sm))
	case m.quit.IsClicked(in.MouseX, in.MouseY, in.MousePressed):
		return m.sm.ctx.Session.Quit()
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuBgColor)
	fonts := m.sm.ctx.Fonts
	ui.DrawCenteredText(screen, config.WindowTitle, fonts.Title, config.ScreenWidth/2, config.MenuTitleY, config.TextLightColor)
	m.start.Draw(screen, m.mx, m.my)
	m.quit.Draw(screen, m.mx, m.my)
	if m.best != "" {
		ui.DrawCenteredText(screen, m.best, fonts.Small, config.ScreenWidth/2, config.ScreenHeight-60, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
