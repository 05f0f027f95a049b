// internal/state/pause_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замершую партию под затемнением и меню паузы.
type PauseState struct {
	sm            *StateMachine
	previousState State
	resume        *ui.Button
	menu          *ui.Button
	quit          *ui.Button
	mx, my        int
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	buttons := ui.NewButtonColumn(config.MenuButtonsY, sm.ctx.Fonts.Regular, "Resume", "Menu", "Quit")
	return &PauseState{
		sm:            sm,
		previousState: prevState,
		resume:        buttons[0],
		menu:          buttons[1],
		quit:          buttons[2],
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(dt time.Duration, in component.Input) error {
	s.mx, s.my = in.MouseX, in.MouseY
	session := s.sm.ctx.Session

	switch {
	case in.PauseToggled, s.resume.IsClicked(in.MouseX, in.MouseY, in.MousePressed):
		session.Resume()
		s.sm.SetState(s.previousState)
	case s.menu.IsClicked(in.MouseX, in.MouseY, in.MousePressed):
		session.BackToMenu()
		s.sm.SetState(NewMenuState(s.sm))
	case s.quit.IsClicked(in.MouseX, in.MouseY, in.MousePressed):
		return session.Quit()
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseDimColor, false)
	ui.DrawCenteredText(screen, "PAUSED", s.sm.ctx.Fonts.Title, config.ScreenWidth/2, config.MenuTitleY, config.TextLightColor)
	s.resume.Draw(screen, s.mx, s.my)
	s.menu.Draw(screen, s.mx, s.my)
	s.quit.Draw(screen, s.mx, s.my)
}

func (s *PauseState) Exit() {}
