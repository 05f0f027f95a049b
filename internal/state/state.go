// internal/state/state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-forager/internal/app"
	"go-forager/internal/component"
	"go-forager/internal/storage"
	"go-forager/internal/ui"
	"go-forager/pkg/render"
)

// State - интерфейс для всех состояний
type State interface {
	Enter()
	Update(dt time.Duration, in component.Input) error
	Draw(screen *ebiten.Image)
	Exit()
}

// BestRunSource отдаёт лучший сохранённый забег для меню.
type BestRunSource interface {
	BestRun() (storage.RunRecord, bool, error)
}

// Context - общие для всех экранов зависимости.
type Context struct {
	Session  *app.Session
	Renderer *render.WorldRenderer
	Fonts    *ui.Fonts
	Best     BestRunSource // может быть nil
}

// StateMachine - структура для управления состояниями
type StateMachine struct {
	ctx     *Context
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	return &StateMachine{ctx: ctx}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(dt time.Duration, in component.Input) error {
	if sm.current != nil {
		return sm.current.Update(dt, in)
	}
	return nil
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
