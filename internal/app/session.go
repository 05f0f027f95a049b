// internal/app/session.go
package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/storage"
	"go-forager/internal/utils"
)

// ErrQuit возвращается, когда игрок выбрал выход.
var ErrQuit = errors.New("app: quit requested")

// RunRecorder сохраняет итоги забегов. Реализуется storage.Store.
type RunRecorder interface {
	SaveRun(r storage.RunRecord) error
}

// Session - переключатель режимов Menu / Playing / Paused поверх партий.
// В меню партии нет: каждая кнопка Start начинает новую.
type Session struct {
	Mode   component.Mode
	Game   *Game
	Tuning config.Tuning

	seed     int64
	recorder RunRecorder
	runID    uuid.UUID
	now      func() time.Time
}

// NewSession создаёт сессию в режиме меню. seed = 0 выбирает случайный сид для каждой партии.
// recorder может быть nil, тогда забеги не сохраняются.
func NewSession(tuning config.Tuning, seed int64, recorder RunRecorder) *Session {
	return &Session{
		Mode:     component.ModeMenu,
		Tuning:   tuning,
		seed:     seed,
		recorder: recorder,
		now:      time.Now,
	}
}

// Start начинает новую партию.
func (s *Session) Start() {
	rng := utils.NewPRNGService(s.seed)
	s.Game = NewGame(s.Tuning, rng)
	s.runID = uuid.New()
	s.Mode = component.ModePlaying
	log.Info("run started", "id", s.runID, "seed", rng.Seed())
}

// TogglePause переключает Playing и Paused. В меню ничего не делает.
func (s *Session) TogglePause() {
	switch s.Mode {
	case component.ModePlaying:
		s.Mode = component.ModePaused
	case component.ModePaused:
		s.Mode = component.ModePlaying
	}
	log.Debug("mode changed", "mode", s.Mode)
}

// Resume продолжает партию из паузы.
func (s *Session) Resume() {
	if s.Mode == component.ModePaused {
		s.Mode = component.ModePlaying
	}
}

// BackToMenu завершает текущую партию и возвращает в меню.
func (s *Session) BackToMenu() {
	s.endRun()
	s.Game = nil
	s.Mode = component.ModeMenu
}

// Quit завершает партию, если она идёт, и возвращает ErrQuit.
func (s *Session) Quit() error {
	s.endRun()
	return ErrQuit
}

// Update продвигает игру на тик. Игровое время идёт только в режиме Playing.
func (s *Session) Update(dt time.Duration, in component.Input) {
	switch s.Mode {
	case component.ModePlaying:
		if in.PauseToggled {
			s.TogglePause()
			return
		}
		s.Game.Update(dt, in)
	case component.ModePaused:
		if in.PauseToggled {
			s.TogglePause()
		}
	}
}

func (s *Session) endRun() {
	if s.Game == nil {
		return
	}
	stats := s.Game.Stats()
	record := storage.RunRecord{
		ID:          s.runID.String(),
		Seed:        s.Game.Rng.Seed(),
		Level:       stats.Level,
		XP:          stats.CurrentXP,
		BlocksMined: stats.BlocksMined,
		Duration:    s.Game.ECS.GameTime,
		EndedAt:     s.now(),
	}
	s.Game = nil
	log.Info("run ended", "id", record.ID, "level", record.Level, "blocks", record.BlocksMined, "duration", record.Duration)

	if s.recorder == nil {
		return
	}
	if err := s.recorder.SaveRun(record); err != nil {
		log.Error("failed to save run", "id", record.ID, "err", err)
	}
}
