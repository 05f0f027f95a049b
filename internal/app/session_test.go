package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-forager/internal/component"
	"go-forager/internal/storage"
)

type fakeRecorder struct {
	runs []storage.RunRecord
	err  error
}

func (f *fakeRecorder) SaveRun(r storage.RunRecord) error {
	f.runs = append(f.runs, r)
	return f.err
}

func newTestSession(rec RunRecorder) *Session {
	s := NewSession(quietTuning(), 42, rec)
	s.now = func() time.Time { return time.Unix(1000, 0) }
	return s
}

func TestSessionStartsInMenu(t *testing.T) {
	s := newTestSession(nil)

	assert.Equal(t, component.ModeMenu, s.Mode)
	assert.Nil(t, s.Game)

	// Пауза в меню недоступна
	s.TogglePause()
	assert.Equal(t, component.ModeMenu, s.Mode)
}

func TestSessionPauseStopsTime(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	require.NotNil(t, s.Game)
	assert.Equal(t, component.ModePlaying, s.Mode)

	s.Update(tick, component.Input{})
	assert.Equal(t, tick, s.Game.ECS.GameTime)

	s.Update(tick, component.Input{PauseToggled: true})
	assert.Equal(t, component.ModePaused, s.Mode)

	for i := 0; i < 10; i++ {
		s.Update(tick, component.Input{Left: true})
	}
	assert.Equal(t, tick, s.Game.ECS.GameTime)

	s.Update(tick, component.Input{PauseToggled: true})
	assert.Equal(t, component.ModePlaying, s.Mode)

	s.TogglePause()
	s.Resume()
	assert.Equal(t, component.ModePlaying, s.Mode)
}

func TestSessionBackToMenuRecordsRun(t *testing.T) {
	rec := &fakeRecorder{}
	s := newTestSession(rec)
	s.Start()
	for i := 0; i < 30; i++ {
		s.Update(tick, component.Input{})
	}
	s.TogglePause()
	s.BackToMenu()

	assert.Equal(t, component.ModeMenu, s.Mode)
	assert.Nil(t, s.Game)
	require.Len(t, rec.runs, 1)
	run := rec.runs[0]
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, 1, run.Level)
	assert.Equal(t, 30*tick, run.Duration)
	assert.Equal(t, time.Unix(1000, 0), run.EndedAt)

	// Новая партия получает новый ID
	s.Start()
	s.BackToMenu()
	require.Len(t, rec.runs, 2)
	assert.NotEqual(t, rec.runs[0].ID, rec.runs[1].ID)
}

func TestSessionQuit(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	s := newTestSession(rec)

	assert.ErrorIs(t, s.Quit(), ErrQuit)
	assert.Empty(t, rec.runs)

	s.Start()
	assert.ErrorIs(t, s.Quit(), ErrQuit)
	assert.Len(t, rec.runs, 1)
	assert.Nil(t, s.Game)
}
