// internal/component/player.go
package component

import (
	"time"

	"go-forager/internal/types"
	"go-forager/pkg/geom"
)

// Facing - какой спрайт показывать игроку.
type Facing int

const (
	FacingIdle Facing = iota
	FacingLeft
	FacingRight
	FacingMining
)

func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	case FacingMining:
		return "mining"
	default:
		return "idle"
	}
}

// Player - управляемый персонаж.
type Player struct {
	Rect   geom.Rect // хитбокс, спрайт рисуется по его центру
	Speed  float64
	Facing Facing

	// Состояние добычи
	Mining        bool
	MiningElapsed time.Duration
	Target        types.EntityID // 0 - цели нет
	MineAnim      Animation
}

// StopMining сбрасывает добычу в исходное состояние.
func (p *Player) StopMining() {
	p.Mining = false
	p.MiningElapsed = 0
	p.Target = 0
	p.MineAnim.Reset()
	if p.Facing == FacingMining {
		p.Facing = FacingIdle
	}
}

// PlayerStateComponent хранит уровень и опыт игрока.
type PlayerStateComponent struct {
	Level         int // Текущий уровень игрока
	CurrentXP     int // Текущее количество очков опыта
	XPToNextLevel int // Количество опыта, необходимое для следующего уровня
	BlocksMined   int
}
