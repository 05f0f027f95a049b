package component

import (
	"time"

	"go-forager/internal/defs"
	"go-forager/pkg/geom"
)

// Block - ресурсный блок (руда или дерево).
type Block struct {
	Kind defs.BlockKind
	Rect geom.Rect // хитбокс
	// Левый верхний угол спрайта; у дерева он выше хитбокса
	SpriteX, SpriteY float64

	Animated  bool // есть ли у вида анимация разрушения
	Animating bool
	Broken    bool
	Frame     Animation

	// Абсолютное игровое время, после которого блок удаляется
	DestroyAt   time.Duration
	HasDeadline bool
}

// NewBlock создаёт блок вида kind со спрайтом в точке (x, y).
func NewBlock(kind defs.BlockKind, x, y float64, animated bool, frameStep float64, frames int) *Block {
	def := defs.BlockDefs[kind]
	return &Block{
		Kind:     kind,
		Rect:     geom.NewRect(x+def.HitboxDX, y+def.HitboxDY, def.HitboxW, def.HitboxH),
		SpriteX:  x,
		SpriteY:  y,
		Animated: animated,
		Frame:    NewAnimation(frames, frameStep),
	}
}

// Intact сообщает, что блок ещё можно добывать.
func (b *Block) Intact() bool {
	return !b.Broken && !b.Animating
}
