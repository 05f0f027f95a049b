package component

import "go-forager/pkg/geom"

// Enemy - преследующий игрока враг. Состояния, кроме позиции, нет.
type Enemy struct {
	Rect  geom.Rect
	Speed float64
}
