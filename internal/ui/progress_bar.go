// internal/ui/progress_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-forager/internal/config"
	"go-forager/internal/utils"
)

// ProgressBar - полоса: тёмный фон, заливка по доле, чёрная рамка.
type ProgressBar struct {
	X, Y, W, H float32
	Fill       color.RGBA
}

func NewProgressBar(x, y, w, h float32, fill color.RGBA) *ProgressBar {
	return &ProgressBar{X: x, Y: y, W: w, H: h, Fill: fill}
}

// Draw рисует полосу, заполненную на progress (обрезается до [0, 1]).
func (b *ProgressBar) Draw(screen *ebiten.Image, progress float64) {
	progress = utils.Clamp(progress, 0, 1)
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, config.BarBgColor, true)
	if fill := b.W * float32(progress); fill > 0 {
		vector.DrawFilledRect(screen, b.X, b.Y, fill, b.H, b.Fill, true)
	}
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, config.BarBorderColor, true)
}
