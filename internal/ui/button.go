// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-forager/internal/config"
	"go-forager/pkg/geom"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Face       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  config.TextDarkColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
		Face:       face,
	}
}

// NewButtonColumn раскладывает кнопки столбцом по центру экрана, начиная с y.
func NewButtonColumn(y float64, face font.Face, labels ...string) []*Button {
	buttons := make([]*Button, 0, len(labels))
	x := float64(config.ScreenWidth-config.ButtonWidth) / 2
	for i, label := range labels {
		by := y + float64(i)*(config.ButtonHeight+config.ButtonGap)
		buttons = append(buttons, NewButton(geom.NewRect(x, by, config.ButtonWidth, config.ButtonHeight), label, face))
	}
	return buttons
}

// Hovered проверяет, находится ли курсор над кнопкой.
func (b *Button) Hovered(mx, my int) bool {
	return b.Rect.Contains(float64(mx), float64(my))
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *Button) IsClicked(mx, my int, pressed bool) bool {
	return pressed && b.Hovered(mx, my)
}

// Draw отрисовывает кнопку с подсветкой при наведении.
func (b *Button) Draw(screen *ebiten.Image, mx, my int) {
	bg := b.BgColor
	if b.Hovered(mx, my) {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.X), float32(b.Rect.Y)
	w, h := float32(b.Rect.W), float32(b.Rect.H)
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.BarBorderColor, true)

	cx, cy := b.Rect.Center()
	DrawCenteredText(screen, b.Text, b.Face, cx, cy, b.TextColor)
}

// DrawCenteredText рисует строку с центром в точке (cx, cy).
func DrawCenteredText(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := int(cx) - bounds.Dx()/2 - bounds.Min.X
	y := int(cy) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}
