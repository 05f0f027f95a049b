// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-forager/internal/config"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	bar  *ProgressBar
	face font.Face
}

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(face font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{
		bar:  NewProgressBar(config.XPBarX, config.XPBarY, config.XPBarWidth, config.XPBarHeight, config.XPBarColor),
		face: face,
	}
}

// Draw отрисовывает полосу опыта и подпись уровня слева от неё.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	fillRatio := 0.0
	if xpToNext > 0 {
		fillRatio = float64(currentXP) / float64(xpToNext)
	}
	i.bar.Draw(screen, fillRatio)

	label := fmt.Sprintf("Lv %d", level)
	bounds := text.BoundString(i.face, label)
	x := config.XPBarX - bounds.Dx() - 10
	y := config.XPBarY + (config.XPBarHeight+bounds.Dy())/2
	text.Draw(screen, label, i.face, x, y, config.TextDarkColor)

	xp := fmt.Sprintf("%d / %d", currentXP, xpToNext)
	DrawCenteredText(screen, xp, i.face, config.XPBarX+config.XPBarWidth/2, config.XPBarY+config.XPBarHeight/2, config.TextLightColor)
}
