// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 600
	WorldWidth   = 1000
	WorldHeight  = 1000
	TPS          = 60
	MaxDeltaTime = 0.06
	WindowTitle  = "Forager-like Game"

	// Рамка мира и внутренняя «безопасная» зона
	WallThickness = 10
	FrameMargin   = 10
	SafeMinX      = 333
	SafeMinY      = 333
	SafeSize      = 333
	SafeMaxX      = SafeMinX + SafeSize
	SafeMaxY      = SafeMinY + SafeSize
	SpawnInset    = 20 // отступ от стен зоны при спавне
	SpawnFarInset = 70 // отступ от дальних стен (с учётом размера блока)

	PlayerSize       = 30
	PlayerSpriteSize = 50
	BlockSize        = 50
	TreeHeight       = 100
	EnemySize        = 30

	AnimationFrames = 4 // кадров в любой анимации: <kind>1..4.png
	MineReach       = 20

	ButtonWidth  = 200
	ButtonHeight = 50
	ButtonGap    = 20
	MenuTitleY   = 150
	MenuButtonsY = 250

	XPBarX      = 150
	XPBarY      = 20
	XPBarWidth  = 300
	XPBarHeight = 20

	MiningBarY      = 50
	MiningBarWidth  = 200
	MiningBarHeight = 20
)

var (
	SkyColor        = color.RGBA{135, 206, 250, 255}
	GrassColor      = color.RGBA{34, 139, 34, 255}
	FrameWallColor  = color.RGBA{255, 0, 0, 255}
	NorthWallColor  = color.RGBA{135, 206, 250, 255}
	SouthWallColor  = color.RGBA{255, 215, 0, 255}
	EnemyColor      = color.RGBA{90, 20, 90, 255}
	MenuBgColor     = color.RGBA{0, 0, 0, 255}
	ButtonColor     = color.RGBA{200, 200, 200, 255}
	ButtonHover     = color.RGBA{255, 255, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	TextDarkColor   = color.RGBA{0, 0, 0, 255}
	BarBgColor      = color.RGBA{50, 50, 50, 255}
	BarBorderColor  = color.RGBA{0, 0, 0, 255}
	MiningBarColor  = color.RGBA{0, 255, 0, 255}
	XPBarColor      = color.RGBA{0, 128, 255, 255}
	PauseDimColor   = color.RGBA{0, 0, 0, 160}
	PlaceholderTint = color.RGBA{255, 0, 255, 255} // заглушка вместо отсутствующей картинки
)
