package system

import (
	"go-forager/internal/utils"
	"go-forager/pkg/geom"
)

// Camera - смещение видимой области в мировых координатах.
type Camera struct {
	X, Y          float64
	Width, Height float64
}

func NewCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Follow центрирует камеру на цели, не выпуская её за границы мира.
func (c *Camera) Follow(target geom.Rect, world geom.Rect) {
	cx, cy := target.Center()
	c.X = utils.Clamp(cx-c.Width/2, world.X, world.Right()-c.Width)
	c.Y = utils.Clamp(cy-c.Height/2, world.Y, world.Bottom()-c.Height)
}

// ToScreen переводит мировые координаты в экранные.
func (c *Camera) ToScreen(x, y float64) (float64, float64) {
	return x - c.X, y - c.Y
}
