package component

import (
	"image/color"

	"go-forager/pkg/geom"
)

// Wall - неподвижное препятствие.
type Wall struct {
	Rect  geom.Rect
	Color color.RGBA
}
