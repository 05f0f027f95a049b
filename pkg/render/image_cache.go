// pkg/render/image_cache.go
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageCache converts decoded images into GPU images once.
type ImageCache struct {
	images map[image.Image]*ebiten.Image
}

func NewImageCache() *ImageCache {
	return &ImageCache{images: make(map[image.Image]*ebiten.Image)}
}

// Get returns the ebiten image for img, creating it on first use.
func (c *ImageCache) Get(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	if e, ok := c.images[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	c.images[img] = e
	return e
}
