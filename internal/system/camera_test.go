package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-forager/pkg/geom"
)

func TestCameraFollowClampsToWorld(t *testing.T) {
	world := geom.NewRect(0, 0, 1000, 1000)
	cam := NewCamera(600, 600)

	cam.Follow(geom.NewRectCentered(500, 500, 30, 30), world)
	assert.Equal(t, 200.0, cam.X)
	assert.Equal(t, 200.0, cam.Y)

	cam.Follow(geom.NewRectCentered(50, 980, 30, 30), world)
	assert.Equal(t, 0.0, cam.X)
	assert.Equal(t, 400.0, cam.Y)

	sx, sy := cam.ToScreen(100, 500)
	assert.Equal(t, 100.0, sx)
	assert.Equal(t, 100.0, sy)
}
