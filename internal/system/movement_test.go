package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-forager/internal/component"
	"go-forager/internal/defs"
	"go-forager/pkg/geom"
)

func TestMoveAndCollideSnapsOnTravelSide(t *testing.T) {
	obstacle := geom.NewRect(50, 0, 10, 100)
	tests := []struct {
		name     string
		start    geom.Rect
		dx, dy   float64
		obstacle geom.Rect
		expected geom.Rect
	}{
		{"moving right", geom.NewRect(17, 10, 30, 30), 5, 0, obstacle, geom.NewRect(20, 10, 30, 30)},
		{"moving left", geom.NewRect(63, 10, 30, 30), -5, 0, obstacle, geom.NewRect(60, 10, 30, 30)},
		{"moving down", geom.NewRect(0, 17, 30, 30), 0, 5, geom.NewRect(0, 50, 100, 10), geom.NewRect(0, 20, 30, 30)},
		{"moving up", geom.NewRect(0, 63, 30, 30), 0, -5, geom.NewRect(0, 50, 100, 10), geom.NewRect(0, 60, 30, 30)},
		{"free move", geom.NewRect(0, 0, 30, 30), 5, 5, obstacle, geom.NewRect(5, 5, 30, 30)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.start
			MoveAndCollide(&r, tc.dx, tc.dy, []geom.Rect{tc.obstacle})
			assert.Equal(t, tc.expected, r)
		})
	}
}

func TestMoveAndCollideSlidesAlongWall(t *testing.T) {
	wall := geom.NewRect(50, 0, 10, 200)
	r := geom.NewRect(18, 50, 30, 30)

	MoveAndCollide(&r, 5, 5, []geom.Rect{wall})

	assert.Equal(t, 20.0, r.X, "horizontal motion is stopped flush")
	assert.Equal(t, 55.0, r.Y, "vertical motion continues")
}

func TestMoveAndCollideNeverOverlapsSingleObstacle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		obstacle := geom.NewRect(float64(rng.Intn(100)), float64(rng.Intn(100)), float64(10+rng.Intn(50)), float64(10+rng.Intn(50)))
		r := geom.NewRect(float64(rng.Intn(200)-50), float64(rng.Intn(200)-50), 30, 30)
		if r.Intersects(obstacle) {
			continue
		}
		dx := float64(rng.Intn(11) - 5)
		dy := float64(rng.Intn(11) - 5)

		MoveAndCollide(&r, dx, dy, []geom.Rect{obstacle})
		assert.False(t, r.Intersects(obstacle), "case %d: %+v vs %+v", i, r, obstacle)
	}
}

func TestMovementSystemReadsInput(t *testing.T) {
	ecs := newTestECS()
	s := NewMovementSystem(ecs)

	s.Update(component.Input{Left: true, Up: true})
	assert.Equal(t, geom.NewRect(95, 95, 30, 30), ecs.Player.Rect)
	assert.Equal(t, component.FacingLeft, ecs.Player.Facing)

	s.Update(component.Input{Right: true})
	assert.Equal(t, component.FacingRight, ecs.Player.Facing)

	s.Update(component.Input{})
	assert.Equal(t, component.FacingIdle, ecs.Player.Facing)
}

func TestMovementSystemStopsAtBlocks(t *testing.T) {
	ecs := newTestECS()
	addBlock(ecs, defs.KindIron, 133, 100, false)
	s := NewMovementSystem(ecs)

	s.Update(component.Input{Right: true})
	assert.Equal(t, 103.0, ecs.Player.Rect.X)
}

func TestMovementSystemIgnoresInputWhileMining(t *testing.T) {
	ecs := newTestECS()
	ecs.Player.Mining = true
	ecs.Player.Facing = component.FacingMining
	s := NewMovementSystem(ecs)

	s.Update(component.Input{Right: true, Down: true})
	assert.Equal(t, geom.NewRect(100, 100, 30, 30), ecs.Player.Rect)
	assert.Equal(t, component.FacingMining, ecs.Player.Facing)
}
