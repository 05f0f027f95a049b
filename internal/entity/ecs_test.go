package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-forager/internal/component"
	"go-forager/pkg/geom"
)

func TestEntityIDsAreUniqueAndOrdered(t *testing.T) {
	ecs := NewECS(geom.NewRect(0, 0, 100, 100), geom.NewRect(10, 10, 50, 50))

	b1 := ecs.AddBlock(&component.Block{})
	e1 := ecs.AddEnemy(&component.Enemy{})
	b2 := ecs.AddBlock(&component.Block{})

	assert.NotEqual(t, b1, e1)
	assert.NotEqual(t, e1, b2)
	assert.Equal(t, []uint64{uint64(b1), uint64(b2)}, []uint64{uint64(ecs.BlockIDs()[0]), uint64(ecs.BlockIDs()[1])})
	assert.Len(t, ecs.EnemyIDs(), 1)
}

func TestObstaclesWallsFirst(t *testing.T) {
	ecs := NewECS(geom.NewRect(0, 0, 100, 100), geom.NewRect(10, 10, 50, 50))
	ecs.Walls = []component.Wall{{Rect: geom.NewRect(0, 0, 100, 5)}}
	ecs.AddBlock(&component.Block{Rect: geom.NewRect(20, 20, 10, 10)})

	obstacles := ecs.Obstacles()
	assert.Equal(t, []geom.Rect{geom.NewRect(0, 0, 100, 5), geom.NewRect(20, 20, 10, 10)}, obstacles)
}
