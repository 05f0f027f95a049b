// internal/assets/sprites.go
package assets

import (
	"fmt"
	"image"

	"go-forager/internal/config"
	"go-forager/internal/defs"
)

// PlayerSprites - спрайты игрока по направлениям и кадры добычи.
type PlayerSprites struct {
	Idle, Left, Right image.Image
	Mining            []image.Image
}

// BlockSprites - спрайты одного вида блока.
type BlockSprites struct {
	Normal image.Image
	Broken image.Image
	Frames []image.Image
}

// Sprites - все картинки игры.
type Sprites struct {
	Player PlayerSprites
	Enemy  image.Image
	Blocks map[defs.BlockKind]BlockSprites
}

// LoadSprites загружает все спрайты. Никогда не падает: недостающие
// картинки заменяются заглушками, а разрушенные варианты - затемнёнными копиями.
func LoadSprites(l *SpriteLoader) *Sprites {
	size := config.PlayerSpriteSize
	s := &Sprites{
		Player: PlayerSprites{
			Idle:  l.Load("player.png", size, size),
			Left:  l.Load("player_left.png", size, size),
			Right: l.Load("player.png", size, size),
		},
		Blocks: make(map[defs.BlockKind]BlockSprites, len(defs.AllKinds)),
	}
	// Своей картинки у врага обычно нет, рисуем его цветным квадратом
	enemy, err := l.TryLoad("enemy.png", config.EnemySize, config.EnemySize)
	if err != nil {
		enemy = Placeholder(config.EnemySize, config.EnemySize, config.EnemyColor)
	}
	s.Enemy = enemy
	for i := 1; i <= config.AnimationFrames; i++ {
		s.Player.Mining = append(s.Player.Mining, l.Load(fmt.Sprintf("player_mine%d.png", i), size, size))
	}

	for _, kind := range defs.AllKinds {
		s.Blocks[kind] = loadBlockSprites(l, defs.BlockDefs[kind])
	}
	return s
}

func loadBlockSprites(l *SpriteLoader, def defs.BlockDefinition) BlockSprites {
	w, h := int(def.SpriteW), int(def.SpriteH)
	bs := BlockSprites{Normal: l.Load(def.Image(), w, h)}

	broken, err := l.TryLoad(def.BrokenImage(), w, h)
	if err != nil {
		broken = Darken(bs.Normal)
	}
	bs.Broken = broken

	for i := 1; i <= config.AnimationFrames; i++ {
		bs.Frames = append(bs.Frames, l.Load(def.FrameImage(i), w, h))
	}
	return bs
}
