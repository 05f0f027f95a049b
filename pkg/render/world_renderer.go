// pkg/render/world_renderer.go
package render

import (
	"image"
	"image/color"

	"go-forager/internal/assets"
	"go-forager/internal/component"
	"go-forager/internal/config"
	"go-forager/internal/entity"
	"go-forager/internal/system"
	"go-forager/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Рамка цели добычи темнее полосы прогресса того же цвета
const targetFrameShade = 0.5

// shade умножает RGB на k, альфа не меняется.
func shade(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float64(v) * k) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// WorldRenderer рисует мир проходами: фон, зона, стены, блоки, враги, игрок.
type WorldRenderer struct {
	sprites *assets.Sprites
	cache   *ImageCache
}

func NewWorldRenderer(sprites *assets.Sprites) *WorldRenderer {
	return &WorldRenderer{sprites: sprites, cache: NewImageCache()}
}

// Draw рисует видимую часть мира.
func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, cam *system.Camera) {
	screen.Fill(config.SkyColor)
	r.drawRect(screen, cam, ecs.SafeZone, config.GrassColor)

	for _, w := range ecs.Walls {
		r.drawRect(screen, cam, w.Rect, w.Color)
	}

	// По возрастанию ID: порядок обхода мапы случаен
	for _, id := range ecs.BlockIDs() {
		r.drawBlock(screen, cam, ecs.Blocks[id])
	}

	for _, id := range ecs.EnemyIDs() {
		e := ecs.Enemies[id]
		r.drawSprite(screen, cam, r.sprites.Enemy, e.Rect.X, e.Rect.Y)
	}

	// Рамка вокруг добываемого блока
	if p := ecs.Player; p.Mining {
		if b, ok := ecs.Blocks[p.Target]; ok {
			x, y := cam.ToScreen(b.Rect.X, b.Rect.Y)
			vector.StrokeRect(screen, float32(x), float32(y), float32(b.Rect.W), float32(b.Rect.H), 2, shade(config.MiningBarColor, targetFrameShade), false)
		}
	}

	r.drawPlayer(screen, cam, ecs.Player)
}

func (r *WorldRenderer) drawRect(screen *ebiten.Image, cam *system.Camera, rect geom.Rect, c color.Color) {
	x, y := cam.ToScreen(rect.X, rect.Y)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(rect.W), float32(rect.H), c, false)
}

func (r *WorldRenderer) drawBlock(screen *ebiten.Image, cam *system.Camera, b *component.Block) {
	bs, ok := r.sprites.Blocks[b.Kind]
	if !ok {
		return
	}
	img := bs.Normal
	switch {
	case b.Broken:
		img = bs.Broken
	case b.Animating && len(bs.Frames) > 0:
		img = bs.Frames[b.Frame.Frame()%len(bs.Frames)]
	}
	r.drawSprite(screen, cam, img, b.SpriteX, b.SpriteY)
}

// drawPlayer рисует спрайт 50×50 по центру хитбокса 30×30.
func (r *WorldRenderer) drawPlayer(screen *ebiten.Image, cam *system.Camera, p *component.Player) {
	ps := r.sprites.Player
	img := ps.Idle
	switch p.Facing {
	case component.FacingLeft:
		img = ps.Left
	case component.FacingRight:
		img = ps.Right
	case component.FacingMining:
		if len(ps.Mining) > 0 {
			img = ps.Mining[p.MineAnim.Frame()%len(ps.Mining)]
		}
	}
	if img == nil {
		return
	}
	b := img.Bounds()
	x := p.Rect.X + (p.Rect.W-float64(b.Dx()))/2
	y := p.Rect.Y + (p.Rect.H-float64(b.Dy()))/2
	r.drawSprite(screen, cam, img, x, y)
}

func (r *WorldRenderer) drawSprite(screen *ebiten.Image, cam *system.Camera, img image.Image, wx, wy float64) {
	e := r.cache.Get(img)
	if e == nil {
		return
	}
	x, y := cam.ToScreen(wx, wy)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(e, op)
}
