package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-forager/internal/config"
	"go-forager/internal/defs"
)

func writePNG(t *testing.T, dir, name string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadScalesToRequestedSize(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "iron.png", 16, 16, color.NRGBA{120, 120, 120, 255})
	l := NewSpriteLoader(dir)

	img, err := l.TryLoad("iron.png", 50, 50)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())

	again, err := l.TryLoad("iron.png", 50, 50)
	require.NoError(t, err)
	assert.Same(t, img.(*image.NRGBA), again.(*image.NRGBA), "second load comes from cache")
}

func TestLoadMissingFallsBackToPlaceholder(t *testing.T) {
	l := NewSpriteLoader(t.TempDir())

	_, err := l.TryLoad("nope.png", 10, 20)
	assert.Error(t, err)

	img := l.Load("nope.png", 10, 20)
	assert.Equal(t, image.Rect(0, 0, 10, 20), img.Bounds())
	r, g, b, a := img.At(5, 5).RGBA()
	pr, pg, pb, pa := config.PlaceholderTint.RGBA()
	assert.Equal(t, []uint32{pr, pg, pb, pa}, []uint32{r, g, b, a})
	assert.Equal(t, []string{"nope.png"}, l.Missing())
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gold.png"), []byte("not a png"), 0o644))
	l := NewSpriteLoader(dir)

	img := l.Load("gold.png", 50, 50)
	assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())
}

func TestDarkenDimsButKeepsVisible(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 255})
	src.SetNRGBA(1, 0, color.NRGBA{200, 100, 50, 10})

	dark := Darken(src)

	assert.Equal(t, src.Bounds(), dark.Bounds())
	opaque := dark.NRGBAAt(0, 0)
	assert.Less(t, opaque.R, uint8(200))
	assert.Less(t, opaque.A, uint8(255))
	assert.Greater(t, opaque.A, uint8(0))
	assert.Greater(t, dark.NRGBAAt(1, 0).A, uint8(0))
	assert.Equal(t, uint8(0), dark.NRGBAAt(2, 2).A, "transparent pixels stay transparent")
}

func TestLoadSpritesUsesBrokenFileOrDarkCopy(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "coal.png", 50, 50, color.NRGBA{40, 40, 40, 255})
	writePNG(t, dir, "coal_broken.png", 50, 50, color.NRGBA{10, 200, 10, 255})
	writePNG(t, dir, "tree.png", 50, 100, color.NRGBA{0, 150, 0, 255})

	s := LoadSprites(NewSpriteLoader(dir))

	coal := s.Blocks[defs.KindCoal]
	g := color.NRGBAModel.Convert(coal.Broken.At(10, 10)).(color.NRGBA)
	assert.Equal(t, uint8(200), g.G, "explicit broken asset is used")

	tree := s.Blocks[defs.KindTree]
	assert.Equal(t, image.Rect(0, 0, 50, 100), tree.Broken.Bounds())
	tb := color.NRGBAModel.Convert(tree.Broken.At(10, 10)).(color.NRGBA)
	assert.Less(t, tb.A, uint8(255), "missing broken asset is synthesized")
	assert.Len(t, tree.Frames, config.AnimationFrames)
	assert.Len(t, s.Player.Mining, config.AnimationFrames)
	assert.Len(t, s.Blocks, len(defs.AllKinds))
}
