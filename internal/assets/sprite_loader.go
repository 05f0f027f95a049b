package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	xdraw "golang.org/x/image/draw"

	"go-forager/internal/config"
)

// darkenAlpha - во сколько раз уменьшается непрозрачность затемнённого спрайта.
const (
	darkenRGB   = 0.6
	darkenAlpha = 135.0 / 255.0
)

type spriteKey struct {
	name string
	w, h int
}

// SpriteLoader загружает картинки из каталога ассетов, масштабирует их и кэширует.
// Отсутствующий файл не ошибка: вместо него отдаётся заглушка нужного размера.
type SpriteLoader struct {
	dir     string
	cache   map[spriteKey]image.Image
	missing map[string]bool
}

// NewSpriteLoader создает загрузчик для каталога dir.
func NewSpriteLoader(dir string) *SpriteLoader {
	return &SpriteLoader{
		dir:     dir,
		cache:   make(map[spriteKey]image.Image),
		missing: make(map[string]bool),
	}
}

// TryLoad загружает файл name и масштабирует его до w×h.
func (l *SpriteLoader) TryLoad(name string, w, h int) (image.Image, error) {
	key := spriteKey{name: name, w: w, h: h}
	if img, ok := l.cache[key]; ok {
		return img, nil
	}

	path := filepath.Join(l.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", path, err)
	}

	img := Scale(src, w, h)
	l.cache[key] = img
	return img, nil
}

// Load как TryLoad, но вместо ошибки возвращает заглушку.
func (l *SpriteLoader) Load(name string, w, h int) image.Image {
	img, err := l.TryLoad(name, w, h)
	if err == nil {
		return img
	}
	if !l.missing[name] {
		l.missing[name] = true
		log.Warn("sprite missing, using placeholder", "file", name, "err", err)
	}
	return Placeholder(w, h, config.PlaceholderTint)
}

// Missing возвращает имена файлов, которые не удалось загрузить.
func (l *SpriteLoader) Missing() []string {
	names := make([]string, 0, len(l.missing))
	for name := range l.missing {
		names = append(names, name)
	}
	return names
}

// Scale масштабирует картинку до w×h.
func Scale(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Placeholder - сплошная картинка w×h цвета c.
func Placeholder(w, h int, c color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, xdraw.Src)
	return img
}

// Darken строит затемнённую и полупрозрачную копию того же размера.
// Видимые пиксели остаются видимыми.
func Darken(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			a := uint8(float64(c.A) * darkenAlpha)
			if a == 0 {
				a = 1
			}
			dst.SetNRGBA(x, y, color.NRGBA{
				R: uint8(float64(c.R) * darkenRGB),
				G: uint8(float64(c.G) * darkenRGB),
				B: uint8(float64(c.B) * darkenRGB),
				A: a,
			})
		}
	}
	return dst
}
