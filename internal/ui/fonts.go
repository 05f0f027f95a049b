// internal/ui/fonts.go
package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Fonts - шрифты интерфейса.
type Fonts struct {
	Title   font.Face
	Regular font.Face
	Small   font.Face
}

// LoadFonts ищет первый .ttf в dir. Если шрифтов нет, используется встроенный basicfont.
func LoadFonts(dir string) *Fonts {
	fonts, err := loadTTF(dir)
	if err != nil {
		log.Warn("using fallback font", "dir", dir, "err", err)
		return &Fonts{
			Title:   basicfont.Face7x13,
			Regular: basicfont.Face7x13,
			Small:   basicfont.Face7x13,
		}
	}
	return fonts
}

func loadTTF(dir string) (*Fonts, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".ttf") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no .ttf files in %s", dir)
	}
	sort.Strings(names)

	path := filepath.Join(dir, names[0])
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	title, err := face(48)
	if err != nil {
		return nil, err
	}
	regular, err := face(24)
	if err != nil {
		return nil, err
	}
	small, err := face(16)
	if err != nil {
		return nil, err
	}
	log.Debug("font loaded", "path", path)
	return &Fonts{Title: title, Regular: regular, Small: small}, nil
}
