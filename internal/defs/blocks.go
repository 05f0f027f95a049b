// internal/defs/blocks.go
package defs

import (
	"fmt"

	"go-forager/internal/config"
)

// BlockKind - вид ресурсного блока.
type BlockKind string

const (
	KindIron BlockKind = "iron"
	KindGold BlockKind = "gold"
	KindCoal BlockKind = "coal"
	KindTree BlockKind = "tree"
)

// BlockCategory группирует виды блоков для спавна.
type BlockCategory string

const (
	CategoryOre  BlockCategory = "ORE"
	CategoryTree BlockCategory = "TREE"
)

// BlockDefinition хранит статические данные вида блока.
type BlockDefinition struct {
	Kind     BlockKind
	Category BlockCategory
	// Размер спрайта
	SpriteW, SpriteH float64
	// Хитбокс относительно точки спавна (левый верхний угол спрайта)
	HitboxDX, HitboxDY float64
	HitboxW, HitboxH   float64
}

// Image - имя основной картинки.
func (d BlockDefinition) Image() string { return string(d.Kind) + ".png" }

// BrokenImage - имя картинки разрушенного блока.
func (d BlockDefinition) BrokenImage() string { return string(d.Kind) + "_broken.png" }

// FrameImage - имя кадра анимации разрушения, i начинается с 1.
func (d BlockDefinition) FrameImage(i int) string { return fmt.Sprintf("%s%d.png", d.Kind, i) }

// BlockDefs - библиотека видов блоков.
var BlockDefs = map[BlockKind]BlockDefinition{
	KindIron: oreDef(KindIron),
	KindGold: oreDef(KindGold),
	KindCoal: oreDef(KindCoal),
	// Дерево высокое, но сталкивается только стволом
	KindTree: {
		Kind: KindTree, Category: CategoryTree,
		SpriteW: config.BlockSize, SpriteH: config.TreeHeight,
		HitboxDY: config.TreeHeight - config.BlockSize, HitboxW: config.BlockSize, HitboxH: treeTrunkHeight,
	},
}

const treeTrunkHeight = 40

// oreDef - руда: квадрат, хитбокс совпадает со спрайтом.
func oreDef(kind BlockKind) BlockDefinition {
	return BlockDefinition{
		Kind: kind, Category: CategoryOre,
		SpriteW: config.BlockSize, SpriteH: config.BlockSize,
		HitboxW: config.BlockSize, HitboxH: config.BlockSize,
	}
}

// AllKinds - виды блоков в стабильном порядке.
var AllKinds = []BlockKind{KindIron, KindGold, KindCoal, KindTree}

// KindsOf возвращает виды заданной категории в стабильном порядке.
func KindsOf(category BlockCategory) []BlockKind {
	var kinds []BlockKind
	for _, k := range AllKinds {
		if BlockDefs[k].Category == category {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
