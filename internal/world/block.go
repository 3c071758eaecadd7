package world

import (
	"image"
	"image/draw"

	"github.com/vovakirdan/tower/internal/core"
	"github.com/vovakirdan/tower/internal/sprite"
)

// Block is an immovable square obstacle.
type Block struct {
	rect    core.Rect
	surface *image.RGBA
	mask    *sprite.Mask
}

// BlockSurface crops tile to a size x size transparent surface.
// If the tile is smaller, the uncovered part stays transparent and non-solid.
func BlockSurface(tile image.Image, size int) *image.RGBA {
	surface := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(surface, surface.Rect, tile, tile.Bounds().Min, draw.Over)
	return surface
}

// NewBlock creates a block at (x, y) showing surface. The mask is derived
// from the surface; blocks built from one surface may share it.
func NewBlock(x, y int, surface *image.RGBA, mask *sprite.Mask) *Block {
	if mask == nil {
		mask = sprite.MaskFromImage(surface, sprite.DefaultThreshold)
	}
	return &Block{
		rect:    core.NewRect(x, y, surface.Rect.Dx(), surface.Rect.Dy()),
		surface: surface,
		mask:    mask,
	}
}

// Bounds returns the block's rectangle.
func (b *Block) Bounds() core.Rect { return b.rect }

// Mask returns the block's collision mask.
func (b *Block) Mask() *sprite.Mask { return b.mask }

// Draw paints the block.
func (b *Block) Draw(dst *core.Canvas) {
	dst.Blit(b.surface, b.rect.X, b.rect.Y)
}

// BuildWalls lays out the south wall (y = viewH - size) followed by the north
// wall (y = 0). Each row spans columns [floor(-viewW/size), floor(2*viewW/size)),
// i.e. one viewport width beyond either side.
func BuildWalls(viewW, viewH, size int, tile image.Image) []*Block {
	if size <= 0 {
		return nil
	}
	surface := BlockSurface(tile, size)
	mask := sprite.MaskFromImage(surface, sprite.DefaultThreshold)

	first, last := floorDiv(-viewW, size), floorDiv(2*viewW, size)
	blocks := make([]*Block, 0, 2*(last-first))
	for _, y := range []int{viewH - size, 0} {
		for i := first; i < last; i++ {
			blocks = append(blocks, NewBlock(i*size, y, surface, mask))
		}
	}
	return blocks
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
