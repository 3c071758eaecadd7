package world

import (
	"image"

	"github.com/vovakirdan/tower/internal/core"
)

// Background repeats one image over the viewport.
type Background struct {
	img   image.Image
	tiles []core.Point
}

// NewBackground computes the tile offsets for img once.
func NewBackground(img image.Image, viewW, viewH int) *Background {
	b := img.Bounds()
	return &Background{
		img:   img,
		tiles: TileOffsets(b.Dx(), b.Dy(), viewW, viewH),
	}
}

// TileOffsets returns (i*w, j*h) for i in [0, viewW/w] and j in [0, viewH/h],
// column by column. This covers the viewport with at most one extra row and
// column. A zero-sized tile yields no offsets.
func TileOffsets(tileW, tileH, viewW, viewH int) []core.Point {
	if tileW <= 0 || tileH <= 0 {
		return nil
	}
	cols, rows := viewW/tileW+1, viewH/tileH+1
	tiles := make([]core.Point, 0, cols*rows)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			tiles = append(tiles, core.Point{X: i * tileW, Y: j * tileH})
		}
	}
	return tiles
}

// Tiles returns the precomputed offsets.
func (b *Background) Tiles() []core.Point {
	return b.tiles
}

// Draw blits the image at every offset.
func (b *Background) Draw(dst *core.Canvas) {
	for _, t := range b.tiles {
		dst.Blit(b.img, t.X, t.Y)
	}
}
