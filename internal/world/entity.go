// Package world implements the platformer simulation: a tiled background,
// static wall blocks and one player, advanced one fixed tick at a time.
// It has no knowledge of terminals or windows; platforms feed it input frames
// and present the canvas it composes.
package world

import (
	"github.com/vovakirdan/tower/internal/core"
	"github.com/vovakirdan/tower/internal/sprite"
)

// Drawable is anything with a position that can paint itself.
type Drawable interface {
	Bounds() core.Rect
	Draw(dst *core.Canvas)
}

// Collider is a Drawable with a per-pixel collision mask aligned to its bounds.
type Collider interface {
	Drawable
	Mask() *sprite.Mask
}

// Overlaps reports whether two colliders share at least one solid pixel.
// Bounding boxes are checked first; masks decide.
func Overlaps(a, b Collider) bool {
	ra, rb := a.Bounds(), b.Bounds()
	if !ra.Intersects(rb) {
		return false
	}
	return a.Mask().Overlaps(b.Mask(), rb.X-ra.X, rb.Y-ra.Y)
}
