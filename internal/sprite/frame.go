package sprite

import (
	"image"
	"sort"
)

// Frame is one fixed-size animation frame and its collision mask.
type Frame struct {
	img  *image.RGBA
	mask *Mask
}

// NewFrame wraps an RGBA image and derives its mask.
func NewFrame(img *image.RGBA) *Frame {
	return &Frame{img: img, mask: MaskFromImage(img, DefaultThreshold)}
}

// Image returns the frame pixels.
func (f *Frame) Image() *image.RGBA { return f.img }

// Mask returns the frame's collision mask.
func (f *Frame) Mask() *Mask { return f.mask }

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.img.Rect.Dx() }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.img.Rect.Dy() }

// FrameSet maps a sheet name (file name without extension, e.g. "idle-left")
// to its ordered, non-empty frame sequence.
type FrameSet map[string][]*Frame

// Get returns the frames of the named sheet.
func (s FrameSet) Get(name string) ([]*Frame, bool) {
	frames, ok := s[name]
	return frames, ok && len(frames) > 0
}

// Names returns the sheet names in sorted order.
func (s FrameSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
