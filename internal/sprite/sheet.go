package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// PartialPolicy decides what happens to a trailing frame when a sheet's width
// is not a multiple of the frame width.
type PartialPolicy int

const (
	// PartialDrop discards the trailing partial frame.
	PartialDrop PartialPolicy = iota
	// PartialPad keeps it as a full-size frame padded with transparent pixels.
	PartialPad
)

// ErrNoFrames is returned when a sheet is too narrow to yield any frame.
var ErrNoFrames = errors.New("sprite: sheet yields no frames")

// ParsePartialPolicy converts the config value ("drop" or "pad").
func ParsePartialPolicy(s string) (PartialPolicy, error) {
	switch s {
	case "", "drop":
		return PartialDrop, nil
	case "pad":
		return PartialPad, nil
	default:
		return PartialDrop, fmt.Errorf("sprite: unknown partial frame policy %q", s)
	}
}

// String returns the config spelling of the policy.
func (p PartialPolicy) String() string {
	if p == PartialPad {
		return "pad"
	}
	return "drop"
}

// FrameCount returns how many frames a sheet of the given width produces.
func FrameCount(sheetW, frameW int, policy PartialPolicy) int {
	if frameW <= 0 {
		return 0
	}
	n := sheetW / frameW
	if policy == PartialPad && sheetW%frameW != 0 {
		n++
	}
	return n
}

// Slice cuts a horizontal strip into frameW x frameH frames, left to right.
// Areas of a frame not covered by the sheet stay transparent.
func Slice(sheet image.Image, frameW, frameH int, policy PartialPolicy) ([]*Frame, error) {
	if frameW <= 0 || frameH <= 0 {
		return nil, fmt.Errorf("sprite: invalid frame size %dx%d", frameW, frameH)
	}

	b := sheet.Bounds()
	n := FrameCount(b.Dx(), frameW, policy)
	if n == 0 {
		return nil, ErrNoFrames
	}

	frames := make([]*Frame, 0, n)
	for i := 0; i < n; i++ {
		dst := image.NewRGBA(image.Rect(0, 0, frameW, frameH))
		src := image.Rect(b.Min.X+i*frameW, b.Min.Y, b.Min.X+(i+1)*frameW, b.Min.Y+frameH).Intersect(b)
		draw.Draw(dst, image.Rect(0, 0, src.Dx(), src.Dy()), sheet, src.Min, draw.Src)
		frames = append(frames, NewFrame(dst))
	}
	return frames, nil
}
