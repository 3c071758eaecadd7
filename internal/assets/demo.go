package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/vovakirdan/tower/internal/config"
)

// demoFrames is the number of frames written per placeholder sheet.
const demoFrames = 4

var directionTints = map[string]color.NRGBA{
	"left":  {R: 0x4f, G: 0x9d, B: 0xe8, A: 0xff},
	"right": {R: 0xe8, G: 0x6a, B: 0x4f, A: 0xff},
	"up":    {R: 0x6a, G: 0xd1, B: 0x7a, A: 0xff},
	"down":  {R: 0xd8, G: 0xc1, B: 0x4a, A: 0xff},
}

// WriteDemo writes a placeholder asset tree under cfg.Assets.Dir using the
// configured file names: a stone background, a brick wall tile and eight
// character strips with transparent margins. Existing files are overwritten.
func WriteDemo(cfg config.Config) error {
	charDir := cfg.AssetPath(cfg.Assets.CharacterDir)
	if err := os.MkdirAll(charDir, 0o755); err != nil {
		return fmt.Errorf("assets: cannot create %s: %w", charDir, err)
	}

	if err := writeImage(cfg.AssetPath(cfg.Assets.Background), stoneTile(64)); err != nil {
		return err
	}
	if err := writeImage(cfg.AssetPath(cfg.Assets.WallTile), brickTile(64)); err != nil {
		return err
	}

	fw, fh := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	for _, state := range States {
		for _, dir := range Directions {
			sheet := characterStrip(fw, fh, state, dir)
			path := filepath.Join(charDir, state+"-"+dir+".png")
			if err := writeImage(path, sheet); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeImage encodes by extension: .jpg/.jpeg as JPEG, anything else as PNG.
func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("assets: cannot create %s: %w", path, err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("assets: cannot encode %s: %w", path, err)
	}
	return nil
}

func stoneTile(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			shade := uint8(0x5a + (x*7+y*13)%11)
			if y%half == 0 || (x+(y/half)*half/2)%half == 0 {
				shade = 0x3c
			}
			img.SetNRGBA(x, y, color.NRGBA{R: shade, G: shade, B: shade + 6, A: 0xff})
		}
	}
	return img
}

func brickTile(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	rowH := size / 4
	brickW := size / 2
	for y := 0; y < size; y++ {
		row := y / rowH
		for x := 0; x < size; x++ {
			c := color.NRGBA{R: 0x8e, G: 0x3b, B: 0x2a, A: 0xff}
			if y%rowH == 0 || (x+row%2*brickW/2)%brickW == 0 {
				c = color.NRGBA{R: 0xb8, G: 0xae, B: 0x9c, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// characterStrip draws demoFrames frames of a simple figure facing dir.
// The figure occupies the middle half of each frame; the rest is transparent.
func characterStrip(fw, fh int, state, dir string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fw*demoFrames, fh))
	tint := directionTints[dir]
	head := color.NRGBA{R: 0xf2, G: 0xd0, B: 0xa9, A: 0xff}
	eye := color.NRGBA{R: 0x1b, G: 0x1b, B: 0x1b, A: 0xff}

	for i := 0; i < demoFrames; i++ {
		ox := i * fw
		bob := 0
		if state == "idle" && i%2 == 1 {
			bob = 1
		}

		left, right := ox+fw/4, ox+fw*3/4
		top, bottom := fh/4+bob, fh-fh/8
		headBottom := top + fh/5

		fillRect(img, left, top, right, headBottom, head)
		fillRect(img, left, headBottom, right, bottom, tint)

		// Legs alternate while moving.
		legW := (right - left) / 3
		legH := fh / 8
		if state == "move" && i%2 == 1 {
			fillRect(img, left, bottom, left+legW, bottom+legH, tint)
		} else {
			fillRect(img, right-legW, bottom, right, bottom+legH, tint)
			if state == "idle" {
				fillRect(img, left, bottom, left+legW, bottom+legH, tint)
			}
		}

		ex, ey := (left+right)/2-2, top+fh/10-2
		switch dir {
		case "left":
			ex = left + 3
		case "right":
			ex = right - 7
		case "up":
			ey = top + 1
		case "down":
			ey = headBottom - 5
		}
		fillRect(img, ex, ey, ex+4, ey+4, eye)
	}
	return img
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
