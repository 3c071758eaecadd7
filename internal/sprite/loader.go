package sprite

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF sheets
	_ "image/jpeg" // JPEG backgrounds and tiles
	_ "image/png"  // PNG sheets with alpha
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader reads every sheet of a directory into a FrameSet.
type Loader struct {
	FrameW int
	FrameH int
	Policy PartialPolicy
	Logger *log.Logger
}

// Load enumerates the regular files of dir in name order, decodes each one and
// slices it into frames. A missing directory or an unreadable image is an error.
// Sheets too narrow for a single frame are skipped with a warning.
func (l Loader) Load(dir string) (FrameSet, error) {
	logger := l.Logger
	if logger == nil {
		logger = log.Default()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("sprite: cannot read sheet directory %s: %w", dir, err)
	}

	set := make(FrameSet, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("sprite: cannot stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		img, err := DecodeFile(path)
		if err != nil {
			return nil, err
		}

		name := SheetName(entry.Name())
		frames, err := Slice(img, l.FrameW, l.FrameH, l.Policy)
		if errors.Is(err, ErrNoFrames) {
			logger.Warn("skipping sprite sheet narrower than one frame",
				"sheet", name, "width", img.Bounds().Dx(), "frame_width", l.FrameW)
			continue
		}
		if err != nil {
			return nil, err
		}
		if rem := img.Bounds().Dx() % l.FrameW; rem != 0 {
			logger.Debug("sprite sheet has a partial trailing frame",
				"sheet", name, "remainder", rem, "policy", l.Policy)
		}

		set[name] = frames
		logger.Debug("loaded sprite sheet", "sheet", name, "frames", len(frames))
	}
	return set, nil
}

// DecodeFile opens and decodes a PNG, JPEG or GIF image.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: cannot open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("sprite: cannot decode %s: %w", path, err)
	}
	return img, nil
}

// SheetName strips the extension from a sheet file name.
func SheetName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file))
}
