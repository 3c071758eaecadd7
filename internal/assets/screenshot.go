package assets

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"
)

// DefaultScreenshotDir is where ctrl+s captures go.
const DefaultScreenshotDir = "~/.tower/screenshots"

// SaveScreenshot writes img as "<prefix>_<timestamp>.png" under dir and
// returns the file path. dir is created if missing.
func SaveScreenshot(img image.Image, dir, prefix string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("assets: cannot create %s: %w", dir, err)
	}
	name := fmt.Sprintf("%s_%s.png", prefix, now.Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := writeImage(path, img); err != nil {
		return "", err
	}
	return path, nil
}
