package sprite

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "idle-left.png"), stripImage(128, 64, 64))
	writePNG(t, filepath.Join(dir, "move-left.png"), stripImage(256, 64, 64))
	writePNG(t, filepath.Join(dir, "tiny.png"), stripImage(10, 64, 64))
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}

	set, err := Loader{FrameW: 64, FrameH: 64, Logger: quietLogger()}.Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if frames, ok := set.Get("idle-left"); !ok || len(frames) != 2 {
		t.Errorf("idle-left: expected 2 frames, got %d", len(frames))
	}
	if frames, ok := set.Get("move-left"); !ok || len(frames) != 4 {
		t.Errorf("move-left: expected 4 frames, got %d", len(frames))
	}
	if _, ok := set.Get("tiny"); ok {
		t.Error("sheet narrower than one frame should be skipped")
	}

	names := set.Names()
	if len(names) != 2 || names[0] != "idle-left" || names[1] != "move-left" {
		t.Errorf("Names() = %v", names)
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	_, err := Loader{FrameW: 64, FrameH: 64, Logger: quietLogger()}.Load(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoaderCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Loader{FrameW: 64, FrameH: 64, Logger: quietLogger()}.Load(dir)
	if err == nil {
		t.Fatal("expected error for undecodable sheet")
	}
}

func TestSheetName(t *testing.T) {
	if got := SheetName("idle-left.png"); got != "idle-left" {
		t.Errorf("SheetName() = %q", got)
	}
	if got := SheetName("wall.tile.jpg"); got != "wall.tile" {
		t.Errorf("SheetName() = %q", got)
	}
}
