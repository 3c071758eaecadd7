// Package assets loads the images a run needs, once, at startup.
// The resulting Bundle is read-only and may be shared by several worlds.
package assets

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/sprite"
)

// ErrMissingAnimation is returned when the character directory lacks one of
// the eight "<state>-<direction>" sheets.
var ErrMissingAnimation = errors.New("assets: missing character animation")

// States and Directions combine into the required animation names.
var (
	States     = []string{"idle", "move"}
	Directions = []string{"left", "right", "up", "down"}
)

// Bundle holds the decoded assets of a run.
type Bundle struct {
	Background image.Image
	WallTile   image.Image
	Character  sprite.FrameSet
}

// RequiredAnimations lists every sheet the player needs.
func RequiredAnimations() []string {
	names := make([]string, 0, len(States)*len(Directions))
	for _, s := range States {
		for _, d := range Directions {
			names = append(names, s+"-"+d)
		}
	}
	return names
}

// Load reads the background, the wall tile and the character sheets.
// Any missing or unreadable file is an error.
func Load(cfg config.Config, logger *log.Logger) (*Bundle, error) {
	if logger == nil {
		logger = log.Default()
	}

	policy, err := sprite.ParsePartialPolicy(cfg.Assets.PartialFrames)
	if err != nil {
		return nil, err
	}

	bg, err := sprite.DecodeFile(cfg.AssetPath(cfg.Assets.Background))
	if err != nil {
		return nil, fmt.Errorf("assets: background: %w", err)
	}

	wall, err := sprite.DecodeFile(cfg.AssetPath(cfg.Assets.WallTile))
	if err != nil {
		return nil, fmt.Errorf("assets: wall tile: %w", err)
	}

	loader := sprite.Loader{
		FrameW: cfg.Player.FrameWidth,
		FrameH: cfg.Player.FrameHeight,
		Policy: policy,
		Logger: logger,
	}
	character, err := loader.Load(cfg.AssetPath(cfg.Assets.CharacterDir))
	if err != nil {
		return nil, fmt.Errorf("assets: character: %w", err)
	}

	if err := checkAnimations(character); err != nil {
		return nil, err
	}

	logger.Info("assets loaded",
		"dir", cfg.Assets.Dir,
		"background", fmt.Sprintf("%dx%d", bg.Bounds().Dx(), bg.Bounds().Dy()),
		"sheets", len(character),
	)

	return &Bundle{
		Background: bg,
		WallTile:   wall,
		Character:  character,
	}, nil
}

func checkAnimations(set sprite.FrameSet) error {
	var missing []string
	for _, name := range RequiredAnimations() {
		if _, ok := set.Get(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrMissingAnimation, strings.Join(missing, ", "))
}
