package config

import (
	_ "embed"
)

//go:embed defaults/tower.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration, identical to the
// embedded defaults/tower.yaml.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Width:  1000,
			Height: 800,
			Title:  "CodeCool Tower",
		},
		Loop: LoopConfig{
			FPS: 50,
		},
		Player: PlayerConfig{
			StartX:         100,
			StartY:         100,
			Speed:          5,
			AnimationDelay: 10,
			FrameWidth:     64,
			FrameHeight:    64,
		},
		Assets: AssetsConfig{
			Dir:           "images",
			Background:    "stone-floor-tile.jpg",
			WallTile:      "wall-tile.jpg",
			CharacterDir:  "character",
			PartialFrames: "drop",
		},
		Walls: WallsConfig{
			Enabled:   true,
			BlockSize: 50,
		},
		Collision: CollisionConfig{
			Snap:     SnapSurface,
			LandingY: 650,
			CeilingY: 90,
		},
		Input: InputConfig{
			HoldTicks: 25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
