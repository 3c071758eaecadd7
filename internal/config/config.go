// Package config provides YAML-based configuration loading and the variant
// presets for the platformer.
package config

import (
	"fmt"
)

// Config contains all tunables of a run.
type Config struct {
	Display   DisplayConfig   `yaml:"display"`
	Loop      LoopConfig      `yaml:"loop"`
	Player    PlayerConfig    `yaml:"player"`
	Assets    AssetsConfig    `yaml:"assets"`
	Walls     WallsConfig     `yaml:"walls"`
	Collision CollisionConfig `yaml:"collision"`
	Input     InputConfig     `yaml:"input"`
}

// DisplayConfig defines the logical viewport.
type DisplayConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	FPS int `yaml:"fps"`
}

// PlayerConfig defines the player's spawn point, speed and animation.
type PlayerConfig struct {
	StartX         int `yaml:"start_x"`
	StartY         int `yaml:"start_y"`
	Speed          int `yaml:"speed"`           // Pixels per tick on each held axis
	AnimationDelay int `yaml:"animation_delay"` // Ticks per animation frame
	FrameWidth     int `yaml:"frame_width"`
	FrameHeight    int `yaml:"frame_height"`
}

// AssetsConfig locates the image files read at startup.
type AssetsConfig struct {
	Dir           string `yaml:"dir"`
	Background    string `yaml:"background"`
	WallTile      string `yaml:"wall_tile"`
	CharacterDir  string `yaml:"character_dir"`
	PartialFrames string `yaml:"partial_frames"` // "drop" or "pad"
}

// WallsConfig controls the north/south wall layer.
type WallsConfig struct {
	Enabled   bool `yaml:"enabled"`
	BlockSize int  `yaml:"block_size"`
}

// CollisionConfig selects how a contact repositions the player.
type CollisionConfig struct {
	Snap     string `yaml:"snap"`      // "surface" or "fixed"
	LandingY int    `yaml:"landing_y"` // Used by "fixed" only
	CeilingY int    `yaml:"ceiling_y"` // Used by "fixed" only
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	// HoldTicks is how long a key counts as held after its last press or
	// auto-repeat. Terminals report no key releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// Snap modes.
const (
	SnapSurface = "surface"
	SnapFixed   = "fixed" // legacy absolute-Y behaviour
)

// Validate checks that the config describes a playable run.
func (c Config) Validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("config: display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Loop.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Loop.FPS)
	}
	if c.Player.FrameWidth <= 0 || c.Player.FrameHeight <= 0 {
		return fmt.Errorf("config: frame size must be positive, got %dx%d", c.Player.FrameWidth, c.Player.FrameHeight)
	}
	if c.Player.AnimationDelay <= 0 {
		return fmt.Errorf("config: animation_delay must be positive, got %d", c.Player.AnimationDelay)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("config: speed must not be negative, got %d", c.Player.Speed)
	}
	if c.Walls.Enabled && c.Walls.BlockSize <= 0 {
		return fmt.Errorf("config: block_size must be positive, got %d", c.Walls.BlockSize)
	}
	switch c.Collision.Snap {
	case SnapSurface, SnapFixed:
	default:
		return fmt.Errorf("config: unknown collision snap %q", c.Collision.Snap)
	}
	switch c.Assets.PartialFrames {
	case "drop", "pad":
	default:
		return fmt.Errorf("config: unknown partial_frames policy %q", c.Assets.PartialFrames)
	}
	if c.Input.HoldTicks <= 0 {
		return fmt.Errorf("config: hold_ticks must be positive, got %d", c.Input.HoldTicks)
	}
	return nil
}
