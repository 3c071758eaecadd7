package config

// Variant identifiers. Both run the same world; they differ only in presets.
const (
	VariantTower = "tower" // walls on, 50 FPS
	VariantOpen  = "open"  // no walls, 60 FPS
)

// DefaultVariant is played when no variant is named.
const DefaultVariant = VariantTower

// ApplyTowerPreset enables the wall layer at 50 FPS.
func ApplyTowerPreset(cfg *Config) {
	cfg.Walls.Enabled = true
	cfg.Loop.FPS = 50
	cfg.Display.Title = "CodeCool Tower"
}

// ApplyOpenPreset removes every obstacle and runs at 60 FPS; the player can
// leave the viewport freely.
func ApplyOpenPreset(cfg *Config) {
	cfg.Walls.Enabled = false
	cfg.Loop.FPS = 60
	cfg.Display.Title = "Open Field"
}

// OverrideFPS replaces the preset tick rate when fps is positive.
func OverrideFPS(cfg *Config, fps int) {
	if fps > 0 {
		cfg.Loop.FPS = fps
	}
}
