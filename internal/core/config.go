package core

// RuntimeConfig contains platform parameters passed to a world at (re)start.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters (0 for windowed platforms)
	ScreenH  int // Terminal height in characters (0 for windowed platforms)
	TickRate int // Simulation ticks per second
}

// GameState is a read-only summary of the world after a tick.
// Platforms use it for the HUD and for the session record saved on quit.
type GameState struct {
	Tick      int    // Ticks simulated since the last reset
	X, Y      int    // Player top-left position
	Facing    string // "left", "right", "up" or "down"
	Animation string // Current animation name, e.g. "move-left"
	Landings  int    // Landing contacts resolved so far
	HeadHits  int    // Ceiling contacts resolved so far
	Distance  int    // Total horizontal pixels travelled
}

// StepResult is returned by a world after each simulation tick.
type StepResult struct {
	State GameState
}
