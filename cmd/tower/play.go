package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/platform/tui"
)

var flagScreenshots string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant in the terminal",
	Long: `Start the given variant (default "tower") in the terminal.

Controls:
  Arrows/WASD/HJKL  - Move
  R                 - Restart
  Ctrl+S            - Save a PNG screenshot
  Q/Esc/Ctrl+C      - Quit

Terminals report key presses but not releases, so a key counts as held for
input.hold_ticks ticks after its last press or auto-repeat.

Examples:
  tower play
  tower play open
  tower play tower --fps 30 --assets ./images`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshots, "screenshots", assets.DefaultScreenshotDir, "Directory for Ctrl+S screenshots")
}

func runPlay(_ *cobra.Command, args []string) error {
	e, err := prepare(envOptions{assets: true, store: true})
	if err != nil {
		return err
	}
	defer e.Close()

	game, cfg, err := e.launch(variantArg(args))
	if err != nil {
		return err
	}

	return tui.Run(game, cfg, tui.Options{
		Store:         e.store,
		Logger:        e.logger,
		ScreenshotDir: flagScreenshots,
	}, terminalRuntime())
}
