package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play a variant in a native window",
	Long: `Open a window sized to the viewport and play the given variant.

Controls:
  Arrows/WASD  - Move
  R            - Restart
  Ctrl+S       - Save a PNG screenshot
  Q/Esc        - Quit (closing the window works too)

Examples:
  tower window
  tower window open --fps 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagScreenshots, "screenshots", assets.DefaultScreenshotDir, "Directory for Ctrl+S screenshots")
}

func runWindow(_ *cobra.Command, args []string) error {
	e, err := prepare(envOptions{assets: true, store: true})
	if err != nil {
		return err
	}
	defer e.Close()

	game, cfg, err := e.launch(variantArg(args))
	if err != nil {
		return err
	}

	return window.Run(game, cfg, window.Options{
		Store:         e.store,
		Logger:        e.logger,
		ScreenshotDir: flagScreenshots,
	})
}
