package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower/internal/assets"
	"github.com/vovakirdan/tower/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Quitting a round returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Session history
  Q            - Quit

Examples:
  tower menu
  tower menu --fps 30
  tower menu --db ./sessions.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagScreenshots, "screenshots", assets.DefaultScreenshotDir, "Directory for Ctrl+S screenshots")
}

func runMenu(_ *cobra.Command, _ []string) error {
	e, err := prepare(envOptions{assets: true, store: true})
	if err != nil {
		return err
	}
	defer e.Close()

	rt := terminalRuntime()
	opts := tui.Options{
		Store:         e.store,
		Logger:        e.logger,
		ScreenshotDir: flagScreenshots,
	}

	for {
		menuResult, err := tui.RunMenu(rt)
		if err != nil {
			return err
		}
		rt = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsStats {
			goBack, err := tui.RunStats(e.store, "", rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		game, cfg, err := e.launch(menuResult.Variant)
		if err != nil {
			e.logger.Error("cannot start world", "variant", menuResult.Variant, "err", err)
			continue
		}
		if err := tui.Run(game, cfg, opts, rt); err != nil {
			return err
		}
	}
}
