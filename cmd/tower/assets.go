package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage image assets",
}

var assetsInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write placeholder images",
	Long: `Write a stone background, a brick wall tile and the eight character
sheets (idle/move x left/right/up/down) using the configured file names.
Existing files are overwritten.

Examples:
  tower assets init
  tower assets init ./images`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAssetsInit,
}

var assetsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Decode the configured assets and report what was found",
	Args:  cobra.NoArgs,
	RunE:  runAssetsCheck,
}

func init() {
	assetsCmd.AddCommand(assetsInitCmd)
	assetsCmd.AddCommand(assetsCheckCmd)
}

func runAssetsInit(_ *cobra.Command, args []string) error {
	e, err := prepare(envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	cfg := e.cfg
	if len(args) > 0 {
		cfg.Assets.Dir = args[0]
	}
	if err := assets.WriteDemo(cfg); err != nil {
		return err
	}
	fmt.Printf("Placeholder assets written to %s\n", cfg.Assets.Dir)
	return nil
}

func runAssetsCheck(_ *cobra.Command, _ []string) error {
	e, err := prepare(envOptions{assets: true})
	if err != nil {
		return err
	}
	defer e.Close()

	b := e.bundle
	fmt.Printf("background  %v\n", b.Background.Bounds().Size())
	fmt.Printf("wall tile   %v\n", b.WallTile.Bounds().Size())
	for _, name := range b.Character.Names() {
		frames, _ := b.Character.Get(name)
		fmt.Printf("%-11s %d frames\n", name, len(frames))
	}
	return nil
}
