package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower/internal/config"
	"github.com/vovakirdan/tower/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all variants",
	Long:  `Shows every registered variant with its preset.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Title", "Preset")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "-----", "------")

	for _, v := range variants {
		preset := ""
		if cfg, err := registry.Configure(v.ID, config.DefaultConfig()); err == nil {
			walls := "no walls"
			if cfg.Walls.Enabled {
				walls = "walls"
			}
			preset = fmt.Sprintf("%d fps, %s", cfg.Loop.FPS, walls)
		}
		marker := ""
		if v.ID == config.DefaultVariant {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-16s  %s%s\n", maxIDLen, v.ID, v.Title, preset, marker)
	}

	fmt.Println()
	fmt.Println("Run 'tower play <id>' or 'tower window <id>' to play.")
}
