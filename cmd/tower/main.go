// tower is a small 2D platformer: one sprite, a tiled floor and two walls,
// playable in the terminal, in a native window or over SSH.
//
// Usage:
//
//	tower                      - Play the default variant in the terminal
//	tower play [variant]       - Play a variant in the terminal
//	tower window [variant]     - Play a variant in a native window
//	tower menu                 - Pick variants interactively
//	tower list                 - List available variants
//	tower serve                - Start SSH server for remote play
//	tower stats [variant]      - Show recorded sessions
//	tower assets init <dir>    - Write placeholder images
//	tower config [variant]     - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.tower/configs, ./configs)
//	--assets <dir>     - Asset directory, overrides the config
//	--fps <rate>       - Tick rate, overrides the variant preset
//	--db <path>        - Session database (default: ~/.tower/sessions.db)
//	--log-file <path>  - Log file (default: ~/.tower/tower.log)
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower/internal/logging"
	"github.com/vovakirdan/tower/internal/storage"

	// Register the world variants
	_ "github.com/vovakirdan/tower/internal/world"
)

var (
	// Global flags
	flagConfig  string
	flagAssets  string
	flagFPS     int
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tower",
	Short: "Tower - a tiny platformer for the terminal",
	Long: `Tower moves one animated sprite around a tiled room bounded by a
floor and a ceiling of wall blocks.

Available commands:
  play     - Play a variant in the terminal (default)
  window   - Play a variant in a native window
  menu     - Interactive variant picker
  list     - Show all variants
  serve    - Start SSH server for remote play
  stats    - View recorded sessions
  assets   - Manage image assets
  config   - Print the effective configuration

Examples:
  tower
  tower play open
  tower window tower --fps 60
  tower assets init ./images
  tower serve --ssh :2222`,
	Args:          cobra.MaximumNArgs(0),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPlay(cmd, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = variant preset)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to sessions database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Path to log file (empty disables)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(configCmd)
}
