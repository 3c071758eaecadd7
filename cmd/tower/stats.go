package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tower/internal/platform/tui"
	"github.com/vovakirdan/tower/internal/registry"
	"github.com/vovakirdan/tower/internal/storage"
)

var (
	flagBoard bool
	flagLimit int
	flagClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "Show recorded sessions",
	Long: `Display the most recent sessions, optionally for one variant, followed
by per-variant totals. With --board the history opens in an interactive table.

Examples:
  tower stats
  tower stats open --limit 5
  tower stats --board
  tower stats open --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive session board")
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to list")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded sessions of the variant")
}

func runStats(_ *cobra.Command, args []string) error {
	variant := ""
	if len(args) > 0 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("unknown variant %q (run 'tower list' to see variants)", variant)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open sessions database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if variant == "" {
			return fmt.Errorf("--clear needs a variant")
		}
		if err := store.ClearSessions(variant); err != nil {
			return err
		}
		fmt.Printf("Cleared sessions for %s\n", variant)
		return nil
	}

	if flagBoard {
		rt := terminalRuntime()
		_, err := tui.RunStats(store, variant, rt.ScreenW, rt.ScreenH)
		return err
	}

	sessions, err := store.RecentSessions(variant, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tower play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-8s  %6s  %8s  %9s  %8s  %5s  %s\n", "Variant", "Ticks", "Landings", "Head hits", "Distance", "Secs", "Date")
	fmt.Printf("  %-8s  %6s  %8s  %9s  %8s  %5s  %s\n", "-------", "-----", "--------", "---------", "--------", "----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-8s  %6d  %8d  %9d  %8d  %5d  %s\n",
			s.Variant, s.Ticks, s.Landings, s.HeadHits, s.Distance, s.Duration,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	all, err := store.GetAllVariantStats()
	if err != nil {
		return err
	}
	fmt.Println()
	for _, v := range registry.List() {
		st, ok := all[v.ID]
		if !ok || (variant != "" && v.ID != variant) {
			continue
		}
		fmt.Printf("%s: %d sessions, %d ticks, %d landings, %d head hits, longest walk %d px\n",
			v.Title, st.SessionsCount, st.TotalTicks, st.TotalLandings, st.TotalHeadHits, st.LongestWalk)
	}
	return nil
}
