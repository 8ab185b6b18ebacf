package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitty-cannon/internal/registry"
	"github.com/vovakirdan/kitty-cannon/internal/storage"
)

var flagShotsLimit int

var shotsCmd = &cobra.Command{
	Use:   "shots [game]",
	Short: "Show the shot log",
	Long: `Display the most recent shots and aggregate accuracy.
Without a game id every variant is included.

Examples:
  cannon shots
  cannon shots cannon_gale --limit 50`,
	Args: cobra.MaximumNArgs(1),
	Run:  runShots,
}

func init() {
	shotsCmd.Flags().IntVar(&flagShotsLimit, "limit", 20, "Number of shots to show")
}

func runShots(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fail("unknown game %q (run 'cannon list' to see variants)", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	shots, err := store.RecentShots(gameID, flagShotsLimit)
	if err != nil {
		fail("retrieving shots: %v", err)
	}

	if len(shots) == 0 {
		fmt.Println("No shots recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %6s  %5s  %5s  %-8s  %8s  %6s  %s\n",
		"Date", "Game", "Power", "Elev", "Yaw", "Outcome", "Range", "Points", "Hit")
	fmt.Printf("  %-16s  %-12s  %6s  %5s  %5s  %-8s  %8s  %6s  %s\n",
		"----", "----", "-----", "----", "---", "-------", "-----", "------", "---")
	for _, s := range shots {
		fmt.Printf("  %-16s  %-12s  %6.1f  %5.1f  %5.1f  %-8s  %7.1fm  %6d  %s\n",
			s.CreatedAt.Local().Format("2006-01-02 15:04"), s.GameID,
			s.Power, s.Elevation, s.Yaw, s.Outcome, s.Range, s.Points, s.Collider)
	}

	stats, err := store.GetShotStats(gameID)
	if err != nil {
		fail("retrieving shot stats: %v", err)
	}
	fmt.Println()
	fmt.Printf("Shots: %d   Hits: %d   Accuracy: %.0f%%   Longest: %.1fm   Average: %.1fm\n",
		stats.Shots, stats.TargetHits, stats.Accuracy()*100, stats.LongestShot, stats.AvgRange)
}
