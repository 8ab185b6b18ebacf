package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitty-cannon/internal/platform/tui"
	"github.com/vovakirdan/kitty-cannon/internal/registry"
	"github.com/vovakirdan/kitty-cannon/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a variant",
	Long: `Start the range with the specified variant (default: cannon).

Controls:
  W/S, Up/Down       - Raise/lower the barrel
  A/D, Left/Right    - Turn the barrel
  +/-                - Muzzle speed
  Space              - Fire
  F                  - Type power and angle, then fire
  P                  - Pause
  R                  - Restart (after the round ends)
  B/Esc              - Back to the range menu
  Q/Ctrl+C           - Quit

Examples:
  cannon play
  cannon play cannon_gale
  cannon play --wind calm --seed 7
  cannon play --config ./my-cannon.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "cannon"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'cannon list' to see variants)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	// The game still works without storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtimeConfig())

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
