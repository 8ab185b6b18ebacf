// cannon is a terminal artillery range built on a closed-form ballistics core.
//
// Usage:
//
//	cannon list              - List available game variants
//	cannon play [game]       - Play a variant (default: cannon)
//	cannon menu              - Start menu to pick variants interactively
//	cannon serve             - Start SSH server for remote play
//	cannon scores <game>     - Show high scores for a variant
//	cannon shots [game]      - Show the shot log and accuracy
//	cannon simulate          - Fire one shell headless and log the impact
//	cannon preview           - Print the predicted arc for an aim
//	cannon sweep             - Tabulate range across elevations
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.cannon/scores.db)
//	--config <path>     - Custom cannon YAML config
//	--wind <preset>     - Wind preset: calm, breezy, gale, fixed
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"github.com/vovakirdan/kitty-cannon/internal/config"
	"github.com/vovakirdan/kitty-cannon/internal/core"
	"github.com/vovakirdan/kitty-cannon/internal/games/cannon"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagWind     string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cannon",
	Short: "Kitty Cannon - lob shells across your terminal",
	Long: `Kitty Cannon is a terminal artillery range. Aim the barrel, fire
shells under gravity and wind, and knock down every crate before
the shots run out.

Available commands:
  list      - Show all game variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  shots     - View the shot log
  simulate  - Fire one shell without a terminal UI
  preview   - Print a predicted trajectory
  sweep     - Range table across elevation angles

Examples:
  cannon play
  cannon play cannon_gale --seed 42
  cannon simulate --power 30 --elevation 45
  cannon preview --yaml
  cannon serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cannon/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom cannon config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWind, "wind", "", "Wind preset: calm, breezy, gale, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shotsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(sweepCmd)
}

// setup validates the global flags and hands them to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "cannon",
		Level:           level,
	})

	if _, err := config.ParseWindPreset(flagWind); err != nil {
		return err
	}
	cannon.SetConfigPath(flagConfig)
	cannon.SetWindPreset(flagWind)
	return nil
}

// loadConfig loads the cannon config with the --wind preset applied.
func loadConfig() (config.CannonConfig, error) {
	cfg, err := config.LoadCannon(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseWindPreset(flagWind)
	if err != nil {
		return cfg, err
	}
	config.ApplyWindPreset(&cfg, preset)
	return cfg, nil
}

// roundWind draws the wind for a headless run from --seed.
func roundWind(cfg config.CannonConfig) ballistics.Vec3 {
	return config.NewWindGenerator(cfg.Wind, flagSeed).Next()
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
