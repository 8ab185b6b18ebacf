package main

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"github.com/vovakirdan/kitty-cannon/internal/config"
	"github.com/vovakirdan/kitty-cannon/internal/games/cannon"
)

var (
	sweepAim    aimFlags
	flagFrom    float64
	flagTo      float64
	flagStep    float64
	flagWorkers int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate range across elevation angles",
	Long: `Fire one shell per elevation over an empty range and print where
each lands. Every elevation flies in its own world, so the sweep runs
in parallel.

Examples:
  cannon sweep
  cannon sweep --power 40 --from 10 --to 80 --step 10
  cannon sweep --wind gale --seed 3`,
	Args: cobra.NoArgs,
	Run:  runSweep,
}

func init() {
	sweepAim.register(sweepCmd)
	sweepCmd.Flags().Float64Var(&flagFrom, "from", 5, "First elevation in degrees")
	sweepCmd.Flags().Float64Var(&flagTo, "to", 85, "Last elevation in degrees")
	sweepCmd.Flags().Float64Var(&flagStep, "step", 5, "Elevation increment in degrees")
	sweepCmd.Flags().IntVar(&flagWorkers, "workers", runtime.NumCPU(), "Parallel simulations")
}

// sweepRow is the outcome of one elevation.
type sweepRow struct {
	elevation float64
	landed    bool
	time      float64
	rangeM    float64
	apex      float64
}

func runSweep(cmd *cobra.Command, _ []string) {
	if !(flagStep > 0) || flagTo < flagFrom {
		fail("need --step > 0 and --from <= --to")
	}
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	barrel := sweepAim.build(cmd, cfg.Cannon)
	bcfg := cfg.ToBallistics(roundWind(cfg))
	bcfg.UseRaycastHits = false

	var elevations []float64
	for e := flagFrom; e <= flagTo+1e-9; e += flagStep {
		elevations = append(elevations, e)
	}
	rows := make([]sweepRow, len(elevations))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(flagWorkers, 1))
	for i, e := range elevations {
		g.Go(func() error {
			row, err := flyElevation(ctx, bcfg, cfg.Cannon, barrel.Power(), e, barrel.Yaw(), flagFPS)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fail("sweep: %v", err)
	}
	logger.Debug("sweep finished", "elevations", len(rows), "power", barrel.Power())

	fmt.Printf("Range table: %.1f m/s, yaw %.0f°\n", barrel.Power(), barrel.Yaw())
	fmt.Println()
	fmt.Printf("  %5s  %8s  %9s  %8s\n", "Elev", "Time", "Range", "Apex")
	fmt.Printf("  %5s  %8s  %9s  %8s\n", "----", "----", "-----", "----")
	best := -1
	for i, r := range rows {
		if !r.landed {
			fmt.Printf("  %5.1f  %8s  %9s  %7.1fm\n", r.elevation, "-", "expired", r.apex)
			continue
		}
		fmt.Printf("  %5.1f  %7.2fs  %8.1fm  %7.1fm\n", r.elevation, r.time, r.rangeM, r.apex)
		if best < 0 || r.rangeM > rows[best].rangeM {
			best = i
		}
	}
	if best >= 0 {
		fmt.Println()
		fmt.Printf("Longest: %.1fm at %.1f°\n", rows[best].rangeM, rows[best].elevation)
	}
}

// flyElevation fires one shell in a private world and ticks it until the
// world drops it.
func flyElevation(ctx context.Context, bcfg ballistics.Config, settings config.CannonSettings, power, elevation, yaw float64, rate int) (sweepRow, error) {
	settings.MinElevation = math.Min(settings.MinElevation, elevation)
	settings.MaxElevation = math.Max(settings.MaxElevation, elevation)
	barrel := cannon.NewCannon(settings)
	barrel.SetAim(power, elevation, yaw)

	origin := barrel.MuzzlePosition()
	world := ballistics.NewWorld(bcfg, nil)
	id := world.Launch(origin, barrel.Velocity())

	row := sweepRow{elevation: elevation, apex: origin.Y}
	dt := ballistics.ClockForRate(rate).Delta()
	for world.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return row, err
		}
		rep := world.Tick(dt)
		for _, f := range rep.Flights {
			row.apex = math.Max(row.apex, f.Position.Y)
		}
		for _, imp := range rep.Impacts {
			if imp.ID != id {
				continue
			}
			row.landed = true
			row.time = imp.Impact.Time
			row.rangeM = horizontalDistance(barrel.Base(), imp.Impact.Point)
		}
	}
	return row, nil
}
