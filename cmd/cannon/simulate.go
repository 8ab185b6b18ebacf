package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"github.com/vovakirdan/kitty-cannon/internal/collide"
	"github.com/vovakirdan/kitty-cannon/internal/games/cannon"
)

var (
	simAim       aimFlags
	flagNoCrates bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Fire one shell headless and log the impact",
	Long: `Fire a single shell from the configured muzzle at the round-one
crates and report where it lands. Wind is drawn from --seed.

Examples:
  cannon simulate
  cannon simulate --power 30 --elevation 45
  cannon simulate --elevation 20 --no-crates --fps 240`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simAim.register(simulateCmd)
	simulateCmd.Flags().BoolVar(&flagNoCrates, "no-crates", false, "Fire over an empty range")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	barrel := simAim.build(cmd, cfg.Cannon)
	wind := roundWind(cfg)

	scene := collide.NewScene()
	if !flagNoCrates {
		field, err := cannon.NewTargetField(cfg.Arena, barrel.Base(), cfg.Collision.GroundHeight, flagSeed+1)
		if err != nil {
			fail("%v", err)
		}
		scene = field.Scene()
	}

	for _, c := range scene.Colliders() {
		b := c.Shape.Bounds()
		logger.Debug("crate", "id", c.ID, "layer", c.Layer, "center", b.Center(), "size", b.Size())
	}

	origin := barrel.MuzzlePosition()
	p := ballistics.NewProjectile(cfg.ToBallistics(wind), scene)
	p.Launch(origin, barrel.Velocity())

	clock := ballistics.ClockForRate(flagFPS)
	maxTicks := int(math.Ceil(cfg.Physics.MaxLifetime/clock.Delta())) + 1

	logger.Debug("launch",
		"power", barrel.Power(),
		"elevation", barrel.Elevation(),
		"yaw", barrel.Yaw(),
		"wind", wind,
		"crates", scene.Len(),
	)

	res, ticks := ballistics.Fly(p, clock, maxTicks)
	fmt.Println(cannon.FireStatus(barrel.Power(), barrel.Elevation()))

	switch res.Status {
	case ballistics.TickImpact:
		imp := res.Impact
		logger.Info("impact",
			"source", imp.Source,
			"collider", imp.Collider,
			"x", round3(imp.Point.X),
			"y", round3(imp.Point.Y),
			"z", round3(imp.Point.Z),
			"time", round3(imp.Time),
			"range", round3(horizontalDistance(barrel.Base(), imp.Point)),
			"ticks", ticks,
		)
	case ballistics.TickExpired:
		logger.Warn("shell expired in flight", "elapsed", round3(res.Elapsed), "position", res.Position)
	default:
		logger.Warn("shell still flying", "ticks", ticks, "position", res.Position)
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
