package main

import (
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"github.com/vovakirdan/kitty-cannon/internal/config"
	"github.com/vovakirdan/kitty-cannon/internal/games/cannon"
)

// aimFlags are the barrel settings shared by the headless commands.
// Unset flags keep the config defaults.
type aimFlags struct {
	power     float64
	elevation float64
	yaw       float64
}

func (a *aimFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&a.power, "power", 0, "Muzzle speed in m/s (default from config)")
	cmd.Flags().Float64Var(&a.elevation, "elevation", 0, "Barrel elevation in degrees (default from config)")
	cmd.Flags().Float64Var(&a.yaw, "yaw", 0, "Barrel yaw in degrees, 90 points down +X (default from config)")
}

// build makes a barrel from cfg with the changed flags applied and clamped.
func (a *aimFlags) build(cmd *cobra.Command, cfg config.CannonSettings) *cannon.Cannon {
	c := cannon.NewCannon(cfg)
	power, elevation, yaw := c.Power(), c.Elevation(), c.Yaw()
	if cmd.Flags().Changed("power") {
		power = a.power
	}
	if cmd.Flags().Changed("elevation") {
		elevation = a.elevation
	}
	if cmd.Flags().Changed("yaw") {
		yaw = a.yaw
	}
	c.SetAim(power, elevation, yaw)
	return c
}

// horizontalDistance is the downrange distance, ignoring height.
func horizontalDistance(from, to ballistics.Vec3) float64 {
	return math.Hypot(to.X-from.X, to.Z-from.Z)
}
