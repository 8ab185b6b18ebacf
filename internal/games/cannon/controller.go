package cannon

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"github.com/vovakirdan/kitty-cannon/internal/config"
	"github.com/vovakirdan/kitty-cannon/internal/core"
)

// Cannon holds the barrel aim. Every setter clamps to the configured limits.
type Cannon struct {
	cfg       config.CannonSettings
	power     float64 // Muzzle speed in m/s
	elevation float64 // Degrees above the horizon
	yaw       float64 // Degrees about +Y, 90 points downrange along +X
}

// NewCannon creates a cannon aimed at the configured defaults.
func NewCannon(cfg config.CannonSettings) *Cannon {
	c := &Cannon{cfg: cfg}
	c.ResetAim()
	return c
}

// ResetAim restores the default power, elevation and yaw.
func (c *Cannon) ResetAim() {
	c.SetAim(c.cfg.DefaultPower, c.cfg.DefaultElevation, c.cfg.DefaultYaw)
}

// SetAim sets all three aim values at once.
func (c *Cannon) SetAim(power, elevation, yaw float64) {
	c.power = core.ClampF(power, c.cfg.MinPower, c.cfg.MaxPower)
	c.elevation = core.ClampF(elevation, c.cfg.MinElevation, c.cfg.MaxElevation)
	c.yaw = core.ClampF(yaw, c.cfg.MinYaw, c.cfg.MaxYaw)
}

// Nudge adjusts the aim by the given deltas.
func (c *Cannon) Nudge(dPower, dElevation, dYaw float64) {
	c.SetAim(c.power+dPower, c.elevation+dElevation, c.yaw+dYaw)
}

func (c *Cannon) Power() float64     { return c.power }
func (c *Cannon) Elevation() float64 { return c.elevation }
func (c *Cannon) Yaw() float64       { return c.yaw }

// Direction returns the unit vector the barrel points along.
func (c *Cannon) Direction() ballistics.Vec3 {
	return ballistics.AimDirection(c.elevation, c.yaw)
}

// Velocity returns the launch velocity for the current aim.
func (c *Cannon) Velocity() ballistics.Vec3 {
	return ballistics.AimVelocity(c.power, c.elevation, c.yaw)
}

// Base returns the pivot of the barrel.
func (c *Cannon) Base() ballistics.Vec3 {
	return c.cfg.Muzzle.Vec()
}

// MuzzlePosition returns the tip of the barrel, where shells spawn.
func (c *Cannon) MuzzlePosition() ballistics.Vec3 {
	return c.Base().Add(c.Direction().Scale(c.cfg.BarrelLength))
}

// ParseOrDefault reads a number typed by the player. Blank, malformed and
// non-finite input yields def.
func ParseOrDefault(text string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// FireStatus formats the status line shown after a shot.
func FireStatus(power, elevation float64) string {
	return fmt.Sprintf("Fired: %.1f m/s @ %.0f°", power, elevation)
}
