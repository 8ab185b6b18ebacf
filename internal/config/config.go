// Package config provides YAML-based configuration loading and wind presets
// for the cannon game and the headless tools.
package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
)

// CannonConfig contains all configuration for the cannon game.
type CannonConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Collision CollisionConfig `yaml:"collision"`
	Cannon    CannonSettings  `yaml:"cannon"`
	Preview   PreviewConfig   `yaml:"preview"`
	Arena     ArenaConfig     `yaml:"arena"`
	Wind      WindConfig      `yaml:"wind"`
}

// Vec3 is the YAML form of a vector.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts to the simulation vector type.
func (v Vec3) Vec() ballistics.Vec3 {
	return ballistics.V3(v.X, v.Y, v.Z)
}

// PhysicsConfig defines the forces acting on every shell.
type PhysicsConfig struct {
	Gravity     Vec3    `yaml:"gravity"`
	MaxLifetime float64 `yaml:"max_lifetime"` // Seconds before an airborne shell is removed
}

// CollisionConfig selects the impact strategies.
type CollisionConfig struct {
	UseGroundPlane bool    `yaml:"use_ground_plane"`
	GroundHeight   float64 `yaml:"ground_height"`
	UseRaycastHits bool    `yaml:"use_raycast_hits"`
	HitLayers      []int   `yaml:"hit_layers"` // Empty means every layer
}

// CannonSettings defines the barrel, its aim limits and its defaults.
type CannonSettings struct {
	Muzzle           Vec3    `yaml:"muzzle"`
	BarrelLength     float64 `yaml:"barrel_length"`
	DefaultPower     float64 `yaml:"default_power"`
	DefaultElevation float64 `yaml:"default_elevation"`
	DefaultYaw       float64 `yaml:"default_yaw"`
	MinPower         float64 `yaml:"min_power"`
	MaxPower         float64 `yaml:"max_power"`
	MinElevation     float64 `yaml:"min_elevation"`
	MaxElevation     float64 `yaml:"max_elevation"`
	MinYaw           float64 `yaml:"min_yaw"`
	MaxYaw           float64 `yaml:"max_yaw"`
	PowerStep        float64 `yaml:"power_step"`
	AngleStep        float64 `yaml:"angle_step"`
}

// PreviewConfig defines the predicted arc drawn while aiming.
type PreviewConfig struct {
	Enabled bool    `yaml:"enabled"`
	Samples int     `yaml:"samples"`
	Spacing float64 `yaml:"spacing"` // Seconds between samples
}

// ArenaConfig defines the playing field and round rules.
type ArenaConfig struct {
	Width          float64 `yaml:"width"`  // Downrange meters visible on screen
	Height         float64 `yaml:"height"` // Meters of sky visible on screen
	Shots          int     `yaml:"shots"`
	Targets        int     `yaml:"targets"`
	TargetMinRange float64 `yaml:"target_min_range"`
	TargetMaxRange float64 `yaml:"target_max_range"`
	TargetSize     float64 `yaml:"target_size"`
	TargetLayer    int     `yaml:"target_layer"`
	TargetPoints   int     `yaml:"target_points"`
	MetersPerPoint float64 `yaml:"meters_per_point"` // Ground landings score one point per this many meters
	ShotBonus      int     `yaml:"shot_bonus"`       // Per unused shot when every target is down
}

// WindConfig defines the lateral acceleration added to gravity.
type WindConfig struct {
	Acceleration Vec3    `yaml:"acceleration"`
	Variable     bool    `yaml:"variable"`     // Draw a new wind each round
	MaxStrength  float64 `yaml:"max_strength"` // Upper bound in m/s² for variable wind
}

// HitMask converts the configured layers to a mask.
func (c CollisionConfig) HitMask() ballistics.LayerMask {
	if len(c.HitLayers) == 0 {
		return ballistics.AllLayers
	}
	var m ballistics.LayerMask
	for _, l := range c.HitLayers {
		m |= ballistics.LayerBit(l)
	}
	return m
}

// ToBallistics builds the per-projectile settings. wind is the lateral
// acceleration for the current round.
func (c CannonConfig) ToBallistics(wind ballistics.Vec3) ballistics.Config {
	return ballistics.Config{
		Gravity:             c.Physics.Gravity.Vec(),
		LateralAcceleration: wind,
		UseGroundPlane:      c.Collision.UseGroundPlane,
		GroundHeight:        c.Collision.GroundHeight,
		UseRaycastHits:      c.Collision.UseRaycastHits,
		HitMask:             c.Collision.HitMask(),
		MaxLifetime:         c.Physics.MaxLifetime,
	}
}

// Validate reports the first inconsistent setting.
func (c CannonConfig) Validate() error {
	if !finiteVec(c.Physics.Gravity) {
		return fmt.Errorf("physics.gravity must be finite")
	}
	if !(c.Physics.MaxLifetime > 0) {
		return fmt.Errorf("physics.max_lifetime must be positive, got %v", c.Physics.MaxLifetime)
	}
	for _, l := range c.Collision.HitLayers {
		if l < 0 || l > 31 {
			return fmt.Errorf("collision.hit_layers: layer %d out of range [0, 31]", l)
		}
	}

	cn := c.Cannon
	if cn.MinPower < 0 || cn.MinPower > cn.MaxPower {
		return fmt.Errorf("cannon: power range [%v, %v] is invalid", cn.MinPower, cn.MaxPower)
	}
	if cn.MinElevation < 0 || cn.MaxElevation > 90 || cn.MinElevation > cn.MaxElevation {
		return fmt.Errorf("cannon: elevation range [%v, %v] must lie within [0, 90]", cn.MinElevation, cn.MaxElevation)
	}
	if cn.MinYaw > cn.MaxYaw {
		return fmt.Errorf("cannon: yaw range [%v, %v] is invalid", cn.MinYaw, cn.MaxYaw)
	}
	if !within(cn.DefaultPower, cn.MinPower, cn.MaxPower) {
		return fmt.Errorf("cannon.default_power %v outside [%v, %v]", cn.DefaultPower, cn.MinPower, cn.MaxPower)
	}
	if !within(cn.DefaultElevation, cn.MinElevation, cn.MaxElevation) {
		return fmt.Errorf("cannon.default_elevation %v outside [%v, %v]", cn.DefaultElevation, cn.MinElevation, cn.MaxElevation)
	}
	if !within(cn.DefaultYaw, cn.MinYaw, cn.MaxYaw) {
		return fmt.Errorf("cannon.default_yaw %v outside [%v, %v]", cn.DefaultYaw, cn.MinYaw, cn.MaxYaw)
	}
	if cn.BarrelLength < 0 {
		return fmt.Errorf("cannon.barrel_length must not be negative")
	}

	if c.Preview.Samples < 0 {
		return fmt.Errorf("preview.samples must not be negative")
	}
	if c.Preview.Samples > 0 && !(c.Preview.Spacing > 0) {
		return fmt.Errorf("preview.spacing must be positive when samples are drawn")
	}

	a := c.Arena
	if !(a.Width > 0) || !(a.Height > 0) {
		return fmt.Errorf("arena: width and height must be positive")
	}
	if a.Shots <= 0 {
		return fmt.Errorf("arena.shots must be positive, got %d", a.Shots)
	}
	if a.Targets < 0 {
		return fmt.Errorf("arena.targets must not be negative")
	}
	if a.Targets > 0 && (a.TargetMinRange < 0 || a.TargetMinRange > a.TargetMaxRange || !(a.TargetSize > 0)) {
		return fmt.Errorf("arena: target placement [%v, %v] size %v is invalid", a.TargetMinRange, a.TargetMaxRange, a.TargetSize)
	}
	if a.TargetLayer < 0 || a.TargetLayer > 31 {
		return fmt.Errorf("arena.target_layer %d out of range [0, 31]", a.TargetLayer)
	}
	if a.MetersPerPoint < 0 {
		return fmt.Errorf("arena.meters_per_point must not be negative")
	}

	if !finiteVec(c.Wind.Acceleration) || c.Wind.MaxStrength < 0 || math.IsInf(c.Wind.MaxStrength, 0) {
		return fmt.Errorf("wind: acceleration must be finite and max_strength non-negative")
	}
	return nil
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

func finiteVec(v Vec3) bool {
	return v.Vec().IsFinite()
}
