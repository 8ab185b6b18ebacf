package config

import (
	_ "embed"
)

//go:embed defaults/cannon.yaml
var defaultCannonYAML []byte

// DefaultCannonConfig returns the built-in configuration. It matches
// defaults/cannon.yaml and is used when the embedded file cannot be parsed.
func DefaultCannonConfig() CannonConfig {
	return CannonConfig{
		Physics: PhysicsConfig{
			Gravity:     Vec3{Y: -9.81},
			MaxLifetime: 30,
		},
		Collision: CollisionConfig{
			UseGroundPlane: true,
			GroundHeight:   0,
			UseRaycastHits: true,
			HitLayers:      []int{},
		},
		Cannon: CannonSettings{
			Muzzle:           Vec3{Y: 1},
			BarrelLength:     1.5,
			DefaultPower:     25,
			DefaultElevation: 35,
			DefaultYaw:       90,
			MinPower:         5,
			MaxPower:         60,
			MinElevation:     0,
			MaxElevation:     85,
			MinYaw:           60,
			MaxYaw:           120,
			PowerStep:        0.5,
			AngleStep:        1,
		},
		Preview: PreviewConfig{
			Enabled: true,
			Samples: 40,
			Spacing: 0.08,
		},
		Arena: ArenaConfig{
			Width:          120,
			Height:         45,
			Shots:          6,
			Targets:        3,
			TargetMinRange: 25,
			TargetMaxRange: 100,
			TargetSize:     3,
			TargetLayer:    1,
			TargetPoints:   100,
			MetersPerPoint: 10,
			ShotBonus:      50,
		},
		Wind: WindConfig{},
	}
}
