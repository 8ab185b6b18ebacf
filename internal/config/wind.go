package config

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
)

// WindPreset represents a named wind setting.
type WindPreset string

const (
	WindCalm   WindPreset = "calm"
	WindBreezy WindPreset = "breezy"
	WindGale   WindPreset = "gale"
	WindFixed  WindPreset = "fixed" // Keep the configured acceleration as is
)

// ParseWindPreset converts a flag value to a preset. Empty means no preset.
func ParseWindPreset(s string) (WindPreset, error) {
	switch p := WindPreset(s); p {
	case "", WindCalm, WindBreezy, WindGale, WindFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown wind preset %q (want calm, breezy, gale or fixed)", s)
	}
}

// MaxStrengthForPreset returns the variable wind bound for a preset.
func MaxStrengthForPreset(preset WindPreset) float64 {
	switch preset {
	case WindBreezy:
		return 0.8
	case WindGale:
		return 2.5
	default:
		return 0
	}
}

// ApplyWindPreset modifies the config based on a wind preset.
func ApplyWindPreset(cfg *CannonConfig, preset WindPreset) {
	switch preset {
	case WindCalm:
		cfg.Wind = WindConfig{}
	case WindBreezy, WindGale:
		cfg.Wind.Variable = true
		cfg.Wind.MaxStrength = MaxStrengthForPreset(preset)
	case WindFixed:
		cfg.Wind.Variable = false
	}
}

// WindGenerator draws the wind for each round from a seeded source so a
// given seed replays the same sequence of rounds.
type WindGenerator struct {
	cfg WindConfig
	rng *rand.Rand
}

// NewWindGenerator creates a generator for the given settings.
func NewWindGenerator(cfg WindConfig, seed int64) *WindGenerator {
	return &WindGenerator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Next returns the lateral acceleration for the next round. Variable wind
// blows horizontally with a random heading and a strength in [0, MaxStrength].
func (w *WindGenerator) Next() ballistics.Vec3 {
	if !w.cfg.Variable || w.cfg.MaxStrength <= 0 {
		return w.cfg.Acceleration.Vec()
	}
	heading := w.rng.Float64() * 2 * math.Pi
	strength := w.rng.Float64() * w.cfg.MaxStrength
	return ballistics.V3(strength*math.Cos(heading), 0, strength*math.Sin(heading))
}
