package cannon

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"github.com/vovakirdan/kitty-cannon/internal/collide"
	"github.com/vovakirdan/kitty-cannon/internal/config"
)

// Target is a crate standing on the ground downrange.
type Target struct {
	ID     string
	Box    *collide.Box
	Points int
	Hit    bool
}

// Center returns the middle of the crate.
func (t *Target) Center() ballistics.Vec3 {
	return t.Box.Center()
}

// TargetField owns the round's targets and the scene they are raycast in.
type TargetField struct {
	targets []*Target
	scene   *collide.Scene
	layer   int
}

// NewTargetField places arena.Targets crates along +X from base. The range
// is split into equal slots with one crate in each, so crates never overlap
// when a slot is at least one crate wide.
func NewTargetField(arena config.ArenaConfig, base ballistics.Vec3, groundY float64, seed int64) (*TargetField, error) {
	tf := &TargetField{
		scene: collide.NewScene(),
		layer: arena.TargetLayer,
	}
	if arena.Targets <= 0 {
		return tf, nil
	}

	rng := rand.New(rand.NewSource(seed))
	size := arena.TargetSize
	slot := (arena.TargetMaxRange - arena.TargetMinRange) / float64(arena.Targets)
	slack := max(slot-size, 0)

	for i := 0; i < arena.Targets; i++ {
		x := base.X + arena.TargetMinRange + float64(i)*slot + size/2 + rng.Float64()*slack
		center := ballistics.V3(x, groundY+size/2, base.Z)
		t := &Target{
			ID:     fmt.Sprintf("target-%d", i+1),
			Box:    collide.NewBox(center, ballistics.V3(size, size, size)),
			Points: arena.TargetPoints,
		}
		if err := tf.scene.Add(collide.Collider{ID: t.ID, Shape: t.Box, Layer: arena.TargetLayer}); err != nil {
			return nil, fmt.Errorf("cannon: cannot place %s: %w", t.ID, err)
		}
		tf.targets = append(tf.targets, t)
	}
	return tf, nil
}

// Scene returns the collidable world shells are raycast against.
func (tf *TargetField) Scene() *collide.Scene {
	return tf.scene
}

// Targets returns every target, hit or not, in downrange order.
func (tf *TargetField) Targets() []*Target {
	return tf.targets
}

// Strike marks the target with the given collider id as hit and removes it
// from the scene so later shells fly through. It returns nil for unknown or
// already struck ids.
func (tf *TargetField) Strike(id string) *Target {
	for _, t := range tf.targets {
		if t.ID != id || t.Hit {
			continue
		}
		t.Hit = true
		tf.scene.Remove(id)
		return t
	}
	return nil
}

// Remaining counts targets still standing.
func (tf *TargetField) Remaining() int {
	n := 0
	for _, t := range tf.targets {
		if !t.Hit {
			n++
		}
	}
	return n
}

// Cleared reports whether every target is down. An empty field is never cleared.
func (tf *TargetField) Cleared() bool {
	return len(tf.targets) > 0 && tf.Remaining() == 0
}
