package collide

import (
	"fmt"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
)

// Collider places a shape in the scene.
type Collider struct {
	ID      string
	Shape   Shape
	Layer   int  // 0..31, matched against the ray's LayerMask
	Trigger bool // Triggers overlap projectiles but never stop them
}

// Scene is a static set of colliders. It is safe for concurrent CastRay calls
// once built, but Add and Remove must not run concurrently with queries.
type Scene struct {
	colliders []Collider
	index     map[string]int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{index: make(map[string]int)}
}

// Add inserts a collider. IDs must be unique and non-empty.
func (s *Scene) Add(c Collider) error {
	if c.ID == "" {
		return fmt.Errorf("collide: collider id is empty")
	}
	if c.Shape == nil {
		return fmt.Errorf("collide: collider %q has no shape", c.ID)
	}
	if c.Layer < 0 || c.Layer > 31 {
		return fmt.Errorf("collide: collider %q layer %d out of range", c.ID, c.Layer)
	}
	if _, exists := s.index[c.ID]; exists {
		return fmt.Errorf("collide: duplicate collider id %q", c.ID)
	}
	s.index[c.ID] = len(s.colliders)
	s.colliders = append(s.colliders, c)
	return nil
}

// Remove deletes a collider by id and reports whether it existed.
func (s *Scene) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.colliders = append(s.colliders[:i], s.colliders[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.colliders); j++ {
		s.index[s.colliders[j].ID] = j
	}
	return true
}

// Get returns the collider with the given id.
func (s *Scene) Get(id string) (Collider, bool) {
	i, ok := s.index[id]
	if !ok {
		return Collider{}, false
	}
	return s.colliders[i], true
}

// Colliders returns the colliders in insertion order.
func (s *Scene) Colliders() []Collider {
	out := make([]Collider, len(s.colliders))
	copy(out, s.colliders)
	return out
}

// Len returns the number of colliders.
func (s *Scene) Len() int {
	return len(s.colliders)
}

// CastRay returns the nearest solid hit within maxDistance on a layer in mask.
func (s *Scene) CastRay(origin, direction ballistics.Vec3, maxDistance float64, mask ballistics.LayerMask) (ballistics.Hit, bool) {
	var best ballistics.Hit
	found := false
	for _, c := range s.colliders {
		if c.Trigger || !mask.Has(c.Layer) {
			continue
		}
		dist, normal, ok := c.Shape.Raycast(origin, direction)
		if !ok || dist > maxDistance {
			continue
		}
		if found && dist >= best.Distance {
			continue
		}
		best = ballistics.Hit{
			Point:    origin.Add(direction.Scale(dist)),
			Normal:   normal,
			Distance: dist,
			Collider: c.ID,
		}
		found = true
	}
	return best, found
}

// Overlapping returns the ids of every collider containing p, triggers included.
func (s *Scene) Overlapping(p ballistics.Vec3) []string {
	var ids []string
	for _, c := range s.colliders {
		if c.Shape.Contains(p) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

var _ ballistics.RayCaster = (*Scene)(nil)
