package collide

import (
	"math"
	"testing"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
)

func near(a, b ballistics.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestSphereRaycast(t *testing.T) {
	s := NewSphere(ballistics.V3(10, 0, 0), 2)
	tests := []struct {
		name   string
		origin ballistics.Vec3
		dir    ballistics.Vec3
		ok     bool
		dist   float64
		normal ballistics.Vec3
	}{
		{
			name:   "head on",
			origin: ballistics.V3(0, 0, 0),
			dir:    ballistics.V3(1, 0, 0),
			ok:     true,
			dist:   8,
			normal: ballistics.V3(-1, 0, 0),
		},
		{
			name:   "pointing away",
			origin: ballistics.V3(0, 0, 0),
			dir:    ballistics.V3(-1, 0, 0),
			ok:     false,
		},
		{
			name:   "passes above",
			origin: ballistics.V3(0, 3, 0),
			dir:    ballistics.V3(1, 0, 0),
			ok:     false,
		},
		{
			name:   "starts inside",
			origin: ballistics.V3(10, 0, 0),
			dir:    ballistics.V3(1, 0, 0),
			ok:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist, normal, ok := s.Raycast(tc.origin, tc.dir)
			if ok != tc.ok {
				t.Fatalf("Raycast() ok = %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if math.Abs(dist-tc.dist) > 1e-9 {
				t.Errorf("Raycast() dist = %v, expected %v", dist, tc.dist)
			}
			if !near(normal, tc.normal) {
				t.Errorf("Raycast() normal = %v, expected %v", normal, tc.normal)
			}
		})
	}
}

func TestBoxRaycast(t *testing.T) {
	b := NewBox(ballistics.V3(5, 1, 0), ballistics.V3(2, 2, 2))
	tests := []struct {
		name   string
		origin ballistics.Vec3
		dir    ballistics.Vec3
		ok     bool
		dist   float64
		normal ballistics.Vec3
	}{
		{
			name:   "front face",
			origin: ballistics.V3(0, 1, 0),
			dir:    ballistics.V3(1, 0, 0),
			ok:     true,
			dist:   4,
			normal: ballistics.V3(-1, 0, 0),
		},
		{
			name:   "top face from above",
			origin: ballistics.V3(5, 10, 0),
			dir:    ballistics.V3(0, -1, 0),
			ok:     true,
			dist:   8,
			normal: ballistics.V3(0, 1, 0),
		},
		{
			name:   "back face",
			origin: ballistics.V3(10, 1, 0),
			dir:    ballistics.V3(-1, 0, 0),
			ok:     true,
			dist:   4,
			normal: ballistics.V3(1, 0, 0),
		},
		{
			name:   "parallel outside slab",
			origin: ballistics.V3(0, 5, 0),
			dir:    ballistics.V3(1, 0, 0),
			ok:     false,
		},
		{
			name:   "behind origin",
			origin: ballistics.V3(10, 1, 0),
			dir:    ballistics.V3(1, 0, 0),
			ok:     false,
		},
		{
			name:   "starts inside",
			origin: ballistics.V3(5, 1, 0),
			dir:    ballistics.V3(1, 0, 0),
			ok:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist, normal, ok := b.Raycast(tc.origin, tc.dir)
			if ok != tc.ok {
				t.Fatalf("Raycast() ok = %v, expected %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if math.Abs(dist-tc.dist) > 1e-9 {
				t.Errorf("Raycast() dist = %v, expected %v", dist, tc.dist)
			}
			if !near(normal, tc.normal) {
				t.Errorf("Raycast() normal = %v, expected %v", normal, tc.normal)
			}
		})
	}
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s := NewScene()
	colliders := []Collider{
		{ID: "far", Shape: NewBox(ballistics.V3(20, 0, 0), ballistics.V3(2, 2, 2)), Layer: 0},
		{ID: "near", Shape: NewBox(ballistics.V3(10, 0, 0), ballistics.V3(2, 2, 2)), Layer: 1},
		{ID: "mist", Shape: NewSphere(ballistics.V3(5, 0, 0), 1), Layer: 0, Trigger: true},
	}
	for _, c := range colliders {
		if err := s.Add(c); err != nil {
			t.Fatalf("Add(%s) failed: %v", c.ID, err)
		}
	}
	return s
}

func TestSceneCastRayNearest(t *testing.T) {
	s := newTestScene(t)
	hit, ok := s.CastRay(ballistics.V3(0, 0, 0), ballistics.V3(1, 0, 0), 100, ballistics.AllLayers)
	if !ok {
		t.Fatal("CastRay() found nothing")
	}
	if hit.Collider != "near" {
		t.Errorf("Collider = %q, expected %q", hit.Collider, "near")
	}
	if !near(hit.Point, ballistics.V3(9, 0, 0)) {
		t.Errorf("Point = %v, expected (9,0,0)", hit.Point)
	}
	if math.Abs(hit.Distance-9) > 1e-9 {
		t.Errorf("Distance = %v, expected 9", hit.Distance)
	}
}

func TestSceneCastRayMask(t *testing.T) {
	s := newTestScene(t)
	hit, ok := s.CastRay(ballistics.V3(0, 0, 0), ballistics.V3(1, 0, 0), 100, ballistics.LayerBit(0))
	if !ok {
		t.Fatal("CastRay() found nothing")
	}
	if hit.Collider != "far" {
		t.Errorf("Collider = %q, expected %q (layer 1 masked out)", hit.Collider, "far")
	}
}

func TestSceneCastRayMaxDistance(t *testing.T) {
	s := newTestScene(t)
	if hit, ok := s.CastRay(ballistics.V3(0, 0, 0), ballistics.V3(1, 0, 0), 8.5, ballistics.AllLayers); ok {
		t.Errorf("CastRay() = %+v, expected no hit within 8.5", hit)
	}
}

func TestSceneSkipsTriggers(t *testing.T) {
	s := NewScene()
	if err := s.Add(Collider{ID: "mist", Shape: NewSphere(ballistics.V3(5, 0, 0), 1), Trigger: true}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, ok := s.CastRay(ballistics.V3(0, 0, 0), ballistics.V3(1, 0, 0), 100, ballistics.AllLayers); ok {
		t.Error("CastRay() hit a trigger collider")
	}
	if ids := s.Overlapping(ballistics.V3(5, 0, 0)); len(ids) != 1 || ids[0] != "mist" {
		t.Errorf("Overlapping() = %v, expected [mist]", ids)
	}
}

func TestSceneAddValidation(t *testing.T) {
	s := NewScene()
	box := NewBox(ballistics.Vec3{}, ballistics.V3(1, 1, 1))
	tests := []struct {
		name string
		c    Collider
	}{
		{name: "empty id", c: Collider{Shape: box}},
		{name: "no shape", c: Collider{ID: "x"}},
		{name: "bad layer", c: Collider{ID: "x", Shape: box, Layer: 32}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := s.Add(tc.c); err == nil {
				t.Error("Add() succeeded, expected error")
			}
		})
	}

	if err := s.Add(Collider{ID: "a", Shape: box}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := s.Add(Collider{ID: "a", Shape: box}); err == nil {
		t.Error("Add() of a duplicate id succeeded, expected error")
	}
}

func TestSceneRemove(t *testing.T) {
	s := newTestScene(t)
	if !s.Remove("near") {
		t.Fatal("Remove() = false, expected true")
	}
	if s.Remove("near") {
		t.Error("Remove() twice = true, expected false")
	}
	if _, ok := s.Get("mist"); !ok {
		t.Error("Get() lost a collider after Remove")
	}
	hit, ok := s.CastRay(ballistics.V3(0, 0, 0), ballistics.V3(1, 0, 0), 100, ballistics.AllLayers)
	if !ok || hit.Collider != "far" {
		t.Errorf("CastRay() = %+v, expected far after removing near", hit)
	}
}

func TestSceneStopsProjectile(t *testing.T) {
	s := NewScene()
	if err := s.Add(Collider{ID: "wall", Shape: NewBox(ballistics.V3(10, 5, 0), ballistics.V3(1, 10, 10))}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	cfg := ballistics.DefaultConfig()
	cfg.UseRaycastHits = true
	p := ballistics.NewProjectile(cfg, s)
	p.Launch(ballistics.V3(0, 1, 0), ballistics.V3(20, 5, 0))

	res, _ := ballistics.Fly(p, ballistics.ClockForRate(60), 1000)
	if res.Status != ballistics.TickImpact {
		t.Fatalf("Fly() = %v, expected impact", res.Status)
	}
	if res.Impact.Source != ballistics.ImpactRay || res.Impact.Collider != "wall" {
		t.Errorf("Impact = %+v, expected a ray hit on wall", res.Impact)
	}
	if math.Abs(res.Impact.Point.X-9.5) > 1e-9 {
		t.Errorf("Impact.Point.X = %v, expected 9.5", res.Impact.Point.X)
	}
}

func TestSceneColliders(t *testing.T) {
	s := newTestScene(t)
	got := s.Colliders()
	ids := []string{"far", "near", "mist"}
	if len(got) != len(ids) {
		t.Fatalf("Colliders() returned %d, expected %d", len(got), len(ids))
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("Colliders()[%d].ID = %q, expected %q", i, got[i].ID, id)
		}
	}

	got[0].ID = "changed"
	if c, ok := s.Get("far"); !ok || c.ID != "far" {
		t.Error("mutating Colliders() result changed the scene")
	}

	s.Remove("near")
	got = s.Colliders()
	if len(got) != 2 || got[0].ID != "far" || got[1].ID != "mist" {
		t.Errorf("Colliders() after Remove = %+v, expected far and mist", got)
	}
}
