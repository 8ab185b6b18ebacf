// Package collide provides a small static scene of spheres and boxes that the
// ballistics resolver can cast rays against.
package collide

import (
	"math"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
)

// ShapeType distinguishes the supported primitives.
type ShapeType int

const (
	ShapeSphere ShapeType = iota
	ShapeBox
)

func (s ShapeType) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Shape is a static primitive that can be hit by a ray.
type Shape interface {
	// Raycast returns the distance along dir to the first surface in front of
	// origin and the surface normal there. dir must be a unit vector.
	Raycast(origin, dir ballistics.Vec3) (dist float64, normal ballistics.Vec3, ok bool)
	Bounds() AABB
	Contains(p ballistics.Vec3) bool
	Type() ShapeType
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max ballistics.Vec3
}

// NewAABBFromCenter builds a box from its center and full size.
func NewAABBFromCenter(center, size ballistics.Vec3) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the box.
func (b AABB) Center() ballistics.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent along each axis.
func (b AABB) Size() ballistics.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p ballistics.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps reports whether two boxes intersect.
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Sphere is a ball with a center and radius.
type Sphere struct {
	Center ballistics.Vec3
	Radius float64
}

// NewSphere creates a sphere shape.
func NewSphere(center ballistics.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Raycast solves |origin + t*dir - center|^2 = r^2 for the entry distance.
// A ray starting inside the sphere reports no hit.
func (s *Sphere) Raycast(origin, dir ballistics.Vec3) (float64, ballistics.Vec3, bool) {
	f := origin.Sub(s.Center)
	b := f.Dot(dir)
	c := f.LenSq() - s.Radius*s.Radius
	if c < 0 {
		return 0, ballistics.Vec3{}, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, ballistics.Vec3{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		return 0, ballistics.Vec3{}, false
	}
	point := origin.Add(dir.Scale(t))
	return t, point.Sub(s.Center).Normalize(), true
}

func (s *Sphere) Bounds() AABB {
	r := ballistics.V3(s.Radius, s.Radius, s.Radius)
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func (s *Sphere) Contains(p ballistics.Vec3) bool {
	return p.Sub(s.Center).LenSq() <= s.Radius*s.Radius
}

func (s *Sphere) Type() ShapeType {
	return ShapeSphere
}

// Box is a solid axis-aligned box.
type Box struct {
	AABB
}

// NewBox creates a box from its center and full size.
func NewBox(center, size ballistics.Vec3) *Box {
	return &Box{AABB: NewAABBFromCenter(center, size)}
}

// Raycast uses the slab method. A ray starting inside the box reports no hit.
func (b *Box) Raycast(origin, dir ballistics.Vec3) (float64, ballistics.Vec3, bool) {
	if b.AABB.Contains(origin) {
		return 0, ballistics.Vec3{}, false
	}

	tMin, tMax := math.Inf(-1), math.Inf(1)
	var normal ballistics.Vec3

	axes := [3]struct {
		o, d, lo, hi float64
		n            ballistics.Vec3
	}{
		{origin.X, dir.X, b.Min.X, b.Max.X, ballistics.V3(1, 0, 0)},
		{origin.Y, dir.Y, b.Min.Y, b.Max.Y, ballistics.V3(0, 1, 0)},
		{origin.Z, dir.Z, b.Min.Z, b.Max.Z, ballistics.V3(0, 0, 1)},
	}
	for _, ax := range axes {
		if ax.d == 0 {
			// Parallel to the slab: must already be between its planes
			if ax.o < ax.lo || ax.o > ax.hi {
				return 0, ballistics.Vec3{}, false
			}
			continue
		}
		inv := 1 / ax.d
		t1 := (ax.lo - ax.o) * inv
		t2 := (ax.hi - ax.o) * inv
		n := ax.n.Scale(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = ax.n
		}
		if t1 > tMin {
			tMin = t1
			normal = n
		}
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, ballistics.Vec3{}, false
		}
	}
	if tMin < 0 {
		return 0, ballistics.Vec3{}, false
	}
	return tMin, normal, true
}

func (b *Box) Bounds() AABB {
	return b.AABB
}

func (b *Box) Contains(p ballistics.Vec3) bool {
	return b.AABB.Contains(p)
}

func (b *Box) Type() ShapeType {
	return ShapeBox
}
