package ballistics

import "math"

//go:generate go tool mockgen -destination=mocks/mock_raycaster.go -package=mocks . RayCaster

// Hit describes the first solid surface a ray query touched.
type Hit struct {
	Point    Vec3    // World-space contact point
	Normal   Vec3    // Surface normal at the contact point
	Distance float64 // Distance from the ray origin
	Collider string  // Identifier of the collider that was hit
}

// RayCaster is the collidable world consulted by the discrete ray test.
// Implementations must ignore trigger-only surfaces and colliders whose
// layer is not in mask. direction is a unit vector.
type RayCaster interface {
	CastRay(origin, direction Vec3, maxDistance float64, mask LayerMask) (Hit, bool)
}

// ImpactSource identifies which detection strategy produced an impact.
type ImpactSource int

const (
	ImpactGround ImpactSource = iota + 1 // Analytic ground-plane crossing
	ImpactRay                            // Discrete ray hit
)

// String returns a human-readable name for the source.
func (s ImpactSource) String() string {
	switch s {
	case ImpactGround:
		return "ground"
	case ImpactRay:
		return "ray"
	default:
		return "unknown"
	}
}

// Impact is a resolved contact event.
type Impact struct {
	Point    Vec3         // Contact point
	Time     float64      // Seconds since launch
	Source   ImpactSource // Strategy that fired
	Collider string       // Collider id for ray hits, empty for the ground
	Normal   Vec3         // Surface normal at the contact point
}

// Outcome is the result of resolving one step.
type Outcome struct {
	Position Vec3    // Position at the end of the step, or the impact point
	Impact   *Impact // Non-nil when the step ended in a contact
}

// rootTolerance widens the step interval to absorb round-off in the computed
// roots when the endpoints straddle the plane by less than an ulp or two.
const rootTolerance = 1e-9

// Resolver finds the earliest contact within a simulation step.
type Resolver struct {
	cfg  Config
	rays RayCaster
}

// NewResolver creates a resolver for the given settings. rays may be nil when
// raycast hits are disabled.
func NewResolver(cfg Config, rays RayCaster) *Resolver {
	return &Resolver{cfg: cfg, rays: rays}
}

// Resolve examines the step [tPrev, tNow] of the trajectory l.
// The ray test runs first; the ground test only runs when it found nothing.
func (r *Resolver) Resolve(l Launch, tPrev, tNow float64) Outcome {
	prev := l.PositionAt(tPrev)
	now := l.PositionAt(tNow)

	// Non-finite endpoints never produce contacts
	if !prev.IsFinite() || !now.IsFinite() {
		return Outcome{Position: now}
	}

	if r.cfg.UseRaycastHits && r.rays != nil {
		if impact, ok := r.castStep(prev, now, tPrev, tNow); ok {
			return Outcome{Position: impact.Point, Impact: &impact}
		}
	}

	if r.cfg.UseGroundPlane {
		if u, ok := GroundCrossing(l, r.cfg.GroundHeight, tPrev, tNow); ok {
			landing := l.PositionAt(u)
			landing.Y = r.cfg.GroundHeight
			impact := Impact{
				Point:  landing,
				Time:   u,
				Source: ImpactGround,
				Normal: V3(0, 1, 0),
			}
			return Outcome{Position: landing, Impact: &impact}
		}
	}

	return Outcome{Position: now}
}

// castStep casts a single ray along the chord of the step.
func (r *Resolver) castStep(prev, now Vec3, tPrev, tNow float64) (Impact, bool) {
	delta := now.Sub(prev)
	dist := delta.Len()
	if !(dist > 0) {
		return Impact{}, false
	}

	hit, ok := r.rays.CastRay(prev, delta.Scale(1/dist), dist, r.cfg.HitMask)
	if !ok {
		return Impact{}, false
	}

	// Time is interpolated along the chord; the point is the hit point as-is
	frac := hit.Distance / dist
	if frac < 0 || math.IsNaN(frac) {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return Impact{
		Point:    hit.Point,
		Time:     tPrev + (tNow-tPrev)*frac,
		Source:   ImpactRay,
		Collider: hit.Collider,
		Normal:   hit.Normal,
	}, true
}

// GroundCrossing returns the earliest time u in [tPrev, tNow] at which the
// trajectory reaches groundY from above.
//
// The step must start strictly above the plane. It then qualifies when it ends
// at or below the plane, or when the vertex of the vertical parabola dips
// below the plane inside the step (a crossing the endpoints alone would miss).
// A negative discriminant, or no root inside the step, is no crossing even
// when round-off puts the end sample on the plane.
func GroundCrossing(l Launch, groundY, tPrev, tNow float64) (float64, bool) {
	if !(tNow >= tPrev) {
		return 0, false
	}
	yPrev := l.PositionAt(tPrev).Y
	yNow := l.PositionAt(tNow).Y
	if !(yPrev > groundY) {
		return 0, false
	}
	straddles := yNow <= groundY
	if !straddles && !dipsBelow(l, groundY, tPrev, tNow) {
		return 0, false
	}

	a := 0.5 * l.Acceleration.Y
	b := l.Velocity.Y
	c := l.Position.Y - groundY

	eps := rootTolerance * math.Max(1, math.Abs(tNow))
	lo, hi := tPrev-eps, tNow+eps

	var u float64
	var ok bool
	if a == 0 {
		// Linear motion: b*u + c = 0
		if b == 0 {
			return 0, false
		}
		u = -c / b
		ok = u >= lo && u <= hi
	} else {
		if u1, u2, hasRoots := SolveQuadratic(a, b, c); hasRoots {
			u, ok = PickRootInInterval(u1, u2, lo, hi)
		}
	}
	if !ok {
		return 0, false
	}
	return math.Min(math.Max(u, tPrev), tNow), true
}

// dipsBelow reports whether the parabola's vertex lies strictly inside the
// step at or below groundY.
func dipsBelow(l Launch, groundY, tPrev, tNow float64) bool {
	if l.Acceleration.Y == 0 {
		return false
	}
	vertex := -l.Velocity.Y / l.Acceleration.Y
	if !(vertex > tPrev && vertex < tNow) {
		return false
	}
	return l.PositionAt(vertex).Y <= groundY
}

// SolveQuadratic returns the real roots of a*u^2 + b*u + c = 0 for a != 0.
// ok is false when the discriminant is negative. The roots are computed in
// the cancellation-free form q/a, c/q.
func SolveQuadratic(a, b, c float64) (u1, u2 float64, ok bool) {
	disc := b*b - 4*a*c
	if disc < 0 || math.IsNaN(disc) {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	q := -0.5 * (b + math.Copysign(sq, b))
	if q == 0 {
		// b == 0 and disc == 0 imply c == 0: double root at zero
		return 0, 0, true
	}
	return q / a, c / q, true
}

// PickRootInInterval chooses the contact time among two candidate roots.
// Both inside [lo, hi] yields the smaller (first contact); exactly one inside
// yields that one; neither yields ok == false.
func PickRootInInterval(u1, u2, lo, hi float64) (float64, bool) {
	in1 := u1 >= lo && u1 <= hi
	in2 := u2 >= lo && u2 <= hi
	switch {
	case in1 && in2:
		return math.Min(u1, u2), true
	case in1:
		return u1, true
	case in2:
		return u2, true
	default:
		return 0, false
	}
}
