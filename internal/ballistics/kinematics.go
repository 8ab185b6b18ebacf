package ballistics

// PositionAt evaluates p0 + v0*t + 0.5*a*t^2 independently per axis.
// t may be any real value, including negative times or times past the
// projectile's current age; the resolver relies on that for interval checks.
func PositionAt(t float64, p0, v0, a Vec3) Vec3 {
	half := 0.5 * t * t
	return Vec3{
		X: p0.X + v0.X*t + a.X*half,
		Y: p0.Y + v0.Y*t + a.Y*half,
		Z: p0.Z + v0.Z*t + a.Z*half,
	}
}

// VelocityAt returns v0 + a*t.
func VelocityAt(t float64, v0, a Vec3) Vec3 {
	return v0.Add(a.Scale(t))
}

// Launch is the immutable triple that fully determines a trajectory.
type Launch struct {
	Position     Vec3
	Velocity     Vec3
	Acceleration Vec3
}

// PositionAt evaluates the trajectory at time t since launch.
func (l Launch) PositionAt(t float64) Vec3 {
	return PositionAt(t, l.Position, l.Velocity, l.Acceleration)
}

// VelocityAt returns the velocity at time t since launch.
func (l Launch) VelocityAt(t float64) Vec3 {
	return VelocityAt(t, l.Velocity, l.Acceleration)
}
