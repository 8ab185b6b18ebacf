package ballistics

import "math"

// AimDirection converts elevation and yaw in degrees into a unit direction.
// Yaw rotates about +Y starting from +Z; elevation tilts the forward axis up.
func AimDirection(elevationDeg, yawDeg float64) Vec3 {
	e := elevationDeg * math.Pi / 180
	y := yawDeg * math.Pi / 180
	ce := math.Cos(e)
	return Vec3{
		X: ce * math.Sin(y),
		Y: math.Sin(e),
		Z: ce * math.Cos(y),
	}
}

// AimVelocity returns the launch velocity for the given speed and aim.
func AimVelocity(speed, elevationDeg, yawDeg float64) Vec3 {
	return AimDirection(elevationDeg, yawDeg).Scale(speed)
}

// Preview describes a predicted trajectory from an arbitrary muzzle.
type Preview struct {
	Origin       Vec3
	Speed        float64
	ElevationDeg float64
	YawDeg       float64
	Acceleration Vec3
	Count        int
	Spacing      float64 // Seconds between samples
}

// Sample returns Count positions at times 0, Spacing, ... (Count-1)*Spacing.
// It never touches live simulation state. Count <= 0 yields nil.
func Sample(pv Preview) []Vec3 {
	if pv.Count <= 0 {
		return nil
	}
	l := Launch{
		Position:     pv.Origin,
		Velocity:     AimVelocity(pv.Speed, pv.ElevationDeg, pv.YawDeg),
		Acceleration: pv.Acceleration,
	}
	out := make([]Vec3, pv.Count)
	for i := range out {
		out[i] = l.PositionAt(float64(i) * pv.Spacing)
	}
	return out
}

// SampleTrajectory predicts positions relative to a launch at the origin.
func SampleTrajectory(speed, elevationDeg, yawDeg float64, gravity Vec3, count int, spacing float64) []Vec3 {
	return Sample(Preview{
		Speed:        speed,
		ElevationDeg: elevationDeg,
		YawDeg:       yawDeg,
		Acceleration: gravity,
		Count:        count,
		Spacing:      spacing,
	})
}

// TruncateAtGround returns the prefix of samples down to and including the
// first sample at or below groundY. Samples starting at or below the plane
// are kept whole.
func TruncateAtGround(samples []Vec3, groundY float64) []Vec3 {
	if len(samples) == 0 || samples[0].Y <= groundY {
		return samples
	}
	for i, s := range samples {
		if s.Y <= groundY {
			return samples[:i+1]
		}
	}
	return samples
}
