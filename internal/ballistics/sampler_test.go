package ballistics_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
)

func closeTo(a, b ballistics.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestSampleTrajectoryZeroGravity(t *testing.T) {
	// Yaw 90 points the barrel along +X
	samples := ballistics.SampleTrajectory(1, 0, 90, ballistics.Vec3{}, 3, 1)
	expected := []ballistics.Vec3{
		ballistics.V3(0, 0, 0),
		ballistics.V3(1, 0, 0),
		ballistics.V3(2, 0, 0),
	}
	if len(samples) != len(expected) {
		t.Fatalf("len = %d, expected %d", len(samples), len(expected))
	}
	for i := range expected {
		if !closeTo(samples[i], expected[i]) {
			t.Errorf("sample %d = %v, expected %v", i, samples[i], expected[i])
		}
	}
}

func TestSampleTrajectoryEmpty(t *testing.T) {
	for _, n := range []int{0, -3} {
		if got := ballistics.SampleTrajectory(10, 45, 0, ballistics.V3(0, -9.81, 0), n, 0.1); len(got) != 0 {
			t.Errorf("SampleTrajectory(n=%d) = %v, expected empty", n, got)
		}
	}
}

func TestSampleMatchesLiveProjectile(t *testing.T) {
	cfg := groundOnly()
	muzzle := ballistics.V3(1, 2, 3)
	speed, elev, yaw := 25.0, 35.0, 10.0

	samples := ballistics.Sample(ballistics.Preview{
		Origin:       muzzle,
		Speed:        speed,
		ElevationDeg: elev,
		YawDeg:       yaw,
		Acceleration: cfg.Acceleration(),
		Count:        11,
		Spacing:      0.1,
	})

	p := ballistics.NewProjectile(cfg, nil)
	p.Launch(muzzle, ballistics.AimVelocity(speed, elev, yaw))
	for i := 1; i < len(samples); i++ {
		res := p.Tick(0.1)
		if res.Status != ballistics.TickInFlight {
			t.Fatalf("tick %d = %v, expected in-flight", i, res.Status)
		}
		if !closeTo(res.Position, samples[i]) {
			t.Errorf("tick %d position = %v, preview %v", i, res.Position, samples[i])
		}
	}
}

func TestAimDirection(t *testing.T) {
	tests := []struct {
		name      string
		elev, yaw float64
		expected  ballistics.Vec3
	}{
		{name: "forward", elev: 0, yaw: 0, expected: ballistics.V3(0, 0, 1)},
		{name: "straight up", elev: 90, yaw: 0, expected: ballistics.V3(0, 1, 0)},
		{name: "right", elev: 0, yaw: 90, expected: ballistics.V3(1, 0, 0)},
		{name: "45 up forward", elev: 45, yaw: 0, expected: ballistics.V3(0, math.Sqrt2/2, math.Sqrt2/2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ballistics.AimDirection(tc.elev, tc.yaw)
			if !closeTo(result, tc.expected) {
				t.Errorf("AimDirection() = %v, expected %v", result, tc.expected)
			}
			if math.Abs(result.Len()-1) > 1e-12 {
				t.Errorf("AimDirection() length = %v, expected 1", result.Len())
			}
		})
	}
}

func TestTruncateAtGround(t *testing.T) {
	samples := []ballistics.Vec3{
		ballistics.V3(0, 1, 0),
		ballistics.V3(1, 0.5, 0),
		ballistics.V3(2, -0.5, 0),
		ballistics.V3(3, -2, 0),
	}
	got := ballistics.TruncateAtGround(samples, 0)
	if len(got) != 3 {
		t.Errorf("TruncateAtGround() len = %d, expected 3", len(got))
	}
}
