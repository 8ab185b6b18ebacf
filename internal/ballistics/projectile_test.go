package ballistics_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"pgregory.net/rapid"
)

func TestProjectileScenarioImpact(t *testing.T) {
	p := ballistics.NewProjectile(groundOnly(), nil)
	p.Launch(ballistics.V3(0, 1, 0), ballistics.V3(10, 5, 0))

	impacts := 0
	var impact *ballistics.Impact
	for i := 0; i < 600 && p.Active(); i++ {
		res := p.Tick(1.0 / 60)
		if res.Status == ballistics.TickImpact {
			impacts++
			impact = res.Impact
		}
	}
	if impacts != 1 {
		t.Fatalf("impacts = %d, expected 1", impacts)
	}

	expected := (5 + math.Sqrt(25+4*4.905)) / 9.81
	if math.Abs(impact.Time-expected) > 1e-9 {
		t.Errorf("Impact.Time = %v, expected %v", impact.Time, expected)
	}
	if impact.Point.Y != 0 {
		t.Errorf("Impact.Point.Y = %v, expected 0", impact.Point.Y)
	}
	if math.Abs(impact.Point.X-10*expected) > 1e-9 {
		t.Errorf("Impact.Point.X = %v, expected %v", impact.Point.X, 10*expected)
	}
	if p.Position() != impact.Point {
		t.Errorf("Position() = %v, expected impact point %v", p.Position(), impact.Point)
	}
	if p.State() != ballistics.StateIdle {
		t.Errorf("State() = %v, expected idle", p.State())
	}

	// The sign change happens in the step ending at 72/60 s
	if math.Abs(p.Elapsed()-72.0/60) > 1e-9 {
		t.Errorf("Elapsed() = %v, expected %v", p.Elapsed(), 72.0/60)
	}

	if res := p.Tick(1.0 / 60); res.Status != ballistics.TickIdle {
		t.Errorf("Tick() after impact = %v, expected idle", res.Status)
	}
}

func TestProjectileLinearFallback(t *testing.T) {
	cfg := groundOnly()
	cfg.Gravity = ballistics.Vec3{}
	p := ballistics.NewProjectile(cfg, nil)
	p.Launch(ballistics.V3(0, 1, 0), ballistics.V3(0, -2, 0))

	res := p.Tick(1)
	if res.Status != ballistics.TickImpact {
		t.Fatalf("Tick() = %v, expected impact", res.Status)
	}
	if math.Abs(res.Impact.Time-0.5) > 1e-12 {
		t.Errorf("Impact.Time = %v, expected 0.5", res.Impact.Time)
	}
	if res.Position != ballistics.V3(0, 0, 0) {
		t.Errorf("Position = %v, expected origin", res.Position)
	}
}

func TestProjectileDoubleCrossingOversizedStep(t *testing.T) {
	cfg := groundOnly()
	cfg.Gravity = ballistics.V3(0, 4, 0)
	p := ballistics.NewProjectile(cfg, nil)
	p.Launch(ballistics.V3(0, 1, 0), ballistics.V3(0, -4, 0))

	res := p.Tick(2)
	if res.Status != ballistics.TickImpact {
		t.Fatalf("Tick() = %v, expected impact", res.Status)
	}
	expected := 1 - math.Sqrt2/2
	if math.Abs(res.Impact.Time-expected) > 1e-12 {
		t.Errorf("Impact.Time = %v, expected earliest root %v", res.Impact.Time, expected)
	}
}

func TestProjectileExpiresWithoutImpact(t *testing.T) {
	cfg := ballistics.DefaultConfig()
	cfg.MaxLifetime = 1
	p := ballistics.NewProjectile(cfg, nil)
	p.Launch(ballistics.V3(0, 1000, 0), ballistics.V3(0, 20, 0))

	var statuses []ballistics.TickStatus
	for i := 0; i < 10 && p.Active(); i++ {
		statuses = append(statuses, p.Tick(0.25).Status)
	}

	if len(statuses) != 4 {
		t.Fatalf("ticks = %d, expected 4", len(statuses))
	}
	for i, s := range statuses[:3] {
		if s != ballistics.TickInFlight {
			t.Errorf("tick %d = %v, expected in-flight", i, s)
		}
	}
	if statuses[3] != ballistics.TickExpired {
		t.Errorf("last tick = %v, expected expired", statuses[3])
	}
	if p.State() != ballistics.StateExpired {
		t.Errorf("State() = %v, expected expired", p.State())
	}
}

func TestProjectileIgnoresBadDelta(t *testing.T) {
	tests := []struct {
		name string
		dt   float64
	}{
		{name: "NaN", dt: math.NaN()},
		{name: "positive infinity", dt: math.Inf(1)},
		{name: "negative", dt: -0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := ballistics.NewProjectile(groundOnly(), nil)
			p.Launch(ballistics.V3(0, 5, 0), ballistics.V3(1, 1, 0))

			res := p.Tick(tc.dt)
			if res.Status != ballistics.TickInFlight {
				t.Errorf("Tick() = %v, expected in-flight", res.Status)
			}
			if p.Elapsed() != 0 {
				t.Errorf("Elapsed() = %v, expected 0", p.Elapsed())
			}
			if p.Position() != ballistics.V3(0, 5, 0) {
				t.Errorf("Position() = %v, expected launch position", p.Position())
			}
		})
	}
}

func TestProjectileKeepsPositionWhenNonFinite(t *testing.T) {
	p := ballistics.NewProjectile(groundOnly(), nil)
	p.Launch(ballistics.V3(0, 1, 0), ballistics.V3(math.Inf(1), 0, 0))

	res := p.Tick(0.1)
	if res.Status != ballistics.TickInFlight {
		t.Fatalf("Tick() = %v, expected in-flight", res.Status)
	}
	if p.Position() != ballistics.V3(0, 1, 0) {
		t.Errorf("Position() = %v, expected launch position", p.Position())
	}
	if math.Abs(p.Elapsed()-0.1) > 1e-12 {
		t.Errorf("Elapsed() = %v, expected 0.1", p.Elapsed())
	}
}

func TestProjectileIdleBeforeLaunch(t *testing.T) {
	p := ballistics.NewProjectile(groundOnly(), nil)
	if res := p.Tick(0.1); res.Status != ballistics.TickIdle {
		t.Errorf("Tick() = %v, expected idle", res.Status)
	}
}

func TestFlyStopsOnImpact(t *testing.T) {
	p := ballistics.NewProjectile(groundOnly(), nil)
	p.Launch(ballistics.V3(0, 1, 0), ballistics.V3(10, 5, 0))

	res, ticks := ballistics.Fly(p, ballistics.ClockForRate(60), 10000)
	if res.Status != ballistics.TickImpact {
		t.Fatalf("Fly() = %v, expected impact", res.Status)
	}
	if ticks != 72 {
		t.Errorf("ticks = %d, expected 72", ticks)
	}
}

func TestProjectileAlwaysLandsOnGround(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		groundY := rapid.Float64Range(-10, 10).Draw(t, "ground")
		height := rapid.Float64Range(0.01, 50).Draw(t, "height")
		vel := ballistics.V3(
			rapid.Float64Range(-30, 30).Draw(t, "vx"),
			rapid.Float64Range(-30, 30).Draw(t, "vy"),
			rapid.Float64Range(-30, 30).Draw(t, "vz"),
		)
		g := rapid.Float64Range(-20, -1).Draw(t, "g")
		dt := rapid.Float64Range(1.0/240, 0.5).Draw(t, "dt")

		cfg := ballistics.DefaultConfig()
		cfg.Gravity = ballistics.V3(0, g, 0)
		cfg.GroundHeight = groundY
		cfg.MaxLifetime = 0

		p := ballistics.NewProjectile(cfg, nil)
		p.Launch(ballistics.V3(0, groundY+height, 0), vel)

		impacts := 0
		var last ballistics.TickResult
		for i := 0; i < 100000 && p.Active(); i++ {
			last = p.Tick(dt)
			switch last.Status {
			case ballistics.TickImpact:
				impacts++
			case ballistics.TickInFlight:
				if !(last.Position.Y > groundY) {
					t.Fatalf("in flight at y=%v, below ground %v", last.Position.Y, groundY)
				}
			}
		}

		if impacts != 1 {
			t.Fatalf("impacts = %d, expected 1", impacts)
		}
		if last.Impact.Point.Y != groundY {
			t.Fatalf("impact y = %v, expected %v", last.Impact.Point.Y, groundY)
		}
		if last.Impact.Time > last.Elapsed || last.Impact.Time < last.Elapsed-dt-1e-9 {
			t.Fatalf("impact time %v outside the final step ending at %v", last.Impact.Time, last.Elapsed)
		}
	})
}
