package ballistics_test

import (
	"testing"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
)

func TestWorldReportsImpactAndRemoval(t *testing.T) {
	w := ballistics.NewWorld(groundOnly(), nil)
	slow := w.Launch(ballistics.V3(0, 10, 0), ballistics.V3(0, 0, 0))
	fast := w.Launch(ballistics.V3(0, 1, 0), ballistics.V3(0, -2, 0))

	if w.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", w.Len())
	}

	rep := w.Tick(1)
	if len(rep.Impacts) != 1 || rep.Impacts[0].ID != fast {
		t.Fatalf("Impacts = %+v, expected one impact for %s", rep.Impacts, fast)
	}
	if len(rep.Removals) != 1 || rep.Removals[0] != (ballistics.Removal{ID: fast, Reason: ballistics.RemovedImpact}) {
		t.Errorf("Removals = %+v, expected impact removal of %s", rep.Removals, fast)
	}
	if len(rep.Flights) != 1 || rep.Flights[0].ID != slow {
		t.Errorf("Flights = %+v, expected %s still flying", rep.Flights, slow)
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", w.Len())
	}
	if _, ok := w.Get(fast); ok {
		t.Error("Get() found a removed projectile")
	}
}

func TestWorldExpiryRemoval(t *testing.T) {
	cfg := groundOnly()
	cfg.MaxLifetime = 0.5
	w := ballistics.NewWorld(cfg, nil)
	id := w.Launch(ballistics.V3(0, 100, 0), ballistics.V3(5, 10, 0))

	rep := w.Tick(0.5)
	if len(rep.Impacts) != 0 {
		t.Errorf("Impacts = %+v, expected none", rep.Impacts)
	}
	expected := ballistics.Removal{ID: id, Reason: ballistics.RemovedExpired}
	if len(rep.Removals) != 1 || rep.Removals[0] != expected {
		t.Errorf("Removals = %+v, expected %+v", rep.Removals, expected)
	}
	if w.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", w.Len())
	}
}

func TestWorldLaunchOrder(t *testing.T) {
	w := ballistics.NewWorld(groundOnly(), nil)
	ids := []ballistics.ProjectileID{"a", "b", "c"}
	for i, id := range ids {
		w.LaunchWith(id, ballistics.V3(float64(i), 50, 0), ballistics.V3(1, 0, 0))
	}

	rep := w.Tick(0.1)
	if len(rep.Flights) != len(ids) {
		t.Fatalf("Flights = %d, expected %d", len(rep.Flights), len(ids))
	}
	for i, f := range rep.Flights {
		if f.ID != ids[i] {
			t.Errorf("Flights[%d].ID = %s, expected %s", i, f.ID, ids[i])
		}
	}
}

func TestWorldRelaunchKeepsSlot(t *testing.T) {
	w := ballistics.NewWorld(groundOnly(), nil)
	w.LaunchWith("shot", ballistics.V3(0, 10, 0), ballistics.V3(1, 0, 0))
	w.Tick(0.1)
	w.LaunchWith("shot", ballistics.V3(0, 20, 0), ballistics.V3(1, 0, 0))

	if w.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", w.Len())
	}
	p, ok := w.Get("shot")
	if !ok {
		t.Fatal("Get() did not find the relaunched projectile")
	}
	if p.Elapsed() != 0 || p.Position() != ballistics.V3(0, 20, 0) {
		t.Errorf("relaunch = (%v, %v), expected fresh state", p.Elapsed(), p.Position())
	}
}

func TestWorldDiscard(t *testing.T) {
	w := ballistics.NewWorld(groundOnly(), nil)
	a := w.Launch(ballistics.V3(0, 10, 0), ballistics.V3(1, 0, 0))
	b := w.Launch(ballistics.V3(0, 10, 0), ballistics.V3(2, 0, 0))

	if !w.Discard(a) {
		t.Fatal("Discard() = false, expected true")
	}
	if w.Discard(a) {
		t.Error("Discard() of an unknown id = true, expected false")
	}

	rep := w.Tick(0.1)
	if len(rep.Flights) != 1 || rep.Flights[0].ID != b {
		t.Errorf("Flights = %+v, expected only %s", rep.Flights, b)
	}
	if len(rep.Removals) != 0 {
		t.Errorf("Removals = %+v, expected none for a discarded projectile", rep.Removals)
	}
}

func TestWorldGeneratesDistinctIDs(t *testing.T) {
	w := ballistics.NewWorld(groundOnly(), nil)
	seen := make(map[ballistics.ProjectileID]bool)
	for i := 0; i < 50; i++ {
		id := w.Launch(ballistics.V3(0, 10, 0), ballistics.Vec3{})
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestWorldPositions(t *testing.T) {
	w := ballistics.NewWorld(groundOnly(), nil)
	if got := w.Positions(); len(got) != 0 {
		t.Errorf("Positions() = %+v, expected none", got)
	}
	a := w.Launch(ballistics.V3(0, 50, 0), ballistics.V3(1, 0, 0))
	b := w.Launch(ballistics.V3(5, 60, 0), ballistics.V3(0, 0, 0))

	got := w.Positions()
	expected := []ballistics.Flight{
		{ID: a, Position: ballistics.V3(0, 50, 0)},
		{ID: b, Position: ballistics.V3(5, 60, 0)},
	}
	if len(got) != len(expected) {
		t.Fatalf("Positions() = %+v, expected %+v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Positions()[%d] = %+v, expected %+v", i, got[i], expected[i])
		}
	}

	rep := w.Tick(0.5)
	got = w.Positions()
	if len(got) != len(rep.Flights) {
		t.Fatalf("Positions() = %+v, expected the flights %+v", got, rep.Flights)
	}
	for i := range got {
		if got[i] != rep.Flights[i] {
			t.Errorf("Positions()[%d] = %+v, expected %+v", i, got[i], rep.Flights[i])
		}
		if got[i].Elapsed != 0.5 {
			t.Errorf("Positions()[%d].Elapsed = %v, expected 0.5", i, got[i].Elapsed)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	if !(ballistics.Report{}).Empty() {
		t.Error("Empty() = false for a zero report, expected true")
	}
	w := ballistics.NewWorld(groundOnly(), nil)
	if !w.Tick(0.1).Empty() {
		t.Error("Empty() = false for an idle world, expected true")
	}
	w.Launch(ballistics.V3(0, 50, 0), ballistics.V3(1, 0, 0))
	if w.Tick(0.1).Empty() {
		t.Error("Empty() = true with a shell in flight, expected false")
	}
}
