package ballistics

// Clock supplies the elapsed time delta for each tick.
type Clock interface {
	Delta() float64
}

// FixedClock is a Clock that always returns the same step in seconds.
type FixedClock float64

// Delta returns the fixed step.
func (c FixedClock) Delta() float64 {
	return float64(c)
}

// ClockForRate returns a fixed clock for the given ticks per second.
// Non-positive rates fall back to 60.
func ClockForRate(tickRate int) FixedClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return FixedClock(1.0 / float64(tickRate))
}

// Fly ticks p with clock until it stops flying or maxTicks ticks have run.
// It returns the last tick result and the number of ticks taken.
func Fly(p *Projectile, clock Clock, maxTicks int) (TickResult, int) {
	var last TickResult
	ticks := 0
	for ticks < maxTicks {
		last = p.Tick(clock.Delta())
		ticks++
		if last.Status != TickInFlight {
			break
		}
	}
	return last, ticks
}
