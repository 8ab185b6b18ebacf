package ballistics

// State is the lifecycle phase of a projectile.
type State int

const (
	StateIdle    State = iota // Not launched yet, or resolved by an impact
	StateActive               // Launched and advancing each tick
	StateExpired              // Outlived MaxLifetime without an impact
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// TickStatus summarizes what happened during one Tick call.
type TickStatus int

const (
	TickIdle     TickStatus = iota // Projectile was not active; nothing changed
	TickInFlight                   // Advanced normally and is still active
	TickImpact                     // Resolved a contact this tick
	TickExpired                    // Reached MaxLifetime; should be removed
)

// String returns a human-readable name for the status.
func (s TickStatus) String() string {
	switch s {
	case TickIdle:
		return "idle"
	case TickInFlight:
		return "in-flight"
	case TickImpact:
		return "impact"
	case TickExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// TickResult is returned by Projectile.Tick so callers can react synchronously.
type TickResult struct {
	Status   TickStatus
	Position Vec3    // Position after the tick
	Elapsed  float64 // Seconds since launch after the tick
	Impact   *Impact // Set only when Status == TickImpact
}

// Projectile is a single ballistic body. It is not safe for concurrent use;
// each projectile is advanced by exactly one tick driver.
type Projectile struct {
	cfg      Config
	resolver *Resolver
	launch   Launch
	elapsed  float64
	position Vec3
	state    State
}

// NewProjectile creates an idle projectile. rays may be nil when raycast hits
// are disabled in cfg.
func NewProjectile(cfg Config, rays RayCaster) *Projectile {
	return &Projectile{
		cfg:      cfg,
		resolver: NewResolver(cfg, rays),
	}
}

// Launch fixes the trajectory and activates the projectile.
// Launching an already active projectile restarts it from the new parameters.
func (p *Projectile) Launch(position, velocity Vec3) {
	p.launch = Launch{
		Position:     position,
		Velocity:     velocity,
		Acceleration: p.cfg.Acceleration(),
	}
	p.elapsed = 0
	p.position = position
	p.state = StateActive
}

// Tick advances the projectile by dt seconds and resolves contacts in the
// step [elapsed, elapsed+dt]. Negative or non-finite dt is ignored.
func (p *Projectile) Tick(dt float64) TickResult {
	if p.state != StateActive {
		return TickResult{Status: TickIdle, Position: p.position, Elapsed: p.elapsed}
	}
	if !isFinite(dt) || dt < 0 {
		return TickResult{Status: TickInFlight, Position: p.position, Elapsed: p.elapsed}
	}

	tPrev := p.elapsed
	p.elapsed += dt

	out := p.resolver.Resolve(p.launch, tPrev, p.elapsed)
	if out.Impact != nil {
		p.position = out.Impact.Point
		p.state = StateIdle
		impact := *out.Impact
		return TickResult{
			Status:   TickImpact,
			Position: p.position,
			Elapsed:  p.elapsed,
			Impact:   &impact,
		}
	}

	// Keep the last good position rather than storing NaN/Inf
	if out.Position.IsFinite() {
		p.position = out.Position
	}

	if p.cfg.MaxLifetime > 0 && p.elapsed >= p.cfg.MaxLifetime {
		p.state = StateExpired
		return TickResult{Status: TickExpired, Position: p.position, Elapsed: p.elapsed}
	}

	return TickResult{Status: TickInFlight, Position: p.position, Elapsed: p.elapsed}
}

// State returns the lifecycle phase.
func (p *Projectile) State() State {
	return p.state
}

// Active reports whether the projectile is still advancing.
func (p *Projectile) Active() bool {
	return p.state == StateActive
}

// Position returns the current position.
func (p *Projectile) Position() Vec3 {
	return p.position
}

// Elapsed returns seconds since launch.
func (p *Projectile) Elapsed() float64 {
	return p.elapsed
}

// LaunchParams returns the parameters of the current trajectory.
func (p *Projectile) LaunchParams() Launch {
	return p.launch
}

// Config returns the settings the projectile was created with.
func (p *Projectile) Config() Config {
	return p.cfg
}
