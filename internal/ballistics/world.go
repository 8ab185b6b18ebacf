package ballistics

import "github.com/google/uuid"

// ProjectileID identifies a projectile inside a World.
type ProjectileID string

// NewProjectileID returns a fresh random id.
func NewProjectileID() ProjectileID {
	return ProjectileID(uuid.NewString())
}

// RemovalReason explains why a projectile left the world.
type RemovalReason int

const (
	RemovedImpact  RemovalReason = iota + 1 // Resolved a contact
	RemovedExpired                          // Outlived MaxLifetime
)

func (r RemovalReason) String() string {
	switch r {
	case RemovedImpact:
		return "impact"
	case RemovedExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Flight is the position of a projectile that is still in the air.
type Flight struct {
	ID       ProjectileID
	Position Vec3
	Elapsed  float64
}

// ImpactEvent pairs an impact with the projectile that produced it.
type ImpactEvent struct {
	ID     ProjectileID
	Launch Launch
	Impact Impact
}

// Removal is a command telling the owner to drop a projectile.
type Removal struct {
	ID     ProjectileID
	Reason RemovalReason
}

// Report collects everything that happened during one World.Tick.
type Report struct {
	Flights  []Flight
	Impacts  []ImpactEvent
	Removals []Removal
}

// Empty reports whether nothing happened during the tick.
func (r Report) Empty() bool {
	return len(r.Flights) == 0 && len(r.Impacts) == 0 && len(r.Removals) == 0
}

// World owns a set of projectiles sharing one Config and RayCaster.
// Projectiles are ticked in launch order. A World is not safe for concurrent
// use; independent worlds may run on separate goroutines.
type World struct {
	cfg   Config
	rays  RayCaster
	order []ProjectileID
	byID  map[ProjectileID]*Projectile
}

// NewWorld creates an empty world. rays may be nil when raycast hits are disabled.
func NewWorld(cfg Config, rays RayCaster) *World {
	return &World{
		cfg:  cfg,
		rays: rays,
		byID: make(map[ProjectileID]*Projectile),
	}
}

// Config returns the settings shared by projectiles in the world.
func (w *World) Config() Config {
	return w.cfg
}

// Launch adds a projectile with a generated id.
func (w *World) Launch(position, velocity Vec3) ProjectileID {
	id := NewProjectileID()
	w.LaunchWith(id, position, velocity)
	return id
}

// LaunchWith adds a projectile under the given id. Reusing the id of a live
// projectile relaunches it in place.
func (w *World) LaunchWith(id ProjectileID, position, velocity Vec3) {
	p, ok := w.byID[id]
	if !ok {
		p = NewProjectile(w.cfg, w.rays)
		w.byID[id] = p
		w.order = append(w.order, id)
	}
	p.Launch(position, velocity)
}

// Tick advances every projectile by dt and drops those that impacted or expired.
func (w *World) Tick(dt float64) Report {
	var rep Report
	kept := w.order[:0]
	for _, id := range w.order {
		p := w.byID[id]
		res := p.Tick(dt)
		switch res.Status {
		case TickImpact:
			rep.Impacts = append(rep.Impacts, ImpactEvent{ID: id, Launch: p.LaunchParams(), Impact: *res.Impact})
			rep.Removals = append(rep.Removals, Removal{ID: id, Reason: RemovedImpact})
			delete(w.byID, id)
		case TickExpired:
			rep.Removals = append(rep.Removals, Removal{ID: id, Reason: RemovedExpired})
			delete(w.byID, id)
		case TickInFlight:
			rep.Flights = append(rep.Flights, Flight{ID: id, Position: res.Position, Elapsed: res.Elapsed})
			kept = append(kept, id)
		default:
			kept = append(kept, id)
		}
	}
	// Clear the tail so dropped ids are not retained by the backing array
	for i := len(kept); i < len(w.order); i++ {
		w.order[i] = ""
	}
	w.order = kept
	return rep
}

// Discard removes a projectile without reporting it. It returns false when
// the id is unknown.
func (w *World) Discard(id ProjectileID) bool {
	if _, ok := w.byID[id]; !ok {
		return false
	}
	delete(w.byID, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the projectile with the given id.
func (w *World) Get(id ProjectileID) (*Projectile, bool) {
	p, ok := w.byID[id]
	return p, ok
}

// Len returns the number of projectiles still in the world.
func (w *World) Len() int {
	return len(w.order)
}

// Positions returns the current position of every projectile in launch order.
func (w *World) Positions() []Flight {
	out := make([]Flight, 0, len(w.order))
	for _, id := range w.order {
		p := w.byID[id]
		out = append(out, Flight{ID: id, Position: p.Position(), Elapsed: p.Elapsed()})
	}
	return out
}

// Clear drops every projectile.
func (w *World) Clear() {
	w.order = nil
	w.byID = make(map[ProjectileID]*Projectile)
}
