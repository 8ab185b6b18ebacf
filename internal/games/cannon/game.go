// Package cannon implements an artillery range: aim a cannon, lob shells
// over the ground plane and knock down crates before the shots run out.
package cannon

import (
	"fmt"
	"math"

	"github.com/vovakirdan/kitty-cannon/internal/ballistics"
	"github.com/vovakirdan/kitty-cannon/internal/config"
	"github.com/vovakirdan/kitty-cannon/internal/core"
	"github.com/vovakirdan/kitty-cannon/internal/registry"
)

// Shot outcomes as written to the shot log.
const (
	OutcomeGround  = "ground"
	OutcomeTarget  = "target"
	OutcomeRay     = "ray"
	OutcomeExpired = "expired"
)

// maxTrail bounds the drawn flight path of one shell.
const maxTrail = 4096

// Phase is the round state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// configPath and windPreset are set from CLI flags before games are created.
var (
	configPath string
	windPreset config.WindPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetWindPreset sets the wind preset applied on top of the loaded config.
// Unknown names fall back to the config's own wind.
func SetWindPreset(name string) {
	p, err := config.ParseWindPreset(name)
	if err != nil {
		p = ""
	}
	windPreset = p
}

// shot remembers the aim of the shell in flight.
type shot struct {
	id        ballistics.ProjectileID
	base      ballistics.Vec3
	power     float64
	elevation float64
	yaw       float64
}

// Game implements the cannon range.
type Game struct {
	id     string
	title  string
	preset config.WindPreset // Forced preset for this variant, empty to follow SetWindPreset

	runtime core.RuntimeConfig
	cfg     config.CannonConfig
	fixed   *config.CannonConfig // Set by UseConfig, skips file loading

	phase  Phase
	paused bool
	round  int
	tick   int

	cannon  *Cannon
	field   *TargetField
	world   *ballistics.World
	clock   ballistics.FixedClock
	winds   *config.WindGenerator
	wind    ballistics.Vec3
	flight  *shot
	trail   []ballistics.Vec3
	flash   ballistics.Vec3 // Last impact point
	flashes int             // Ticks left to draw the impact flash

	score     int
	shotsLeft int
	status    string

	recorder  core.ShotRecorder
	recordErr error
}

// New creates the standard range.
func New() *Game {
	return &Game{id: "cannon", title: "Kitty Cannon"}
}

// NewGale creates the range with strong variable wind every round.
func NewGale() *Game {
	return &Game{id: "cannon_gale", title: "Kitty Cannon: Gale", preset: config.WindGale}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// UseConfig pins the configuration used by Reset instead of loading it
// from disk.
func (g *Game) UseConfig(cfg config.CannonConfig) {
	g.fixed = &cfg
}

// SetShotRecorder registers the sink that receives every resolved shot.
func (g *Game) SetShotRecorder(r core.ShotRecorder) {
	g.recorder = r
}

// Reset loads the configuration and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.CannonConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.LoadCannon(configPath)
		if err != nil {
			loaded = config.DefaultCannonConfig()
		}
		cfg = loaded
	}

	preset := windPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyWindPreset(&cfg, preset)
	}
	g.cfg = cfg

	g.clock = ballistics.ClockForRate(runtime.TickRate)
	g.winds = config.NewWindGenerator(cfg.Wind, runtime.Seed)
	g.cannon = NewCannon(cfg.Cannon)
	g.round = 0
	g.tick = 0
	g.recordErr = nil
	g.GoMenu()
}

// GoMenu abandons any round and shows the title screen.
func (g *Game) GoMenu() {
	g.phase = PhaseMenu
	g.paused = false
	g.flight = nil
	g.trail = g.trail[:0]
	g.flashes = 0
	if g.world != nil {
		g.world.Clear()
	}
	g.status = "Press Enter to start"
}

// StartGame begins a new round with fresh targets and wind.
func (g *Game) StartGame() {
	g.round++
	g.phase = PhasePlaying
	g.paused = false
	g.score = 0
	g.shotsLeft = g.cfg.Arena.Shots
	g.flight = nil
	g.trail = g.trail[:0]
	g.flashes = 0
	g.wind = g.winds.Next()
	g.cannon.ResetAim()

	field, err := NewTargetField(g.cfg.Arena, g.cannon.Base(), g.cfg.Collision.GroundHeight, g.runtime.Seed+int64(g.round))
	if err != nil {
		field, _ = NewTargetField(config.ArenaConfig{}, g.cannon.Base(), g.cfg.Collision.GroundHeight, 0)
		g.status = err.Error()
	} else {
		g.status = "Aim and press Space to fire"
	}
	g.field = field
	g.world = ballistics.NewWorld(g.cfg.ToBallistics(g.wind), field.Scene())
}

// EndGame finishes the round, paying the bonus for unused shots when every
// target is down.
func (g *Game) EndGame() core.Event {
	bonus := 0
	if g.field != nil && g.field.Cleared() {
		bonus = g.shotsLeft * g.cfg.Arena.ShotBonus
	}
	g.score += bonus
	g.phase = PhaseGameOver
	g.flight = nil
	if g.world != nil {
		g.world.Clear()
	}

	text := fmt.Sprintf("Round over: %d points", g.score)
	if bonus > 0 {
		text = fmt.Sprintf("Range cleared! +%d bonus, %d points", bonus, g.score)
	}
	g.status = text
	return core.Event{Kind: core.EventRoundOver, Text: text}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case PhaseMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.StartGame()
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.StartGame()
		case in.Has(core.ActionBack):
			g.GoMenu()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionBack) {
		g.GoMenu()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	if g.flashes > 0 {
		g.flashes--
	}
	g.aim(in)

	if in.Has(core.ActionFire) {
		if ev, ok := g.fire(in); ok {
			events = append(events, ev)
		}
	}

	events = append(events, g.advance()...)

	if g.flight == nil && (g.shotsLeft <= 0 || g.field.Cleared()) {
		events = append(events, g.EndGame())
	}

	return core.StepResult{State: g.State(), Events: events}
}

// aim applies the held aim keys.
func (g *Game) aim(in core.InputFrame) {
	c := g.cfg.Cannon
	var dp, de, dy float64
	if in.Has(core.ActionPowerUp) {
		dp += c.PowerStep
	}
	if in.Has(core.ActionPowerDown) {
		dp -= c.PowerStep
	}
	if in.Has(core.ActionAimUp) {
		de += c.AngleStep
	}
	if in.Has(core.ActionAimDown) {
		de -= c.AngleStep
	}
	// Yaw 90 points along +X; turning left swings the barrel toward +Z
	if in.Has(core.ActionYawLeft) {
		dy -= c.AngleStep
	}
	if in.Has(core.ActionYawRight) {
		dy += c.AngleStep
	}
	if dp != 0 || de != 0 || dy != 0 {
		g.cannon.Nudge(dp, de, dy)
	}
}

// fire launches a shell. Typed form values replace the current aim; bad
// text falls back to the configured defaults.
func (g *Game) fire(in core.InputFrame) (core.Event, bool) {
	if g.flight != nil {
		g.status = "Shell still in the air"
		return core.Event{}, false
	}
	if g.shotsLeft <= 0 {
		return core.Event{}, false
	}

	power, elevation := g.cannon.Power(), g.cannon.Elevation()
	if text, ok := in.Field(core.FieldPower); ok {
		power = ParseOrDefault(text, g.cfg.Cannon.DefaultPower)
	}
	if text, ok := in.Field(core.FieldAngle); ok {
		elevation = ParseOrDefault(text, g.cfg.Cannon.DefaultElevation)
	}
	g.cannon.SetAim(power, elevation, g.cannon.Yaw())

	muzzle := g.cannon.MuzzlePosition()
	id := g.world.Launch(muzzle, g.cannon.Velocity())
	g.flight = &shot{
		id:        id,
		base:      g.cannon.Base(),
		power:     g.cannon.Power(),
		elevation: g.cannon.Elevation(),
		yaw:       g.cannon.Yaw(),
	}
	g.shotsLeft--
	g.trail = append(g.trail[:0], muzzle)
	g.status = FireStatus(g.flight.power, g.flight.elevation)
	return core.Event{Kind: core.EventFired, Text: g.status}, true
}

// advance ticks the world and settles impacts and expiries.
func (g *Game) advance() []core.Event {
	if g.world == nil || g.world.Len() == 0 {
		return nil
	}
	rep := g.world.Tick(g.clock.Delta())
	if rep.Empty() {
		return nil
	}

	for _, f := range rep.Flights {
		if len(g.trail) < maxTrail {
			g.trail = append(g.trail, f.Position)
		}
	}

	var events []core.Event
	for _, ev := range rep.Impacts {
		events = append(events, g.settleImpact(ev))
	}
	for _, rm := range rep.Removals {
		if rm.Reason == ballistics.RemovedExpired {
			events = append(events, g.settleExpiry())
		}
	}
	return events
}

func (g *Game) settleImpact(ev ballistics.ImpactEvent) core.Event {
	s := g.flight
	if s == nil {
		s = &shot{base: g.cannon.Base()}
	}
	p := ev.Impact.Point
	dist := horizontalRange(s.base, p)

	outcome, points := OutcomeGround, 0
	var text string
	switch ev.Impact.Source {
	case ballistics.ImpactRay:
		if t := g.field.Strike(ev.Impact.Collider); t != nil {
			outcome, points = OutcomeTarget, t.Points
			text = fmt.Sprintf("Direct hit on %s! +%d", t.ID, points)
		} else {
			outcome = OutcomeRay
			text = fmt.Sprintf("Shell struck %s", ev.Impact.Collider)
		}
	default:
		points = g.groundPoints(dist)
		text = fmt.Sprintf("Landed %.1f m out, +%d", dist, points)
	}

	g.score += points
	g.trail = appendCapped(g.trail, p)
	g.flash = p
	g.flashes = max(g.runtime.TickRate/2, 1)
	g.flight = nil
	g.status = text

	g.record(core.ShotRecord{
		Outcome:    outcome,
		Collider:   ev.Impact.Collider,
		ImpactX:    p.X,
		ImpactY:    p.Y,
		ImpactZ:    p.Z,
		FlightTime: ev.Impact.Time,
		Range:      dist,
		Points:     points,
	}, s)

	kind := core.EventImpact
	if outcome == OutcomeTarget {
		kind = core.EventTargetHit
	}
	return core.Event{Kind: kind, Text: text}
}

func (g *Game) settleExpiry() core.Event {
	s := g.flight
	if s == nil {
		s = &shot{base: g.cannon.Base()}
	}
	var last ballistics.Vec3
	if n := len(g.trail); n > 0 {
		last = g.trail[n-1]
	}
	g.flight = nil
	g.status = "Shell lost from sight"

	g.record(core.ShotRecord{
		Outcome:    OutcomeExpired,
		ImpactX:    last.X,
		ImpactY:    last.Y,
		ImpactZ:    last.Z,
		FlightTime: g.cfg.Physics.MaxLifetime,
		Range:      horizontalRange(s.base, last),
	}, s)
	return core.Event{Kind: core.EventExpired, Text: g.status}
}

// groundPoints pays one point per MetersPerPoint of horizontal distance.
func (g *Game) groundPoints(dist float64) int {
	if g.cfg.Arena.MetersPerPoint <= 0 {
		return 0
	}
	return int(dist / g.cfg.Arena.MetersPerPoint)
}

// record fills in the aim and hands the shot to the recorder. Failures are
// kept for the HUD and never interrupt play.
func (g *Game) record(rec core.ShotRecord, s *shot) {
	if g.recorder == nil {
		return
	}
	rec.GameID = g.id
	rec.Power = s.power
	rec.Elevation = s.elevation
	rec.Yaw = s.yaw
	rec.Wind = [3]float64{g.wind.X, g.wind.Y, g.wind.Z}
	g.recordErr = g.recorder.RecordShot(rec)
}

// Preview returns the predicted arc for the current aim, cut at the ground.
// It uses the same acceleration as live shells, wind included.
func (g *Game) Preview() []ballistics.Vec3 {
	if !g.cfg.Preview.Enabled || g.phase != PhasePlaying || g.world == nil {
		return nil
	}
	pts := ballistics.Sample(ballistics.Preview{
		Origin:       g.cannon.MuzzlePosition(),
		Speed:        g.cannon.Power(),
		ElevationDeg: g.cannon.Elevation(),
		YawDeg:       g.cannon.Yaw(),
		Acceleration: g.world.Config().Acceleration(),
		Count:        g.cfg.Preview.Samples,
		Spacing:      g.cfg.Preview.Spacing,
	})
	if g.cfg.Collision.UseGroundPlane {
		pts = ballistics.TruncateAtGround(pts, g.cfg.Collision.GroundHeight)
	}
	return pts
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.paused,
		InMenu:    g.phase == PhaseMenu,
		ShotsLeft: g.shotsLeft,
		Status:    g.status,
	}
}

// Phase returns the round state.
func (g *Game) Phase() Phase { return g.phase }

// Cannon returns the barrel being aimed.
func (g *Game) Cannon() *Cannon { return g.cannon }

// Wind returns the lateral acceleration of the current round.
func (g *Game) Wind() ballistics.Vec3 { return g.wind }

// Config returns the loaded configuration, presets applied.
func (g *Game) Config() config.CannonConfig { return g.cfg }

// Targets returns the targets of the current round.
func (g *Game) Targets() []*Target {
	if g.field == nil {
		return nil
	}
	return g.field.Targets()
}

// ShellInFlight reports whether a shell is airborne.
func (g *Game) ShellInFlight() bool {
	return g.flight != nil
}

// ShellPosition returns the position of the airborne shell.
func (g *Game) ShellPosition() (ballistics.Vec3, bool) {
	if g.flight == nil {
		return ballistics.Vec3{}, false
	}
	p, ok := g.world.Get(g.flight.id)
	if !ok {
		return ballistics.Vec3{}, false
	}
	return p.Position(), true
}

// RecordErr returns the last shot log failure, if any.
func (g *Game) RecordErr() error {
	return g.recordErr
}

func horizontalRange(from, to ballistics.Vec3) float64 {
	return math.Hypot(to.X-from.X, to.Z-from.Z)
}

func appendCapped(trail []ballistics.Vec3, p ballistics.Vec3) []ballistics.Vec3 {
	if len(trail) >= maxTrail {
		trail[len(trail)-1] = p
		return trail
	}
	return append(trail, p)
}

// Register both variants with the registry
func init() {
	registry.Register("cannon", func() registry.Game {
		return New()
	})
	registry.Register("cannon_gale", func() registry.Game {
		return NewGale()
	})
}
