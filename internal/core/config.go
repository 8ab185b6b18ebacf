package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score     int
	GameOver  bool
	Paused    bool
	InMenu    bool
	ShotsLeft int
	Status    string // Short line for the platform's status bar
}

// EventKind classifies what happened during a step.
type EventKind int

const (
	EventFired EventKind = iota + 1
	EventImpact
	EventTargetHit
	EventExpired
	EventRoundOver
)

// Event is a notable occurrence the platform may surface to the player.
type Event struct {
	Kind EventKind
	Text string
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
