package core

import "time"

// ShotRecord is a resolved shot as persisted by the score store.
type ShotRecord struct {
	ID         string
	GameID     string
	Power      float64 // Muzzle speed in m/s
	Elevation  float64 // Degrees
	Yaw        float64 // Degrees
	Wind       [3]float64
	Outcome    string // "ground", "target", "ray" or "expired"
	Collider   string
	ImpactX    float64
	ImpactY    float64
	ImpactZ    float64
	FlightTime float64 // Seconds
	Range      float64 // Horizontal distance from the muzzle in meters
	Points     int
	CreatedAt  time.Time
}

// ShotRecorder receives every resolved shot.
type ShotRecorder interface {
	RecordShot(ShotRecord) error
}
