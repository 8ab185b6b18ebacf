package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/kitty-cannon/internal/core"
)

// Ensure Store can be handed to games as their shot log.
var _ core.ShotRecorder = (*Store)(nil)

// RecordShot appends a resolved shot to the log. A missing ID or timestamp is
// filled in.
func (s *Store) RecordShot(rec core.ShotRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO shots
		 (id, game_id, power, elevation, yaw, wind_x, wind_y, wind_z, outcome, collider,
		  impact_x, impact_y, impact_z, flight_time, range_m, points, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.GameID, rec.Power, rec.Elevation, rec.Yaw,
		rec.Wind[0], rec.Wind[1], rec.Wind[2], rec.Outcome, rec.Collider,
		rec.ImpactX, rec.ImpactY, rec.ImpactZ, rec.FlightTime, rec.Range, rec.Points,
		rec.CreatedAt.UTC().Format(sqliteTime),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save shot: %w", err)
	}
	return nil
}

// RecentShots returns the latest shots for a game, newest first.
// An empty gameID returns shots from every game.
func (s *Store) RecentShots(gameID string, limit int) ([]core.ShotRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, power, elevation, yaw, wind_x, wind_y, wind_z, outcome, collider,
		        impact_x, impact_y, impact_z, flight_time, range_m, points, created_at
		 FROM shots
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shots: %w", err)
	}
	defer rows.Close()

	var shots []core.ShotRecord
	for rows.Next() {
		var r core.ShotRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Power, &r.Elevation, &r.Yaw,
			&r.Wind[0], &r.Wind[1], &r.Wind[2], &r.Outcome, &r.Collider,
			&r.ImpactX, &r.ImpactY, &r.ImpactZ, &r.FlightTime, &r.Range, &r.Points,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan shot: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		shots = append(shots, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return shots, nil
}

// ShotStats aggregates the shot log of a game.
type ShotStats struct {
	GameID      string
	Shots       int
	TargetHits  int
	Expired     int
	LongestShot float64 // Meters, landed shots only
	AvgRange    float64 // Meters, landed shots only
	TotalPoints int64
}

// Accuracy returns the fraction of shots that hit a target.
func (st ShotStats) Accuracy() float64 {
	if st.Shots == 0 {
		return 0
	}
	return float64(st.TargetHits) / float64(st.Shots)
}

// GetShotStats aggregates the shot log for a game.
func (s *Store) GetShotStats(gameID string) (*ShotStats, error) {
	st := &ShotStats{GameID: gameID}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'target' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'expired' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(CASE WHEN outcome <> 'expired' THEN range_m END), 0),
		        COALESCE(AVG(CASE WHEN outcome <> 'expired' THEN range_m END), 0),
		        COALESCE(SUM(points), 0)
		 FROM shots WHERE game_id = ?`,
		gameID,
	).Scan(&st.Shots, &st.TargetHits, &st.Expired, &st.LongestShot, &st.AvgRange, &st.TotalPoints)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get shot stats: %w", err)
	}
	return st, nil
}
