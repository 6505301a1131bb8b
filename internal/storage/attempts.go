package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome values recorded for an attempt.
const (
	OutcomeComplete  = "complete"
	OutcomeFailed    = "failed"
	OutcomeAbandoned = "abandoned"
)

// Attempt is one finished play of a level, or one endless session.
type Attempt struct {
	ID        string // uuid, assigned by SaveAttempt when empty
	GameID    string
	LevelID   int // 0 for endless
	Score     int
	Stars     int
	MovesUsed int
	Outcome   string
	CreatedAt time.Time
}

// LevelStats aggregates the attempt log for one level.
type LevelStats struct {
	LevelID   int
	Attempts  int
	Wins      int
	BestScore int
	LastPlay  time.Time
}

// SaveAttempt appends an attempt to the log and returns its id.
func (s *Store) SaveAttempt(a Attempt) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	} else if _, err := uuid.Parse(a.ID); err != nil {
		return "", fmt.Errorf("storage: attempt id %q is not a uuid: %w", a.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO attempts (id, game_id, level_id, score, stars, moves_used, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.GameID, a.LevelID, a.Score, a.Stars, a.MovesUsed, a.Outcome,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save attempt: %w", err)
	}
	return a.ID, nil
}

// AttemptByID looks up one attempt. It returns nil when no row matches.
func (s *Store) AttemptByID(id string) (*Attempt, error) {
	var a Attempt
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, game_id, level_id, score, stars, moves_used, outcome, created_at
		 FROM attempts WHERE id = ?`,
		id,
	).Scan(&a.ID, &a.GameID, &a.LevelID, &a.Score, &a.Stars, &a.MovesUsed, &a.Outcome, &createdAt)

	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempt: %w", err)
	}
	a.CreatedAt = parseTime(createdAt)
	return &a, nil
}

// RecentAttempts returns the latest attempts for a level, newest first.
func (s *Store) RecentAttempts(levelID, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_id, score, stars, moves_used, outcome, created_at
		 FROM attempts
		 WHERE level_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.GameID, &a.LevelID, &a.Score, &a.Stars, &a.MovesUsed, &a.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan attempt row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// AllLevelStats aggregates the attempt log per level. Endless sessions
// (level 0) are excluded.
func (s *Store) AllLevelStats() (map[int]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), MAX(created_at)
		 FROM attempts
		 WHERE level_id > 0
		 GROUP BY level_id`,
		OutcomeComplete,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[int]LevelStats)
	for rows.Next() {
		var st LevelStats
		var last any
		if err := rows.Scan(&st.LevelID, &st.Attempts, &st.Wins, &st.BestScore, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlay = parseTime(last)
		stats[st.LevelID] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
