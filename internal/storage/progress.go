package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/games/match3/levels"
)

// LoadProgress reads every level record.
func (s *Store) LoadProgress() (levels.Progress, error) {
	rows, err := s.db.Query(`SELECT level_id, completed, stars, best_score FROM level_progress`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	p := make(levels.Progress)
	for rows.Next() {
		var id int
		var rec levels.Record
		if err := rows.Scan(&id, &rec.Completed, &rec.Stars, &rec.BestScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan progress row: %w", err)
		}
		p[id] = rec
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return p, nil
}

// SaveProgress writes every record in p in one transaction. Stored values
// are only ever raised, so a stale in-memory map from another session
// cannot downgrade a record.
func (s *Store) SaveProgress(p levels.Progress) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.Prepare(`
		INSERT INTO level_progress (level_id, completed, stars, best_score)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(level_id) DO UPDATE SET
			completed = MAX(completed, excluded.completed),
			stars = MAX(stars, excluded.stars),
			best_score = MAX(best_score, excluded.best_score),
			updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare progress upsert: %w", err)
	}
	defer stmt.Close()

	for id, rec := range p {
		if _, err := stmt.Exec(id, rec.Completed, rec.Stars, rec.BestScore); err != nil {
			return fmt.Errorf("storage: cannot save progress for level %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit progress: %w", err)
	}
	return nil
}

// ResetProgress deletes all level records.
func (s *Store) ResetProgress() error {
	if _, err := s.db.Exec("DELETE FROM level_progress"); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// ProgressStore adapts a Store to levels.ProgressStore.
type ProgressStore struct {
	store *Store
}

// Progress returns the levels.ProgressStore view of s.
func (s *Store) Progress() *ProgressStore {
	return &ProgressStore{store: s}
}

// Load implements levels.ProgressStore.
func (p *ProgressStore) Load() (levels.Progress, error) {
	return p.store.LoadProgress()
}

// Save implements levels.ProgressStore.
func (p *ProgressStore) Save(progress levels.Progress) error {
	return p.store.SaveProgress(progress)
}

var _ levels.ProgressStore = (*ProgressStore)(nil)
