package levels

import "sync"

// Record is the stored progress for one level.
type Record struct {
	Completed bool
	Stars     int
	BestScore int
}

// Progress maps level ids to their records.
type Progress map[int]Record

// ProgressStore persists progress between sessions. Implementations decide
// the medium; callers treat load and save failures as non-fatal.
type ProgressStore interface {
	Load() (Progress, error)
	Save(Progress) error
}

// Clone returns an independent copy.
func (p Progress) Clone() Progress {
	out := make(Progress, len(p))
	for id, rec := range p {
		out[id] = rec
	}
	return out
}

// Complete records a completion of level id. Stars and best score are each
// replaced only when the new value is strictly greater, so a weaker run
// never downgrades a record. It returns the resulting record and whether
// anything changed.
func (p Progress) Complete(id, stars, score int) (Record, bool) {
	rec, existed := p[id]
	changed := !existed || !rec.Completed

	rec.Completed = true
	if stars > rec.Stars {
		rec.Stars = stars
		changed = true
	}
	if score > rec.BestScore {
		rec.BestScore = score
		changed = true
	}
	p[id] = rec
	return rec, changed
}

// Unlocked reports whether level id can be played: level 1 always, level N
// once level N-1 has been completed.
func (p Progress) Unlocked(id int) bool {
	if id <= 1 {
		return true
	}
	return p[id-1].Completed
}

// TotalStars sums stars over all records.
func (p Progress) TotalStars() int {
	total := 0
	for _, rec := range p {
		total += rec.Stars
	}
	return total
}

// MemoryStore is an in-process ProgressStore.
type MemoryStore struct {
	mu   sync.Mutex
	data Progress
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(Progress)}
}

// Load returns a copy of the stored progress.
func (m *MemoryStore) Load() (Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.Clone(), nil
}

// Save replaces the stored progress with a copy of p.
func (m *MemoryStore) Save(p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = p.Clone()
	return nil
}

var _ ProgressStore = (*MemoryStore)(nil)
