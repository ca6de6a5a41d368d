package tracker

import (
	"sync"
	"time"

	"alcyxob/fitness-coach/internal/domain"
)

// Clock supplies completion timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Tracker is the append-only log of completed workouts for one coach session.
// Records are stored in insertion order and presented newest first.
type Tracker struct {
	mu      sync.Mutex
	clock   Clock
	records []domain.CompletionRecord
}

// New creates an empty Tracker. A nil clock uses the wall clock.
func New(clock Clock) *Tracker {
	if clock == nil {
		clock = systemClock{}
	}
	return &Tracker{clock: clock}
}

// RecordCompletion appends exactly one record for plan and returns it.
func (t *Tracker) RecordCompletion(plan domain.Plan, durationMinutes int, goal domain.Goal) domain.CompletionRecord {
	rec := domain.CompletionRecord{
		Timestamp:       t.clock.Now().UTC(),
		WorkoutID:       plan.Workout.ID,
		WorkoutName:     plan.Workout.Name,
		DurationMinutes: durationMinutes,
		Goal:            goal,
	}

	t.mu.Lock()
	t.records = append(t.records, rec)
	t.mu.Unlock()

	return rec
}

// History returns a snapshot of all records, newest first. Callers may
// modify the returned slice freely.
func (t *Tracker) History() []domain.CompletionRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]domain.CompletionRecord, len(t.records))
	for i, rec := range t.records {
		out[len(t.records)-1-i] = rec
	}
	return out
}

func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}
