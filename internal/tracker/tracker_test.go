package tracker_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

func planNamed(name string) domain.Plan {
	return domain.Plan{Workout: domain.WorkoutPlan{ID: "workout_" + name, Name: name, Steps: []string{"step"}}}
}

func TestTracker_EmptyHistory(t *testing.T) {
	tr := tracker.New(nil)
	assert.Empty(t, tr.History())
	assert.Equal(t, 0, tr.Len())
}

func TestTracker_NewestFirst(t *testing.T) {
	clock := &stepClock{now: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)}
	tr := tracker.New(clock)

	first := tr.RecordCompletion(planNamed("a"), 15, domain.GoalFatLoss)
	second := tr.RecordCompletion(planNamed("b"), 30, domain.GoalMuscleGain)

	history := tr.History()
	require.Len(t, history, 2)
	assert.Equal(t, second, history[0])
	assert.Equal(t, first, history[1])

	assert.Equal(t, "b", history[0].WorkoutName)
	assert.Equal(t, "workout_b", history[0].WorkoutID)
	assert.Equal(t, 30, history[0].DurationMinutes)
	assert.Equal(t, domain.GoalMuscleGain, history[0].Goal)
	assert.True(t, history[0].Timestamp.After(history[1].Timestamp))
}

func TestTracker_EachRecordGrowsHistoryByOne(t *testing.T) {
	tr := tracker.New(nil)
	for i := 1; i <= 5; i++ {
		rec := tr.RecordCompletion(planNamed(fmt.Sprint(i)), 10, domain.GoalStayActive)
		history := tr.History()
		require.Len(t, history, i)
		assert.Equal(t, rec, history[0])
	}
}

func TestTracker_HistoryIsSnapshot(t *testing.T) {
	tr := tracker.New(nil)
	tr.RecordCompletion(planNamed("a"), 10, domain.GoalFatLoss)

	h := tr.History()
	h[0].WorkoutName = "changed"

	assert.Equal(t, "a", tr.History()[0].WorkoutName)
	// restartable: repeated calls yield the same sequence
	assert.Equal(t, tr.History(), tr.History())
}

func TestTracker_ConcurrentCompletionsAreNotLost(t *testing.T) {
	tr := tracker.New(nil)
	const workers, perWorker = 16, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				tr.RecordCompletion(planNamed(fmt.Sprintf("%d-%d", w, i)), 20, domain.GoalFatLoss)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, tr.Len())

	seen := make(map[string]bool)
	for _, rec := range tr.History() {
		seen[rec.WorkoutName] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
