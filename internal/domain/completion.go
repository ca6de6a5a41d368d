package domain

import "time"

// CompletionRecord notes that a workout was finished. Created only on "done"
// feedback and never mutated afterwards.
type CompletionRecord struct {
	SessionID       string    `bson:"sessionId" json:"-"`
	Timestamp       time.Time `bson:"timestamp" json:"timestamp"`
	WorkoutID       string    `bson:"workoutId" json:"workoutId"`
	WorkoutName     string    `bson:"workoutName" json:"workoutName"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Goal            Goal      `bson:"goal" json:"goal"`
}
