package domain

// Difficulty is the intensity recommendation attached to a plan.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
)

// WorkoutTemplate is a catalog entry: a name plus ordered steps.
// Warm-up comes first and cool-down last by convention.
type WorkoutTemplate struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

// WorkoutPlan is a template instantiated with a fresh identity.
type WorkoutPlan struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

// SleepTip is the sleep advice line of a plan.
type SleepTip struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Fruit is the fruit recommendation with the reason it was picked.
type Fruit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Why  string `json:"why"`
}

// Habit is the daily micro-habit of a plan.
type Habit struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Nutrition holds the protein and calorie guidance for the plan's goal.
type Nutrition struct {
	ProteinTarget   string `json:"proteinTarget"`
	CalorieGuidance string `json:"calorieGuidance"`
}

// Plan is the full daily recommendation bundle shown on the health card.
type Plan struct {
	Date        string      `json:"date"` // YYYY-MM-DD, UTC
	Workout     WorkoutPlan `json:"workout"`
	SleepTip    SleepTip    `json:"sleepTip"`
	Fruit       Fruit       `json:"fruit"`
	Habit       Habit       `json:"habit"`
	Nutrition   Nutrition   `json:"nutrition"`
	Difficulty  Difficulty  `json:"difficulty"`
	Explanation string      `json:"explanation"`
}
