package coach

import (
	"fmt"

	"alcyxob/fitness-coach/internal/domain"
)

// Thresholds for the derived advice.
const (
	restfulSleepHours  = 7 // below this the sleep tip asks for more sleep
	sleepDebtHours     = 6 // below this the difficulty drops to easy
	mindfulStressLevel = 3 // at or above this the habit is a mindfulness break
)

const (
	sleepTipID = "s1"
	fruitID    = "f1"
	habitID    = "h2"
)

// Advice texts attached to generated plans.
const (
	// SleepTipMoreSleep is shown below 7 hours of sleep, SleepTipConsistent otherwise.
	SleepTipMoreSleep  = "💤 Tip: Aim for 7-9 hours of sleep. Try going to bed 30 minutes earlier tonight."
	SleepTipConsistent = "💤 Great sleep! Maintain a consistent sleep schedule for best results."

	// HabitMindfulness is chosen at stress level 3 and above, HabitHydration below.
	HabitMindfulness = "🧘 Take a 5-minute mindfulness break after lunch to reduce stress."
	HabitHydration   = "💧 Drink a glass of water every time you check your phone."

	// Protein targets: muscle gain gets the higher range.
	ProteinMuscleGain = "1.6-2.0g per kg bodyweight"
	ProteinDefault    = "1.2-1.6g per kg bodyweight"

	// Calorie guidance: deficit for fat loss, surplus for muscle gain,
	// maintenance for the remaining goals.
	CaloriesDeficit     = "Slight deficit (300-500 cal below maintenance)"
	CaloriesSurplus     = "Slight surplus (200-400 cal above maintenance)"
	CaloriesMaintenance = "Maintenance level"
)

func sleepTipFor(p domain.PreferencePayload) domain.SleepTip {
	text := SleepTipConsistent
	if p.SleepHours < restfulSleepHours {
		text = SleepTipMoreSleep
	}
	return domain.SleepTip{ID: sleepTipID, Text: text}
}

func fruitFor(p domain.PreferencePayload) domain.Fruit {
	if p.Goal == domain.GoalMuscleGain {
		return domain.Fruit{
			ID:   fruitID,
			Name: "Banana",
			Why:  "Rich in potassium - great for post-workout recovery and muscle cramps prevention.",
		}
	}
	return domain.Fruit{
		ID:   fruitID,
		Name: "Apple",
		Why:  "High in fiber and antioxidants - keeps you full and supports fat loss.",
	}
}

func habitFor(p domain.PreferencePayload) domain.Habit {
	text := HabitHydration
	if p.StressLevel >= mindfulStressLevel {
		text = HabitMindfulness
	}
	return domain.Habit{ID: habitID, Text: text}
}

func nutritionFor(p domain.PreferencePayload) domain.Nutrition {
	n := domain.Nutrition{ProteinTarget: ProteinDefault, CalorieGuidance: CaloriesMaintenance}
	switch p.Goal {
	case domain.GoalMuscleGain:
		n.ProteinTarget = ProteinMuscleGain
		n.CalorieGuidance = CaloriesSurplus
	case domain.GoalFatLoss:
		n.CalorieGuidance = CaloriesDeficit
	}
	return n
}

// difficultyFor lowers intensity on sleep debt regardless of fitness level.
func difficultyFor(p domain.PreferencePayload) domain.Difficulty {
	if p.SleepHours < sleepDebtHours {
		return domain.DifficultyEasy
	}
	return domain.DifficultyModerate
}

func explanationFor(p domain.PreferencePayload) string {
	return fmt.Sprintf("Personalized for: %d min, %s, %s level, %s goal",
		p.TimePerDayMinutes, p.Place, p.FitnessLevel, p.Goal)
}
