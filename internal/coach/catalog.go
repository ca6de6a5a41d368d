package coach

import (
	"slices"

	"alcyxob/fitness-coach/internal/domain"
)

// PlanKey addresses one entry of the workout catalog.
type PlanKey struct {
	Goal      domain.Goal
	Equipment domain.Equipment
	Level     domain.FitnessLevel
}

// FallbackKey is used whenever a payload has no exact catalog entry.
var FallbackKey = PlanKey{Goal: domain.GoalFatLoss, Equipment: domain.EquipmentNone, Level: domain.LevelBeginner}

// catalog is intentionally sparse: stay_active only has bodyweight entries,
// improve_sleep and reduce_stress have none and always resolve to FallbackKey.
var catalog = map[PlanKey]domain.WorkoutTemplate{
	{domain.GoalFatLoss, domain.EquipmentNone, domain.LevelBeginner}: {
		Name: "15-Min Fat Burn Cardio",
		Steps: []string{
			"Warm-up: 3 min light jogging in place",
			"4 rounds: 30s jumping jacks, 30s rest",
			"4 rounds: 30s high knees, 30s rest",
			"4 rounds: 30s butt kicks, 30s rest",
			"Cool-down: 3 min walking and stretching",
		},
	},
	{domain.GoalFatLoss, domain.EquipmentNone, domain.LevelIntermediate}: {
		Name: "20-Min HIIT Fat Burner",
		Steps: []string{
			"Warm-up: 3 min dynamic stretches",
			"5 rounds: 40s burpees, 20s rest",
			"5 rounds: 40s mountain climbers, 20s rest",
			"5 rounds: 40s jump squats, 20s rest",
			"Cool-down: 5 min stretching",
		},
	},
	{domain.GoalFatLoss, domain.EquipmentDumbbells, domain.LevelBeginner}: {
		Name: "15-Min Dumbbell Circuit",
		Steps: []string{
			"Warm-up: 3 min arm circles",
			"3 rounds: Goblet Squat x12, rest 45s",
			"3 rounds: Dumbbell Shoulder Press x10, rest 45s",
			"3 rounds: Bent-over Row x12, rest 45s",
			"Cool-down: 3 min stretching",
		},
	},
	{domain.GoalFatLoss, domain.EquipmentDumbbells, domain.LevelIntermediate}: {
		Name: "25-Min Full Body Strength",
		Steps: []string{
			"Warm-up: 5 min light cardio",
			"4 rounds: Deadlifts x10, rest 60s",
			"4 rounds: Chest Press x12, rest 60s",
			"4 rounds: Lunges x10 each leg, rest 60s",
			"4 rounds: Bicep Curls x12, rest 45s",
			"Cool-down: 5 min stretching",
		},
	},
	{domain.GoalMuscleGain, domain.EquipmentNone, domain.LevelBeginner}: {
		Name: "15-Min Bodyweight Strength",
		Steps: []string{
			"Warm-up: 3 min dynamic stretches",
			"3 rounds: Push-ups x8-10",
			"3 rounds: Squats x15",
			"3 rounds: Plank holds x30s",
			"Cool-down: 2 min stretching",
		},
	},
	{domain.GoalMuscleGain, domain.EquipmentNone, domain.LevelIntermediate}: {
		Name: "25-Min Advanced Bodyweight",
		Steps: []string{
			"Warm-up: 5 min cardio",
			"4 rounds: Diamond push-ups x12",
			"4 rounds: Jump squats x15",
			"4 rounds: Pull-ups x8 (or assisted)",
			"4 rounds: Plank to push-up x10",
			"Cool-down: 5 min stretching",
		},
	},
	{domain.GoalMuscleGain, domain.EquipmentDumbbells, domain.LevelBeginner}: {
		Name: "20-Min Muscle Builder",
		Steps: []string{
			"Warm-up: 5 min light cardio",
			"3 rounds: Dumbbell Squats x12",
			"3 rounds: Shoulder Press x10",
			"3 rounds: Rows x12 each arm",
			"3 rounds: Hammer Curls x12",
			"Cool-down: 3 min stretching",
		},
	},
	{domain.GoalMuscleGain, domain.EquipmentDumbbells, domain.LevelIntermediate}: {
		Name: "30-Min Hypertrophy Session",
		Steps: []string{
			"Warm-up: 5 min cardio + stretches",
			"4 rounds: Romanian Deadlifts x10",
			"4 rounds: Incline Chest Press x12",
			"4 rounds: Bulgarian Split Squats x10 each",
			"4 rounds: Lateral Raises x15",
			"4 rounds: Tricep Extensions x12",
			"Cool-down: 5 min stretching",
		},
	},
	{domain.GoalStayActive, domain.EquipmentNone, domain.LevelBeginner}: {
		Name: "10-Min Gentle Movement",
		Steps: []string{
			"Warm-up: 2 min walking in place",
			"3 min light stretching",
			"3 min gentle yoga poses",
			"2 min breathing exercises",
		},
	},
	{domain.GoalStayActive, domain.EquipmentNone, domain.LevelIntermediate}: {
		Name: "15-Min Active Flow",
		Steps: []string{
			"Warm-up: 3 min walking",
			"5 min yoga flow",
			"5 min bodyweight exercises",
			"2 min cool-down stretches",
		},
	},
}

// Lookup returns a copy of the exact catalog entry for key, if any.
func Lookup(key PlanKey) (domain.WorkoutTemplate, bool) {
	tmpl, ok := catalog[key]
	if !ok {
		return domain.WorkoutTemplate{}, false
	}
	return domain.WorkoutTemplate{Name: tmpl.Name, Steps: slices.Clone(tmpl.Steps)}, true
}

// Keys lists every catalog key. Order is unspecified.
func Keys() []PlanKey {
	keys := make([]PlanKey, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	return keys
}
