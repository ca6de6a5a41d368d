package coach

import (
	"alcyxob/fitness-coach/internal/domain"
)

const (
	workoutIDPrefix = "workout_"
	planDateLayout  = "2006-01-02"
)

// Selector turns a preference payload into a daily plan. It holds no state
// besides its identity source and clock, so a single instance can be shared.
type Selector struct {
	ids   IDSource
	clock Clock
}

// NewSelector builds a Selector. Nil dependencies fall back to UUIDSource and SystemClock.
func NewSelector(ids IDSource, clock Clock) *Selector {
	if ids == nil {
		ids = UUIDSource{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Selector{ids: ids, clock: clock}
}

// Selection is a generated plan together with how its template was found.
type Selection struct {
	Plan  domain.Plan
	Exact bool // false when the FallbackKey template was used
}

// Resolve picks the workout template for p: exact match on
// (goal, equipment, level), else the FallbackKey template. The bool reports
// whether the exact match was found. Partial-key matching is not attempted.
// The returned template is a copy.
func (s *Selector) Resolve(p domain.PreferencePayload) (domain.WorkoutTemplate, bool) {
	key := PlanKey{Goal: p.Goal, Equipment: p.Equipment, Level: p.FitnessLevel}
	if tmpl, ok := Lookup(key); ok {
		return tmpl, true
	}
	tmpl, _ := Lookup(FallbackKey)
	return tmpl, false
}

// Select is SelectPlan that also reports whether the payload matched a
// catalog entry exactly.
func (s *Selector) Select(p domain.PreferencePayload) Selection {
	tmpl, exact := s.Resolve(p)
	return Selection{Plan: s.build(p, tmpl), Exact: exact}
}

// Swap is the Selection form of SwapPlan.
func (s *Selector) Swap(p domain.PreferencePayload) Selection {
	return s.Select(p)
}

// SelectPlan never fails: unknown keys resolve to the fallback workout.
func (s *Selector) SelectPlan(p domain.PreferencePayload) domain.Plan {
	return s.Select(p).Plan
}

// SwapPlan has the same contract as SelectPlan. With one template per key it
// returns the same workout content under a new identity.
func (s *Selector) SwapPlan(p domain.PreferencePayload) domain.Plan {
	return s.Swap(p).Plan
}

func (s *Selector) build(p domain.PreferencePayload, tmpl domain.WorkoutTemplate) domain.Plan {
	return domain.Plan{
		Date: s.clock.Now().UTC().Format(planDateLayout),
		Workout: domain.WorkoutPlan{
			ID:    workoutIDPrefix + s.ids.NewID(),
			Name:  tmpl.Name,
			Steps: tmpl.Steps,
		},
		SleepTip:    sleepTipFor(p),
		Fruit:       fruitFor(p),
		Habit:       habitFor(p),
		Nutrition:   nutritionFor(p),
		Difficulty:  difficultyFor(p),
		Explanation: explanationFor(p),
	}
}
