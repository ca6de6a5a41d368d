package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Goal is the user's primary training objective.
type Goal string

const (
	GoalFatLoss      Goal = "fat_loss"
	GoalMuscleGain   Goal = "muscle_gain"
	GoalStayActive   Goal = "stay_active"
	GoalImproveSleep Goal = "improve_sleep"
	GoalReduceStress Goal = "reduce_stress"
)

// Place is where the workout will happen.
type Place string

const (
	PlaceHome    Place = "home"
	PlaceGym     Place = "gym"
	PlaceOutdoor Place = "outdoor"
)

// Equipment available to the user.
type Equipment string

const (
	EquipmentNone            Equipment = "none"
	EquipmentDumbbells       Equipment = "dumbbells"
	EquipmentResistanceBands Equipment = "resistance_bands"
)

// FitnessLevel of the user.
type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced" // Profile-only; the coach panel does not offer it
)

var (
	ErrInvalidPayload = errors.New("invalid preference payload")
)

// PreferencePayload is what the user submits to request today's plan.
// It is treated as immutable once submitted.
type PreferencePayload struct {
	Goal              Goal         `json:"goal" bson:"goal" validate:"required,oneof=fat_loss muscle_gain stay_active improve_sleep reduce_stress"`
	TimePerDayMinutes int          `json:"timePerDayMinutes" bson:"timePerDayMinutes" validate:"required,oneof=10 15 20 30"`
	Place             Place        `json:"place" bson:"place" validate:"required,oneof=home gym outdoor"`
	Equipment         Equipment    `json:"equipment" bson:"equipment" validate:"required,oneof=none dumbbells resistance_bands"`
	FitnessLevel      FitnessLevel `json:"fitnessLevel" bson:"fitnessLevel" validate:"required,oneof=beginner intermediate"`
	SleepHours        int          `json:"sleepHours" bson:"sleepHours" validate:"min=5,max=8"`
	StressLevel       int          `json:"stressLevel" bson:"stressLevel" validate:"min=1,max=5"`
}

var payloadValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its enumerated or ranged domain.
// The returned error wraps ErrInvalidPayload and names the offending fields.
func (p PreferencePayload) Validate() error {
	err := payloadValidator.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s=%v fails %s", fe.Field(), fe.Value(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(problems, "; "))
}
