package domain_test

import (
	"testing"

	"alcyxob/fitness-coach/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() domain.PreferencePayload {
	return domain.PreferencePayload{
		Goal:              domain.GoalFatLoss,
		TimePerDayMinutes: 30,
		Place:             domain.PlaceHome,
		Equipment:         domain.EquipmentNone,
		FitnessLevel:      domain.LevelBeginner,
		SleepHours:        7,
		StressLevel:       3,
	}
}

func TestPreferencePayload_Validate_OK(t *testing.T) {
	require.NoError(t, validPayload().Validate())

	p := validPayload()
	p.Goal = domain.GoalReduceStress
	p.Equipment = domain.EquipmentResistanceBands
	p.Place = domain.PlaceOutdoor
	p.TimePerDayMinutes = 10
	p.SleepHours = 5
	p.StressLevel = 1
	assert.NoError(t, p.Validate())
}

func TestPreferencePayload_Validate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.PreferencePayload)
		field  string
	}{
		{"unknown goal", func(p *domain.PreferencePayload) { p.Goal = "bulk" }, "Goal"},
		{"missing goal", func(p *domain.PreferencePayload) { p.Goal = "" }, "Goal"},
		{"minutes off the menu", func(p *domain.PreferencePayload) { p.TimePerDayMinutes = 25 }, "TimePerDayMinutes"},
		{"unknown place", func(p *domain.PreferencePayload) { p.Place = "office" }, "Place"},
		{"unknown equipment", func(p *domain.PreferencePayload) { p.Equipment = "kettlebell" }, "Equipment"},
		{"advanced level", func(p *domain.PreferencePayload) { p.FitnessLevel = domain.LevelAdvanced }, "FitnessLevel"},
		{"too little sleep", func(p *domain.PreferencePayload) { p.SleepHours = 4 }, "SleepHours"},
		{"too much sleep", func(p *domain.PreferencePayload) { p.SleepHours = 9 }, "SleepHours"},
		{"stress zero", func(p *domain.PreferencePayload) { p.StressLevel = 0 }, "StressLevel"},
		{"stress six", func(p *domain.PreferencePayload) { p.StressLevel = 6 }, "StressLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPayload)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
