package coach

import (
	"errors"
	"fmt"

	"alcyxob/fitness-coach/internal/domain"
)

var ErrUnknownFeedback = errors.New("unknown feedback code")

// FeedbackOutcome is the acknowledgment shown for a feedback code.
type FeedbackOutcome struct {
	Code              domain.FeedbackCode `json:"status"`
	Message           string              `json:"message"`
	RecordsCompletion bool                `json:"-"` // only "done" appends to history
}

var feedbackOutcomes = map[domain.FeedbackCode]FeedbackOutcome{
	domain.FeedbackDone: {
		Code:              domain.FeedbackDone,
		Message:           "🎉 Awesome! Great job completing your workout!",
		RecordsCompletion: true,
	},
	domain.FeedbackTooHard: {
		Code:    domain.FeedbackTooHard,
		Message: "💪 Noted! Next time, we'll adjust the intensity down.",
	},
	domain.FeedbackTired: {
		Code:    domain.FeedbackTired,
		Message: "😴 Rest is important! Consider a lighter workout tomorrow.",
	},
	domain.FeedbackPain: {
		Code:    domain.FeedbackPain,
		Message: "⚠️ Stop immediately if you're in pain. Consider consulting a doctor.",
	},
}

// ClassifyFeedback maps a code to its outcome. It has no side effects.
func ClassifyFeedback(code domain.FeedbackCode) (FeedbackOutcome, error) {
	outcome, ok := feedbackOutcomes[code]
	if !ok {
		return FeedbackOutcome{}, fmt.Errorf("%w: %q", ErrUnknownFeedback, code)
	}
	return outcome, nil
}

// MustClassifyFeedback panics on an unknown code.
func MustClassifyFeedback(code domain.FeedbackCode) FeedbackOutcome {
	outcome, err := ClassifyFeedback(code)
	if err != nil {
		panic(err)
	}
	return outcome
}
