package domain

// FeedbackCode is the terminal reaction a user gives to a displayed plan.
// The set is closed.
type FeedbackCode string

const (
	FeedbackDone    FeedbackCode = "done"
	FeedbackTooHard FeedbackCode = "too_hard"
	FeedbackTired   FeedbackCode = "tired"
	FeedbackPain    FeedbackCode = "pain"
)

// FeedbackCodes lists every valid code.
var FeedbackCodes = []FeedbackCode{FeedbackDone, FeedbackTooHard, FeedbackTired, FeedbackPain}
