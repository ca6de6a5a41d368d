// internal/api/coach_handler.go
package api

import (
	"errors"
	"net/http"

	"alcyxob/fitness-coach/internal/coach"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type CoachHandler struct {
	coachService service.CoachService
}

func NewCoachHandler(coachService service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// --- DTOs ---

// PlanRequest mirrors domain.PreferencePayload; the service enforces the enum domains.
type PlanRequest struct {
	Goal              string `json:"goal" binding:"required"`
	TimePerDayMinutes int    `json:"timePerDayMinutes" binding:"required"`
	Place             string `json:"place" binding:"required"`
	Equipment         string `json:"equipment" binding:"required"`
	FitnessLevel      string `json:"fitnessLevel" binding:"required"`
	SleepHours        int    `json:"sleepHours" binding:"required"`
	StressLevel       int    `json:"stressLevel" binding:"required"`
}

func (r PlanRequest) toPayload() domain.PreferencePayload {
	return domain.PreferencePayload{
		Goal:              domain.Goal(r.Goal),
		TimePerDayMinutes: r.TimePerDayMinutes,
		Place:             domain.Place(r.Place),
		Equipment:         domain.Equipment(r.Equipment),
		FitnessLevel:      domain.FitnessLevel(r.FitnessLevel),
		SleepHours:        r.SleepHours,
		StressLevel:       r.StressLevel,
	}
}

type FeedbackRequest struct {
	Status string `json:"status" binding:"required"` // done, too_hard, tired, pain
}

type FeedbackResponse struct {
	Status   domain.FeedbackCode `json:"status"`
	Message  string              `json:"message"`
	Recorded bool                `json:"recorded"`
}

// --- Handler Methods ---

// GetPlan godoc
// @Summary Get today's plan
// @Description Selects a workout and daily advice for the submitted preferences.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body PlanRequest true "Preferences"
// @Success 200 {object} domain.Plan
// @Failure 400 {object} gin.H "Invalid preferences"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Session not found"
// @Router /coach/plan [post]
func (h *CoachHandler) GetPlan(c *gin.Context) {
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	plan, err := h.coachService.GetPlan(c.Request.Context(), sessionID, req.toPayload())
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SwapPlan godoc
// @Summary Swap the workout
// @Description Re-runs selection for the last submitted preferences.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Plan
// @Failure 409 {object} gin.H "No plan requested yet"
// @Router /coach/plan/swap [post]
func (h *CoachHandler) SwapPlan(c *gin.Context) {
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	plan, err := h.coachService.SwapPlan(c.Request.Context(), sessionID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SubmitFeedback godoc
// @Summary Give feedback on the displayed plan
// @Description "done" records a completed workout; the other codes only acknowledge.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body FeedbackRequest true "Feedback"
// @Success 200 {object} FeedbackResponse
// @Failure 400 {object} gin.H "Unknown feedback code"
// @Failure 409 {object} gin.H "No plan to complete"
// @Router /coach/feedback [post]
func (h *CoachHandler) SubmitFeedback(c *gin.Context) {
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	res, err := h.coachService.SubmitFeedback(c.Request.Context(), sessionID, domain.FeedbackCode(req.Status))
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, FeedbackResponse{
		Status:   res.Status,
		Message:  res.Message,
		Recorded: res.Recorded != nil,
	})
}

// GetHistory godoc
// @Summary Workout history
// @Description Completed workouts of this session, newest first.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.CompletionRecord
// @Router /coach/history [get]
func (h *CoachHandler) GetHistory(c *gin.Context) {
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	history, err := h.coachService.GetHistory(c.Request.Context(), sessionID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// ExportPlan godoc
// @Summary Export the health card
// @Description Stores the displayed plan and returns a temporary download URL.
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.ExportResult
// @Failure 409 {object} gin.H "No plan to export"
// @Failure 503 {object} gin.H "Export not configured"
// @Router /coach/plan/export [post]
func (h *CoachHandler) ExportPlan(c *gin.Context) {
	sessionID, ok := sessionIDOrAbort(c)
	if !ok {
		return
	}

	res, err := h.coachService.ExportPlan(c.Request.Context(), sessionID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func sessionIDOrAbort(c *gin.Context) (string, bool) {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify session.")
		return "", false
	}
	return sessionID, true
}

func respondWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidPayload), errors.Is(err, coach.ErrUnknownFeedback):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNoActivePlan):
		abortWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrExportUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		log.WithField("path", c.FullPath()).Errorf("coach request failed: %v", err)
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
