package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"alcyxob/fitness-coach/internal/api"
	"alcyxob/fitness-coach/internal/coach"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m, reg := metrics.NewTestManagerAndRegistry()
	coachSvc := service.NewCoachService(coach.NewSelector(nil, nil), service.WithMetrics(m))
	sessionSvc := service.NewSessionService(coachSvc, "handler-test-secret", time.Hour)

	router := gin.New()
	api.SetupRoutes(router, m, reg, sessionSvc, coachSvc)
	return &testServer{router: router}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) startSession(t *testing.T) string {
	t.Helper()
	rr := s.do(t, http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var tok service.SessionToken
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tok))
	require.NotEmpty(t, tok.Token)
	return tok.Token
}

func referencePayload() map[string]any {
	return map[string]any{
		"goal":              "fat_loss",
		"timePerDayMinutes": 30,
		"place":             "home",
		"equipment":         "none",
		"fitnessLevel":      "beginner",
		"sleepHours":        7,
		"stressLevel":       3,
	}
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(t, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "pong")
}

func TestCoachRoutes_RequireToken(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/api/v1/coach/plan", "", referencePayload())
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.do(t, http.MethodGet, "/api/v1/coach/history", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid session token")
}

func TestCoachFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.startSession(t)

	// swap before any plan
	rr := s.do(t, http.MethodPost, "/api/v1/coach/plan/swap", token, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = s.do(t, http.MethodPost, "/api/v1/coach/plan", token, referencePayload())
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var plan domain.Plan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &plan))
	assert.Equal(t, "15-Min Fat Burn Cardio", plan.Workout.Name)
	assert.Equal(t, coach.SleepTipConsistent, plan.SleepTip.Text)
	assert.Equal(t, "Apple", plan.Fruit.Name)
	assert.Equal(t, coach.HabitMindfulness, plan.Habit.Text)
	assert.Equal(t, domain.DifficultyModerate, plan.Difficulty)
	assert.True(t, strings.HasPrefix(plan.Workout.ID, "workout_"))

	rr = s.do(t, http.MethodPost, "/api/v1/coach/plan/swap", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var swapped domain.Plan
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &swapped))
	assert.Equal(t, plan.Workout.Name, swapped.Workout.Name)
	assert.NotEqual(t, plan.Workout.ID, swapped.Workout.ID)

	for _, status := range []string{"too_hard", "tired", "pain"} {
		rr = s.do(t, http.MethodPost, "/api/v1/coach/feedback", token, map[string]string{"status": status})
		require.Equal(t, http.StatusOK, rr.Code)
		var fb api.FeedbackResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fb))
		assert.False(t, fb.Recorded)
		assert.NotEmpty(t, fb.Message)
	}

	rr = s.do(t, http.MethodGet, "/api/v1/coach/history", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())

	rr = s.do(t, http.MethodPost, "/api/v1/coach/feedback", token, map[string]string{"status": "done"})
	require.Equal(t, http.StatusOK, rr.Code)
	var fb api.FeedbackResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &fb))
	assert.True(t, fb.Recorded)
	assert.Equal(t, domain.FeedbackDone, fb.Status)

	rr = s.do(t, http.MethodGet, "/api/v1/coach/history", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var history []domain.CompletionRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "15-Min Fat Burn Cardio", history[0].WorkoutName)
	assert.Equal(t, swapped.Workout.ID, history[0].WorkoutID)
	assert.Equal(t, 30, history[0].DurationMinutes)
	assert.Equal(t, domain.GoalFatLoss, history[0].Goal)
}

func TestGetPlan_BadRequests(t *testing.T) {
	s := newTestServer(t)
	token := s.startSession(t)

	p := referencePayload()
	p["goal"] = "get_huge"
	rr := s.do(t, http.MethodPost, "/api/v1/coach/plan", token, p)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Goal")

	p = referencePayload()
	delete(p, "stressLevel")
	rr = s.do(t, http.MethodPost, "/api/v1/coach/plan", token, p)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	p = referencePayload()
	p["fitnessLevel"] = "advanced"
	rr = s.do(t, http.MethodPost, "/api/v1/coach/plan", token, p)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSubmitFeedback_Errors(t *testing.T) {
	s := newTestServer(t)
	token := s.startSession(t)

	rr := s.do(t, http.MethodPost, "/api/v1/coach/feedback", token, map[string]string{"status": "meh"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown feedback code")

	rr = s.do(t, http.MethodPost, "/api/v1/coach/feedback", token, map[string]string{"status": "done"})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestExportPlan_NotConfigured(t *testing.T) {
	s := newTestServer(t)
	token := s.startSession(t)

	rr := s.do(t, http.MethodPost, "/api/v1/coach/plan/export", token, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	token := s.startSession(t)
	rr := s.do(t, http.MethodPost, "/api/v1/coach/plan", token, referencePayload())
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "fitness_test_server_plans_generated")
	assert.Contains(t, body, `goal="fat_loss"`)
	assert.Contains(t, body, "fitness_test_server_request")
}
