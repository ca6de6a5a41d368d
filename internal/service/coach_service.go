package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"sync"
	"time"

	"alcyxob/fitness-coach/internal/coach"
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/repository"
	"alcyxob/fitness-coach/internal/storage"
	"alcyxob/fitness-coach/internal/tracker"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound   = errors.New("coach session not found")
	ErrNoActivePlan      = errors.New("no plan has been requested in this session")
	ErrExportUnavailable = errors.New("plan export is not available")
	ErrExportFailed      = errors.New("failed to export plan")
)

const healthCardContentType = "application/json"

// FeedbackResult is returned for every accepted feedback event.
type FeedbackResult struct {
	Status   domain.FeedbackCode      `json:"status"`
	Message  string                   `json:"message"`
	Recorded *domain.CompletionRecord `json:"recorded,omitempty"`
}

// ExportResult points at an exported health card.
type ExportResult struct {
	DownloadURL string `json:"downloadUrl"`
	ObjectKey   string `json:"objectKey"`
}

type CoachService interface {
	OpenSession(ctx context.Context) (string, error)

	GetPlan(ctx context.Context, sessionID string, payload domain.PreferencePayload) (*domain.Plan, error)
	SwapPlan(ctx context.Context, sessionID string) (*domain.Plan, error)
	SubmitFeedback(ctx context.Context, sessionID string, code domain.FeedbackCode) (*FeedbackResult, error)
	GetHistory(ctx context.Context, sessionID string) ([]domain.CompletionRecord, error)
	ExportPlan(ctx context.Context, sessionID string) (*ExportResult, error)

	// PruneIdleSessions drops sessions idle for longer than the session TTL
	// and returns how many are left.
	PruneIdleSessions(ctx context.Context) int
}

// coachSession replaces the coach panel's component state: the last payload,
// the plan on display and the completion log.
type coachSession struct {
	mu       sync.Mutex
	payload  *domain.PreferencePayload
	plan     *domain.Plan
	tracker  *tracker.Tracker
	lastSeen time.Time
}

type coachService struct {
	selector       *coach.Selector
	completionRepo repository.CompletionRepository // optional
	fileStorage    storage.FileStorage             // optional
	metrics        *metrics.Manager                // optional
	clock          coach.Clock
	sessionTTL     time.Duration

	mu       sync.RWMutex
	sessions map[string]*coachSession
}

type CoachServiceOption func(*coachService)

func WithCompletionRepository(repo repository.CompletionRepository) CoachServiceOption {
	return func(s *coachService) { s.completionRepo = repo }
}

func WithFileStorage(fs storage.FileStorage) CoachServiceOption {
	return func(s *coachService) { s.fileStorage = fs }
}

func WithMetrics(m *metrics.Manager) CoachServiceOption {
	return func(s *coachService) { s.metrics = m }
}

func WithClock(c coach.Clock) CoachServiceOption {
	return func(s *coachService) { s.clock = c }
}

// WithSessionTTL drops sessions idle for longer than ttl. Zero keeps them forever.
func WithSessionTTL(ttl time.Duration) CoachServiceOption {
	return func(s *coachService) { s.sessionTTL = ttl }
}

// NewCoachService creates a new instance of coachService.
func NewCoachService(selector *coach.Selector, opts ...CoachServiceOption) CoachService {
	if selector == nil {
		panic("coach selector cannot be nil")
	}
	s := &coachService{
		selector: selector,
		clock:    coach.SystemClock{},
		sessions: make(map[string]*coachSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenSession registers a fresh, empty coach session and returns its id.
func (s *coachService) OpenSession(ctx context.Context) (string, error) {
	id := uuid.NewString()
	now := s.clock.Now()

	s.mu.Lock()
	s.pruneLocked(now)
	s.sessions[id] = &coachSession{tracker: tracker.New(s.clock), lastSeen: now}
	count := len(s.sessions)
	s.mu.Unlock()

	s.setActiveSessions(count)
	log.WithField("session", id).Debug("coach session opened")
	return id, nil
}

func (s *coachService) PruneIdleSessions(ctx context.Context) int {
	s.mu.Lock()
	before := len(s.sessions)
	s.pruneLocked(s.clock.Now())
	count := len(s.sessions)
	s.mu.Unlock()

	s.setActiveSessions(count)
	if dropped := before - count; dropped > 0 {
		log.WithField("dropped", dropped).Debug("idle coach sessions pruned")
	}
	return count
}

func (s *coachService) pruneLocked(now time.Time) {
	if s.sessionTTL <= 0 {
		return
	}
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := s.idle(sess, now)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
		}
	}
}

// idle reports whether sess has expired. The caller holds sess.mu.
func (s *coachService) idle(sess *coachSession, now time.Time) bool {
	return s.sessionTTL > 0 && now.Sub(sess.lastSeen) > s.sessionTTL
}

func (s *coachService) setActiveSessions(count int) {
	if s.metrics != nil {
		s.metrics.GaugeActiveSessions.Set(float64(count))
	}
}

// session looks up id and marks it as seen. An expired session is dropped
// and reported as not found. The caller must not hold sess.mu.
func (s *coachService) session(id string) (*coachSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := s.clock.Now()
	sess.mu.Lock()
	expired := s.idle(sess, now)
	if !expired {
		sess.lastSeen = now
	}
	sess.mu.Unlock()

	if expired {
		s.mu.Lock()
		if s.sessions[id] == sess {
			delete(s.sessions, id)
		}
		count := len(s.sessions)
		s.mu.Unlock()
		s.setActiveSessions(count)
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// GetPlan validates payload, selects a plan and makes it the displayed plan.
func (s *coachService) GetPlan(ctx context.Context, sessionID string, payload domain.PreferencePayload) (*domain.Plan, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	plan := s.selectAndCount(payload, false)

	sess.mu.Lock()
	sess.payload = &payload
	sess.plan = &plan
	sess.mu.Unlock()

	return &plan, nil
}

// SwapPlan re-runs selection on the payload the session last submitted.
func (s *coachService) SwapPlan(ctx context.Context, sessionID string) (*domain.Plan, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.payload == nil {
		return nil, ErrNoActivePlan
	}

	plan := s.selectAndCount(*sess.payload, true)
	sess.plan = &plan
	return &plan, nil
}

func (s *coachService) selectAndCount(payload domain.PreferencePayload, swap bool) domain.Plan {
	var sel coach.Selection
	if swap {
		sel = s.selector.Swap(payload)
	} else {
		sel = s.selector.Select(payload)
	}

	if s.metrics != nil {
		s.metrics.CounterPlansGenerated.WithLabelValues(string(payload.Goal), strconv.FormatBool(!sel.Exact)).Inc()
	}
	log.WithFields(log.Fields{
		"goal":     payload.Goal,
		"workout":  sel.Plan.Workout.Name,
		"fallback": !sel.Exact,
		"swap":     swap,
	}).Debug("plan selected")
	return sel.Plan
}

// SubmitFeedback classifies code; "done" appends one completion record.
func (s *coachService) SubmitFeedback(ctx context.Context, sessionID string, code domain.FeedbackCode) (*FeedbackResult, error) {
	outcome, err := coach.ClassifyFeedback(code)
	if err != nil {
		log.WithField("session", sessionID).Errorf("feedback rejected: %v", err)
		return nil, err
	}
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	result := &FeedbackResult{Status: outcome.Code, Message: outcome.Message}
	if !outcome.RecordsCompletion {
		s.countFeedback(outcome.Code)
		return result, nil
	}

	sess.mu.Lock()
	if sess.plan == nil || sess.payload == nil {
		sess.mu.Unlock()
		return nil, ErrNoActivePlan
	}
	rec := sess.tracker.RecordCompletion(*sess.plan, sess.payload.TimePerDayMinutes, sess.payload.Goal)
	sess.mu.Unlock()

	rec.SessionID = sessionID
	result.Recorded = &rec
	s.countFeedback(outcome.Code)
	if s.metrics != nil {
		s.metrics.CounterCompletions.Inc()
	}
	s.forwardCompletion(ctx, rec)
	return result, nil
}

func (s *coachService) countFeedback(code domain.FeedbackCode) {
	if s.metrics != nil {
		s.metrics.CounterFeedback.WithLabelValues(string(code)).Inc()
	}
}

// forwardCompletion hands rec to the persistence collaborator, if any.
// Failures are logged; the in-memory history already holds the record.
func (s *coachService) forwardCompletion(ctx context.Context, rec domain.CompletionRecord) {
	if s.completionRepo == nil {
		return
	}
	if err := s.completionRepo.Create(ctx, &rec); err != nil {
		log.WithFields(log.Fields{
			"session": rec.SessionID,
			"workout": rec.WorkoutName,
		}).Errorf("persist completion: %v", err)
	}
}

// GetHistory returns the session's completions, newest first. Once a session
// has been pruned from memory its persisted records are served instead, if a
// completion repository is configured.
func (s *coachService) GetHistory(ctx context.Context, sessionID string) ([]domain.CompletionRecord, error) {
	sess, err := s.session(sessionID)
	if errors.Is(err, ErrSessionNotFound) && s.completionRepo != nil {
		return s.persistedHistory(ctx, sessionID)
	}
	if err != nil {
		return nil, err
	}
	return sess.tracker.History(), nil
}

func (s *coachService) persistedHistory(ctx context.Context, sessionID string) ([]domain.CompletionRecord, error) {
	records, err := s.completionRepo.GetBySessionID(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		log.WithField("session", sessionID).Errorf("load persisted history: %v", err)
		return nil, fmt.Errorf("load history: %w", err)
	}
	log.WithFields(log.Fields{
		"session": sessionID,
		"records": len(records),
	}).Debug("history served from completion repository")
	return records, nil
}

// ExportPlan stores the displayed plan as a JSON health card and returns a
// presigned download URL for it.
func (s *coachService) ExportPlan(ctx context.Context, sessionID string) (*ExportResult, error) {
	if s.fileStorage == nil {
		return nil, ErrExportUnavailable
	}
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	if sess.plan == nil {
		sess.mu.Unlock()
		return nil, ErrNoActivePlan
	}
	plan := *sess.plan
	sess.mu.Unlock()

	body, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	objectKey := path.Join("health-cards", sessionID, fmt.Sprintf("%s-%s.json", plan.Date, plan.Workout.ID))
	if err := s.fileStorage.PutObject(ctx, objectKey, healthCardContentType, body); err != nil {
		log.WithField("key", objectKey).Errorf("upload health card: %v", err)
		return nil, ErrExportFailed
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		log.WithField("key", objectKey).Errorf("presign health card: %v", err)
		if delErr := s.fileStorage.DeleteObject(ctx, objectKey); delErr != nil {
			log.WithField("key", objectKey).Warnf("cleanup health card: %v", delErr)
		}
		return nil, ErrExportFailed
	}

	return &ExportResult{DownloadURL: url, ObjectKey: objectKey}, nil
}
