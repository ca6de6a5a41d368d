package repository

import (
	"context"

	"alcyxob/fitness-coach/internal/domain"
)

var (
	ErrNotFound     = RepositoryError("not found")
	ErrInsertFailed = RepositoryError("insert failed")
)

// RepositoryError distinguishes repository errors from others.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// CompletionRepository is the external collaborator that keeps completion
// records beyond the life of the process. The in-memory tracker is the
// source of truth while a session is live; the repository serves history
// for sessions that have been pruned.
type CompletionRepository interface {
	Create(ctx context.Context, rec *domain.CompletionRecord) error
	GetBySessionID(ctx context.Context, sessionID string) ([]domain.CompletionRecord, error)
}
