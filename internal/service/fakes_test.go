package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
)

type fakeCompletionRepo struct {
	mu      sync.Mutex
	records []domain.CompletionRecord
	err     error
	getErr  error
}

func (r *fakeCompletionRepo) Create(_ context.Context, rec *domain.CompletionRecord) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *rec)
	return nil
}

func (r *fakeCompletionRepo) GetBySessionID(_ context.Context, sessionID string) ([]domain.CompletionRecord, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.CompletionRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].SessionID == sessionID {
			out = append(out, r.records[i])
		}
	}
	if len(out) == 0 {
		return nil, repository.ErrNotFound
	}
	return out, nil
}

type fakeStorage struct {
	objects    map[string][]byte
	putErr     error
	presignErr error
	deleted    []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) PutObject(_ context.Context, key, _ string, body []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.objects[key] = body
	return nil
}

func (f *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	if _, ok := f.objects[key]; !ok {
		return "", errors.New("no such key")
	}
	return "https://cards.example.com/" + key + "?sig=abc", nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, key string) error {
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}
