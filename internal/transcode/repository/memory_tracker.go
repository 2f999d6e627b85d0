package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/transcode"
)

// memoryTracker is the in-process tracker used when Redis is not
// configured and by tests. One mutex guards the whole table; each
// label's state is replaced wholesale under it.
type memoryTracker struct {
	mu     sync.RWMutex
	states map[uuid.UUID]map[string]models.RenditionState
}

func NewMemoryTracker() transcode.Tracker {
	return &memoryTracker{
		states: make(map[uuid.UUID]map[string]models.RenditionState),
	}
}

func (t *memoryTracker) set(movieID uuid.UUID, quality string, state models.RenditionState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	labels, ok := t.states[movieID]
	if !ok {
		labels = make(map[string]models.RenditionState)
		t.states[movieID] = labels
	}
	labels[quality] = state
}

func (t *memoryTracker) MarkPending(ctx context.Context, movieID uuid.UUID, quality string) error {
	t.set(movieID, quality, models.RenditionState{
		Status:    models.RenditionPending,
		UpdatedAt: time.Now(),
	})
	return nil
}

func (t *memoryTracker) MarkRunning(ctx context.Context, movieID uuid.UUID, quality string) error {
	t.set(movieID, quality, models.RenditionState{
		Status:    models.RenditionRunning,
		UpdatedAt: time.Now(),
	})
	return nil
}

func (t *memoryTracker) MarkCompleted(ctx context.Context, movieID uuid.UUID, quality string) error {
	t.set(movieID, quality, models.RenditionState{
		Status:    models.RenditionCompleted,
		UpdatedAt: time.Now(),
	})
	return nil
}

func (t *memoryTracker) MarkFailed(ctx context.Context, movieID uuid.UUID, quality string, reason string) error {
	t.set(movieID, quality, models.RenditionState{
		Status:    models.RenditionFailed,
		Reason:    reason,
		UpdatedAt: time.Now(),
	})
	return nil
}

func (t *memoryTracker) GetStatus(ctx context.Context, movieID uuid.UUID) (map[string]models.RenditionState, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	labels := t.states[movieID]
	out := make(map[string]models.RenditionState, len(labels))
	for quality, state := range labels {
		out[quality] = state
	}
	return out, nil
}
