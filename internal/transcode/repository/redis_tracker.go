package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/internal/transcode"
)

const defaultStatusPrefix = "transcode:status:"

// redisTracker keeps one hash per asset with one field per quality
// label. HSet replaces a whole field at once, which gives the per label
// atomicity the tracker contract requires.
type redisTracker struct {
	redisClient *redis.Client
	prefix      string
}

func NewRedisTracker(redisClient *redis.Client, prefix string) transcode.Tracker {
	if prefix == "" {
		prefix = defaultStatusPrefix
	}
	return &redisTracker{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (t *redisTracker) key(movieID uuid.UUID) string {
	return t.prefix + movieID.String()
}

func (t *redisTracker) set(ctx context.Context, movieID uuid.UUID, quality string, state models.RenditionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "redisTracker.set.Marshal")
	}
	if err := t.redisClient.HSet(ctx, t.key(movieID), quality, string(data)).Err(); err != nil {
		return errors.Wrap(err, "redisTracker.set.HSet")
	}
	return nil
}

func (t *redisTracker) MarkPending(ctx context.Context, movieID uuid.UUID, quality string) error {
	return t.set(ctx, movieID, quality, models.RenditionState{
		Status:    models.RenditionPending,
		UpdatedAt: time.Now(),
	})
}

func (t *redisTracker) MarkRunning(ctx context.Context, movieID uuid.UUID, quality string) error {
	return t.set(ctx, movieID, quality, models.RenditionState{
		Status:    models.RenditionRunning,
		UpdatedAt: time.Now(),
	})
}

func (t *redisTracker) MarkCompleted(ctx context.Context, movieID uuid.UUID, quality string) error {
	return t.set(ctx, movieID, quality, models.RenditionState{
		Status:    models.RenditionCompleted,
		UpdatedAt: time.Now(),
	})
}

func (t *redisTracker) MarkFailed(ctx context.Context, movieID uuid.UUID, quality string, reason string) error {
	return t.set(ctx, movieID, quality, models.RenditionState{
		Status:    models.RenditionFailed,
		Reason:    reason,
		UpdatedAt: time.Now(),
	})
}

func (t *redisTracker) GetStatus(ctx context.Context, movieID uuid.UUID) (map[string]models.RenditionState, error) {
	fields, err := t.redisClient.HGetAll(ctx, t.key(movieID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redisTracker.GetStatus.HGetAll")
	}
	states := make(map[string]models.RenditionState, len(fields))
	for quality, raw := range fields {
		var state models.RenditionState
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			return nil, errors.Wrapf(err, "redisTracker.GetStatus.Unmarshal %s/%s", movieID, quality)
		}
		states[quality] = state
	}
	return states, nil
}
