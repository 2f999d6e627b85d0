package transcode

import (
	"context"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/models"
)

// Tracker records per rendition transcode status. Updates for a single
// quality label are atomic; readers see either the pre or post update
// state for each label, never a torn mix. Cross label snapshots carry no
// ordering guarantee.
type Tracker interface {
	MarkPending(ctx context.Context, movieID uuid.UUID, quality string) error
	MarkRunning(ctx context.Context, movieID uuid.UUID, quality string) error
	MarkCompleted(ctx context.Context, movieID uuid.UUID, quality string) error
	MarkFailed(ctx context.Context, movieID uuid.UUID, quality string, reason string) error
	GetStatus(ctx context.Context, movieID uuid.UUID) (map[string]models.RenditionState, error)
}
