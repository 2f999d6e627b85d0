package models

import (
	"time"

	"github.com/google/uuid"
)

type RenditionStatus string

const (
	RenditionPending   RenditionStatus = "pending"
	RenditionRunning   RenditionStatus = "running"
	RenditionCompleted RenditionStatus = "completed"
	RenditionFailed    RenditionStatus = "failed"
)

// RenditionState is the tracked status of one quality label of one asset.
type RenditionState struct {
	Status    RenditionStatus `json:"status" redis:"status"`
	Reason    string          `json:"reason,omitempty" redis:"reason"`
	UpdatedAt time.Time       `json:"updated_at" redis:"updated_at"`
}

// QualityPreset is one entry of the immutable preset table.
type QualityPreset struct {
	Label      string `json:"label"`
	Resolution string `json:"resolution"`
	Bitrate    int    `json:"bitrate"`
}

// TranscodeJob is one fire-and-forget unit of work submitted to the
// pool. Renditions are written next to the source file.
type TranscodeJob struct {
	MovieID    uuid.UUID
	SourcePath string
	Presets    []QualityPreset
}
