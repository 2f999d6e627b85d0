package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/media"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/pkg/logger"
)

// RenditionSink receives the results a transcode run produces: completed
// rendition paths and the probed duration. The movies repository
// satisfies it; the indirection keeps this package free of SQL.
type RenditionSink interface {
	AddRendition(ctx context.Context, movieID uuid.UUID, quality, path string) error
}

// Encoder turns one source file into delivery ready renditions, one
// external ffmpeg run per preset.
type Encoder struct {
	ffmpegPath string
	tracker    Tracker
	sink       RenditionSink
	logger     logger.Logger
}

func NewEncoder(ffmpegPath string, tracker Tracker, sink RenditionSink, log logger.Logger) *Encoder {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Encoder{
		ffmpegPath: ffmpegPath,
		tracker:    tracker,
		sink:       sink,
		logger:     log,
	}
}

// Process runs every preset of the job in table order. A preset failure
// is recorded against that label only; the remaining presets still run.
// Re-running a job is safe: finished renditions are detected and
// skipped, and unfinished ones are re-encoded through a temp path and
// atomic rename, so a crash and retry never exposes a half-written file.
func (e *Encoder) Process(ctx context.Context, job models.TranscodeJob) {
	for _, preset := range job.Presets {
		finalPath := media.RenditionPath(job.SourcePath, preset.Label)

		if media.Ready(finalPath) {
			e.logger.Infof("Process - rendition exists, skipping: movie=%s quality=%s path=%s",
				job.MovieID, preset.Label, finalPath)
			e.markCompleted(ctx, job.MovieID, preset.Label, finalPath)
			continue
		}

		if err := e.tracker.MarkRunning(ctx, job.MovieID, preset.Label); err != nil {
			e.logger.Errorf("Process - MarkRunning: movie=%s quality=%s: %v", job.MovieID, preset.Label, err)
		}

		if err := e.encodePreset(ctx, job.SourcePath, finalPath, preset); err != nil {
			e.logger.Errorf("Process - encode failed: movie=%s quality=%s src=%s: %v",
				job.MovieID, preset.Label, job.SourcePath, err)
			if terr := e.tracker.MarkFailed(ctx, job.MovieID, preset.Label, err.Error()); terr != nil {
				e.logger.Errorf("Process - MarkFailed: movie=%s quality=%s: %v", job.MovieID, preset.Label, terr)
			}
			continue
		}

		e.markCompleted(ctx, job.MovieID, preset.Label, finalPath)
		e.logger.Infof("Process - rendition ready: movie=%s quality=%s path=%s",
			job.MovieID, preset.Label, finalPath)
	}
}

func (e *Encoder) markCompleted(ctx context.Context, movieID uuid.UUID, quality, path string) {
	if err := e.tracker.MarkCompleted(ctx, movieID, quality); err != nil {
		e.logger.Errorf("markCompleted - tracker: movie=%s quality=%s: %v", movieID, quality, err)
	}
	if err := e.sink.AddRendition(ctx, movieID, quality, path); err != nil {
		e.logger.Errorf("markCompleted - AddRendition: movie=%s quality=%s: %v", movieID, quality, err)
	}
}

// encodePreset writes to a uniquely named temp sibling and publishes it
// with an atomic rename once the encoder exits cleanly.
func (e *Encoder) encodePreset(ctx context.Context, sourcePath, finalPath string, preset models.QualityPreset) error {
	tmpPath := media.TempPath(finalPath)

	cmd := exec.CommandContext(ctx, e.ffmpegPath, buildEncodeArgs(sourcePath, tmpPath, preset)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("ffmpeg %s: %v: %s", preset.Label, err, lastLine(stderr.String()))
	}

	return media.Publish(tmpPath, finalPath)
}

func buildEncodeArgs(sourcePath, outputPath string, preset models.QualityPreset) []string {
	return []string{
		"-i", sourcePath,
		"-vf", fmt.Sprintf("scale=%s", strings.Replace(preset.Resolution, "x", ":", 1)),
		"-b:v", fmt.Sprintf("%dk", preset.Bitrate),
		"-c:v", "libx264",
		"-c:a", "aac",
		"-strict", "experimental",
		"-y", outputPath,
	}
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
