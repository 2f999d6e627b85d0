package transcode

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"

	"github.com/streamflix/streamflix-server/pkg/logger"
)

// Prober extracts media duration with an external ffprobe invocation.
type Prober struct {
	ffprobePath string
	logger      logger.Logger
}

func NewProber(ffprobePath string, log logger.Logger) *Prober {
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Prober{
		ffprobePath: ffprobePath,
		logger:      log,
	}
}

type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe returns the media duration in whole seconds, or 0 when the
// duration cannot be determined. Duration is advisory metadata only, so
// tool failures are logged and swallowed rather than returned.
func (p *Prober) Probe(ctx context.Context, sourcePath string) int64 {
	cmd := exec.CommandContext(ctx, p.ffprobePath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		sourcePath,
	)
	output, err := cmd.Output()
	if err != nil {
		p.logger.Warnf("Probe - ffprobe failed for %s: %v", sourcePath, err)
		return 0
	}
	duration, err := parseProbeDuration(output)
	if err != nil {
		p.logger.Warnf("Probe - unparsable ffprobe output for %s: %v", sourcePath, err)
		return 0
	}
	return duration
}

func parseProbeDuration(output []byte) (int64, error) {
	var probed ffprobeOutput
	if err := json.Unmarshal(output, &probed); err != nil {
		return 0, err
	}
	seconds, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return 0, err
	}
	if seconds < 0 {
		return 0, nil
	}
	return int64(seconds), nil
}
