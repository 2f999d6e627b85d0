package transcode

import "github.com/streamflix/streamflix-server/internal/models"

// QualityPresets is the process wide preset table. It is loaded once and
// never mutated, so workers share it by reference without locking. Order
// matters: presets are encoded highest first and the tracker progression
// follows this order.
var QualityPresets = []models.QualityPreset{
	{Label: "2160p", Resolution: "3840x2160", Bitrate: 20000},
	{Label: "1440p", Resolution: "2560x1440", Bitrate: 12000},
	{Label: "1080p", Resolution: "1920x1080", Bitrate: 8000},
	{Label: "720p", Resolution: "1280x720", Bitrate: 5000},
	{Label: "480p", Resolution: "854x480", Bitrate: 2500},
}
