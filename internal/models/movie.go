package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RenditionMap maps a quality label to the rendition file path on disk.
// Stored as JSONB; entries are only ever added, never partially written.
type RenditionMap map[string]string

func (m RenditionMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *RenditionMap) Scan(src interface{}) error {
	if src == nil {
		*m = RenditionMap{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported renditions column type %T", src)
	}
	return json.Unmarshal(data, m)
}

type Movie struct {
	MovieID     uuid.UUID    `json:"id" db:"movie_id" validate:"omitempty"`
	Title       string       `json:"title" db:"title" validate:"required,lte=255"`
	Description string       `json:"description" db:"description" validate:"required"`
	Year        int          `json:"year" db:"year" validate:"required,gte=1888"`
	Genre       string       `json:"genre" db:"genre" validate:"required,lte=100"`
	Duration    int64        `json:"duration" db:"duration" validate:"omitempty"`
	UploaderID  uuid.UUID    `json:"uploader_id" db:"uploader_id" validate:"omitempty"`
	UploadDate  time.Time    `json:"upload_date" db:"upload_date"`
	Views       int64        `json:"views" db:"views"`
	FilePath    string       `json:"-" db:"file_path"`
	PosterPath  string       `json:"-" db:"poster_path"`
	Renditions  RenditionMap `json:"renditions" db:"renditions"`
}

func (m *Movie) PosterURL() string {
	return "/api/posters/" + m.MovieID.String()
}

func (m *Movie) StreamURL() string {
	return "/api/stream/" + m.MovieID.String()
}

// MarshalJSON adds the client-facing poster and stream links. The raw
// disk paths stay hidden; these routes are the only playback surface.
func (m *Movie) MarshalJSON() ([]byte, error) {
	type movieAlias Movie
	return json.Marshal(&struct {
		*movieAlias
		PosterURL string `json:"poster_url"`
		StreamURL string `json:"stream_url"`
	}{
		movieAlias: (*movieAlias)(m),
		PosterURL:  m.PosterURL(),
		StreamURL:  m.StreamURL(),
	})
}

type MovieList struct {
	Movies     []*Movie `json:"movies"`
	TotalCount int      `json:"total_count"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	HasMore    bool     `json:"has_more"`
}

// MovieUploadInput carries the multipart form fields of an upload request.
type MovieUploadInput struct {
	Title       string `form:"title" validate:"required,lte=255"`
	Description string `form:"description" validate:"required"`
	Year        int    `form:"year" validate:"required,gte=1888"`
	Genre       string `form:"genre" validate:"required,lte=100"`
}

// StreamSource is a playable file resolved for a stream request.
type StreamSource struct {
	MovieID uuid.UUID
	Quality string
	Path    string
}
