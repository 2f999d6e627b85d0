package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/streamflix/streamflix-server/internal/movies"
)

// rangePattern is the restricted subset of the Range grammar needed for
// player seek support: bytes=<start>-<end> with either side optional.
// Anything else is treated as if no Range header was sent, matching the
// permissive behavior seek-capable players rely on.
var rangePattern = regexp.MustCompile(`^bytes=(\d*)-(\d*)$`)

type byteRange struct {
	start  int64
	end    int64
	length int64
}

var errUnsatisfiableRange = errors.New("unsatisfiable range")

// parseRange interprets a Range header against a file of the given size.
// The second return is false when the header is malformed and the caller
// should fall back to a full response. A syntactically valid range that
// starts at or beyond the end of the file is an error, not a fallback.
func parseRange(header string, size int64) (*byteRange, bool, error) {
	match := rangePattern.FindStringSubmatch(header)
	if match == nil {
		return nil, false, nil
	}
	startStr, endStr := match[1], match[2]
	if startStr == "" && endStr == "" {
		return nil, false, nil
	}

	var start int64
	if startStr != "" {
		v, err := strconv.ParseInt(startStr, 10, 64)
		if err != nil {
			return nil, false, nil
		}
		start = v
	}

	end := size - 1
	if endStr != "" {
		v, err := strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return nil, false, nil
		}
		end = v
	}
	if end > size-1 {
		end = size - 1
	}

	length := end - start + 1
	if length <= 0 || start >= size {
		return nil, true, errUnsatisfiableRange
	}
	return &byteRange{start: start, end: end, length: length}, true, nil
}

// StreamMovie serves the original or a completed rendition with HTTP
// Range semantics: 200 for full body, 206 for partial, 400 for an
// unsatisfiable range, 404 when either the record or the bytes are
// missing. The file is opened and positioned before any header is
// committed so an unreadable file surfaces as a clean error status.
func (h *movieHandler) StreamMovie() echo.HandlerFunc {
	return func(c echo.Context) error {
		movieID, err := parseMovieID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid movie id"})
		}

		source, err := h.movieUC.GetStreamSource(c.Request().Context(), movieID, c.QueryParam("quality"))
		if err != nil {
			if errors.Is(err, movies.ErrMovieNotFound) {
				h.logger.Warnf("StreamMovie - unknown movie id: %s", movieID)
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Movie not found"})
			}
			h.logger.Errorf("StreamMovie - resolve source: movie=%s: %v", movieID, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error streaming video"})
		}

		info, err := os.Stat(source.Path)
		if err != nil {
			if os.IsNotExist(err) {
				h.logger.Errorf("StreamMovie - file missing on disk: movie=%s path=%s quality=%s",
					movieID, source.Path, source.Quality)
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Video file not found"})
			}
			h.logger.Errorf("StreamMovie - stat: movie=%s path=%s: %v", movieID, source.Path, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error streaming video"})
		}
		size := info.Size()

		file, err := os.Open(source.Path)
		if err != nil {
			h.logger.Errorf("StreamMovie - open: movie=%s path=%s: %v", movieID, source.Path, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error streaming video"})
		}
		defer file.Close()

		resp := c.Response()
		resp.Header().Set("Accept-Ranges", "bytes")
		resp.Header().Set(echo.HeaderContentType, "video/mp4")

		rng, matched, err := parseRange(c.Request().Header.Get("Range"), size)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Requested range not satisfiable"})
		}
		if !matched {
			resp.Header().Set(echo.HeaderContentLength, strconv.FormatInt(size, 10))
			resp.WriteHeader(http.StatusOK)
			if _, err := io.Copy(resp, file); err != nil {
				h.logger.Errorf("StreamMovie - full copy: movie=%s path=%s: %v", movieID, source.Path, err)
			}
			return nil
		}

		if _, err := file.Seek(rng.start, io.SeekStart); err != nil {
			h.logger.Errorf("StreamMovie - seek: movie=%s path=%s offset=%d: %v", movieID, source.Path, rng.start, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error streaming video"})
		}

		resp.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", rng.start, rng.end, size))
		resp.Header().Set(echo.HeaderContentLength, strconv.FormatInt(rng.length, 10))
		resp.WriteHeader(http.StatusPartialContent)
		if _, err := io.CopyN(resp, file, rng.length); err != nil {
			h.logger.Errorf("StreamMovie - range copy: movie=%s path=%s range=%d-%d: %v",
				movieID, source.Path, rng.start, rng.end, err)
		}
		return nil
	}
}
