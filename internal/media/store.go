package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var allowedMovieExt = map[string]bool{
	".mp4": true,
	".mkv": true,
	".avi": true,
	".mov": true,
	".wmv": true,
}

var allowedPosterExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Store owns the on-disk bytes of originals and renditions. Every asset
// lives in its own directory under the root; database records hold paths
// into the store, never content.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "media.NewStore.MkdirAll")
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

func IsAllowedMovieExt(filename string) bool {
	return allowedMovieExt[strings.ToLower(filepath.Ext(filename))]
}

func IsAllowedPosterExt(filename string) bool {
	return allowedPosterExt[strings.ToLower(filepath.Ext(filename))]
}

// AssetDir creates (if needed) and returns the directory for one asset.
func (s *Store) AssetDir(assetID uuid.UUID) (string, error) {
	dir := filepath.Join(s.root, assetID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "media.Store.AssetDir.MkdirAll")
	}
	return dir, nil
}

// SaveFile streams an uploaded file into the asset directory under a
// fresh uuid name, keeping the original extension.
func (s *Store) SaveFile(assetID uuid.UUID, src io.Reader, originalName string) (string, error) {
	dir, err := s.AssetDir(assetID)
	if err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	dst := filepath.Join(dir, uuid.New().String()+ext)

	out, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrap(err, "media.Store.SaveFile.Create")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", errors.Wrap(err, "media.Store.SaveFile.Copy")
	}
	return dst, nil
}

// RenditionPath derives the rendition file name for a source file and a
// quality label: <basename>_<quality>.mp4 in the source's directory.
func RenditionPath(sourcePath, quality string) string {
	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	return filepath.Join(filepath.Dir(sourcePath), fmt.Sprintf("%s_%s.mp4", base, quality))
}

// TempPath returns a uniquely named sibling of finalPath. Writers encode
// into the temp path and Publish it, so a crashed run never leaves a
// half-written file under the final name.
func TempPath(finalPath string) string {
	return finalPath + ".tmp-" + uuid.New().String()
}

// Publish makes tmpPath visible under finalPath with an atomic rename.
// An empty output is treated as a failed encode and discarded.
func Publish(tmpPath, finalPath string) error {
	info, err := os.Stat(tmpPath)
	if err != nil {
		return errors.Wrap(err, "media.Publish.Stat")
	}
	if info.Size() == 0 {
		os.Remove(tmpPath)
		return errors.Errorf("media.Publish: empty output %s", tmpPath)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "media.Publish.Rename")
	}
	return nil
}

// Ready reports whether path exists as a complete, non-empty file.
func Ready(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

// RemoveAsset deletes an asset directory and everything in it.
func (s *Store) RemoveAsset(assetID uuid.UUID) error {
	dir := filepath.Join(s.root, assetID.String())
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrap(err, "media.Store.RemoveAsset")
	}
	return nil
}
