package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestIsAllowedMovieExt(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"movie.mp4", true},
		{"movie.MP4", true},
		{"movie.mkv", true},
		{"movie.avi", true},
		{"movie.mov", true},
		{"movie.wmv", true},
		{"movie.exe", false},
		{"movie.mp4.exe", false},
		{"movie", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAllowedMovieExt(tt.filename); got != tt.want {
			t.Errorf("IsAllowedMovieExt(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestIsAllowedPosterExt(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"poster.png", true},
		{"poster.jpg", true},
		{"poster.JPEG", true},
		{"poster.gif", false},
		{"poster", false},
	}
	for _, tt := range tests {
		if got := IsAllowedPosterExt(tt.filename); got != tt.want {
			t.Errorf("IsAllowedPosterExt(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestSaveFileKeepsExtension(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	assetID := uuid.New()

	path, err := store.SaveFile(assetID, strings.NewReader("movie bytes"), "My Movie.MKV")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Ext(path) != ".mkv" {
		t.Errorf("saved as %q, want lowercased .mkv extension", path)
	}
	if filepath.Dir(path) != filepath.Join(store.Root(), assetID.String()) {
		t.Errorf("saved outside the asset directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "movie bytes" {
		t.Errorf("content = %q", data)
	}
}

func TestRenditionPath(t *testing.T) {
	src := filepath.Join("media", "abc", "9f3c.mp4")
	got := RenditionPath(src, "720p")
	want := filepath.Join("media", "abc", "9f3c_720p.mp4")
	if got != want {
		t.Errorf("RenditionPath = %q, want %q", got, want)
	}

	// Non mp4 originals still produce mp4 renditions.
	src = filepath.Join("media", "abc", "9f3c.mkv")
	got = RenditionPath(src, "1080p")
	want = filepath.Join("media", "abc", "9f3c_1080p.mp4")
	if got != want {
		t.Errorf("RenditionPath = %q, want %q", got, want)
	}
}

func TestTempPathUnique(t *testing.T) {
	final := filepath.Join("media", "abc", "9f3c_720p.mp4")
	a := TempPath(final)
	b := TempPath(final)
	if a == b {
		t.Error("TempPath returned the same name twice")
	}
	if !strings.HasPrefix(a, final+".tmp-") {
		t.Errorf("TempPath = %q, want a sibling of %q", a, final)
	}
}

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "out_720p.mp4")

	tmp := TempPath(final)
	if err := os.WriteFile(tmp, []byte("encoded"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Publish(tmp, final); err != nil {
		t.Fatal(err)
	}
	if !Ready(final) {
		t.Fatal("published file not ready")
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Error("temp file still present after publish")
	}
}

func TestPublishRejectsEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "out_720p.mp4")

	tmp := TempPath(final)
	if err := os.WriteFile(tmp, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Publish(tmp, final); err == nil {
		t.Fatal("expected an error publishing an empty file")
	}
	if Ready(final) {
		t.Error("empty file appeared under the final name")
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Error("empty temp file was not cleaned up")
	}
}

func TestPublishMissingTemp(t *testing.T) {
	dir := t.TempDir()
	if err := Publish(filepath.Join(dir, "nope"), filepath.Join(dir, "out.mp4")); err == nil {
		t.Fatal("expected an error for a missing temp file")
	}
}

func TestReady(t *testing.T) {
	dir := t.TempDir()

	if Ready(filepath.Join(dir, "missing.mp4")) {
		t.Error("missing file reported ready")
	}

	empty := filepath.Join(dir, "empty.mp4")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if Ready(empty) {
		t.Error("empty file reported ready")
	}

	if Ready(dir) {
		t.Error("directory reported ready")
	}

	full := filepath.Join(dir, "full.mp4")
	if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !Ready(full) {
		t.Error("non-empty file not reported ready")
	}
}

func TestRemoveAsset(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	assetID := uuid.New()
	if _, err := store.SaveFile(assetID, strings.NewReader("bytes"), "movie.mp4"); err != nil {
		t.Fatal(err)
	}

	if err := store.RemoveAsset(assetID); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), assetID.String())); !os.IsNotExist(err) {
		t.Error("asset directory still present after removal")
	}

	// Removing an asset that never existed is not an error.
	if err := store.RemoveAsset(uuid.New()); err != nil {
		t.Fatal(err)
	}
}
