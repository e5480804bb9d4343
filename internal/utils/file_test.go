package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOutputFilename(t *testing.T) {
	cases := []struct {
		prefix string
		input  string
		want   string
	}{
		{"analyzed", "photo.jpg", "analyzed_photo.jpg"},
		{"analyzed", "/some/dir/Cat.png", "analyzed_Cat.jpg"},
		{"emotion_analyzed", "faces.jpeg", "emotion_analyzed_faces.jpg"},
		{"analyzed", "no_extension", "analyzed_no_extension.jpg"},
	}

	for _, tc := range cases {
		if got := OutputFilename(tc.prefix, tc.input); got != tc.want {
			t.Errorf("OutputFilename(%q, %q) = %q, want %q", tc.prefix, tc.input, got, tc.want)
		}
	}
}

func TestGetFileExtension(t *testing.T) {
	if got := GetFileExtension("photo.JPG"); got != "jpg" {
		t.Errorf("GetFileExtension(photo.JPG) = %q, want jpg", got)
	}
	if got := GetFileExtension("noext"); got != "" {
		t.Errorf("GetFileExtension(noext) = %q, want empty", got)
	}
}

func TestListImagesInDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.png", "c.jpeg", "notes.txt", "clip.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := ListImagesInDir(dir)
	if err != nil {
		t.Fatalf("ListImagesInDir() error: %v", err)
	}

	want := []string{"a.png", "b.jpg", "c.jpeg"}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("ListImagesInDir() = %v, want %v", files, want)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("FileExists() = false for an existing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for a directory")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists() = true for a missing file")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Error("EnsureDir() did not create the directory")
	}
	// Second call is a no-op.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir() on existing dir: %v", err)
	}
}
