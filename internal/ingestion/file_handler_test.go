package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"RESUME.PDF", true},
		{"resume.docx", true},
		{"resume.doc", true},
		{"resume.txt", true},
		{"resume.exe", false},
		{"resume", false},
		{"", false},
		{"archive.tar.gz", false},
	}
	for _, tt := range tests {
		if got := AllowedFile(tt.filename); got != tt.want {
			t.Errorf("AllowedFile(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestSaveUpload(t *testing.T) {
	fh := NewFileHandler(t.TempDir())

	path, err := fh.SaveUpload("resume.txt", strings.NewReader("hello resume"))
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading stored file: %v", err)
	}
	if string(data) != "hello resume" {
		t.Errorf("stored content = %q, want %q", data, "hello resume")
	}
	if !strings.HasSuffix(filepath.Base(path), "_resume.txt") {
		t.Errorf("stored name = %q, want uuid-prefixed resume.txt", filepath.Base(path))
	}
}

func TestSaveUploadNoCollision(t *testing.T) {
	fh := NewFileHandler(t.TempDir())

	first, err := fh.SaveUpload("resume.txt", strings.NewReader("one"))
	if err != nil {
		t.Fatalf("first SaveUpload: %v", err)
	}
	second, err := fh.SaveUpload("resume.txt", strings.NewReader("two"))
	if err != nil {
		t.Fatalf("second SaveUpload: %v", err)
	}

	if first == second {
		t.Errorf("both uploads stored at %q, want distinct paths", first)
	}
}

func TestClearUploads(t *testing.T) {
	dir := t.TempDir()
	fh := NewFileHandler(dir)

	if _, err := fh.SaveUpload("resume.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if err := fh.ClearUploads(); err != nil {
		t.Fatalf("ClearUploads: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading uploads dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("uploads dir has %d entries after clear, want 0", len(entries))
	}
}
