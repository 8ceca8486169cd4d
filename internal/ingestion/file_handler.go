package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions are the upload types the extractor understands.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// AllowedFile reports whether the filename has a supported extension.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// FileHandler persists uploaded resumes to the uploads directory.
type FileHandler struct {
	uploadsDir string
}

func NewFileHandler(uploadsDir string) *FileHandler {
	return &FileHandler{uploadsDir: uploadsDir}
}

// SaveUpload writes an uploaded file under a uuid-prefixed name so duplicate
// filenames never collide on disk, and returns the stored path.
func (fh *FileHandler) SaveUpload(filename string, content io.Reader) (string, error) {
	if err := os.MkdirAll(fh.uploadsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	stored := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(fh.uploadsDir, stored)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// ClearUploads removes all stored uploads.
func (fh *FileHandler) ClearUploads() error {
	if err := os.RemoveAll(fh.uploadsDir); err != nil {
		return fmt.Errorf("failed to clear uploads directory: %w", err)
	}
	return os.MkdirAll(fh.uploadsDir, 0755)
}
