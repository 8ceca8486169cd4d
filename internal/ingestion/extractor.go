package ingestion

import (
	"fmt"
	"html"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

const (
	// MinExtractedTextLength is the minimum text length for a PDF extraction
	// to count as successful.
	MinExtractedTextLength = 50
)

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// Extractor turns stored resume files into plain text. Extraction is
// best-effort: any failure yields a placeholder naming the source file, never
// an error, so one unreadable upload cannot fail a ranking run.
type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractText extracts plain text from a stored PDF, DOCX, DOC or TXT file.
// declaredName is the original upload filename, used for the placeholder.
func (e *Extractor) ExtractText(path, declaredName string) string {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(declaredName)) {
	case ".txt":
		text, err = extractPlain(path)
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	case ".doc":
		text, err = extractDOC(path)
	default:
		err = fmt.Errorf("unsupported file type: %s", declaredName)
	}

	if err != nil {
		e.logger.Warn("text extraction failed, using placeholder",
			zap.String("file", declaredName), zap.Error(err))
		return Placeholder(declaredName)
	}
	if strings.TrimSpace(text) == "" {
		return Placeholder(declaredName)
	}

	return strings.TrimSpace(text)
}

// Placeholder is the text used when extraction fails. Never empty.
func Placeholder(declaredName string) string {
	return fmt.Sprintf("Resume content from %s", declaredName)
}

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// extractPDF shells out to pdftotext (poppler-utils).
func extractPDF(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed (install poppler-utils): %w", err)
	}

	text := string(output)
	if len(text) < MinExtractedTextLength {
		return "", fmt.Errorf("extracted text too short (%d bytes), likely failed extraction", len(text))
	}
	return text, nil
}

func extractDOCX(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagPattern.ReplaceAllString(content, " ")
	return html.UnescapeString(content), nil
}

// extractDOC shells out to antiword for legacy .doc files.
func extractDOC(path string) (string, error) {
	cmd := exec.Command("antiword", path)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("antiword failed: %w", err)
	}
	return string(output), nil
}
