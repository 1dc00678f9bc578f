package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/553059210/Exam-gen/internal/model"
)

// TextSource parses plain-text and markdown law documents, one
// paragraph per non-empty line.
type TextSource struct{}

// NewTextSource creates a plain-text handler
func NewTextSource() *TextSource {
	return &TextSource{}
}

// Name returns the handler name
func (s *TextSource) Name() string {
	return "text"
}

// CanHandle reports whether the file is a plain-text document
func (s *TextSource) CanHandle(path string) bool {
	return hasExt(path, ".txt", ".md")
}

// Parse extracts articles from one text file
func (s *TextSource) Parse(path string) ([]model.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}

	var paragraphs []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}

	return SegmentArticles(filepath.Base(path), paragraphs), nil
}
