// Package source turns legal documents on disk into Article records.
//
// Each format handler implements Source; the Loader walks a directory,
// dispatches files to the first handler that claims them, and skips
// unreadable files with a logged warning. No failure here ever reaches
// the synthesis core: the worst case is an empty article list.
package source

import (
	"strings"

	"github.com/553059210/Exam-gen/internal/model"
)

// Source parses one document format into articles
type Source interface {
	// Name returns the handler name
	Name() string

	// CanHandle reports whether this handler accepts the file
	CanHandle(path string) bool

	// Parse extracts articles from the file
	Parse(path string) ([]model.Article, error)
}

// hasExt reports whether path ends in one of the extensions (lowercase,
// with dot)
func hasExt(path string, exts ...string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
