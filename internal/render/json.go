package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/553059210/Exam-gen/internal/model"
)

// JSONRenderer writes the raw exam (questions and answer keys) as
// machine-readable JSON alongside the typeset papers.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSON renderer
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Write marshals the exam to path with indentation
func (r *JSONRenderer) Write(exam *model.Exam, path string) error {
	data, err := json.MarshalIndent(exam, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal exam: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write exam json: %w", err)
	}
	return nil
}
