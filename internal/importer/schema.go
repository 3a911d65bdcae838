package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for subject import: one
// subject and its tasks in a single file.
type ImportSchema struct {
	Subject SubjectImport `json:"subject"`
	Tasks   []TaskImport  `json:"tasks"`
}

// SubjectImport defines the subject-level fields in the import file.
type SubjectImport struct {
	Name     string `json:"name"`
	Deadline string `json:"deadline"`
}

// TaskImport defines one study task in the import file. EstimatedMin is
// optional; when absent the estimator derives a duration from history.
type TaskImport struct {
	Description  string `json:"description"`
	Unit         string `json:"unit"`
	Amount       int    `json:"amount"`
	EstimatedMin *int   `json:"estimated_min,omitempty"`
}

// LoadFile reads and parses an import file from disk.
func LoadFile(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
