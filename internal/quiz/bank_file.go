package quiz

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a question bank from a JSON or YAML file (decided by
// extension) and validates it. The bank is loaded once at startup and
// treated as immutable afterwards.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	var questions []Question
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &questions); err != nil {
			return nil, fmt.Errorf("parse question bank %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &questions); err != nil {
			return nil, fmt.Errorf("parse question bank %s: %w", path, err)
		}
	}
	if err := Validate(questions); err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return questions, nil
}
