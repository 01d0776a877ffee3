package config

import (
	"fmt"
	"os"

	"homework_status_bot/internal/domain/homework"

	"gopkg.in/yaml.v3"
)

// verdictsFile is the YAML layout of VERDICTS_FILE:
//
//	verdicts:
//	  approved: "..."
//	  reviewing: "..."
//	  rejected: "..."
type verdictsFile struct {
	Verdicts map[string]string `yaml:"verdicts"`
}

// LoadVerdicts reads verdict texts from a YAML file. Statuses absent from the
// file keep their default text; unknown statuses are rejected.
func LoadVerdicts(path string) (homework.Verdicts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read verdicts file: %w", err)
	}
	return parseVerdicts(data)
}

func parseVerdicts(data []byte) (homework.Verdicts, error) {
	var file verdictsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse verdicts file: %w", err)
	}

	verdicts := homework.DefaultVerdicts()
	for key, text := range file.Verdicts {
		status := homework.Status(key)
		if !status.IsKnown() {
			return nil, fmt.Errorf("verdicts file: unknown status %q", key)
		}
		if text == "" {
			return nil, fmt.Errorf("verdicts file: empty text for status %q", key)
		}
		verdicts[status] = text
	}
	return verdicts, nil
}
