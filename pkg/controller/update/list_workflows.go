package update

import (
	"fmt"
	"path/filepath"
)

// ListWorkflows returns the default target files: GitHub Actions workflow
// files and composite action files.
func ListWorkflows() ([]string, error) {
	patterns := []string{
		".github/workflows/*.yml",
		".github/workflows/*.yaml",
		"action.yml",
		"action.yaml",
		"*/action.yml",
		"*/action.yaml",
		"*/*/action.yml",
		"*/*/action.yaml",
		"*/*/*/action.yml",
		"*/*/*/action.yaml",
	}
	files := []string{}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("look for workflow or composite action files using glob %s: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}
