package util

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteJSONFile writes v as indented JSON, creating parent directories.
func WriteJSONFile(path string, v any, perm os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, perm)
}
