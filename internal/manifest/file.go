package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadLines reads a manifest file and splits it into lines. A trailing
// newline does not produce a final empty line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// LoadProcLines reads a process manifest. Paths ending in .yml or .yaml are
// parsed as a YAML process mapping and converted to Procfile-form lines so
// that both formats flow through the same validation pipeline.
func LoadProcLines(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read manifest: %w", err)
		}
		return YAMLToProcLines(data)
	default:
		return ReadLines(path)
	}
}
