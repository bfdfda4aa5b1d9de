package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	path := writeFile(t, "Procfile", "web: bin/server\nworker: bin/worker\n")

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if lines[0] != "web: bin/server" || lines[1] != "worker: bin/worker" {
		t.Errorf("lines = %v", lines)
	}
}

func TestReadLines_EmptyFile(t *testing.T) {
	path := writeFile(t, "Procfile", "")

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("got %d lines, want 0", len(lines))
	}
}

func TestReadLines_Missing(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFileExists(t *testing.T) {
	path := writeFile(t, "Procfile", "web: run\n")

	if !FileExists(path) {
		t.Error("FileExists = false for existing file")
	}
	if FileExists(filepath.Join(t.TempDir(), "nope")) {
		t.Error("FileExists = true for missing file")
	}
	if FileExists(filepath.Dir(path)) {
		t.Error("FileExists = true for directory")
	}
}

func TestLoadProcLines_DispatchesOnExtension(t *testing.T) {
	yamlPath := writeFile(t, "procs.yml", "web: bin/server\n")
	lines, err := LoadProcLines(yamlPath)
	if err != nil {
		t.Fatalf("LoadProcLines: %v", err)
	}
	if len(lines) != 1 || lines[0] != "web:bin/server" {
		t.Errorf("lines = %v", lines)
	}

	plainPath := writeFile(t, "Procfile", "web: bin/server\n")
	lines, err = LoadProcLines(plainPath)
	if err != nil {
		t.Fatalf("LoadProcLines: %v", err)
	}
	if len(lines) != 1 || lines[0] != "web: bin/server" {
		t.Errorf("lines = %v", lines)
	}
}
