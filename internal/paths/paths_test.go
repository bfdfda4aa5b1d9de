package paths

import (
	"path/filepath"
	"testing"
)

func TestBaseDir_HonorsOverride(t *testing.T) {
	t.Setenv(EnvForerunDir, "/tmp/forerun-test")

	dir, err := BaseDir()
	if err != nil {
		t.Fatalf("BaseDir: %v", err)
	}
	if dir != "/tmp/forerun-test" {
		t.Errorf("BaseDir() = %q, want /tmp/forerun-test", dir)
	}
}

func TestConfigPath_DerivesFromOverride(t *testing.T) {
	t.Setenv(EnvForerunDir, "/tmp/forerun-test")

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	want := filepath.Join("/tmp/forerun-test", "config", "config.toml")
	if path != want {
		t.Errorf("ConfigPath() = %q, want %q", path, want)
	}
}

func TestLogPath_Precedence(t *testing.T) {
	t.Setenv(EnvForerunDir, "/tmp/forerun-test")
	t.Setenv(EnvLogPath, "/tmp/explicit.log")

	if got := LogPath(); got != "/tmp/explicit.log" {
		t.Errorf("LogPath() = %q, want explicit override", got)
	}

	t.Setenv(EnvLogPath, "")
	want := filepath.Join("/tmp/forerun-test", "forerun.log")
	if got := LogPath(); got != want {
		t.Errorf("LogPath() = %q, want %q", got, want)
	}
}
