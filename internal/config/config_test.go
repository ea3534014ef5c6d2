package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points the user config directory at an empty temp dir and clears
// the environment overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{EnvListName, EnvLogLevel, EnvLogFormat, EnvColor} {
		t.Setenv(key, "")
	}
	return filepath.Join(home, ".config")
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListName != DefaultListName {
		t.Errorf("ListName: got %q, want %q", cfg.ListName, DefaultListName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat: got %q, want text", cfg.LogFormat)
	}
}

func TestLoadFilePriority(t *testing.T) {
	configHome := isolate(t)
	projectDir := t.TempDir()

	writeConfig(t, filepath.Join(configHome, "todo", "config.toml"), `
list_name = "user.json"
log_level = "debug"
color = false
`)
	writeConfig(t, filepath.Join(projectDir, ProjectConfigFile), `
list_name = "project.json"
`)

	cfg, err := Load(projectDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListName != "project.json" {
		t.Errorf("ListName: got %q, want project.json", cfg.ListName)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if cfg.Color {
		t.Errorf("Color: got true, want false")
	}
}

func TestLoadEnvOverridesFiles(t *testing.T) {
	isolate(t)
	projectDir := t.TempDir()
	writeConfig(t, filepath.Join(projectDir, ProjectConfigFile), `
list_name = "project.json"
log_format = "json"
color = true
`)

	t.Setenv(EnvListName, "env.json")
	t.Setenv(EnvLogFormat, "logfmt")
	t.Setenv(EnvColor, "false")

	cfg, err := Load(projectDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListName != "env.json" {
		t.Errorf("ListName: got %q, want env.json", cfg.ListName)
	}
	if cfg.LogFormat != "logfmt" {
		t.Errorf("LogFormat: got %q, want logfmt", cfg.LogFormat)
	}
	if cfg.Color {
		t.Errorf("Color: got true, want false")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		project string
		env     string
	}{
		{name: "malformed project file", project: "list_name = "},
		{name: "wrong type in project file", project: "color = \"sometimes\""},
		{name: "invalid color env", env: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			projectDir := t.TempDir()
			if tt.project != "" {
				writeConfig(t, filepath.Join(projectDir, ProjectConfigFile), tt.project)
			}
			if tt.env != "" {
				t.Setenv(EnvColor, tt.env)
			}

			if _, err := Load(projectDir); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestUserConfigFile(t *testing.T) {
	configHome := isolate(t)

	want := filepath.Join(configHome, "todo", "config.toml")
	if got := UserConfigFile(); got != want {
		t.Errorf("UserConfigFile() = %q, want %q", got, want)
	}
}
