package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir == "" {
		t.Fatal("GetConfigDir() returned empty string")
	}
	if !strings.Contains(configDir, "forgeloop") {
		t.Errorf("GetConfigDir() = %v, should contain 'forgeloop'", configDir)
	}
}

func TestGetConfigPath(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	}

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG override not applicable on windows")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if prefs.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", prefs.Version, CurrentVersion)
	}
	if prefs.DefaultAgent != "" {
		t.Errorf("DefaultAgent = %q, want empty", prefs.DefaultAgent)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG override not applicable on windows")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs := DefaultPreferences()
	prefs.DefaultAgent = "claude"
	prefs.DefaultScript = "sh"
	prefs.TemplateRepo = "acme/custom-templates"

	if err := Save(prefs); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultAgent != "claude" {
		t.Errorf("DefaultAgent = %q, want claude", loaded.DefaultAgent)
	}
	if loaded.DefaultScript != "sh" {
		t.Errorf("DefaultScript = %q, want sh", loaded.DefaultScript)
	}
	if loaded.TemplateRepo != "acme/custom-templates" {
		t.Errorf("TemplateRepo = %q, want acme/custom-templates", loaded.TemplateRepo)
	}
	if loaded.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", loaded.Version, CurrentVersion)
	}
}
