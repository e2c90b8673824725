package config

import (
	"os"
	"testing"

	"EnvKit/internal/paths"
)

func TestConfigSaveAndLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "envkit-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	paths.ConfigHomeOverride = tempDir
	defer func() { paths.ConfigHomeOverride = "" }()

	conf := AppConfig{
		Search: SearchConfig{Suffix: ".envrc", MaxHops: 3},
		Output: OutputConfig{Format: "yaml", Color: false},
	}

	if err := SaveAppConfig(conf); err != nil {
		t.Errorf("SaveAppConfig failed: %v", err)
	}

	loaded := LoadAppConfig()
	if loaded.Search.Suffix != ".envrc" {
		t.Errorf("Expected Suffix '.envrc', got '%s'", loaded.Search.Suffix)
	}
	if loaded.Search.MaxHops != 3 {
		t.Errorf("Expected MaxHops 3, got %d", loaded.Search.MaxHops)
	}
	if loaded.Output.Format != "yaml" {
		t.Errorf("Expected Format 'yaml', got '%s'", loaded.Output.Format)
	}
	if loaded.Output.Color != false {
		t.Errorf("Expected Color false, got %v", loaded.Output.Color)
	}
}

func TestConfigDefaultsWhenMissing(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "envkit-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tempDir)

	paths.ConfigHomeOverride = tempDir
	defer func() { paths.ConfigHomeOverride = "" }()

	loaded := LoadAppConfig()
	if loaded.Search.Suffix != ".env" {
		t.Errorf("Expected default Suffix '.env', got '%s'", loaded.Search.Suffix)
	}
	if loaded.Output.Format != "dotenv" {
		t.Errorf("Expected default Format 'dotenv', got '%s'", loaded.Output.Format)
	}
	if !loaded.Output.Color {
		t.Error("Expected default Color true")
	}
}

func TestExpandVariables(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir in test environment")
	}
	expanded := ExpandVariables("${HOME}/projects")
	if expanded != home+"/projects" {
		t.Errorf("ExpandVariables = %q; want %q", expanded, home+"/projects")
	}
}
