package config

import (
	"os"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.WallHeight != 250 {
		t.Errorf("WallHeight = %v, want 250", cfg.WallHeight)
	}
	if cfg.WallThickness != 10 {
		t.Errorf("WallThickness = %v, want 10", cfg.WallThickness)
	}
	if cfg.GridSize != 20 {
		t.Errorf("GridSize = %v, want 20", cfg.GridSize)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load without a config file should use defaults, got %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	yaml := "wallHeight: 300\nwallThickness: 15\ngridSize: 10\n"
	if err := os.WriteFile("drafter.yaml", []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WallHeight != 300 || cfg.WallThickness != 15 || cfg.GridSize != 10 {
		t.Errorf("Load = %+v, want file values", cfg)
	}
}
