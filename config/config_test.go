package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr=%q; want :8080", cfg.Addr)
	}
	if cfg.TickMs != 120 {
		t.Errorf("TickMs=%d; want 120", cfg.TickMs)
	}
	if cfg.TileSize != 0.08 {
		t.Errorf("TileSize=%v; want 0.08", cfg.TileSize)
	}
	if cfg.StepEvery() != 120*time.Millisecond {
		t.Errorf("StepEvery=%v; want 120ms", cfg.StepEvery())
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("TICK_MS", "200")
	t.Setenv("TILE_SIZE", "0.1")
	t.Setenv("RESPAWN_STEPS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr=%q; want :9000", cfg.Addr)
	}
	if cfg.TickMs != 200 {
		t.Errorf("TickMs=%d; want 200", cfg.TickMs)
	}
	if cfg.TileSize != 0.1 {
		t.Errorf("TileSize=%v; want 0.1", cfg.TileSize)
	}
	if cfg.RespawnSteps != 10 {
		t.Errorf("RespawnSteps=%d; want 10", cfg.RespawnSteps)
	}
}

func TestPortOverridesAddr(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr=%q; want :3000", cfg.Addr)
	}
}
