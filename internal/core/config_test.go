package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		t.Errorf("Expected positive screen size, got %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate <= 0 {
		t.Errorf("Expected positive tick rate, got %d", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Expected zero seed (time-based in the platform layer), got %d", cfg.Seed)
	}
}
