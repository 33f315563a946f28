package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "punkpark.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	if Character.Width != 144 || Character.Height != 144 {
		t.Fatalf("character size = %vx%v, want 144x144", Character.Width, Character.Height)
	}
	if Index.Limit != 360 {
		t.Fatalf("Index.Limit = %v, want 2.5 * 144", Index.Limit)
	}
	if C.Width != 800 || C.Height != 600 {
		t.Fatalf("window = %dx%d, want 800x600", C.Width, C.Height)
	}
	if Enemy.IdleTimeout != 5*C.TPS {
		t.Fatalf("Enemy.IdleTimeout = %d, want five seconds of ticks", Enemy.IdleTimeout)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	path := writeConfig(t, `
[window]
width = 1280

[player]
jump_speed = 12.5

[logging]
level = "debug"
`)
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if C.Width != 1280 || C.Height != 600 {
		t.Errorf("window = %dx%d, want 1280x600", C.Width, C.Height)
	}
	if Player.JumpSpeed != 12.5 {
		t.Errorf("Player.JumpSpeed = %v, want 12.5", Player.JumpSpeed)
	}
	if Player.MaxSpeed != 6.0 {
		t.Errorf("Player.MaxSpeed = %v, want the default 6", Player.MaxSpeed)
	}
	if Logging.Level != "debug" || Logging.Format != "console" {
		t.Errorf("Logging = %+v", Logging)
	}
}

func TestLoadRederivesLimit(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	path := writeConfig(t, `
[character]
scale_factor = 2
`)
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Character.Width != 96 {
		t.Fatalf("Character.Width = %v, want 96", Character.Width)
	}
	if Index.Limit != 240 {
		t.Fatalf("Index.Limit = %v, want 96 * 2.5", Index.Limit)
	}
}

func TestLoadExplicitLimit(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	path := writeConfig(t, `
[character]
scale_factor = 2

[index]
limit = 500
`)
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Index.Limit != 500 {
		t.Fatalf("Index.Limit = %v, want the explicit 500", Index.Limit)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	if err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	bad := writeConfig(t, "[window\nwidth = ")
	if err := Load(bad); err == nil {
		t.Error("expected a parse error")
	}

	unknown := writeConfig(t, "[window]\nwidht = 10\n")
	err := Load(unknown)
	if err == nil || !strings.Contains(err.Error(), "window.widht") {
		t.Errorf("Load with a typo = %v, want the unknown key named", err)
	}
	if C.Width != 800 {
		t.Errorf("failed Load changed C.Width to %d", C.Width)
	}

	// Characters have no health, so the key is not accepted
	health := writeConfig(t, "[player]\nhealth = 5\n")
	if err := Load(health); err == nil || !strings.Contains(err.Error(), "player.health") {
		t.Errorf("Load with player.health = %v, want the unknown key named", err)
	}
}

func TestStateIDString(t *testing.T) {
	if Idle.String() != "idle" || Falling.String() != "fall" || StateNone.String() != "none" {
		t.Fatal("unexpected state names")
	}
}

func TestNewLogger(t *testing.T) {
	for _, cfg := range []LoggingConfig{
		{Level: "debug", Format: "console"},
		{Level: "warn", Format: "json"},
		{Level: "bogus", Format: ""},
	} {
		logger, err := NewLogger(cfg)
		if err != nil {
			t.Fatalf("NewLogger(%+v): %v", cfg, err)
		}
		logger.Info("built")
	}
}
