package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTuning_Valid(t *testing.T) {
	data := []byte(`
player:
  startingLives: 5
  fireCooldown: 120
enemy:
  driftX: 1.2
engine:
  startSpeed: 40
  stopSpeed: 20
audio:
  sfxVolume: 0.3
`)
	tuning, err := ParseTuning(data)
	if err != nil {
		t.Fatalf("ParseTuning failed: %v", err)
	}
	if tuning.Player.StartingLives != 5 || tuning.Player.FireCooldown != 120 {
		t.Errorf("Unexpected player tuning %+v", tuning.Player)
	}
	if tuning.Enemy.DriftX != 1.2 {
		t.Errorf("Expected driftX 1.2, got %v", tuning.Enemy.DriftX)
	}
	if tuning.Audio.SFXVolume != 0.3 {
		t.Errorf("Expected sfxVolume 0.3, got %v", tuning.Audio.SFXVolume)
	}
}

func TestParseTuning_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative lives", "player:\n  startingLives: -1\n"},
		{"negative speed", "bullet:\n  playerSpeed: -5\n"},
		{"loud volume", "audio:\n  sfxVolume: 1.5\n"},
		{"inverted engine band", "engine:\n  startSpeed: 20\n  stopSpeed: 30\n"},
		{"stop above default start", "engine:\n  stopSpeed: 50\n"},
		{"not yaml", "player: [unterminated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTuning([]byte(tt.data)); err == nil {
				t.Errorf("Expected an error for %q", tt.data)
			}
		})
	}
}

func TestTuning_ApplyKeepsUnsetDefaults(t *testing.T) {
	savedPlayer, savedEnemy, savedEngine := Player, Enemy, Engine
	defer func() {
		Player, Enemy, Engine = savedPlayer, savedEnemy, savedEngine
	}()

	tuning := &Tuning{
		Player: PlayerTuning{StartingLives: 7},
		Enemy:  EnemyTuning{ShootReset: 90},
	}
	tuning.Apply()

	if Player.StartingLives != 7 {
		t.Errorf("Expected 7 starting lives, got %d", Player.StartingLives)
	}
	if Enemy.ShootReset != 90 {
		t.Errorf("Expected shoot reset 90, got %d", Enemy.ShootReset)
	}
	if Player.FireCooldown != savedPlayer.FireCooldown {
		t.Errorf("Unset fire cooldown changed to %d", Player.FireCooldown)
	}
	if Engine != savedEngine {
		t.Errorf("Unset engine tuning changed to %+v", Engine)
	}
}

func TestLoadTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("bullet:\n  enemySpeed: 3\n"), 0o644); err != nil {
		t.Fatalf("Failed to write tuning file: %v", err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning failed: %v", err)
	}
	if tuning.Bullet.EnemySpeed != 3 {
		t.Errorf("Expected enemySpeed 3, got %v", tuning.Bullet.EnemySpeed)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
