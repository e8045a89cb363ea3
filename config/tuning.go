package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional YAML override for gameplay constants. Zero values
// leave the built-in defaults in place.
type Tuning struct {
	Player PlayerTuning `yaml:"player"`
	Enemy  EnemyTuning  `yaml:"enemy"`
	Bullet BulletTuning `yaml:"bullet"`
	Engine EngineTuning `yaml:"engine"`
	Audio  AudioTuning  `yaml:"audio"`
}

type PlayerTuning struct {
	StartingLives int     `yaml:"startingLives"`
	Thrust        float64 `yaml:"thrust"`
	FireCooldown  int     `yaml:"fireCooldown"`
}

type EnemyTuning struct {
	DriftX        float64 `yaml:"driftX"`
	ShootCooldown int     `yaml:"shootCooldown"`
	ShootReset    int     `yaml:"shootReset"`
}

type BulletTuning struct {
	PlayerSpeed float64 `yaml:"playerSpeed"`
	EnemySpeed  float64 `yaml:"enemySpeed"`
}

type EngineTuning struct {
	StartSpeed    float64 `yaml:"startSpeed"`
	StopSpeed     float64 `yaml:"stopSpeed"`
	CabinInterval float64 `yaml:"cabinInterval"`
}

type AudioTuning struct {
	SFXVolume float64 `yaml:"sfxVolume"`
}

// LoadTuning reads and validates a tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes and validates tuning YAML.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning file: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning file: %w", err)
	}
	return &t, nil
}

// Validate rejects negative values and an engine band whose stop speed is
// not below its start speed.
func (t *Tuning) Validate() error {
	if t.Player.StartingLives < 0 || t.Player.FireCooldown < 0 ||
		t.Enemy.ShootCooldown < 0 || t.Enemy.ShootReset < 0 {
		return errors.New("counts must not be negative")
	}
	if t.Player.Thrust < 0 || t.Bullet.PlayerSpeed < 0 || t.Bullet.EnemySpeed < 0 {
		return errors.New("speeds must not be negative")
	}
	if t.Audio.SFXVolume < 0 || t.Audio.SFXVolume > 1 {
		return fmt.Errorf("sfxVolume %v out of range [0, 1]", t.Audio.SFXVolume)
	}

	start := pick(t.Engine.StartSpeed, Engine.StartSpeed)
	stop := pick(t.Engine.StopSpeed, Engine.StopSpeed)
	if stop >= start {
		return fmt.Errorf("engine stopSpeed %v must be below startSpeed %v", stop, start)
	}
	return nil
}

// Apply copies every set value onto the global config.
func (t *Tuning) Apply() {
	Player.StartingLives = pick(t.Player.StartingLives, Player.StartingLives)
	Player.Thrust = pick(t.Player.Thrust, Player.Thrust)
	Player.FireCooldown = pick(t.Player.FireCooldown, Player.FireCooldown)

	Enemy.DriftX = pick(t.Enemy.DriftX, Enemy.DriftX)
	Enemy.ShootCooldown = pick(t.Enemy.ShootCooldown, Enemy.ShootCooldown)
	Enemy.ShootReset = pick(t.Enemy.ShootReset, Enemy.ShootReset)

	Bullet.PlayerSpeed = pick(t.Bullet.PlayerSpeed, Bullet.PlayerSpeed)
	Bullet.EnemySpeed = pick(t.Bullet.EnemySpeed, Bullet.EnemySpeed)

	Engine.StartSpeed = pick(t.Engine.StartSpeed, Engine.StartSpeed)
	Engine.StopSpeed = pick(t.Engine.StopSpeed, Engine.StopSpeed)
	Engine.CabinInterval = pick(t.Engine.CabinInterval, Engine.CabinInterval)

	Audio.DefaultSFXVol = pick(t.Audio.SFXVolume, Audio.DefaultSFXVol)
}

func pick[T int | float64](override, current T) T {
	if override != 0 {
		return override
	}
	return current
}
