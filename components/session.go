package components

import (
	cfg "github.com/automoto/skyduel/config"
	"github.com/yohamta/donburi"
)

// SessionData is the per-match state the loop owns.
type SessionData struct {
	Active bool // false while the window is minimised
	Frame  int

	// Explosions drives AdvanceExplosion for every exploding plane.
	Explosions Ticker

	Over    bool
	Winner  int // index of the winning player, valid once Over
	Outcome string

	ShowHitboxes bool
	LastFPS      int
	LastLives    [2]int
}

var Session = donburi.NewComponentType[SessionData]()

// ArenaData is the play-field layout, loaded from the arena map or config.
type ArenaData struct {
	Field        cfg.FieldConfig
	PlayerSpawns [2]cfg.SpawnConfig
	EnemySpawns  []cfg.EnemySpawnConfig
	Recovery     Vector
}

// NewArena builds the layout from an arena config.
func NewArena(a cfg.ArenaConfig) ArenaData {
	spawns := make([]cfg.EnemySpawnConfig, len(a.EnemySpawns))
	copy(spawns, a.EnemySpawns)
	return ArenaData{
		Field:        a.Field,
		PlayerSpawns: a.PlayerSpawns,
		EnemySpawns:  spawns,
		Recovery:     Vector{X: a.RecoveryX, Y: a.RecoveryY},
	}
}

// DefaultArena builds the layout from the config defaults.
func DefaultArena() ArenaData {
	return NewArena(cfg.Arena)
}

var Arena = donburi.NewComponentType[ArenaData]()
