package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	cfg "github.com/automoto/skyduel/config"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// Object layers read from an arena map
const (
	layerField    = "field"
	layerPlayers  = "players"
	layerEnemies  = "enemies"
	layerRecovery = "recovery"
)

// LoadArena reads an arena layout from a Tiled map. A nil fsys reads the
// maps embedded in the binary. Anything the map leaves out keeps its value
// from cfg.Arena.
func LoadArena(path string, fsys fs.FS) (cfg.ArenaConfig, error) {
	if fsys == nil {
		fsys = assetFS
	}

	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return cfg.ArenaConfig{}, fmt.Errorf("failed to load arena map %s: %w", path, err)
	}

	arena := cfg.Arena
	arena.MapPath = path
	var enemies []cfg.EnemySpawnConfig

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case layerField:
				arena.Field = cfg.FieldConfig{
					MinX: o.X,
					MaxX: o.X + o.Width,
					MinY: o.Y,
					MaxY: o.Y + o.Height,
				}
			case layerPlayers:
				idx := o.Properties.GetInt("player") - 1
				if idx < 0 || idx >= len(arena.PlayerSpawns) {
					return cfg.ArenaConfig{}, fmt.Errorf("arena %s: player spawn %q has bad player index %d", path, o.Name, idx+1)
				}
				facing := o.Properties.GetString("facing")
				if facing == "" {
					facing = arena.PlayerSpawns[idx].Facing
				}
				arena.PlayerSpawns[idx] = cfg.SpawnConfig{X: o.X, Y: o.Y, Facing: facing}
			case layerEnemies:
				enemies = append(enemies, cfg.EnemySpawnConfig{
					X:             o.X,
					Y:             o.Y,
					ShootCooldown: o.Properties.GetInt("cooldown"),
				})
			case layerRecovery:
				arena.RecoveryX = o.X
				arena.RecoveryY = o.Y
			}
		}
	}

	if len(enemies) > 0 {
		arena.EnemySpawns = enemies
	}
	if err := ValidateArena(arena); err != nil {
		return cfg.ArenaConfig{}, fmt.Errorf("arena %s: %w", path, err)
	}
	return arena, nil
}

// ValidateArena checks that the field is non-empty and the wave is filled.
func ValidateArena(a cfg.ArenaConfig) error {
	if a.Field.MinX >= a.Field.MaxX || a.Field.MinY >= a.Field.MaxY {
		return errors.New("field bounds are empty")
	}
	if len(a.EnemySpawns) != cfg.Enemy.WaveSize {
		return fmt.Errorf("need %d enemy spawns, got %d", cfg.Enemy.WaveSize, len(a.EnemySpawns))
	}
	return nil
}
