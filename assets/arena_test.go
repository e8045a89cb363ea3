package assets

import (
	"testing"
	"testing/fstest"

	cfg "github.com/automoto/skyduel/config"
)

func TestLoadArena_EmbeddedMatchesDefaults(t *testing.T) {
	arena, err := LoadArena(cfg.Arena.MapPath, nil)
	if err != nil {
		t.Fatalf("Failed to load embedded arena: %v", err)
	}

	if arena.Field != cfg.Arena.Field {
		t.Errorf("Expected field %+v, got %+v", cfg.Arena.Field, arena.Field)
	}
	if arena.PlayerSpawns != cfg.Arena.PlayerSpawns {
		t.Errorf("Expected player spawns %+v, got %+v", cfg.Arena.PlayerSpawns, arena.PlayerSpawns)
	}
	if len(arena.EnemySpawns) != len(cfg.Arena.EnemySpawns) {
		t.Fatalf("Expected %d enemy spawns, got %d", len(cfg.Arena.EnemySpawns), len(arena.EnemySpawns))
	}
	for i, want := range cfg.Arena.EnemySpawns {
		if arena.EnemySpawns[i] != want {
			t.Errorf("Enemy spawn %d: expected %+v, got %+v", i, want, arena.EnemySpawns[i])
		}
	}
	if arena.RecoveryX != 400 || arena.RecoveryY != 400 {
		t.Errorf("Expected recovery (400, 400), got (%v, %v)", arena.RecoveryX, arena.RecoveryY)
	}
}

const shortWaveMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="enemies">
  <object id="1" name="enemy" x="50" y="100"><point/></object>
  <object id="2" name="enemy" x="250" y="100"><point/></object>
 </objectgroup>
</map>
`

const badPlayerMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="players">
  <object id="1" name="player3" x="50" y="100">
   <properties>
    <property name="player" type="int" value="3"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const movedRecoveryMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="recovery">
  <object id="1" name="recovery" x="640" y="320"><point/></object>
 </objectgroup>
</map>
`

func TestLoadArena_FromFileSystem(t *testing.T) {
	fsys := fstest.MapFS{
		"short.tmx":     {Data: []byte(shortWaveMap)},
		"badplayer.tmx": {Data: []byte(badPlayerMap)},
		"recovery.tmx":  {Data: []byte(movedRecoveryMap)},
	}

	if _, err := LoadArena("short.tmx", fsys); err == nil {
		t.Error("Expected an error for a wave with too few spawns")
	}
	if _, err := LoadArena("badplayer.tmx", fsys); err == nil {
		t.Error("Expected an error for a spawn naming a third player")
	}
	if _, err := LoadArena("missing.tmx", fsys); err == nil {
		t.Error("Expected an error for a missing map")
	}

	arena, err := LoadArena("recovery.tmx", fsys)
	if err != nil {
		t.Fatalf("Failed to load partial map: %v", err)
	}
	if arena.RecoveryX != 640 || arena.RecoveryY != 320 {
		t.Errorf("Expected recovery (640, 320), got (%v, %v)", arena.RecoveryX, arena.RecoveryY)
	}
	if arena.Field != cfg.Arena.Field {
		t.Errorf("Layers left out of the map keep their defaults, got %+v", arena.Field)
	}
}

func TestValidateArena(t *testing.T) {
	a := cfg.Arena
	a.Field.MaxX = a.Field.MinX
	if err := ValidateArena(a); err == nil {
		t.Error("Expected an error for an empty field")
	}
	if err := ValidateArena(cfg.Arena); err != nil {
		t.Errorf("Default arena should be valid: %v", err)
	}
}
