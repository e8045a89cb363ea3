package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses.
const Default ecs.LayerID = iota

// FieldConfig bounds the area a plane may steer inside.
type FieldConfig struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// SpawnConfig is a fixed spawn point.
type SpawnConfig struct {
	X      float64
	Y      float64
	Facing string // "forward", "left", "backward", "right"
}

// EnemySpawnConfig is one slot of the enemy wave.
type EnemySpawnConfig struct {
	X             float64
	Y             float64
	ShootCooldown int
}

// ArenaConfig is the fallback arena layout used when no map is loaded.
type ArenaConfig struct {
	MapPath      string
	Field        FieldConfig
	PlayerSpawns [2]SpawnConfig
	EnemySpawns  []EnemySpawnConfig
	RecoveryX    float64 // where a plane is teleported after ramming an enemy
	RecoveryY    float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Names         [2]string
	StartingLives int

	// Movement
	Thrust float64 // velocity change per Move call

	// Weapons
	FireCooldown   int    // frames after a shot
	ReadyThreshold int    // a cooldown is ready at or below this value
	FireSlots      [2]int // weapon slot used by each player's fire key

	// Dimensions
	FrameWidth  int
	FrameHeight int

	// Images indexed by facing: forward, left, backward, right
	FacingImages [4]string
}

// EngineConfig drives the engine sound state machine
type EngineConfig struct {
	StartSpeed    float64 // speed above which the engine spools up
	StopSpeed     float64 // speed below which the engine winds down
	CabinInterval float64 // seconds between cabin cues while running
}

// EnemyConfig contains enemy configuration values
type EnemyConfig struct {
	DriftX         float64
	ShootCooldown  int // initial cooldown for a fresh enemy
	ShootReset     int // cooldown after firing
	ReadyThreshold int
	WaveSize       int
	ExitX          float64 // enemies past this x are pruned
	FrameWidth     int
	FrameHeight    int
	Image          string
}

// BulletConfig contains projectile configuration values
type BulletConfig struct {
	PlayerSpeed    float64
	EnemySpeed     float64
	EnemyExitY     float64 // enemy bullets past this y are pruned
	OffFieldMargin float64 // player bullets this far outside the window are pruned
	FrameWidth     int
	FrameHeight    int
	PlayerOneImage string
	PlayerTwoImage string
	EnemyImage     string
}

// ExplosionConfig describes the explosion strip and its tick source
type ExplosionConfig struct {
	FrameWidth       int
	FrameHeight      int
	Frames           int
	Columns          int
	TickFrames       int // ~70ms at 60 TPS
	BulletTickFrames int // ~50ms at 60 TPS
	Image            string
}

// BackgroundLayerConfig is one horizontally wrapping background layer
type BackgroundLayerConfig struct {
	Image string
	Speed float64 // pixels per step
}

// BackgroundConfig contains background scrolling configuration
type BackgroundConfig struct {
	StepFrames int // ~150ms at 60 TPS
	Layers     []BackgroundLayerConfig
}

// CollisionConfig sizes the broad-phase grid
type CollisionConfig struct {
	CellSize int
}

// HUDConfig contains HUD configuration values
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	Title        string
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	FadeSeconds  float32
}

// SaveConfig names the persistence slot
type SaveConfig struct {
	AppName string
	Item    string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Hitboxes    bool
	HitboxColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Engine EngineConfig
var Enemy EnemyConfig
var Bullet BulletConfig
var Explosion ExplosionConfig
var Background BackgroundConfig
var Collision CollisionConfig
var HUD HUDConfig
var GameOver GameOverConfig
var Save SaveConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Sprite image keys, resolved by the assets package
const (
	ImagePlaneForward  = "plane_forward"
	ImagePlaneLeft     = "plane_left"
	ImagePlaneBackward = "plane_backward"
	ImagePlaneRight    = "plane_right"
	ImageEnemy         = "enemy"
	ImageBulletOne     = "bullet_one"
	ImageBulletTwo     = "bullet_two"
	ImageBulletEnemy   = "bullet_enemy"
	ImageExplosion     = "explosion"
	ImageSkyFar        = "sky_far"
	ImageSkyNear       = "sky_near"
)

func init() {
	C = &Config{
		Width:  1440,
		Height: 810,
		TPS:    60,
		Title:  "Game",
	}

	Arena = ArenaConfig{
		MapPath: "levels/arena.tmx",
		Field: FieldConfig{
			MinX: 50,
			MaxX: 1380,
			MinY: 80,
			MaxY: 750,
		},
		PlayerSpawns: [2]SpawnConfig{
			{X: 1300, Y: 500, Facing: "left"},
			{X: 100, Y: 500, Facing: "right"},
		},
		EnemySpawns: []EnemySpawnConfig{
			{X: 50, Y: 100, ShootCooldown: 200},
			{X: 250, Y: 100, ShootCooldown: 100},
			{X: 450, Y: 100, ShootCooldown: 200},
		},
		RecoveryX: 400,
		RecoveryY: 400,
	}

	Player = PlayerConfig{
		Names:         [2]string{"Player 1", "Player 2"},
		StartingLives: 3,

		Thrust: 3,

		FireCooldown:   200,
		ReadyThreshold: 4,
		FireSlots:      [2]int{1, 2},

		FrameWidth:  64,
		FrameHeight: 64,

		FacingImages: [4]string{
			ImagePlaneForward,
			ImagePlaneLeft,
			ImagePlaneBackward,
			ImagePlaneRight,
		},
	}

	Engine = EngineConfig{
		StartSpeed:    35,
		StopSpeed:     25,
		CabinInterval: 1.0,
	}

	Enemy = EnemyConfig{
		DriftX:         0.8,
		ShootCooldown:  200,
		ShootReset:     300,
		ReadyThreshold: 4,
		WaveSize:       3,
		ExitX:          1300,
		FrameWidth:     64,
		FrameHeight:    48,
		Image:          ImageEnemy,
	}

	Bullet = BulletConfig{
		PlayerSpeed:    5,
		EnemySpeed:     2,
		EnemyExitY:     700,
		OffFieldMargin: 64,
		FrameWidth:     12,
		FrameHeight:    12,
		PlayerOneImage: ImageBulletOne,
		PlayerTwoImage: ImageBulletTwo,
		EnemyImage:     ImageBulletEnemy,
	}

	Explosion = ExplosionConfig{
		FrameWidth:       128,
		FrameHeight:      128,
		Frames:           16,
		Columns:          4,
		TickFrames:       4,
		BulletTickFrames: 3,
		Image:            ImageExplosion,
	}

	Background = BackgroundConfig{
		StepFrames: 9,
		Layers: []BackgroundLayerConfig{
			{Image: ImageSkyFar, Speed: 5},
			{Image: ImageSkyNear, Speed: 5},
		},
	}

	Collision = CollisionConfig{
		CellSize: 32,
	}

	HUD = HUDConfig{
		Margin:    12,
		TextColor: White,
	}

	GameOver = GameOverConfig{
		Title:        "GAME OVER",
		OverlayColor: BlackOverlay,
		TitleColor:   LightRed,
		FadeSeconds:  0.75,
	}

	Save = SaveConfig{
		AppName: "skyduel",
		Item:    "game",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Hitboxes:    false,
		HitboxColor: Magenta,
	}
}
