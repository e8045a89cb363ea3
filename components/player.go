package components

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/skyduel/config"
	"github.com/yohamta/donburi"
)

// Facing is the discrete orientation of a plane.
type Facing int

const (
	FacingForward Facing = iota
	FacingLeft
	FacingBackward
	FacingRight
	facingCount
)

var facingNames = [facingCount]string{"forward", "left", "backward", "right"}

func (f Facing) String() string {
	if f < 0 || f >= facingCount {
		return fmt.Sprintf("Facing(%d)", int(f))
	}
	return facingNames[f]
}

// Left steps forward along Forward, Left, Backward, Right.
func (f Facing) Left() Facing {
	return (f + 1) % facingCount
}

// Right steps the cycle the other way.
func (f Facing) Right() Facing {
	return (f + facingCount - 1) % facingCount
}

func ParseFacing(s string) (Facing, error) {
	for i, name := range facingNames {
		if strings.EqualFold(s, name) {
			return Facing(i), nil
		}
	}
	return FacingForward, fmt.Errorf("unknown facing %q", s)
}

// EngineState drives the engine sound cues.
type EngineState int

const (
	EngineStop EngineState = iota
	EngineStart
)

// Direction is a movement bitmask. Move honours only the first set bit
// in the order Left, Right, Forward, Backward.
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirForward
	DirBackward
)

type PlayerData struct {
	Index       int
	Spawn       Vector
	Facing      Facing
	Engine      EngineState
	EngineTimer float64

	// Weapon slots
	Fire  Cooldown
	Fire2 Cooldown

	Exploding      bool
	ExplosionFrame int
	Explosion      AnimatedSpriteData
}

func NewPlayerData(index int, spawn Vector, facing Facing) PlayerData {
	return PlayerData{
		Index:  index,
		Spawn:  spawn,
		Facing: facing,
		Fire:   NewCooldown(0, cfg.Player.ReadyThreshold),
		Fire2:  NewCooldown(0, cfg.Player.ReadyThreshold),
		Explosion: NewAnimatedSprite(
			cfg.Explosion.Image,
			cfg.Explosion.FrameWidth,
			cfg.Explosion.FrameHeight,
			cfg.Explosion.Frames,
			cfg.Explosion.Columns,
		),
	}
}

// Cooldown returns the cooldown guarding the given weapon slot.
func (p *PlayerData) Cooldown(slot int) *Cooldown {
	if slot == 2 {
		return &p.Fire2
	}
	return &p.Fire
}

// FacingImage returns the sprite image for the current facing.
func (p *PlayerData) FacingImage() string {
	return cfg.Player.FacingImages[p.Facing]
}

// RotateLeft turns the plane and swaps its image, keeping position and velocity.
func (p *PlayerData) RotateLeft(s *SpriteData) {
	p.Facing = p.Facing.Left()
	s.Image = p.FacingImage()
}

func (p *PlayerData) RotateRight(s *SpriteData) {
	p.Facing = p.Facing.Right()
	s.Image = p.FacingImage()
}

// Move applies one movement command. At or past a field edge the position is
// clamped and that axis stops; otherwise the axis gains thrust. No bits set
// brings the plane to rest.
func (p *PlayerData) Move(s *SpriteData, dir Direction, field cfg.FieldConfig) {
	thrust := cfg.Player.Thrust
	switch {
	case dir&DirLeft != 0:
		if s.Position.X <= field.MinX {
			s.Position.X = field.MinX
			s.Velocity.X = 0
		} else {
			s.Velocity.X -= thrust
		}
	case dir&DirRight != 0:
		if s.Position.X >= field.MaxX {
			s.Position.X = field.MaxX
			s.Velocity.X = 0
		} else {
			s.Velocity.X += thrust
		}
	case dir&DirForward != 0:
		if s.Position.Y <= field.MinY {
			s.Position.Y = field.MinY
			s.Velocity.Y = 0
		} else {
			s.Velocity.Y -= thrust
		}
	case dir&DirBackward != 0:
		if s.Position.Y >= field.MaxY {
			s.Position.Y = field.MaxY
			s.Velocity.Y = 0
		} else {
			s.Velocity.Y += thrust
		}
	default:
		s.Velocity = Vector{}
	}
}

// UpdateEngine runs the engine state machine for the given speed and elapsed
// time and returns the sound cue to play, if any.
func (p *PlayerData) UpdateEngine(speed, dt float64) cfg.SoundID {
	p.EngineTimer += dt

	switch p.Engine {
	case EngineStop:
		if speed > cfg.Engine.StartSpeed {
			p.Engine = EngineStart
			p.EngineTimer = 0
			return cfg.SoundJetStart
		}
	case EngineStart:
		if speed < cfg.Engine.StopSpeed {
			p.Engine = EngineStop
			p.EngineTimer = 0
			return cfg.SoundJetStop
		}
		if p.EngineTimer > cfg.Engine.CabinInterval {
			p.EngineTimer = 0
			return cfg.SoundJetCabin
		}
	}
	return cfg.SoundNone
}

// Explode starts the explosion at the plane's position and costs one life.
func (p *PlayerData) Explode(s *SpriteData, lives *LivesData) {
	p.Explosion.Position = s.Position
	p.Explosion.SetFrame(0)
	p.ExplosionFrame = 0
	lives.Decrement()
	p.Exploding = true
}

// AdvanceExplosion shows the next explosion frame. Once every frame has been
// shown the plane is brought to rest and false is returned.
func (p *PlayerData) AdvanceExplosion(s *SpriteData) bool {
	if !p.Exploding {
		return false
	}

	p.Explosion.SetFrame(p.ExplosionFrame)
	p.ExplosionFrame++
	if p.ExplosionFrame < p.Explosion.FrameCount() {
		return true
	}

	p.Exploding = false
	p.ExplosionFrame = 0
	s.Velocity = Vector{}
	p.Engine = EngineStop
	return false
}

var Player = donburi.NewComponentType[PlayerData]()
