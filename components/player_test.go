package components

import (
	"testing"

	cfg "github.com/automoto/skyduel/config"
)

var testField = cfg.FieldConfig{MinX: 50, MaxX: 1380, MinY: 80, MaxY: 750}

func TestCooldown_ReadyBelowThreshold(t *testing.T) {
	c := NewCooldown(7, 4)
	var ready []bool
	for i := 0; i < 4; i++ {
		ready = append(ready, c.Ready())
		c.Tick()
	}
	// counter 7, 6, 5, 4
	want := []bool{false, false, false, true}
	for i := range want {
		if ready[i] != want[i] {
			t.Errorf("Step %d: expected ready=%v, got %v", i, want[i], ready[i])
		}
	}

	c.Trigger(200)
	if c.Ready() {
		t.Error("A triggered cooldown must not be ready")
	}

	z := NewCooldown(0, 4)
	z.Tick()
	if z.Counter != 0 {
		t.Errorf("Tick must not go below zero, got %d", z.Counter)
	}
}

func TestFacing_Cycle(t *testing.T) {
	f := FacingForward
	want := []Facing{FacingLeft, FacingBackward, FacingRight, FacingForward}
	for i, w := range want {
		f = f.Left()
		if f != w {
			t.Errorf("Left step %d: expected %v, got %v", i, w, f)
		}
	}

	for _, start := range []Facing{FacingForward, FacingLeft, FacingBackward, FacingRight} {
		if got := start.Left().Right(); got != start {
			t.Errorf("Left then Right from %v returned %v", start, got)
		}
		f := start
		for i := 0; i < 4; i++ {
			f = f.Right()
		}
		if f != start {
			t.Errorf("Four right turns from %v ended at %v", start, f)
		}
	}
}

func TestParseFacing(t *testing.T) {
	f, err := ParseFacing("Left")
	if err != nil || f != FacingLeft {
		t.Errorf("Expected left, got %v (%v)", f, err)
	}
	if _, err := ParseFacing("up"); err == nil {
		t.Error("Expected an error for an unknown facing")
	}
}

func TestPlayer_RotateKeepsMotion(t *testing.T) {
	p := NewPlayerData(0, Vector{}, FacingForward)
	s := SpriteData{Position: Vector{X: 300, Y: 400}, Velocity: Vector{X: 3, Y: -3}}

	p.RotateLeft(&s)
	if p.Facing != FacingLeft || s.Image != cfg.ImagePlaneLeft {
		t.Errorf("Expected left facing image, got %v / %s", p.Facing, s.Image)
	}
	p.RotateRight(&s)
	p.RotateRight(&s)
	if p.Facing != FacingRight || s.Image != cfg.ImagePlaneRight {
		t.Errorf("Expected right facing image, got %v / %s", p.Facing, s.Image)
	}
	if s.Position != (Vector{X: 300, Y: 400}) || s.Velocity != (Vector{X: 3, Y: -3}) {
		t.Errorf("Rotation changed motion: pos %v vel %v", s.Position, s.Velocity)
	}
}

func TestPlayer_MoveClampsAtEdges(t *testing.T) {
	tests := []struct {
		name    string
		dir     Direction
		pos     Vector
		wantPos Vector
		wantVel Vector
	}{
		{"left edge", DirLeft, Vector{X: 40, Y: 300}, Vector{X: 50, Y: 300}, Vector{X: 0, Y: 6}},
		{"right edge", DirRight, Vector{X: 1380, Y: 300}, Vector{X: 1380, Y: 300}, Vector{X: 0, Y: 6}},
		{"top edge", DirForward, Vector{X: 500, Y: 10}, Vector{X: 500, Y: 80}, Vector{X: 6, Y: 0}},
		{"bottom edge", DirBackward, Vector{X: 500, Y: 800}, Vector{X: 500, Y: 750}, Vector{X: 6, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayerData(0, Vector{}, FacingForward)
			s := SpriteData{Position: tt.pos, Velocity: Vector{X: 6, Y: 6}}
			p.Move(&s, tt.dir, testField)
			if s.Position != tt.wantPos {
				t.Errorf("Expected position %v, got %v", tt.wantPos, s.Position)
			}
			if s.Velocity != tt.wantVel {
				t.Errorf("Expected velocity %v, got %v", tt.wantVel, s.Velocity)
			}
		})
	}
}

func TestPlayer_MoveThrust(t *testing.T) {
	p := NewPlayerData(0, Vector{}, FacingForward)
	s := SpriteData{Position: Vector{X: 500, Y: 500}}

	p.Move(&s, DirLeft, testField)
	if s.Velocity != (Vector{X: -3}) {
		t.Errorf("Expected (-3, 0), got %v", s.Velocity)
	}

	// Left wins over every other bit
	p.Move(&s, DirLeft|DirBackward|DirRight, testField)
	if s.Velocity != (Vector{X: -6}) {
		t.Errorf("Expected (-6, 0), got %v", s.Velocity)
	}

	p.Move(&s, DirForward|DirBackward, testField)
	if s.Velocity != (Vector{X: -6, Y: -3}) {
		t.Errorf("Expected (-6, -3), got %v", s.Velocity)
	}

	p.Move(&s, 0, testField)
	if s.Velocity != (Vector{}) {
		t.Errorf("No direction should stop the plane, got %v", s.Velocity)
	}
}

func TestPlayer_EngineHysteresis(t *testing.T) {
	p := NewPlayerData(0, Vector{}, FacingForward)

	if cue := p.UpdateEngine(30, 0.1); cue != cfg.SoundNone || p.Engine != EngineStop {
		t.Fatalf("Speed inside the band must keep the engine stopped, got %v", p.Engine)
	}
	if cue := p.UpdateEngine(36, 0.1); cue != cfg.SoundJetStart || p.Engine != EngineStart {
		t.Fatalf("Expected start cue above 35, got cue %v state %v", cue, p.Engine)
	}
	if cue := p.UpdateEngine(30, 0.1); cue != cfg.SoundNone || p.Engine != EngineStart {
		t.Fatalf("Speed inside the band must keep the engine running, got %v", p.Engine)
	}
	if cue := p.UpdateEngine(30, 1.0); cue != cfg.SoundJetCabin {
		t.Errorf("Expected a cabin cue after the interval, got %v", cue)
	}
	if p.EngineTimer != 0 {
		t.Errorf("Cabin cue should reset the timer, got %f", p.EngineTimer)
	}
	if cue := p.UpdateEngine(20, 0.1); cue != cfg.SoundJetStop || p.Engine != EngineStop {
		t.Errorf("Expected stop cue below 25, got cue %v state %v", cue, p.Engine)
	}
}

func TestPlayer_ExplosionLifecycle(t *testing.T) {
	p := NewPlayerData(0, Vector{}, FacingForward)
	s := SpriteData{Position: Vector{X: 200, Y: 300}, Velocity: Vector{X: 3, Y: 3}}
	lives := LivesData{Lives: 3, MaxLives: 3}

	if p.AdvanceExplosion(&s) {
		t.Fatal("AdvanceExplosion must report false when not exploding")
	}

	p.Engine = EngineStart
	p.Explode(&s, &lives)
	if !p.Exploding || lives.Lives != 2 {
		t.Fatalf("Expected exploding with 2 lives, got %v / %d", p.Exploding, lives.Lives)
	}
	if p.Explosion.Position != s.Position || p.Explosion.Current != 0 {
		t.Errorf("Explosion should start at the plane on frame 0, got %v frame %d",
			p.Explosion.Position, p.Explosion.Current)
	}

	frames := p.Explosion.FrameCount()
	for i := 1; i < frames; i++ {
		if !p.AdvanceExplosion(&s) {
			t.Fatalf("Explosion ended early at step %d", i)
		}
	}
	if p.AdvanceExplosion(&s) {
		t.Fatal("Explosion should end after every frame was shown")
	}
	if p.Exploding || p.ExplosionFrame != 0 {
		t.Errorf("Expected state reset, got exploding=%v frame=%d", p.Exploding, p.ExplosionFrame)
	}
	if s.Velocity != (Vector{}) || p.Engine != EngineStop {
		t.Errorf("Expected plane at rest with engine stopped, got %v / %v", s.Velocity, p.Engine)
	}
}

func TestLives_NeverNegative(t *testing.T) {
	l := LivesData{Lives: 1, MaxLives: 3}
	l.Decrement()
	l.Decrement()
	if l.Lives != 0 || !l.Out() {
		t.Errorf("Expected 0 lives and out, got %d", l.Lives)
	}
}

func TestPlayer_CooldownSlots(t *testing.T) {
	p := NewPlayerData(0, Vector{}, FacingForward)
	p.Cooldown(1).Trigger(200)
	if p.Fire.Counter != 200 || p.Fire2.Counter != 0 {
		t.Errorf("Slot 1 should only touch Fire, got %d / %d", p.Fire.Counter, p.Fire2.Counter)
	}
	p.Cooldown(2).Trigger(150)
	if p.Fire2.Counter != 150 {
		t.Errorf("Slot 2 should touch Fire2, got %d", p.Fire2.Counter)
	}
}
