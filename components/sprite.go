package components

import "github.com/yohamta/donburi"

// SpriteData is a drawable body. Velocity is a per-frame displacement.
type SpriteData struct {
	Position Vector
	Velocity Vector
	Image    string // key resolved by the assets package
	Width    float64
	Height   float64
	Hidden   bool
}

// Update advances the position by exactly one velocity step.
func (s *SpriteData) Update() {
	s.Position = s.Position.Add(s.Velocity)
}

var Sprite = donburi.NewComponentType[SpriteData]()
