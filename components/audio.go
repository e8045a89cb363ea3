package components

import (
	cfg "github.com/automoto/skyduel/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised during the frame (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
