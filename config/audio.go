package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Engine sounds
	SoundJetStart
	SoundJetStop
	SoundJetCabin
	// Combat sounds
	SoundShoot
	SoundEnemyShoot
	SoundExplosion
	// UI sounds
	SoundMenuSelect
)

// Tone describes a synthesized sound effect: a frequency sweep with a linear fade out.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Seconds  float64
	Noise    float64 // 0..1 mix of white noise
	Waveform string  // "sine", "square" or "saw"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	SFX               map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		SFX: map[SoundID]Tone{
			SoundJetStart:   {StartHz: 90, EndHz: 320, Seconds: 0.6, Noise: 0.35, Waveform: "saw"},
			SoundJetStop:    {StartHz: 320, EndHz: 70, Seconds: 0.6, Noise: 0.35, Waveform: "saw"},
			SoundJetCabin:   {StartHz: 140, EndHz: 150, Seconds: 0.9, Noise: 0.5, Waveform: "sine"},
			SoundShoot:      {StartHz: 880, EndHz: 440, Seconds: 0.12, Waveform: "square"},
			SoundEnemyShoot: {StartHz: 520, EndHz: 260, Seconds: 0.15, Waveform: "square"},
			SoundExplosion:  {StartHz: 120, EndHz: 30, Seconds: 0.8, Noise: 0.8, Waveform: "saw"},
			SoundMenuSelect: {StartHz: 660, EndHz: 990, Seconds: 0.1, Waveform: "sine"},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundJetCabin:  0.5,
			SoundExplosion: 1.4,
		},
	}
}
