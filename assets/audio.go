package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	cfg "github.com/automoto/skyduel/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const bytesPerFrame = 4 // 16-bit stereo

// AudioLoader synthesizes sound effects and caches their PCM bytes
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Sound.SFX[id]
	if !ok {
		return fmt.Errorf("no tone configured for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for the sound each time so cues can overlap.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM: a
// frequency sweep from StartHz to EndHz mixed with noise, fading out linearly.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	frames := int(t.Seconds * float64(sampleRate))
	if frames <= 0 {
		return nil
	}
	buf := make([]byte, frames*bytesPerFrame)
	rng := rand.New(rand.NewSource(int64(t.StartHz*1000 + t.EndHz)))

	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := waveform(t.Waveform, phase)*(1-t.Noise) + (rng.Float64()*2-1)*t.Noise
		v *= (1 - progress) * 0.8

		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], uint16(s))
	}
	return buf
}

// waveform samples one period of the named wave at phase in [0, 1).
func waveform(name string, phase float64) float64 {
	switch name {
	case "square":
		if phase < 0.5 {
			return 1
		}
		return -1
	case "saw":
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
