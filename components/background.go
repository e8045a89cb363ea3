package components

import "github.com/yohamta/donburi"

type BackgroundLayer struct {
	Image  string
	Offset float64 // always in (-width, 0]
	Speed  float64
}

// Scroll moves the layer left by its speed and wraps it within width.
func (l *BackgroundLayer) Scroll(width float64) {
	if width <= 0 {
		return
	}
	l.Offset -= l.Speed
	for l.Offset <= -width {
		l.Offset += width
	}
	for l.Offset > 0 {
		l.Offset -= width
	}
}

type BackgroundData struct {
	Layers []BackgroundLayer
	Step   Ticker
}

var Background = donburi.NewComponentType[BackgroundData]()
