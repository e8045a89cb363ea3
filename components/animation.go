package components

import (
	"image"
)

// AnimatedSpriteData is a sprite backed by a sheet of equally sized frames,
// laid out left to right and wrapped after Columns frames.
type AnimatedSpriteData struct {
	SpriteData
	FrameWidth  int
	FrameHeight int
	Frames      int
	Columns     int
	Current     int
}

func NewAnimatedSprite(img string, frameWidth, frameHeight, frames, columns int) AnimatedSpriteData {
	if columns <= 0 {
		columns = frames
	}
	return AnimatedSpriteData{
		SpriteData: SpriteData{
			Image:  img,
			Width:  float64(frameWidth),
			Height: float64(frameHeight),
		},
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Frames:      frames,
		Columns:     columns,
	}
}

// SetFrame selects frame n, clamped into [0, Frames).
func (a *AnimatedSpriteData) SetFrame(n int) {
	switch {
	case a.Frames <= 0:
		a.Current = 0
	case n < 0:
		a.Current = 0
	case n >= a.Frames:
		a.Current = a.Frames - 1
	default:
		a.Current = n
	}
}

func (a *AnimatedSpriteData) FrameCount() int {
	return a.Frames
}

// FrameRect returns the source rectangle of the current frame on the sheet.
func (a *AnimatedSpriteData) FrameRect() image.Rectangle {
	cols := a.Columns
	if cols <= 0 {
		cols = 1
	}
	x := (a.Current % cols) * a.FrameWidth
	y := (a.Current / cols) * a.FrameHeight
	return image.Rect(x, y, x+a.FrameWidth, y+a.FrameHeight)
}
