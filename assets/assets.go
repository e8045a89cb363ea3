package assets

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	cfg "github.com/automoto/skyduel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprites are drawn once on first use and cached by key.
var imageCache = map[string]*ebiten.Image{}

var imageBuilders = map[string]func() *ebiten.Image{
	cfg.ImagePlaneForward:  func() *ebiten.Image { return newPlane(0, -1, cfg.LightBlue) },
	cfg.ImagePlaneLeft:     func() *ebiten.Image { return newPlane(-1, 0, cfg.LightBlue) },
	cfg.ImagePlaneBackward: func() *ebiten.Image { return newPlane(0, 1, cfg.LightBlue) },
	cfg.ImagePlaneRight:    func() *ebiten.Image { return newPlane(1, 0, cfg.LightBlue) },
	cfg.ImageEnemy:         newEnemy,
	cfg.ImageBulletOne:     func() *ebiten.Image { return newBullet(cfg.Yellow) },
	cfg.ImageBulletTwo:     func() *ebiten.Image { return newBullet(cfg.Green) },
	cfg.ImageBulletEnemy:   func() *ebiten.Image { return newBullet(cfg.Red) },
	cfg.ImageExplosion:     newExplosionSheet,
	cfg.ImageSkyFar:        newSkyFar,
	cfg.ImageSkyNear:       newSkyNear,
}

// GetImage returns the sprite image for key. Unknown keys panic.
func GetImage(key string) *ebiten.Image {
	if img, ok := imageCache[key]; ok {
		return img
	}
	build, ok := imageBuilders[key]
	if !ok {
		panic(fmt.Sprintf("Image %s not found", key))
	}
	img := build()
	imageCache[key] = img
	return img
}

// PreloadImages builds every sprite so the first frame doesn't stall.
func PreloadImages() {
	for key := range imageBuilders {
		GetImage(key)
	}
}

// newPlane draws a plane whose nose points along (dx, dy).
func newPlane(dx, dy float32, body color.RGBA) *ebiten.Image {
	w, h := cfg.Player.FrameWidth, cfg.Player.FrameHeight
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	size := float32(min(w, h))

	// fuselage along the nose axis, wings across it
	fuselageLen, fuselageW := size*0.8, size*0.18
	wingLen, wingW := size*0.75, size*0.16
	if dx != 0 {
		vector.FillRect(img, cx-fuselageLen/2, cy-fuselageW/2, fuselageLen, fuselageW, body, false)
		vector.FillRect(img, cx-wingW/2-dx*size*0.05, cy-wingLen/2, wingW, wingLen, body, false)
		vector.FillRect(img, cx-dx*size*0.35-wingW/4, cy-size*0.18, wingW/2, size*0.36, body, false)
	} else {
		vector.FillRect(img, cx-fuselageW/2, cy-fuselageLen/2, fuselageW, fuselageLen, body, false)
		vector.FillRect(img, cx-wingLen/2, cy-wingW/2-dy*size*0.05, wingLen, wingW, body, false)
		vector.FillRect(img, cx-size*0.18, cy-dy*size*0.35-wingW/4, size*0.36, wingW/2, body, false)
	}
	vector.DrawFilledCircle(img, cx+dx*size*0.38, cy+dy*size*0.38, size*0.08, cfg.White, true)
	return img
}

func newEnemy() *ebiten.Image {
	w, h := cfg.Enemy.FrameWidth, cfg.Enemy.FrameHeight
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	hull := color.RGBA{R: 150, G: 150, B: 160, A: 255}

	vector.FillRect(img, fw*0.1, fh*0.4, fw*0.8, fh*0.2, hull, false)
	vector.FillRect(img, fw*0.4, fh*0.05, fw*0.2, fh*0.9, hull, false)
	vector.DrawFilledCircle(img, fw*0.88, fh*0.5, fh*0.1, cfg.Red, true)
	return img
}

func newBullet(c color.RGBA) *ebiten.Image {
	w, h := cfg.Bullet.FrameWidth, cfg.Bullet.FrameHeight
	img := ebiten.NewImage(w, h)
	vector.DrawFilledCircle(img, float32(w)/2, float32(h)/2, float32(min(w, h))/2, c, true)
	return img
}

// newExplosionSheet draws a fireball that swells and fades over the frames.
func newExplosionSheet() *ebiten.Image {
	ex := cfg.Explosion
	rows := (ex.Frames + ex.Columns - 1) / ex.Columns
	img := ebiten.NewImage(ex.Columns*ex.FrameWidth, rows*ex.FrameHeight)

	maxR := float32(min(ex.FrameWidth, ex.FrameHeight)) / 2
	for i := 0; i < ex.Frames; i++ {
		t := float32(i+1) / float32(ex.Frames)
		cx := float32((i%ex.Columns)*ex.FrameWidth) + float32(ex.FrameWidth)/2
		cy := float32((i/ex.Columns)*ex.FrameHeight) + float32(ex.FrameHeight)/2
		fade := uint8(255 * (1 - t*0.8))

		vector.DrawFilledCircle(img, cx, cy, maxR*t, color.RGBA{R: fade, G: fade / 3, A: fade}, true)
		vector.DrawFilledCircle(img, cx, cy, maxR*t*0.6, color.RGBA{R: fade, G: fade/2 + fade/3, B: fade / 6, A: fade}, true)
	}
	return img
}

func newSkyFar() *ebiten.Image {
	w, h := cfg.C.Width, cfg.C.Height
	img := ebiten.NewImage(w, h)
	bands := 27
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands-1)
		c := color.RGBA{
			R: uint8(20 + 60*t),
			G: uint8(60 + 90*t),
			B: uint8(140 + 90*t),
			A: 255,
		}
		y := float32(i * h / bands)
		vector.FillRect(img, 0, y, float32(w), float32(h/bands+1), c, false)
	}
	return img
}

// newSkyNear scatters clouds. Clouds near the left and right edges line up so
// the layer tiles horizontally.
func newSkyNear() *ebiten.Image {
	w, h := cfg.C.Width, cfg.C.Height
	img := ebiten.NewImage(w, h)
	rng := rand.New(rand.NewSource(7))
	cloud := color.RGBA{R: 235, G: 240, B: 250, A: 200}

	for i := 0; i < 14; i++ {
		x := rng.Float64() * float64(w)
		y := 60 + rng.Float64()*float64(h-180)
		r := 18 + rng.Float64()*26
		for _, offset := range []float64{-float64(w), 0, float64(w)} {
			for k := 0; k < 4; k++ {
				px := x + offset + float64(k)*r*0.9
				py := y + math.Sin(float64(k))*r*0.3
				vector.DrawFilledCircle(img, float32(px), float32(py), float32(r), cloud, true)
			}
		}
	}
	return img
}
