package components

import (
	cfg "github.com/automoto/skyduel/config"
	"github.com/yohamta/donburi"
)

// BulletPolicy picks a bullet's fixed per-frame displacement.
type BulletPolicy int

const (
	BulletPlayerOne BulletPolicy = iota // flies left
	BulletPlayerTwo                     // flies right
	BulletEnemy                         // falls
)

func (p BulletPolicy) Velocity() Vector {
	switch p {
	case BulletPlayerOne:
		return Vector{X: -cfg.Bullet.PlayerSpeed}
	case BulletPlayerTwo:
		return Vector{X: cfg.Bullet.PlayerSpeed}
	default:
		return Vector{Y: cfg.Bullet.EnemySpeed}
	}
}

func (p BulletPolicy) Image() string {
	switch p {
	case BulletPlayerOne:
		return cfg.Bullet.PlayerOneImage
	case BulletPlayerTwo:
		return cfg.Bullet.PlayerTwoImage
	default:
		return cfg.Bullet.EnemyImage
	}
}

type BulletData struct {
	Policy BulletPolicy
	Spent  bool // hit something; removed at the end of the frame
}

var Bullet = donburi.NewComponentType[BulletData]()
