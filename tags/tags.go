package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	Enemy           = donburi.NewTag().SetName("Enemy")
	PlayerOneBullet = donburi.NewTag().SetName("PlayerOneBullet")
	PlayerTwoBullet = donburi.NewTag().SetName("PlayerTwoBullet")
	EnemyBullet     = donburi.NewTag().SetName("EnemyBullet")
)

// Resolv tags for collision queries
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvBullet = "Bullet"
)
