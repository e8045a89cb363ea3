package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Shoot Cooldown
}

var Enemy = donburi.NewComponentType[EnemyData]()
