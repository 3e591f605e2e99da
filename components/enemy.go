package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Speed float64 // pixels per second
}

var Enemy = donburi.NewComponentType[EnemyData]()
