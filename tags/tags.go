package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Star   = donburi.NewTag().SetName("Star")
)

// Resolv tags for the collision broad phase
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvStar   = "Star"
)
