package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for character bodies. Static geometry is not in the resolv
// space, so there is no solid tag.
const (
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvEnemy     = "Enemy"
)
