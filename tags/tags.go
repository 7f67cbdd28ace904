package tags

import "github.com/yohamta/donburi"

var (
	Ball = donburi.NewTag().SetName("Ball")
	Hoop = donburi.NewTag().SetName("Hoop")
)
