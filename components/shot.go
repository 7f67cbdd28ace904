package components

import "github.com/yohamta/donburi"

// ShotData holds the shot power in [0,1]. Power persists across shots.
type ShotData struct {
	Power float64
}

var Shot = donburi.NewComponentType[ShotData]()
