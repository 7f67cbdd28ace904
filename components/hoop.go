package components

import "github.com/yohamta/donburi"

// HoopData identifies one of the two fixed hoops. Flagged is set when a
// basket fires on this hoop and cleared once the ball has dropped far enough
// below the rim, so one approach cannot score twice.
type HoopData struct {
	CenterX float64 // hoop center sits at (CenterX, rim height, 0)
	Flagged bool
}

var Hoop = donburi.NewComponentType[HoopData]()
