package components

import "github.com/yohamta/donburi"

// ViewID selects how court space is projected to the screen
type ViewID int

const (
	// ViewSide projects x/y: the classic broadcast angle showing shot arcs
	ViewSide ViewID = iota
	// ViewTop projects x/z: a tactical overhead of the court plane
	ViewTop
	ViewCount
)

func (v ViewID) String() string {
	if v == ViewTop {
		return "TOP"
	}
	return "SIDE"
}

type CameraData struct {
	View ViewID
}

var Camera = donburi.NewComponentType[CameraData]()
