package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData supplies the current instant for the basket cooldown. Tests swap
// Now for a fake so the cooldown can be exercised without real delays.
type ClockData struct {
	Now func() time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
