package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

// UpdatePower adjusts shot power while a power key is held: one step per
// tick, not per key-repeat event, clamped to [0,1].
func UpdatePower(e *ecs.ECS) {
	shotEntry, ok := components.Shot.First(e.World)
	if !ok {
		return
	}
	shot := components.Shot.Get(shotEntry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPowerUp).Pressed {
		shot.Power += cfg.Power.Step
	}
	if GetAction(input, cfg.ActionPowerDown).Pressed {
		shot.Power -= cfg.Power.Step
	}

	if shot.Power < 0 {
		shot.Power = 0
	} else if shot.Power > 1 {
		shot.Power = 1
	}
}
