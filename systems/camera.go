package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

// UpdateCamera cycles the projection view on the toggle action and persists
// the choice. The view never affects the simulation.
func UpdateCamera(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionToggleCamera).JustPressed {
		return
	}

	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	cam.View = (cam.View + 1) % components.ViewCount
	SaveCurrentSettings(cam)
}
