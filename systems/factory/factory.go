package factory

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/archetypes"
	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

// CreateBall spawns the single ball, resting at center court
func CreateBall(e *ecs.ECS) *donburi.Entry {
	ball := archetypes.Ball.Spawn(e)
	components.Ball.SetValue(ball, components.BallData{
		Position:     components.Vec3{Y: cfg.Ball.RestY},
		Mode:         components.BallGrounded,
		RotationAxis: components.Vec3{Z: 1},
		ShotResolved: true, // no flight yet, so no outcome is pending
	})
	return ball
}

// CreateHoops spawns the two fixed hoops on the court's long axis
func CreateHoops(e *ecs.ECS) {
	for _, x := range []float64{-cfg.Court.HoopX, cfg.Court.HoopX} {
		hoop := archetypes.Hoop.Spawn(e)
		components.Hoop.SetValue(hoop, components.HoopData{CenterX: x})
	}
}

// CreateShot spawns the shot parameters singleton
func CreateShot(e *ecs.ECS) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Shot))
	components.Shot.SetValue(entry, components.ShotData{Power: cfg.Power.Initial})
	return entry
}

// CreateScoreboard spawns the score singleton with all counters at zero
func CreateScoreboard(e *ecs.ECS) *donburi.Entry {
	return e.World.Entry(e.World.Create(components.Score))
}

// CreateCamera spawns the camera singleton with the given starting view
func CreateCamera(e *ecs.ECS, view components.ViewID) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Camera))
	components.Camera.SetValue(entry, components.CameraData{View: view})
	return entry
}

// CreateClock spawns the time source used by the basket cooldown
func CreateClock(e *ecs.ECS) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Clock))
	components.Clock.SetValue(entry, components.ClockData{Now: time.Now})
	return entry
}
