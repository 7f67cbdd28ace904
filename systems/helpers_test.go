package systems

import (
	"math"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
	"github.com/hoopshot/hoopshot/systems/factory"
)

// newTestECS builds a headless world with the standard court entities. No
// clock is created; tests that exercise the basket cooldown inject their own
// via setTestClock.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateHoops(e)
	factory.CreateBall(e)
	factory.CreateShot(e)
	factory.CreateScoreboard(e)
	return e
}

// setTestClock installs a clock that reads the given pointer, so tests can
// move time forward without sleeping.
func setTestClock(e *ecs.ECS, now *time.Time) {
	entry := e.World.Entry(e.World.Create(components.Clock))
	components.Clock.SetValue(entry, components.ClockData{
		Now: func() time.Time { return *now },
	})
}

// pressFrame simulates one input frame with the given actions held. It
// replaces UpdateInput, which polls the real keyboard.
func pressFrame(e *ecs.ECS, ids ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

func getBall(e *ecs.ECS) *components.BallData {
	entry, _ := components.Ball.First(e.World)
	return components.Ball.Get(entry)
}

func getShot(e *ecs.ECS) *components.ShotData {
	entry, _ := components.Shot.First(e.World)
	return components.Shot.Get(entry)
}

func getScore(e *ecs.ECS) *components.ScoreData {
	entry, _ := components.Score.First(e.World)
	return components.Score.Get(entry)
}

func getCamera(e *ecs.ECS) *components.CameraData {
	entry, _ := components.Camera.First(e.World)
	return components.Camera.Get(entry)
}

// hoopAt returns the hoop whose center sits at x
func hoopAt(e *ecs.ECS, x float64) *components.HoopData {
	var found *components.HoopData
	components.Hoop.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hoop.Get(entry)
		if h.CenterX == x {
			found = h
		}
	})
	return found
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
