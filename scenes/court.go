package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
	"github.com/hoopshot/hoopshot/systems"
	"github.com/hoopshot/hoopshot/systems/factory"
)

// CourtScene runs the basketball court simulation
type CourtScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewCourtScene creates a new court scene
func NewCourtScene(sc SceneChanger) *CourtScene {
	return &CourtScene{sceneChanger: sc}
}

func (cs *CourtScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	// Escape returns to the menu; the court state is discarded
	if inputEntry, ok := components.Input.First(cs.ecs.World); ok {
		input := components.Input.Get(inputEntry)
		if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
			cs.sceneChanger.ChangeScene(NewMenuScene(cs.sceneChanger))
		}
	}
}

func (cs *CourtScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CourtScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input first, then motion, then outcome resolution. The resolver
	// depends on the positions the motion step just produced.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePower)
	e.AddSystem(systems.UpdateBallMotion)
	e.AddSystem(systems.UpdateShotResolution)
	e.AddSystem(systems.UpdateScore)
	e.AddSystem(systems.UpdateFeedback)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(ecs.LayerDefault, systems.DrawCourt)
	e.AddRenderer(ecs.LayerDefault, systems.DrawBall)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHUD)
	e.AddRenderer(ecs.LayerDefault, systems.DrawFeedback)

	cs.ecs = e

	factory.CreateClock(e)
	factory.CreateCamera(e, systems.StartView())
	factory.CreateHoops(e)
	factory.CreateBall(e)
	factory.CreateShot(e)
	factory.CreateScoreboard(e)
}
