package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hoopshot/hoopshot/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ui           *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once

	enterWasPressed bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ui.UI.Update()

	// Enter starts the game without reaching for the mouse
	enterPressed := ebiten.IsKeyPressed(ebiten.KeyEnter)
	if enterPressed && !ms.enterWasPressed {
		ms.startGame()
	}
	ms.enterWasPressed = enterPressed
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ui = ui.NewMenuUI(ms.startGame)
}

func (ms *MenuScene) startGame() {
	ms.sceneChanger.ChangeScene(NewCourtScene(ms.sceneChanger))
}
