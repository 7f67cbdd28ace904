package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

// UpdateScore handles the scoreboard reset action. The ball is left alone;
// resetting scores mid-flight does not abort the flight.
func UpdateScore(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionResetScore).JustPressed {
		return
	}

	scoreEntry, ok := components.Score.First(e.World)
	if !ok {
		return
	}
	components.Score.Get(scoreEntry).Reset()
	ShowFeedback(e, cfg.Feedback.ResetText, cfg.LightBlue)
}
