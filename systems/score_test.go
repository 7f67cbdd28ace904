package systems

import (
	"testing"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

func TestResetScoreAction(t *testing.T) {
	e := newTestECS()
	score := getScore(e)
	score.HomeScore = 4
	score.AwayScore = 2
	score.ShotsAttempted = 5
	score.ShotsMade = 3

	pressFrame(e, cfg.ActionResetScore)
	UpdateScore(e)

	if *score != (components.ScoreData{}) {
		t.Errorf("score after reset = %+v, want all zero", score)
	}
	if fb := getOrCreateFeedback(e); fb.Text != cfg.Feedback.ResetText {
		t.Errorf("feedback = %q, want %q", fb.Text, cfg.Feedback.ResetText)
	}
}

func TestResetScoreLeavesBallAlone(t *testing.T) {
	e := newTestECS()
	ball := getBall(e)
	ball.Mode = components.BallInFlight
	ball.ShotResolved = false
	ball.Velocity = components.Vec3{X: 2, Y: 5}

	pressFrame(e, cfg.ActionResetScore)
	UpdateScore(e)

	if ball.Mode != components.BallInFlight {
		t.Error("scoreboard reset aborted the flight")
	}
	if ball.ShotResolved {
		t.Error("scoreboard reset resolved the pending shot")
	}
}

func TestResetScoreRequiresFreshPress(t *testing.T) {
	e := newTestECS()
	score := getScore(e)
	score.HomeScore = 2

	// Key held over two ticks: the second tick is not a fresh press
	pressFrame(e, cfg.ActionResetScore)
	UpdateScore(e)
	score.HomeScore = 2
	pressFrame(e, cfg.ActionResetScore)
	UpdateScore(e)

	if score.HomeScore != 2 {
		t.Error("held reset key cleared the score again")
	}
}
