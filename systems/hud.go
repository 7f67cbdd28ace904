package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
	"github.com/hoopshot/hoopshot/fonts"
)

var hudBoldFace font.Face
var hudSmallFace font.Face

// DrawHUD renders the scoreboard, the shot statistics line, the power bar,
// and the active view indicator. It re-renders every frame from the current
// snapshot, so every mutating event is reflected immediately.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if hudBoldFace == nil {
		hudBoldFace = fonts.Bold.Get()
		hudSmallFace = fonts.Small.Get()
	}

	m := cfg.UI.Margin

	if scoreEntry, ok := components.Score.First(e.World); ok {
		score := components.Score.Get(scoreEntry)

		scoreStr := fmt.Sprintf("%s %d - %d %s",
			components.TeamHome, score.HomeScore, score.AwayScore, components.TeamAway)
		text.Draw(screen, scoreStr, hudBoldFace, int(m), 22, cfg.UI.ScoreTextColor)

		statsStr := fmt.Sprintf("SHOTS %d/%d   ACCURACY %.0f%%",
			score.ShotsMade, score.ShotsAttempted, score.Accuracy()*100)
		text.Draw(screen, statsStr, hudSmallFace, int(m), 36, cfg.UI.StatsTextColor)
	}

	if shotEntry, ok := components.Shot.First(e.World); ok {
		drawPowerBar(screen, components.Shot.Get(shotEntry).Power)
	}

	if camEntry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(camEntry)
		viewStr := fmt.Sprintf("VIEW %s [O]", cam.View)
		bounds := text.BoundString(hudSmallFace, viewStr) //nolint:staticcheck // TODO: migrate to text/v2
		text.Draw(screen, viewStr, hudSmallFace,
			cfg.C.Width-bounds.Dx()-int(m), cfg.C.Height-int(m), cfg.UI.StatsTextColor)
	}
}

// drawPowerBar renders the power indicator in the bottom-left corner
func drawPowerBar(screen *ebiten.Image, power float64) {
	m := float32(cfg.UI.Margin)
	w := float32(cfg.UI.PowerBarWidth)
	h := float32(cfg.UI.PowerBarHeight)
	y := float32(cfg.C.Height) - m - h

	// Background (dark gray)
	vector.DrawFilledRect(screen, m, y, w, h, cfg.UI.PowerBarBg, false)

	// Current power (green)
	vector.DrawFilledRect(screen, m, y, w*float32(power), h, cfg.UI.PowerBarFg, false)

	label := fmt.Sprintf("POWER %.0f%%", power*100)
	text.Draw(screen, label, hudSmallFace, int(m+w)+6, int(y+h)-2, cfg.UI.ScoreTextColor)
}
