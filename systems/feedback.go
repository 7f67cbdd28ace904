package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
	"github.com/hoopshot/hoopshot/fonts"
)

// Cached font face for feedback rendering (lazy initialized)
var feedbackFontFace font.Face

// ShowFeedback replaces the active feedback message. The message holds at
// full opacity, then fades out on a tween. A presenter failure here is
// impossible by construction; the draw side simply reads this state.
func ShowFeedback(e *ecs.ECS, msg string, clr color.RGBA) {
	fb := getOrCreateFeedback(e)
	fb.Text = msg
	fb.Color = clr
	fb.HoldTimer = cfg.Feedback.HoldFrames
	fb.Fade = gween.New(1, 0, cfg.Feedback.FadeSeconds, ease.Linear)
	fb.Alpha = 1
}

// UpdateFeedback advances the hold timer and the fade tween
func UpdateFeedback(e *ecs.ECS) {
	fb := getOrCreateFeedback(e)
	if fb.Text == "" {
		return
	}
	if fb.HoldTimer > 0 {
		fb.HoldTimer--
		return
	}
	alpha, done := fb.Fade.Update(float32(cfg.Physics.DT))
	fb.Alpha = alpha
	if done {
		fb.Text = ""
		fb.Fade = nil
	}
}

// DrawFeedback renders the active message centered near the top of the screen
func DrawFeedback(e *ecs.ECS, screen *ebiten.Image) {
	fb := getOrCreateFeedback(e)
	if fb.Text == "" {
		return
	}

	if feedbackFontFace == nil {
		feedbackFontFace = fonts.Bold.Get()
	}

	bounds := text.BoundString(feedbackFontFace, fb.Text) //nolint:staticcheck // TODO: migrate to text/v2
	x := (cfg.C.Width - bounds.Dx()) / 2
	y := int(cfg.Feedback.TopMargin)
	text.Draw(screen, fb.Text, feedbackFontFace, x, y, fadeColor(fb.Color, fb.Alpha))
}

func getOrCreateFeedback(e *ecs.ECS) *components.FeedbackData {
	entry, ok := components.Feedback.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Feedback))
	}
	return components.Feedback.Get(entry)
}

// fadeColor scales a premultiplied RGBA color by alpha
func fadeColor(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
