package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FeedbackData is a singleton holding the active feedback overlay message.
// The message holds at full opacity for HoldTimer frames, then fades out on
// the tween. Text == "" means nothing is displayed.
type FeedbackData struct {
	Text      string
	Color     color.RGBA
	HoldTimer int // frames remaining at full opacity
	Fade      *gween.Tween
	Alpha     float32
}

var Feedback = donburi.NewComponentType[FeedbackData]()
