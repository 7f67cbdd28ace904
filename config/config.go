package config

import (
	"image/color"
	"math"
	"time"
)

// CourtConfig describes the court geometry in court space: meters, origin at
// center court, x along the long axis, z along the short axis, y up.
type CourtConfig struct {
	HalfLength float64 // clamp bound on |x| while grounded
	HalfWidth  float64 // clamp bound on |z| while grounded
	FloorY     float64 // ground plane height
	HoopX      float64 // hoop centers sit at (±HoopX, RimHeight, 0)
	RimHeight  float64
	RimRadius  float64 // visual rim size, no effect on detection
}

// BallConfig contains ball dimensions and grounded steering values
type BallConfig struct {
	Radius   float64
	RestY    float64 // resting/reset height of the ball center
	MoveStep float64 // grounded displacement per tick, meters
}

// ShotConfig contains launch parameters for a shot
type ShotConfig struct {
	BaseSpeed    float64 // launch speed at zero power, before compensation
	PowerRange   float64 // speed added at full power, before compensation
	Compensation float64 // fixed multiplier applied to launch speed
	CloseAngle   float64 // radians, used inside CloseRange
	FarAngle     float64 // radians, used at or beyond CloseRange
	CloseRange   float64 // horizontal distance to hoop that switches the arc
}

// PhysicsConfig contains flight integration and ground contact values
type PhysicsConfig struct {
	Gravity        float64 // m/s², negative is down
	DT             float64 // fixed logical timestep
	SpeedScale     float64 // multiplier on position integration and spin rate
	StopThreshold  float64 // all velocity components at or below this stop the ball
	Bounciness     float64 // vertical restitution per bounce
	GroundFriction float64 // horizontal damping per bounce
	ContactEpsilon float64 // ground contact slack
}

// BasketConfig contains basket detection and the made-shot response
type BasketConfig struct {
	DetectRadius float64       // horizontal window around the hoop center
	HeightWindow float64       // multiple of ball radius around rim height
	RearmDepth   float64       // multiple of ball radius below rim that re-arms a hoop
	Cooldown     time.Duration // minimum wall-clock gap between made baskets
	Points       int
	DropPull     float64 // horizontal pull toward the hoop center on a make
	DropSpeed    float64 // downward speed through the net on a make
}

// PowerConfig contains shot power adjustment values
type PowerConfig struct {
	Step    float64 // change per tick while a power key is held
	Initial float64
}

// FeedbackConfig contains shot feedback overlay configuration
type FeedbackConfig struct {
	MadeText    string
	MissText    string
	ResetText   string
	HoldFrames  int     // frames at full opacity before the fade starts
	FadeSeconds float32 // fade-out duration
	TopMargin   float64
}

// UIConfig contains HUD layout and colors
type UIConfig struct {
	Margin         float64
	PowerBarWidth  float64
	PowerBarHeight float64
	PowerBarBg     color.RGBA
	PowerBarFg     color.RGBA
	ScoreTextColor color.RGBA
	StatsTextColor color.RGBA
}

// RenderConfig controls the court-space to screen projection
type RenderConfig struct {
	PixelsPerMeter   float64
	SideFloorY       float64 // screen y of the floor line in the side view
	BallVisualRadius float64 // on-screen ball radius, pixels
	CourtColor       color.RGBA
	LineColor        color.RGBA
	BallColor        color.RGBA
	BallSeamColor    color.RGBA
	RimColor         color.RGBA
	BoardColor       color.RGBA
	SkyColor         color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the court
}

// Global configuration instances
var C *Config
var Court CourtConfig
var Ball BallConfig
var Shot ShotConfig
var Physics PhysicsConfig
var Basket BasketConfig
var Power PowerConfig
var Feedback FeedbackConfig
var UI UIConfig
var Render RenderConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Court = CourtConfig{
		HalfLength: 14.8,
		HalfWidth:  7.3,
		FloorY:     0,
		HoopX:      15,
		RimHeight:  3.05,
		RimRadius:  0.23,
	}

	Ball = BallConfig{
		Radius:   0.12,
		RestY:    0.12 + 0.1,
		MoveStep: 0.05,
	}

	Shot = ShotConfig{
		BaseSpeed:    6,
		PowerRange:   6,
		Compensation: 1.25,
		CloseAngle:   72 * math.Pi / 180,
		FarAngle:     62 * math.Pi / 180,
		CloseRange:   5,
	}

	Physics = PhysicsConfig{
		Gravity:        -9.8,
		DT:             1.0 / 60.0,
		SpeedScale:     0.8,
		StopThreshold:  1.0,
		Bounciness:     0.7,
		GroundFriction: 0.6,
		ContactEpsilon: 0.01,
	}

	Basket = BasketConfig{
		DetectRadius: 0.25,
		HeightWindow: 1.2,
		RearmDepth:   2.0,
		Cooldown:     2 * time.Second,
		Points:       2,
		DropPull:     0.3,
		DropSpeed:    3,
	}

	Power = PowerConfig{
		Step:    0.01,
		Initial: 0.5,
	}

	Feedback = FeedbackConfig{
		MadeText:    "SHOT MADE!",
		MissText:    "MISSED SHOT",
		ResetText:   "SCOREBOARD RESET",
		HoldFrames:  45,
		FadeSeconds: 1.0,
		TopMargin:   40,
	}

	UI = UIConfig{
		Margin:         10,
		PowerBarWidth:  130,
		PowerBarHeight: 13,
		PowerBarBg:     color.RGBA{40, 40, 40, 255},
		PowerBarFg:     color.RGBA{40, 220, 40, 255},
		ScoreTextColor: White,
		StatsTextColor: color.RGBA{200, 200, 200, 255},
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}

	Render = RenderConfig{
		PixelsPerMeter:   19,
		SideFloorY:       320,
		BallVisualRadius: 5,
		CourtColor:       color.RGBA{178, 110, 60, 255},
		LineColor:        White,
		BallColor:        color.RGBA{222, 120, 40, 255},
		BallSeamColor:    color.RGBA{90, 45, 15, 255},
		RimColor:         color.RGBA{230, 80, 40, 255},
		BoardColor:       color.RGBA{235, 235, 235, 255},
		SkyColor:         color.RGBA{24, 26, 38, 255},
	}
}
