package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

// project maps a court-space point to screen pixels under the given view.
// Side view shows x/y (shot arcs), top view shows x/z (the court plane).
func project(view components.ViewID, p components.Vec3) (float32, float32) {
	ppm := cfg.Render.PixelsPerMeter
	cx := float64(cfg.C.Width) / 2
	if view == components.ViewTop {
		cy := float64(cfg.C.Height) / 2
		return float32(cx + p.X*ppm), float32(cy + p.Z*ppm)
	}
	return float32(cx + p.X*ppm), float32(cfg.Render.SideFloorY - p.Y*ppm)
}

func activeView(e *ecs.ECS) components.ViewID {
	if camEntry, ok := components.Camera.First(e.World); ok {
		return components.Camera.Get(camEntry).View
	}
	return components.ViewSide
}

// DrawCourt renders the background, the court surface, and both hoops
func DrawCourt(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.SkyColor)

	if activeView(e) == components.ViewTop {
		drawCourtTop(e, screen)
		return
	}
	drawCourtSide(e, screen)
}

func drawCourtSide(e *ecs.ECS, screen *ebiten.Image) {
	floorLeft, floorY := project(components.ViewSide, components.Vec3{X: -cfg.Court.HalfLength})
	floorRight, _ := project(components.ViewSide, components.Vec3{X: cfg.Court.HalfLength})

	vector.DrawFilledRect(screen, floorLeft, floorY,
		floorRight-floorLeft, float32(cfg.C.Height)-floorY, cfg.Render.CourtColor, false)

	// Half-court mark
	centerX, _ := project(components.ViewSide, components.Vec3{})
	vector.StrokeLine(screen, centerX, floorY, centerX, floorY+10, 1, cfg.Render.LineColor, false)

	components.Hoop.Each(e.World, func(entry *donburi.Entry) {
		drawHoopSide(screen, components.Hoop.Get(entry).CenterX)
	})
}

// drawHoopSide renders one hoop edge-on: pole, backboard, rim, and net
func drawHoopSide(screen *ebiten.Image, centerX float64) {
	sign := 1.0 // backboard sits behind the rim, away from center court
	if centerX < 0 {
		sign = -1.0
	}
	boardX := centerX + sign*0.35

	rimLeft, rimY := project(components.ViewSide,
		components.Vec3{X: centerX - cfg.Court.RimRadius, Y: cfg.Court.RimHeight})
	rimRight, _ := project(components.ViewSide,
		components.Vec3{X: centerX + cfg.Court.RimRadius, Y: cfg.Court.RimHeight})

	boardPX, boardTop := project(components.ViewSide,
		components.Vec3{X: boardX, Y: cfg.Court.RimHeight + 0.9})
	_, boardBottom := project(components.ViewSide,
		components.Vec3{X: boardX, Y: cfg.Court.RimHeight - 0.25})
	_, floorY := project(components.ViewSide, components.Vec3{})

	// Pole and backboard
	vector.StrokeLine(screen, boardPX, floorY, boardPX, boardBottom, 2, cfg.Render.BoardColor, false)
	vector.StrokeLine(screen, boardPX, boardTop, boardPX, boardBottom, 3, cfg.Render.BoardColor, false)

	// Rim
	vector.StrokeLine(screen, rimLeft, rimY, rimRight, rimY, 2, cfg.Render.RimColor, false)

	// Net: two strands converging below the rim
	_, netBottom := project(components.ViewSide,
		components.Vec3{X: centerX, Y: cfg.Court.RimHeight - 0.4})
	netX := (rimLeft + rimRight) / 2
	vector.StrokeLine(screen, rimLeft, rimY, netX, netBottom, 1, cfg.Render.LineColor, false)
	vector.StrokeLine(screen, rimRight, rimY, netX, netBottom, 1, cfg.Render.LineColor, false)
}

func drawCourtTop(e *ecs.ECS, screen *ebiten.Image) {
	left, top := project(components.ViewTop,
		components.Vec3{X: -cfg.Court.HalfLength, Z: -cfg.Court.HalfWidth})
	right, bottom := project(components.ViewTop,
		components.Vec3{X: cfg.Court.HalfLength, Z: cfg.Court.HalfWidth})

	vector.DrawFilledRect(screen, left, top, right-left, bottom-top, cfg.Render.CourtColor, false)
	vector.StrokeRect(screen, left, top, right-left, bottom-top, 1, cfg.Render.LineColor, false)

	// Midcourt line and center circle
	centerX, centerY := project(components.ViewTop, components.Vec3{})
	vector.StrokeLine(screen, centerX, top, centerX, bottom, 1, cfg.Render.LineColor, false)
	vector.StrokeCircle(screen, centerX, centerY,
		float32(1.8*cfg.Render.PixelsPerMeter), 1, cfg.Render.LineColor, false)

	components.Hoop.Each(e.World, func(entry *donburi.Entry) {
		hoop := components.Hoop.Get(entry)
		hx, hy := project(components.ViewTop, components.Vec3{X: hoop.CenterX})
		vector.StrokeCircle(screen, hx, hy,
			float32(cfg.Court.RimRadius*cfg.Render.PixelsPerMeter), 2, cfg.Render.RimColor, false)
	})
}

// DrawBall renders the ball at its projected position with a seam marker
// rotating at the simulated spin phase, plus a floor shadow in the side view.
func DrawBall(e *ecs.ECS, screen *ebiten.Image) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	view := activeView(e)

	x, y := project(view, ball.Position)
	r := float32(cfg.Render.BallVisualRadius)

	if view == components.ViewSide {
		shadowX, shadowY := project(view, components.Vec3{X: ball.Position.X})
		vector.DrawFilledRect(screen, shadowX-r, shadowY-1, 2*r, 2, cfg.Render.BallSeamColor, false)
	}

	vector.DrawFilledCircle(screen, x, y, r, cfg.Render.BallColor, false)

	seamX := x + float32(math.Cos(ball.RotationAngle))*r*0.55
	seamY := y + float32(math.Sin(ball.RotationAngle))*r*0.55
	vector.DrawFilledCircle(screen, seamX, seamY, r*0.28, cfg.Render.BallSeamColor, false)
}
