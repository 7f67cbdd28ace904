package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

// UpdateBallMotion advances the ball one fixed tick: grounded steering with
// court clamping, the launch transition, or projectile integration while in
// flight. Spin is updated every tick regardless of mode.
// Must run after UpdateInput and before UpdateShotResolution.
func UpdateBallMotion(e *ecs.ECS) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionResetBall).JustPressed {
		ResetBall(ball)
	}

	switch ball.Mode {
	case components.BallGrounded:
		steerGrounded(ball, input)
		if GetAction(input, cfg.ActionShoot).JustPressed {
			launchShot(e, ball)
		}
	case components.BallInFlight:
		// Position first, then gravity. The order matters: swapping it
		// changes every trajectory.
		dt := cfg.Physics.DT
		ball.Position = ball.Position.Add(ball.Velocity.Scale(dt * cfg.Physics.SpeedScale))
		ball.Velocity.Y += cfg.Physics.Gravity * dt
	}

	spinBall(ball)
}

// steerGrounded applies held movement keys as fixed per-tick displacements.
// Velocity is set to the signed step per axis; it only drives spin here and
// is never integrated. Clamping wins over displacement, so a ball pinned at
// the boundary cannot be pushed further but can still move away from it.
func steerGrounded(ball *components.BallData, input *components.InputData) {
	ball.Velocity.X = 0
	ball.Velocity.Z = 0

	step := cfg.Ball.MoveStep
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		ball.Position.X -= step
		ball.Velocity.X = -step
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		ball.Position.X += step
		ball.Velocity.X = step
	}
	if GetAction(input, cfg.ActionMoveForward).Pressed {
		ball.Position.Z -= step
		ball.Velocity.Z = -step
	}
	if GetAction(input, cfg.ActionMoveBackward).Pressed {
		ball.Position.Z += step
		ball.Velocity.Z = step
	}

	ball.Position.X = clampF(ball.Position.X, -cfg.Court.HalfLength, cfg.Court.HalfLength)
	ball.Position.Z = clampF(ball.Position.Z, -cfg.Court.HalfWidth, cfg.Court.HalfWidth)
}

// launchShot aims at the nearer hoop and switches the ball into flight. The
// arc is steep inside close range and flatter beyond it; the launch speed
// maps power in [0,1] onto [7.5, 15] m/s. The attempt is recorded here, at
// the moment of shooting.
func launchShot(e *ecs.ECS, ball *components.BallData) {
	shotEntry, ok := components.Shot.First(e.World)
	if !ok {
		return
	}
	power := components.Shot.Get(shotEntry).Power

	hoopX := nearestHoopX(e, ball.Position)
	dx := hoopX - ball.Position.X
	dz := -ball.Position.Z // hoops sit on the long axis, z = 0
	d := math.Hypot(dx, dz)

	angle := cfg.Shot.FarAngle
	if d < cfg.Shot.CloseRange {
		angle = cfg.Shot.CloseAngle
	}
	v := (cfg.Shot.BaseSpeed + power*cfg.Shot.PowerRange) * cfg.Shot.Compensation

	if d > 0 {
		ball.Velocity.X = v * math.Cos(angle) * dx / d
		ball.Velocity.Z = v * math.Cos(angle) * dz / d
	} else {
		// Directly under the rim: straight up
		ball.Velocity.X = 0
		ball.Velocity.Z = 0
	}
	ball.Velocity.Y = v * math.Sin(angle)

	ball.Mode = components.BallInFlight
	ball.ShotResolved = false
	ball.TargetHoopX = hoopX

	if scoreEntry, ok := components.Score.First(e.World); ok {
		components.Score.Get(scoreEntry).RecordAttempt()
	}
}

// nearestHoopX returns the CenterX of the hoop closest to pos in the
// horizontal plane.
func nearestHoopX(e *ecs.ECS, pos components.Vec3) float64 {
	best := cfg.Court.HoopX
	bestDist := math.MaxFloat64
	components.Hoop.Each(e.World, func(entry *donburi.Entry) {
		h := components.Hoop.Get(entry)
		d := math.Hypot(h.CenterX-pos.X, -pos.Z)
		if d < bestDist {
			bestDist = d
			best = h.CenterX
		}
	})
	return best
}

// spinBall accumulates the ball's visual rotation from its velocity. At
// exactly zero velocity the axis is undefined, so the spin freezes rather
// than letting a zero division reach the state.
func spinBall(ball *components.BallData) {
	speed := ball.Velocity.Length()
	if speed == 0 {
		return
	}
	axis := ball.Velocity.Normalized().Cross(components.Up).Normalized()
	if axis.Length() > 0 {
		ball.RotationAxis = axis
	}
	// Purely vertical velocity keeps the previous axis.

	ball.RotationAngle += speed / cfg.Ball.Radius * cfg.Physics.SpeedScale * cfg.Physics.DT
	ball.RotationAngle = math.Mod(ball.RotationAngle, 2*math.Pi)
}

// ResetBall returns the ball to center court at rest. The scoreboard is not
// touched; a flight aborted this way records no outcome.
func ResetBall(ball *components.BallData) {
	ball.Position = components.Vec3{Y: cfg.Ball.RestY}
	ball.Velocity = components.Vec3{}
	ball.Mode = components.BallGrounded
	ball.ShotResolved = true
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
