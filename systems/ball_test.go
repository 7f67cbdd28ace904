package systems

import (
	"math"
	"testing"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

func TestGroundedSteeringStep(t *testing.T) {
	e := newTestECS()
	ball := getBall(e)

	pressFrame(e, cfg.ActionMoveRight)
	UpdateBallMotion(e)

	if !almostEqual(ball.Position.X, cfg.Ball.MoveStep) {
		t.Errorf("x after one step = %v, want %v", ball.Position.X, cfg.Ball.MoveStep)
	}
	if ball.Position.Y != cfg.Ball.RestY {
		t.Errorf("grounded steering changed y: %v", ball.Position.Y)
	}

	pressFrame(e, cfg.ActionMoveForward)
	UpdateBallMotion(e)
	if !almostEqual(ball.Position.Z, -cfg.Ball.MoveStep) {
		t.Errorf("z after forward step = %v, want %v", ball.Position.Z, -cfg.Ball.MoveStep)
	}
}

func TestGroundedSteeringClampsToCourt(t *testing.T) {
	e := newTestECS()
	ball := getBall(e)
	ball.Position.X = cfg.Court.HalfLength - 0.01

	for i := 0; i < 5; i++ {
		pressFrame(e, cfg.ActionMoveRight)
		UpdateBallMotion(e)
	}
	if ball.Position.X != cfg.Court.HalfLength {
		t.Errorf("x pinned at %v, want %v", ball.Position.X, cfg.Court.HalfLength)
	}

	// Moving away from the boundary still works
	pressFrame(e, cfg.ActionMoveLeft)
	UpdateBallMotion(e)
	if !almostEqual(ball.Position.X, cfg.Court.HalfLength-cfg.Ball.MoveStep) {
		t.Errorf("x after leaving boundary = %v", ball.Position.X)
	}
}

func TestLaunchCloseRange(t *testing.T) {
	e := newTestECS()
	ball := getBall(e)
	ball.Position.X = 13 // 2 m from the hoop at x = 15, inside close range

	pressFrame(e, cfg.ActionShoot)
	UpdateBallMotion(e)

	if ball.Mode != components.BallInFlight {
		t.Fatalf("mode = %v, want in flight", ball.Mode)
	}
	if ball.ShotResolved {
		t.Error("shot marked resolved at launch")
	}
	if ball.TargetHoopX != cfg.Court.HoopX {
		t.Errorf("target hoop x = %v, want %v", ball.TargetHoopX, cfg.Court.HoopX)
	}

	v := (cfg.Shot.BaseSpeed + 0.5*cfg.Shot.PowerRange) * cfg.Shot.Compensation
	wantVY := v * math.Sin(cfg.Shot.CloseAngle)
	wantVX := v * math.Cos(cfg.Shot.CloseAngle) // dx/d = 1: straight down the long axis
	if !almostEqual(ball.Velocity.Y, wantVY) {
		t.Errorf("vy = %v, want %v", ball.Velocity.Y, wantVY)
	}
	if !almostEqual(ball.Velocity.X, wantVX) {
		t.Errorf("vx = %v, want %v", ball.Velocity.X, wantVX)
	}
	if !almostEqual(ball.Velocity.Z, 0) {
		t.Errorf("vz = %v, want 0", ball.Velocity.Z)
	}

	if got := getScore(e).ShotsAttempted; got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestLaunchFarRangeUsesFlatterArc(t *testing.T) {
	e := newTestECS()
	// center court: 15 m to either hoop, well beyond close range

	pressFrame(e, cfg.ActionShoot)
	UpdateBallMotion(e)

	ball := getBall(e)
	v := (cfg.Shot.BaseSpeed + 0.5*cfg.Shot.PowerRange) * cfg.Shot.Compensation
	wantVY := v * math.Sin(cfg.Shot.FarAngle)
	if !almostEqual(ball.Velocity.Y, wantVY) {
		t.Errorf("vy = %v, want far-arc %v", ball.Velocity.Y, wantVY)
	}
}

func TestLaunchDirectlyUnderHoopGoesStraightUp(t *testing.T) {
	e := newTestECS()
	ball := getBall(e)
	ball.Position.X = cfg.Court.HoopX
	ball.Position.Z = 0

	pressFrame(e, cfg.ActionShoot)
	UpdateBallMotion(e)

	if ball.Velocity.X != 0 || ball.Velocity.Z != 0 {
		t.Errorf("horizontal velocity = (%v, %v), want zero", ball.Velocity.X, ball.Velocity.Z)
	}
	if ball.Velocity.Y <= 0 {
		t.Errorf("vy = %v, want positive", ball.Velocity.Y)
	}
}

func TestFlightIntegratesPositionBeforeGravity(t *testing.T) {
	e := newTestECS()
	ball := getBall(e)
	ball.Mode = components.BallInFlight
	ball.Position = components.Vec3{X: 1, Y: 2, Z: 0}
	ball.Velocity = components.Vec3{X: 3, Y: 5, Z: 0}

	pressFrame(e)
	UpdateBallMotion(e)

	dt := cfg.Physics.DT
	wantX := 1 + 3*dt*cfg.Physics.SpeedScale
	wantY := 2 + 5*dt*cfg.Physics.SpeedScale // old vy, before gravity was applied
	wantVY := 5 + cfg.Physics.Gravity*dt
	if !almostEqual(ball.Position.X, wantX) {
		t.Errorf("x = %v, want %v", ball.Position.X, wantX)
	}
	if !almostEqual(ball.Position.Y, wantY) {
		t.Errorf("y = %v, want %v", ball.Position.Y, wantY)
	}
	if !almostEqual(ball.Velocity.Y, wantVY) {
		t.Errorf("vy = %v, want %v", ball.Velocity.Y, wantVY)
	}
}

func TestResetBallAbortsFlightWithoutOutcome(t *testing.T) {
	e := newTestECS()
	ball := getBall(e)

	pressFrame(e, cfg.ActionShoot)
	UpdateBallMotion(e)
	if ball.Mode != components.BallInFlight {
		t.Fatal("launch did not enter flight")
	}

	pressFrame(e, cfg.ActionResetBall)
	UpdateBallMotion(e)

	if ball.Mode != components.BallGrounded {
		t.Errorf("mode after reset = %v, want grounded", ball.Mode)
	}
	if ball.Position != (components.Vec3{Y: cfg.Ball.RestY}) {
		t.Errorf("position after reset = %+v", ball.Position)
	}
	if ball.Velocity != (components.Vec3{}) {
		t.Errorf("velocity after reset = %+v", ball.Velocity)
	}
	if !ball.ShotResolved {
		t.Error("aborted flight left an outcome pending")
	}

	score := getScore(e)
	if score.ShotsAttempted != 1 || score.ShotsMade != 0 {
		t.Errorf("score after reset = %+v, want one attempt and no makes", score)
	}
}

func TestSpinFreezesAtZeroVelocity(t *testing.T) {
	ball := &components.BallData{
		RotationAxis:  components.Vec3{Z: 1},
		RotationAngle: 1.5,
	}
	spinBall(ball)
	if ball.RotationAngle != 1.5 {
		t.Errorf("angle changed at zero velocity: %v", ball.RotationAngle)
	}
	if ball.RotationAxis != (components.Vec3{Z: 1}) {
		t.Errorf("axis changed at zero velocity: %+v", ball.RotationAxis)
	}
}

func TestSpinKeepsAxisOnVerticalVelocity(t *testing.T) {
	ball := &components.BallData{
		Velocity:     components.Vec3{Y: -4},
		RotationAxis: components.Vec3{X: 1},
	}
	spinBall(ball)
	if ball.RotationAxis != (components.Vec3{X: 1}) {
		t.Errorf("vertical velocity replaced the axis: %+v", ball.RotationAxis)
	}
	if ball.RotationAngle == 0 {
		t.Error("spin did not advance")
	}
}
