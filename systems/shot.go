package systems

import (
	"math"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hoopshot/hoopshot/components"
	cfg "github.com/hoopshot/hoopshot/config"
)

// UpdateShotResolution decides the outcome of the current flight: it checks
// the basket condition first and the ground condition second, every tick the
// ball is in flight. A basket this tick short-circuits the ground check, so
// a ball satisfying both scores rather than stops.
// Must run after UpdateBallMotion.
func UpdateShotResolution(e *ecs.ECS) {
	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	if ball.Mode != components.BallInFlight {
		return
	}

	if checkBaskets(e, ball) {
		return
	}
	checkGround(e, ball)
}

// checkBaskets tests the ball against both hoops. A basket fires when the
// ball is inside the detection cylinder around a rim, descending, the hoop is
// not flagged from a previous pass, and the shared cooldown has elapsed. On a
// make the ball is redirected into a gentle fall through the net; the flight
// continues until the ground stops it.
func checkBaskets(e *ecs.ECS, ball *components.BallData) bool {
	now := clockNow(e)
	scored := false

	components.Hoop.Each(e.World, func(entry *donburi.Entry) {
		hoop := components.Hoop.Get(entry)

		// Re-arm once the ball has dropped well below the rim
		if hoop.Flagged && ball.Position.Y < cfg.Court.RimHeight-cfg.Basket.RearmDepth*cfg.Ball.Radius {
			hoop.Flagged = false
		}
		if scored || hoop.Flagged {
			return
		}

		horiz := math.Hypot(ball.Position.X-hoop.CenterX, ball.Position.Z)
		if horiz >= cfg.Basket.DetectRadius {
			return
		}
		if math.Abs(ball.Position.Y-cfg.Court.RimHeight) >= cfg.Basket.HeightWindow*cfg.Ball.Radius {
			return
		}
		if ball.Velocity.Y >= 0 {
			return
		}
		if now.Sub(ball.LastBasketAt) < cfg.Basket.Cooldown {
			return
		}

		hoop.Flagged = true
		ball.ShotResolved = true
		ball.LastBasketAt = now

		// Drop through the net: pull toward the rim center, fixed fall speed
		ball.Velocity.X = (hoop.CenterX - ball.Position.X) * cfg.Basket.DropPull
		ball.Velocity.Z = -ball.Position.Z * cfg.Basket.DropPull
		ball.Velocity.Y = -cfg.Basket.DropSpeed

		// Reaching the hoop on the positive-x side scores for away, the
		// negative-x side for home: teams shoot at the opposing basket.
		team := components.TeamHome
		if hoop.CenterX > 0 {
			team = components.TeamAway
		}
		if scoreEntry, ok := components.Score.First(e.World); ok {
			components.Score.Get(scoreEntry).RecordMade(team, cfg.Basket.Points)
		}
		ShowFeedback(e, cfg.Feedback.MadeText, cfg.BrightGreen)
		scored = true
	})

	return scored
}

// checkGround handles floor contact: a live ball bounces with restitution
// and friction, a dead ball stops and goes back to grounded control. The
// stop branch is the sole path that records a miss.
func checkGround(e *ecs.ECS, ball *components.BallData) {
	floor := cfg.Court.FloorY + cfg.Ball.Radius
	if ball.Position.Y > floor+cfg.Physics.ContactEpsilon {
		return
	}
	ball.Position.Y = floor

	v := &ball.Velocity
	if math.Abs(v.X) > cfg.Physics.StopThreshold ||
		math.Abs(v.Y) > cfg.Physics.StopThreshold ||
		math.Abs(v.Z) > cfg.Physics.StopThreshold {
		v.Y = -v.Y * cfg.Physics.Bounciness
		v.X *= cfg.Physics.GroundFriction
		v.Z *= cfg.Physics.GroundFriction
		return
	}

	*v = components.Vec3{}
	ball.Mode = components.BallGrounded
	if !ball.ShotResolved {
		ball.ShotResolved = true
		if scoreEntry, ok := components.Score.First(e.World); ok {
			components.Score.Get(scoreEntry).RecordMiss()
		}
		ShowFeedback(e, cfg.Feedback.MissText, cfg.LightRed)
	}
}

// clockNow reads the injected clock, falling back to the wall clock
func clockNow(e *ecs.ECS) time.Time {
	if entry, ok := components.Clock.First(e.World); ok {
		if c := components.Clock.Get(entry); c.Now != nil {
			return c.Now()
		}
	}
	return time.Now()
}
