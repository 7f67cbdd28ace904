package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// BallMode is the ball's motion state
type BallMode int

const (
	// BallGrounded means user input steers the ball on the court plane
	BallGrounded BallMode = iota
	// BallInFlight means gravity and collision rules govern motion after a shot
	BallInFlight
)

// BallData holds the single ball's motion and per-flight bookkeeping.
type BallData struct {
	Position Vec3
	Velocity Vec3
	Mode     BallMode

	// Visual spin only; derived from velocity each tick, no effect on the
	// trajectory. The axis is kept when velocity hits exactly zero.
	RotationAxis  Vec3
	RotationAngle float64

	// ShotResolved is false only while a flight has no recorded outcome yet.
	// It guarantees exactly one make/miss event per flight.
	ShotResolved bool

	// LastBasketAt is the cooldown guard shared across both hoops.
	LastBasketAt time.Time

	// TargetHoopX records which hoop was aimed at when the shot was taken.
	TargetHoopX float64
}

var Ball = donburi.NewComponentType[BallData]()
