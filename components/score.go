package components

import "github.com/yohamta/donburi"

// Team identifies a scoring side
type Team int

const (
	TeamHome Team = iota
	TeamAway
)

func (t Team) String() string {
	if t == TeamAway {
		return "AWAY"
	}
	return "HOME"
}

// ScoreData stores team scores and shot statistics.
// This is a singleton component - one scoreboard exists for the session.
type ScoreData struct {
	HomeScore      int
	AwayScore      int
	ShotsAttempted int
	ShotsMade      int
}

var Score = donburi.NewComponentType[ScoreData]()

// RecordAttempt increments the attempt counter
func (s *ScoreData) RecordAttempt() {
	s.ShotsAttempted++
}

// RecordMade credits the named team and counts the made shot
func (s *ScoreData) RecordMade(team Team, points int) {
	if team == TeamAway {
		s.AwayScore += points
	} else {
		s.HomeScore += points
	}
	s.ShotsMade++
}

// RecordMiss records a missed shot. The attempt was already counted at the
// moment of shooting, so there is nothing to change beyond the feedback the
// caller emits.
func (s *ScoreData) RecordMiss() {}

// Reset zeroes all four counters
func (s *ScoreData) Reset() {
	s.HomeScore = 0
	s.AwayScore = 0
	s.ShotsAttempted = 0
	s.ShotsMade = 0
}

// Accuracy returns made/attempted, or 0 when nothing has been attempted
func (s *ScoreData) Accuracy() float64 {
	if s.ShotsAttempted == 0 {
		return 0
	}
	return float64(s.ShotsMade) / float64(s.ShotsAttempted)
}
