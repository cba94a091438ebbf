// Package game holds the crypto-detective session state and mission logic.
package game

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Phase is the coarse progress of a session.
type Phase int

const (
	PhaseUnnamed Phase = iota
	PhaseNamed
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseUnnamed:
		return "unnamed"
	case PhaseNamed:
		return "named"
	case PhasePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Session is the per-player game state. It is owned by a single UI loop and
// is not safe for concurrent use.
type Session struct {
	ID                string
	Score             int
	Level             int
	CompletedMissions []int
	PlayerName        string
	HintsUsed         int
	StartTime         time.Time

	started bool
}

// NewSession returns a fresh session started at now.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Level:     1,
		StartTime: now,
	}
}

// Phase reports where the session is in Unnamed → Named → Playing.
func (s *Session) Phase() Phase {
	switch {
	case s.PlayerName == "":
		return PhaseUnnamed
	case !s.started:
		return PhaseNamed
	default:
		return PhasePlaying
	}
}

// SetPlayerName names an unnamed session. Blank names and renames are ignored.
func (s *Session) SetPlayerName(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || s.PlayerName != "" {
		return false
	}
	s.PlayerName = name
	return true
}

// Begin marks the first started mission, moving a named session to Playing.
func (s *Session) Begin() {
	if s.PlayerName != "" {
		s.started = true
	}
}

// IsCompleted reports whether the mission was already completed.
func (s *Session) IsCompleted(missionID int) bool {
	return slices.Contains(s.CompletedMissions, missionID)
}

// CompleteMission records a mission and awards its points once. It returns
// false when the mission was already completed.
func (s *Session) CompleteMission(missionID, points int) bool {
	if s.IsCompleted(missionID) {
		return false
	}
	s.CompletedMissions = append(s.CompletedMissions, missionID)
	s.Score += points
	s.Level = len(s.CompletedMissions) + 1
	return true
}

// UseHint counts a revealed hint.
func (s *Session) UseHint() {
	s.HintsUsed++
}

// Reset starts the game over: counters, missions and the player name are
// cleared and the start time moves to now. The session ID is kept.
func (s *Session) Reset(now time.Time) {
	s.Score = 0
	s.Level = 1
	s.CompletedMissions = nil
	s.PlayerName = ""
	s.HintsUsed = 0
	s.StartTime = now
	s.started = false
}
