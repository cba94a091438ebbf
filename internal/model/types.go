// Package model defines shared data structures.
package model

import "time"

// DetectiveConfig defines game settings.
type DetectiveConfig struct {
	Alphabet    string
	Shift       int
	PhrasesPath string
}

// PasswordConfig defines password generator settings.
type PasswordConfig struct {
	Length    int
	Upper     bool
	Lower     bool
	Digits    bool
	Symbols   bool
	Obfuscate string
	Shift     int
	Key       string
	Count     int
}

// Attempt captures a single answer submission for a mission challenge.
type Attempt struct {
	ID        string
	SessionID string
	MissionID int
	Kind      string
	Correct   bool
	HintShown bool
	CreatedAt time.Time
}

// KindAggregate aggregates attempts for one cipher kind.
type KindAggregate struct {
	Kind      string
	Attempts  int
	Solved    int
	WithHints int
}
