package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := NewSession(now)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.Empty(t, s.CompletedMissions)
	assert.Equal(t, now, s.StartTime)
	assert.Equal(t, PhaseUnnamed, s.Phase())
}

func TestPhaseTransitions(t *testing.T) {
	s := NewSession(time.Now())
	s.Begin()
	assert.Equal(t, PhaseUnnamed, s.Phase())

	assert.False(t, s.SetPlayerName("   "))
	assert.True(t, s.SetPlayerName(" Шерлок "))
	assert.Equal(t, "Шерлок", s.PlayerName)
	assert.Equal(t, PhaseNamed, s.Phase())
	assert.False(t, s.SetPlayerName("Ватсон"))

	s.Begin()
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, "playing", s.Phase().String())
}

func TestCompleteMissionIsIdempotent(t *testing.T) {
	s := NewSession(time.Now())
	require.True(t, s.CompleteMission(1, 100))
	require.False(t, s.CompleteMission(1, 100))
	assert.Equal(t, 100, s.Score)
	assert.Equal(t, []int{1}, s.CompletedMissions)
	assert.Equal(t, 2, s.Level)

	require.True(t, s.CompleteMission(3, 200))
	assert.Equal(t, 300, s.Score)
	assert.Equal(t, 3, s.Level)
	assert.True(t, s.IsCompleted(3))
	assert.False(t, s.IsCompleted(2))
}

func TestResetClearsProgress(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := NewSession(start)
	id := s.ID
	s.SetPlayerName("Ирэн")
	s.Begin()
	s.CompleteMission(2, 150)
	s.UseHint()

	later := start.Add(time.Hour)
	s.Reset(later)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.Empty(t, s.CompletedMissions)
	assert.Equal(t, 0, s.HintsUsed)
	assert.Equal(t, later, s.StartTime)
	assert.Equal(t, PhaseUnnamed, s.Phase())
}

func TestAchievements(t *testing.T) {
	s := NewSession(time.Now())
	for _, a := range Achievements(s) {
		assert.False(t, a.Unlocked, a.Name)
	}
	s.CompleteMission(1, 100)
	got := Achievements(s)
	assert.True(t, got[0].Unlocked)
	assert.False(t, got[1].Unlocked)

	s.CompleteMission(2, 150)
	got = Achievements(s)
	assert.True(t, got[1].Unlocked)
	assert.False(t, got[2].Unlocked)
}

func TestMissionCatalogue(t *testing.T) {
	list := Missions()
	require.Len(t, list, 3)
	list[0].Points = 0
	m, ok := MissionByID(1)
	require.True(t, ok)
	assert.Equal(t, 100, m.Points)
	assert.Equal(t, KindCaesar, m.Kind)
	_, ok = MissionByID(99)
	assert.False(t, ok)
}
