package game

// Achievement is a badge derived from session state.
type Achievement struct {
	Name        string
	Description string
	Unlocked    bool
}

// Achievements evaluates every badge for s.
func Achievements(s *Session) []Achievement {
	return []Achievement{
		{
			Name:        "Первый шаг",
			Description: "Завершите первую миссию",
			Unlocked:    len(s.CompletedMissions) > 0,
		},
		{
			Name:        "Мастер Цезаря",
			Description: "Наберите больше 200 очков",
			Unlocked:    s.Score > 200,
		},
		{
			Name:        "Криптограф",
			Description: "Наберите 500 очков",
			Unlocked:    s.Score >= 500,
		},
	}
}
