package game

// Cipher kinds used by missions.
const (
	KindCaesar   = "caesar"
	KindVigenere = "vigenere"
	KindMixed    = "mixed"
)

// Mission is a story task with a reward.
type Mission struct {
	ID          int
	Title       string
	Description string
	Kind        string
	Difficulty  string
	Points      int
}

var missions = []Mission{
	{
		ID:          1,
		Title:       "Обучение у мастера",
		Description: "Старый криптограф передает вам первое задание...",
		Kind:        KindCaesar,
		Difficulty:  "Начальный",
		Points:      100,
	},
	{
		ID:          2,
		Title:       "Перехваченные документы",
		Description: "Расшифруйте сообщения вражеских агентов!",
		Kind:        KindVigenere,
		Difficulty:  "Средний",
		Points:      150,
	},
	{
		ID:          3,
		Title:       "Финальная схватка",
		Description: "Битва с главным крипто-злодеем!",
		Kind:        KindMixed,
		Difficulty:  "Сложный",
		Points:      200,
	},
}

// Missions returns the mission catalogue in story order.
func Missions() []Mission {
	out := make([]Mission, len(missions))
	copy(out, missions)
	return out
}

// MissionByID looks up a mission.
func MissionByID(id int) (Mission, bool) {
	for _, m := range missions {
		if m.ID == id {
			return m, true
		}
	}
	return Mission{}, false
}
