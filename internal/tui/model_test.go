package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/cryptodet/internal/cipher"
	"github.com/verte-zerg/cryptodet/internal/game"
	"github.com/verte-zerg/cryptodet/internal/model"
	"github.com/verte-zerg/cryptodet/internal/store"
)

func newTestModel(t *testing.T) (*Model, *store.Store) {
	t.Helper()
	st, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := NewModel(Options{
		Alphabet: cipher.Russian,
		Shift:    3,
		Store:    st,
		Gen:      game.NewWithSeed(7),
		Now:      func() time.Time { return now },
	})
	return m, st
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, text string) {
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func enter(m *Model) {
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
}

func nameDetective(t *testing.T, m *Model) {
	t.Helper()
	typeText(m, "Шерлок")
	enter(m)
	require.Equal(t, game.PhaseNamed, m.Session().Phase())
}

func TestNamePromptRequiresName(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), "Введите ваше имя")

	enter(m)
	assert.Equal(t, game.PhaseUnnamed, m.Session().Phase())

	typeText(m, "  ")
	enter(m)
	assert.Equal(t, game.PhaseUnnamed, m.Session().Phase())

	m.nameInput.SetValue("Шерлок")
	enter(m)
	assert.Equal(t, game.PhaseNamed, m.Session().Phase())
	assert.Equal(t, "Шерлок", m.Session().PlayerName)

	view := m.View()
	assert.Contains(t, view, "Крипто-Детектив")
	assert.Contains(t, view, "Шерлок")
	assert.Contains(t, view, "Сюжетные миссии")
}

func TestMissionFlowRecordsAttempts(t *testing.T) {
	m, st := newTestModel(t)
	nameDetective(t, m)

	enter(m)
	require.NotNil(t, m.missions.challenge)
	assert.Equal(t, game.PhasePlaying, m.Session().Phase())
	c := *m.missions.challenge
	assert.Equal(t, 1, c.Mission.ID)
	assert.Contains(t, m.View(), "Подсказка скрыта")

	typeText(m, "неверный ответ")
	enter(m)
	require.NotNil(t, m.missions.challenge)
	assert.False(t, m.missions.statusOK)
	assert.Equal(t, 0, m.Session().Score)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, 1, m.Session().HintsUsed)
	assert.Contains(t, m.View(), c.Hint())

	m.missions.answer.SetValue("  " + strings.ToUpper(c.Plaintext) + " ")
	enter(m)
	assert.Nil(t, m.missions.challenge)
	assert.True(t, m.missions.statusOK)
	assert.Equal(t, c.Mission.Points, m.Session().Score)
	assert.Equal(t, 2, m.Session().Level)
	assert.True(t, m.Session().IsCompleted(1))

	attempts, err := st.ListAttempts(context.Background(), m.Session().ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.False(t, attempts[0].Correct)
	assert.False(t, attempts[0].HintShown)
	assert.True(t, attempts[1].Correct)
	assert.True(t, attempts[1].HintShown)
	assert.Equal(t, game.KindCaesar, attempts[1].Kind)

	enter(m)
	assert.Nil(t, m.missions.challenge)
	assert.Contains(t, m.missions.status, "уже завершена")
	assert.Equal(t, c.Mission.Points, m.Session().Score)
}

func TestEscAbandonsChallenge(t *testing.T) {
	m, _ := newTestModel(t)
	nameDetective(t, m)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	enter(m)
	require.NotNil(t, m.missions.challenge)
	assert.Equal(t, 2, m.missions.challenge.Mission.ID)
	assert.NotEmpty(t, m.missions.challenge.Key)

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.missions.challenge)
	assert.Equal(t, game.PhasePlaying, m.Session().Phase())
}

func TestResetClearsSessionAndJournal(t *testing.T) {
	m, st := newTestModel(t)
	nameDetective(t, m)
	enter(m)
	require.NotNil(t, m.missions.challenge)
	m.missions.answer.SetValue(m.missions.challenge.Plaintext)
	enter(m)
	require.Equal(t, 100, m.Session().Score)
	id := m.Session().ID

	press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	s := m.Session()
	assert.Equal(t, id, s.ID)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.Level)
	assert.Empty(t, s.CompletedMissions)
	assert.Equal(t, game.PhaseUnnamed, s.Phase())
	assert.Equal(t, tabMissions, m.activeTab)

	attempts, err := st.ListAttempts(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, attempts)
}

func TestToggleAlphabetAbandonsChallenge(t *testing.T) {
	m, _ := newTestModel(t)
	nameDetective(t, m)
	enter(m)
	require.NotNil(t, m.missions.challenge)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "en", m.alphabet.Code())
	assert.Nil(t, m.missions.challenge)
	assert.Contains(t, m.View(), "Английский")

	enter(m)
	require.NotNil(t, m.missions.challenge)
	assert.True(t, cipher.English.Contains(m.missions.challenge.Plaintext))

	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, "ru", m.alphabet.Code())
}

func TestTabsWrapAround(t *testing.T) {
	m, _ := newTestModel(t)
	nameDetective(t, m)

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabPractice, m.activeTab)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabMissions, m.activeTab)
}

func TestLearningShiftBounds(t *testing.T) {
	m, _ := newTestModel(t)
	nameDetective(t, m)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tabLearning, m.activeTab)

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 4, m.learning.shift)
	for i := 0; i < 20; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, maxLearnShift, m.learning.shift)
	for i := 0; i < 20; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, minLearnShift, m.learning.shift)

	m.learning.shift = 3
	view := m.View()
	assert.Contains(t, view, "Сдвиг: 3")
	assert.Contains(t, view, "тулезх")
}

func TestPracticeOutput(t *testing.T) {
	p := newPracticeTab()
	p.text.SetValue("привет")

	out, err := p.output(cipher.Russian)
	require.NoError(t, err)
	assert.Equal(t, "тулезх", out)

	p.decrypt = true
	p.text.SetValue("тулезх")
	out, err = p.output(cipher.Russian)
	require.NoError(t, err)
	assert.Equal(t, "привет", out)

	p.vigenere = true
	p.decrypt = false
	p.key.SetValue("LEMON")
	p.text.SetValue("attack at dawn")
	out, err = p.output(cipher.English)
	require.NoError(t, err)
	assert.Equal(t, "lxfopv ef rnhr", out)

	p.key.SetValue("ключ")
	_, err = p.output(cipher.English)
	assert.Error(t, err)
}

func TestPracticeControls(t *testing.T) {
	m, _ := newTestModel(t)
	nameDetective(t, m)
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, tabPractice, m.activeTab)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.practice.vigenere)
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, m.practice.vigenere)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, fieldShift, m.practice.current())
	for i := 0; i < 50; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, cipher.Russian.Len(), m.practice.shift)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, cipher.English.Len(), m.practice.shift)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, fieldText, m.practice.current())
	typeText(m, "abc")
	assert.Equal(t, "abc", m.practice.text.Value())
	assert.Contains(t, m.View(), "Зашифрованный текст:")
}

func TestAchievementsTabShowsJournal(t *testing.T) {
	m, _ := newTestModel(t)
	nameDetective(t, m)
	out := m.renderAchievements(0)
	assert.Contains(t, out, "Попыток пока нет.")
	assert.Contains(t, out, "Первый шаг")

	enter(m)
	require.NotNil(t, m.missions.challenge)
	m.missions.answer.SetValue(m.missions.challenge.Plaintext)
	enter(m)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tabAchievements, m.activeTab)
	require.Len(t, m.report.Recent, 1)

	out = m.renderAchievements(0)
	assert.Contains(t, out, "открыто")
	assert.Contains(t, out, "Цезарь")
	assert.Contains(t, out, "миссия 1")
}

func TestWindowSizeResizesLayout(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100-sidebarWidth-2, m.contentWidth())
	assert.Equal(t, m.contentWidth(), m.learning.theory.Width)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTickKeepsElapsedTimeCurrent(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := start
	m := NewModel(Options{Now: func() time.Time { return now }, Gen: game.NewWithSeed(1)})
	require.NotNil(t, m.Init())
	nameDetective(t, m)
	assert.Contains(t, m.View(), "0s")

	now = start.Add(65 * time.Second)
	_, cmd := m.Update(tickMsg(now))
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "1m5s")
}

func TestJournalTableRendersTotals(t *testing.T) {
	out := journalTable([]model.KindAggregate{
		{Kind: game.KindCaesar, Attempts: 2, Solved: 1, WithHints: 1},
		{Kind: game.KindMixed, Attempts: 1},
	})
	for _, want := range []string{"Шифр", "Точность", "Цезарь", "Смешанный", "Всего", "50.0%", "33.3%"} {
		assert.Contains(t, out, want)
	}

	single := journalTable([]model.KindAggregate{{Kind: game.KindVigenere, Attempts: 1, Solved: 1}})
	assert.Contains(t, single, "Виженер")
	assert.NotContains(t, single, "Всего")
}
