// Package tui provides the Bubble Tea crypto-detective interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/cryptodet/internal/cipher"
	"github.com/verte-zerg/cryptodet/internal/game"
	"github.com/verte-zerg/cryptodet/internal/logger"
	"github.com/verte-zerg/cryptodet/internal/stats"
	"github.com/verte-zerg/cryptodet/internal/store"
)

const (
	tabMissions = iota
	tabLearning
	tabAchievements
	tabPractice
)

var alphabetNames = map[string]string{
	"ru": "Русский",
	"en": "Английский",
}

// Options configures a detective Model.
type Options struct {
	Alphabet *cipher.Alphabet
	Shift    int
	Store    *store.Store
	Gen      *game.Generator
	Now      func() time.Time
}

// Model implements the Bubble Tea detective UI. All state changes happen in
// Update; View only reads.
type Model struct {
	session  *game.Session
	alphabet *cipher.Alphabet
	store    *store.Store
	gen      *game.Generator
	now      func() time.Time

	keys keyMap
	help help.Model

	width  int
	height int

	tabs      []string
	activeTab int

	nameInput textinput.Model

	missions missionsTab
	learning learningTab
	practice practiceTab

	report    stats.Report
	reportErr string
}

// NewModel constructs a detective TUI model with a fresh session.
func NewModel(opts Options) *Model {
	if opts.Alphabet == nil {
		opts.Alphabet = cipher.Russian
	}
	if opts.Gen == nil {
		opts.Gen = game.New()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := &Model{
		session:  game.NewSession(opts.Now()),
		alphabet: opts.Alphabet,
		store:    opts.Store,
		gen:      opts.Gen,
		now:      opts.Now,
		keys:     newKeyMap(),
		help:     help.New(),
		tabs:     []string{"Миссии", "Обучение", "Достижения", "Тренировка"},
	}
	m.nameInput = newInput("Имя детектива: ", "Шерлок")
	m.nameInput.Focus()
	m.missions = newMissionsTab()
	m.learning = newLearningTab(opts.Shift)
	m.practice = newPracticeTab()
	return m
}

// Session exposes the current session state.
func (m *Model) Session() *game.Session {
	return m.session
}

type tickMsg time.Time

// tick refreshes the elapsed-time card once a second.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.learning.resize(m.contentWidth(), m.height)
		return m, nil
	case tickMsg:
		return m, tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.session.Phase() == game.PhaseUnnamed {
			return m.updateName(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Reset):
			m.resetGame()
			return m, nil
		case key.Matches(msg, m.keys.Alphabet):
			m.toggleAlphabet()
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			return m, m.moveTab(1)
		case key.Matches(msg, m.keys.PrevTab):
			return m, m.moveTab(-1)
		}
		switch m.activeTab {
		case tabMissions:
			return m, m.updateMissions(msg)
		case tabLearning:
			return m, m.learning.update(msg, m.keys)
		case tabPractice:
			return m, m.practice.update(msg, m.keys, m.alphabet)
		}
		return m, nil
	default:
		return m, m.updateFocusedInput(msg)
	}
}

// updateFocusedInput routes non-key messages, such as cursor blinks, to the
// input that currently has focus.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.session.Phase() == game.PhaseUnnamed:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case m.activeTab == tabMissions && m.missions.challenge != nil:
		m.missions.answer, cmd = m.missions.answer.Update(msg)
	case m.activeTab == tabLearning:
		m.learning.input, cmd = m.learning.input.Update(msg)
	case m.activeTab == tabPractice:
		cmd = m.practice.updateInputs(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.session.Phase() == game.PhaseUnnamed {
		return m.renderNamePrompt()
	}
	header := titleStyle.Render("Крипто-Детектив")
	main := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), m.renderActiveTab())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
	footer := m.help.View(m.helpKeys())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		if m.session.SetPlayerName(m.nameInput.Value()) {
			logger.L().Info("player.named", zap.String("session", m.session.ID), zap.String("name", m.session.PlayerName))
			m.nameInput.Blur()
			return m, m.focusActiveTab()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) resetGame() {
	if m.store != nil {
		if _, err := m.store.DeleteSession(context.Background(), m.session.ID); err != nil {
			logger.L().Error("journal.reset_failed", zap.Error(err))
		}
	}
	m.session.Reset(m.now())
	m.missions = newMissionsTab()
	m.report = stats.Report{}
	m.reportErr = ""
	m.activeTab = tabMissions
	m.nameInput.Reset()
	m.nameInput.Focus()
	logger.L().Info("game.reset", zap.String("session", m.session.ID))
}

func (m *Model) toggleAlphabet() {
	if m.alphabet.Code() == cipher.Russian.Code() {
		m.alphabet = cipher.English
	} else {
		m.alphabet = cipher.Russian
	}
	m.missions.abandon()
	m.practice.clampShift(m.alphabet)
	logger.L().Debug("alphabet.changed", zap.String("alphabet", m.alphabet.Code()))
}

func (m *Model) moveTab(delta int) tea.Cmd {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabAchievements {
		m.refreshReport()
	}
	return m.focusActiveTab()
}

func (m *Model) focusActiveTab() tea.Cmd {
	m.missions.answer.Blur()
	m.learning.input.Blur()
	m.practice.blur()
	switch m.activeTab {
	case tabMissions:
		if m.missions.challenge != nil {
			return m.missions.answer.Focus()
		}
	case tabLearning:
		return m.learning.input.Focus()
	case tabPractice:
		return m.practice.focus()
	}
	return nil
}

func (m *Model) refreshReport() {
	if m.store == nil {
		return
	}
	report, err := stats.BuildReport(context.Background(), m.store, m.session.ID, 5)
	if err != nil {
		m.reportErr = err.Error()
		logger.L().Error("journal.report_failed", zap.Error(err))
		return
	}
	m.reportErr = ""
	m.report = report
}

func (m *Model) helpKeys() helpKeys {
	keys := helpKeys{m.keys.NextTab, m.keys.PrevTab}
	switch m.activeTab {
	case tabMissions:
		if m.missions.challenge != nil {
			keys = append(keys, m.keys.Submit, m.keys.Hint, m.keys.Back)
		} else {
			keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Submit)
		}
	case tabLearning:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown)
	case tabPractice:
		keys = append(keys, m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right)
	}
	return append(keys, m.keys.Alphabet, m.keys.Reset, m.keys.Quit)
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := m.width - sidebarWidth - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m *Model) renderNamePrompt() string {
	lines := []string{
		titleStyle.Render("Крипто-Детектив"),
		"",
		"Введите ваше имя детектива:",
		m.nameInput.View(),
		"",
		mutedStyle.Render("enter: начать  ctrl+c: выход"),
	}
	content := cardStyle.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderSidebar() string {
	s := m.session
	elapsed := m.now().Sub(s.StartTime).Truncate(time.Second)
	cards := []string{
		metricCard("Детектив", s.PlayerName),
		metricCard("Алфавит", alphabetNames[m.alphabet.Code()]),
		lipgloss.JoinHorizontal(lipgloss.Top,
			metricCard("Очки", fmt.Sprintf("%d", s.Score)),
			metricCard("Уровень", fmt.Sprintf("%d", s.Level)),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			metricCard("Миссий", fmt.Sprintf("%d", len(s.CompletedMissions))),
			metricCard("Подсказок", fmt.Sprintf("%d", s.HintsUsed)),
		),
		metricCard("В игре", elapsed.String()),
	}
	return sidebarStyle.Render(lipgloss.JoinVertical(lipgloss.Left, cards...))
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderActiveTab() string {
	width := m.contentWidth()
	switch m.activeTab {
	case tabMissions:
		return m.missions.view(m.session, width)
	case tabLearning:
		return m.learning.view(m.alphabet, width)
	case tabAchievements:
		return m.renderAchievements(width)
	case tabPractice:
		return m.practice.view(m.alphabet, width)
	default:
		return ""
	}
}

func newInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	input.CharLimit = 200
	return input
}
