// Package passui provides the interactive password generator.
package passui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/cryptodet/internal/logger"
	"github.com/verte-zerg/cryptodet/internal/password"
)

// Length and shift limits for the interactive controls.
const (
	MinLength = 4
	MaxLength = 128
	MinShift  = 1
	MaxShift  = 25
)

var obfuscateModes = []string{password.ObfuscateNone, password.ObfuscateCaesar, password.ObfuscateVigenere}

var obfuscateLabels = map[string]string{
	password.ObfuscateNone:     "нет",
	password.ObfuscateCaesar:   "Цезарь",
	password.ObfuscateVigenere: "Виженер",
}

type field int

const (
	fieldLength field = iota
	fieldUpper
	fieldLower
	fieldDigits
	fieldSymbols
	fieldObfuscate
	fieldShift
	fieldKey
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true).Padding(0, 1)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	passwordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C89A3A")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Toggle     key.Binding
	Regenerate key.Binding
	Copy       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "вверх")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "вниз")),
		Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "меньше")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "больше")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "вкл/выкл")),
		Regenerate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "новый пароль")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "копировать")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "выход")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Toggle, k.Regenerate, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model implements the password generator UI.
type Model struct {
	gen  *password.Generator
	spec password.Spec
	copy func(string) error

	keys keyMap
	help help.Model

	keyInput textinput.Model
	focused  int

	password string
	err      string
	status   string
}

// NewModel builds a Model starting from spec and generates the first password.
// Out-of-range lengths and shifts are clamped to the control limits.
func NewModel(gen *password.Generator, spec password.Spec) *Model {
	if gen == nil {
		gen = password.New()
	}
	spec.Length = clamp(spec.Length, MinLength, MaxLength)
	spec.Shift = clamp(spec.Shift, MinShift, MaxShift)
	if spec.Obfuscate == "" {
		spec.Obfuscate = password.ObfuscateNone
	}
	input := textinput.New()
	input.Prompt = "Ключ: "
	input.Placeholder = "LEMON"
	input.CharLimit = 64
	input.SetValue(spec.Key)

	m := &Model{
		gen:      gen,
		spec:     spec,
		copy:     clipboard.WriteAll,
		keys:     newKeyMap(),
		help:     help.New(),
		keyInput: input,
	}
	m.regenerate()
	return m
}

// Password returns the last generated password, empty when the settings are invalid.
func (m *Model) Password() string {
	return m.password
}

// Spec returns the current settings.
func (m *Model) Spec() password.Spec {
	return m.spec
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	if m.current() == fieldKey {
		var cmd tea.Cmd
		m.keyInput, cmd = m.keyInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	f := m.current()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Regenerate):
		m.regenerate()
		return nil
	case key.Matches(msg, m.keys.Copy):
		m.copyPassword()
		return nil
	case key.Matches(msg, m.keys.Up):
		if m.focused > 0 {
			m.focused--
		}
		return m.syncFocus()
	case key.Matches(msg, m.keys.Down):
		if m.focused < len(m.fields())-1 {
			m.focused++
		}
		return m.syncFocus()
	}

	if f == fieldKey {
		before := m.keyInput.Value()
		var cmd tea.Cmd
		m.keyInput, cmd = m.keyInput.Update(msg)
		if m.keyInput.Value() != before {
			m.spec.Key = m.keyInput.Value()
			m.regenerate()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.adjust(f, -1)
	case key.Matches(msg, m.keys.Right):
		m.adjust(f, 1)
	case key.Matches(msg, m.keys.Toggle):
		m.adjust(f, 0)
	default:
		return nil
	}
	m.regenerate()
	return nil
}

// adjust changes the focused setting; delta 0 means toggle.
func (m *Model) adjust(f field, delta int) {
	switch f {
	case fieldLength:
		if delta != 0 {
			m.spec.Length = clamp(m.spec.Length+delta, MinLength, MaxLength)
		}
	case fieldUpper:
		m.spec.Upper = !m.spec.Upper
	case fieldLower:
		m.spec.Lower = !m.spec.Lower
	case fieldDigits:
		m.spec.Digits = !m.spec.Digits
	case fieldSymbols:
		m.spec.Symbols = !m.spec.Symbols
	case fieldObfuscate:
		if delta == 0 {
			delta = 1
		}
		m.spec.Obfuscate = cycle(obfuscateModes, m.spec.Obfuscate, delta)
	case fieldShift:
		if delta != 0 {
			m.spec.Shift = clamp(m.spec.Shift+delta, MinShift, MaxShift)
		}
	}
}

func (m *Model) fields() []field {
	fields := []field{fieldLength, fieldUpper, fieldLower, fieldDigits, fieldSymbols, fieldObfuscate}
	switch m.spec.Obfuscate {
	case password.ObfuscateCaesar:
		fields = append(fields, fieldShift)
	case password.ObfuscateVigenere:
		fields = append(fields, fieldKey)
	}
	return fields
}

func (m *Model) current() field {
	fields := m.fields()
	if m.focused >= len(fields) {
		m.focused = len(fields) - 1
	}
	return fields[m.focused]
}

func (m *Model) syncFocus() tea.Cmd {
	if m.current() == fieldKey {
		return m.keyInput.Focus()
	}
	m.keyInput.Blur()
	return nil
}

func (m *Model) regenerate() {
	m.status = ""
	pw, err := m.gen.Generate(m.spec)
	if err != nil {
		m.password = ""
		m.err = err.Error()
		logger.L().Debug("password.invalid_spec", zap.Error(err))
		return
	}
	m.password = pw
	m.err = ""
	logger.L().Info("password.generated",
		zap.Int("length", m.spec.Length),
		zap.Int("classes", len(m.spec.Classes())),
		zap.String("obfuscate", m.spec.Obfuscate),
	)
}

func (m *Model) copyPassword() {
	if m.password == "" {
		return
	}
	if err := m.copy(m.password); err != nil {
		m.status = "Не удалось скопировать: " + err.Error()
		logger.L().Warn("password.copy_failed", zap.Error(err))
		return
	}
	m.status = "Скопировано в буфер обмена"
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{titleStyle.Render("Генератор паролей"), ""}
	for i, f := range m.fields() {
		marker := "  "
		if i == m.focused {
			marker = focusStyle.Render("▸ ")
		}
		lines = append(lines, marker+m.fieldView(f))
	}
	lines = append(lines, "")
	if m.err != "" {
		lines = append(lines, errorStyle.Render(m.err))
	} else {
		lines = append(lines, passwordStyle.Render(m.password))
	}
	if m.spec.Obfuscate != password.ObfuscateNone {
		lines = append(lines, mutedStyle.Render("Обфускация не делает пароль надежнее."))
	}
	if m.status != "" {
		lines = append(lines, successStyle.Render(m.status))
	}
	lines = append(lines, "", m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m *Model) fieldView(f field) string {
	switch f {
	case fieldLength:
		return fmt.Sprintf("Длина: ◂ %d ▸  %s", m.spec.Length, mutedStyle.Render(fmt.Sprintf("(%d-%d)", MinLength, MaxLength)))
	case fieldUpper:
		return checkbox(m.spec.Upper, "Заглавные буквы (A-Z)")
	case fieldLower:
		return checkbox(m.spec.Lower, "Строчные буквы (a-z)")
	case fieldDigits:
		return checkbox(m.spec.Digits, "Цифры (0-9)")
	case fieldSymbols:
		return checkbox(m.spec.Symbols, "Символы (!@#...)")
	case fieldObfuscate:
		return "Обфускация: ◂ " + obfuscateLabels[m.spec.Obfuscate] + " ▸"
	case fieldShift:
		return fmt.Sprintf("Сдвиг: ◂ %d ▸", m.spec.Shift)
	case fieldKey:
		return m.keyInput.View()
	}
	return ""
}

func checkbox(on bool, label string) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func cycle(list []string, current string, delta int) string {
	idx := 0
	for i, v := range list {
		if v == current {
			idx = i
			break
		}
	}
	n := len(list)
	return list[((idx+delta)%n+n)%n]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
