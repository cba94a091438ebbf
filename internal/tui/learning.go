package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/verte-zerg/cryptodet/internal/cipher"
	"github.com/verte-zerg/cryptodet/internal/logger"
)

const (
	minLearnShift     = 1
	maxLearnShift     = 10
	defaultLearnShift = 3
	theoryHeight      = 12
)

const theoryMarkdown = `# Теория криптографии

## Шифр Цезаря

**Принцип работы:**

- Каждая буква сдвигается на фиксированное число позиций
- Пример: сдвиг 3, «а» → «г», «б» → «д»
- Простой в использовании, но ненадежный: ключей меньше, чем букв в алфавите

## Шифр Виженера

**Принцип работы:**

- Ключевое слово повторяется вдоль текста
- Каждая буква сдвигается на номер соответствующей буквы ключа
- Пробелы и знаки препинания не расходуют буквы ключа
- Пример: ATTACKATDAWN + LEMON → LXFOPVEFRNHR
`

type learningTab struct {
	input    textinput.Model
	shift    int
	theory   viewport.Model
	rendered int
}

func newLearningTab(shift int) learningTab {
	if shift < minLearnShift || shift > maxLearnShift {
		shift = defaultLearnShift
	}
	input := newInput("Текст: ", "")
	input.SetValue("привет")
	t := learningTab{
		input:    input,
		shift:    shift,
		theory:   viewport.New(0, theoryHeight),
		rendered: -1,
	}
	t.resize(0, 0)
	return t
}

func (t *learningTab) resize(width, height int) {
	if height > 0 {
		t.theory.Height = minInt(theoryHeight, maxInt(3, height/3))
	}
	if width == t.rendered {
		return
	}
	t.theory.Width = width
	t.theory.SetContent(renderTheory(width))
	t.rendered = width
}

func (t *learningTab) update(msg tea.KeyMsg, keys keyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if t.shift < maxLearnShift {
			t.shift++
		}
		return nil
	case key.Matches(msg, keys.Down):
		if t.shift > minLearnShift {
			t.shift--
		}
		return nil
	case key.Matches(msg, keys.PageUp, keys.PageDown):
		var cmd tea.Cmd
		t.theory, cmd = t.theory.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *learningTab) view(alphabet *cipher.Alphabet, width int) string {
	lines := []string{
		t.theory.View(),
		focusStyle.Render("Попробуйте сами:"),
		t.input.View(),
		fmt.Sprintf("Сдвиг: %d  %s", t.shift, mutedStyle.Render(fmt.Sprintf("(↑/↓, %d-%d)", minLearnShift, maxLearnShift))),
	}
	text := cipher.Normalize(t.input.Value())
	if text != "" {
		encrypted, err := cipher.Caesar(text, t.shift, alphabet)
		if err != nil {
			lines = append(lines, errorStyle.Render(err.Error()))
		} else {
			lines = append(lines, "Зашифровано: "+cipherStyle.Render(wrapText(encrypted, width)))
		}
	}
	return strings.Join(lines, "\n")
}

func renderTheory(width int) string {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle("dark")}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		logger.L().Warn("theory.renderer_failed", zap.Error(err))
		return theoryMarkdown
	}
	out, err := renderer.Render(theoryMarkdown)
	if err != nil {
		logger.L().Warn("theory.render_failed", zap.Error(err))
		return theoryMarkdown
	}
	return strings.Trim(out, "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
