package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/cryptodet/internal/cipher"
)

type practiceField int

const (
	fieldCipher practiceField = iota
	fieldDirection
	fieldShift
	fieldKey
	fieldText
)

const defaultPracticeShift = 3

type practiceTab struct {
	vigenere bool
	decrypt  bool
	shift    int
	key      textinput.Model
	text     textinput.Model
	focused  int
}

func newPracticeTab() practiceTab {
	return practiceTab{
		shift: defaultPracticeShift,
		key:   newInput("Ключ: ", "ключ"),
		text:  newInput("Текст: ", "введите текст"),
	}
}

func (p *practiceTab) fields() []practiceField {
	if p.vigenere {
		return []practiceField{fieldCipher, fieldDirection, fieldKey, fieldText}
	}
	return []practiceField{fieldCipher, fieldDirection, fieldShift, fieldText}
}

func (p *practiceTab) current() practiceField {
	fields := p.fields()
	if p.focused < 0 || p.focused >= len(fields) {
		p.focused = 0
	}
	return fields[p.focused]
}

func (p *practiceTab) focus() tea.Cmd {
	p.blur()
	switch p.current() {
	case fieldKey:
		return p.key.Focus()
	case fieldText:
		return p.text.Focus()
	}
	return nil
}

func (p *practiceTab) blur() {
	p.key.Blur()
	p.text.Blur()
}

func (p *practiceTab) clampShift(alphabet *cipher.Alphabet) {
	if p.shift > alphabet.Len() {
		p.shift = alphabet.Len()
	}
	if p.shift < 1 {
		p.shift = 1
	}
}

func (p *practiceTab) update(msg tea.KeyMsg, keys keyMap, alphabet *cipher.Alphabet) tea.Cmd {
	field := p.current()
	switch {
	case key.Matches(msg, keys.Up):
		if p.focused > 0 {
			p.focused--
		}
		return p.focus()
	case key.Matches(msg, keys.Down):
		if p.focused < len(p.fields())-1 {
			p.focused++
		}
		return p.focus()
	case key.Matches(msg, keys.Left, keys.Right) && field != fieldKey && field != fieldText:
		delta := 1
		if key.Matches(msg, keys.Left) {
			delta = -1
		}
		switch field {
		case fieldCipher:
			p.vigenere = !p.vigenere
		case fieldDirection:
			p.decrypt = !p.decrypt
		case fieldShift:
			p.shift += delta
			p.clampShift(alphabet)
		}
		return nil
	}
	return p.updateInputs(msg)
}

func (p *practiceTab) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.current() {
	case fieldKey:
		p.key, cmd = p.key.Update(msg)
	case fieldText:
		p.text, cmd = p.text.Update(msg)
	}
	return cmd
}

// output runs the selected transform over the text input.
func (p *practiceTab) output(alphabet *cipher.Alphabet) (string, error) {
	text := cipher.Normalize(p.text.Value())
	if text == "" {
		return "", nil
	}
	if !p.vigenere {
		if p.decrypt {
			return cipher.CaesarDecrypt(text, p.shift, alphabet)
		}
		return cipher.Caesar(text, p.shift, alphabet)
	}
	k := cipher.Normalize(p.key.Value())
	if p.decrypt {
		return cipher.VigenereDecrypt(text, k, alphabet)
	}
	return cipher.Vigenere(text, k, alphabet)
}

func (p *practiceTab) view(alphabet *cipher.Alphabet, width int) string {
	cipherName := "Шифр Цезаря"
	if p.vigenere {
		cipherName = "Шифр Виженера"
	}
	direction := "Зашифровать"
	if p.decrypt {
		direction = "Расшифровать"
	}
	lines := []string{focusStyle.Render("Свободная тренировка"), ""}
	for i, field := range p.fields() {
		var line string
		switch field {
		case fieldCipher:
			line = "Шифр: ◂ " + cipherName + " ▸"
		case fieldDirection:
			line = "Режим: ◂ " + direction + " ▸"
		case fieldShift:
			line = fmt.Sprintf("Сдвиг: ◂ %d ▸  %s", p.shift, mutedStyle.Render(fmt.Sprintf("(1-%d)", alphabet.Len())))
		case fieldKey:
			line = p.key.View()
		case fieldText:
			line = p.text.View()
		}
		marker := "  "
		if i == p.focused {
			marker = focusStyle.Render("▸ ")
		}
		lines = append(lines, marker+line)
	}
	lines = append(lines, "")
	out, err := p.output(alphabet)
	switch {
	case err != nil:
		lines = append(lines, errorStyle.Render(err.Error()))
	case out != "":
		label := "Зашифрованный текст:"
		if p.decrypt {
			label = "Расшифрованный текст:"
		}
		lines = append(lines, label, cipherStyle.Render(wrapText(out, width)))
	}
	return strings.Join(lines, "\n")
}
