package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Alphabet key.Binding
	Reset    key.Binding
	Quit     key.Binding
	Submit   key.Binding
	Back     key.Binding
	Hint     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "вкладка")),
		PrevTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "назад")),
		Alphabet: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "алфавит")),
		Reset:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "новая игра")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "выход")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ок")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "к миссиям")),
		Hint:     key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "подсказка")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "вверх")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "вниз")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "меньше")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "больше")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "теория ↑")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "теория ↓")),
	}
}

// helpKeys adapts a binding list to help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }

func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
