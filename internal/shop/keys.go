package shop

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the keybindings
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Activate    key.Binding
	Back        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Orientation key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
	Num1        key.Binding
	Num2        key.Binding
	Num3        key.Binding
	Num4        key.Binding
	Num5        key.Binding
	Num6        key.Binding
	Num7        key.Binding
	Num8        key.Binding
	Num9        key.Binding
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " ", "right", "l"),
		key.WithHelp("enter", "view"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "left", "h"),
		key.WithHelp("esc", "back"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "scroll down"),
	),
	Orientation: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "orientation"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "f1"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Num1: key.NewBinding(key.WithKeys("1")),
	Num2: key.NewBinding(key.WithKeys("2")),
	Num3: key.NewBinding(key.WithKeys("3")),
	Num4: key.NewBinding(key.WithKeys("4")),
	Num5: key.NewBinding(key.WithKeys("5")),
	Num6: key.NewBinding(key.WithKeys("6")),
	Num7: key.NewBinding(key.WithKeys("7")),
	Num8: key.NewBinding(key.WithKeys("8")),
	Num9: key.NewBinding(key.WithKeys("9")),
}

// quickSelect returns the 0-based position bound to a number key, or -1.
func quickSelect(msg tea.KeyMsg) int {
	nums := []key.Binding{
		keys.Num1, keys.Num2, keys.Num3,
		keys.Num4, keys.Num5, keys.Num6,
		keys.Num7, keys.Num8, keys.Num9,
	}
	for i, b := range nums {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}
