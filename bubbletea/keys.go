package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the key bindings for the editor.
type KeyMap struct {
	Split  key.Binding
	Merge  key.Binding
	Prev   key.Binding
	Next   key.Binding
	Mark   key.Binding
	Bold   key.Binding
	Italic key.Binding
	Code   key.Binding
	Color  key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings. Merge only applies when the
// focused block is empty; otherwise backspace deletes a character. Cancel
// takes precedence over Quit while a drag is active.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Split:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new block")),
		Merge:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "remove empty block")),
		Prev:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous block")),
		Next:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next block")),
		Mark:   key.NewBinding(key.WithKeys("ctrl+@"), key.WithHelp("ctrl+space", "set mark")),
		Bold:   key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "bold")),
		Italic: key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "italic")),
		Code:   key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "code")),
		Color:  key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("alt+4", "color")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}
