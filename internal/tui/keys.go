package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap is shared by both applications; bindings that make no sense
// on a screen are simply not consulted there.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Open   key.Binding // edit (workshop) / details (catalog)
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Back   key.Binding

	// Form navigation.
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// Dialogs.
	Confirm key.Binding
	Cancel  key.Binding

	Quit key.Binding
}

var DefaultKeyMap = KeyMap{
	Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "arriba")),
	Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "abajo")),
	Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "izquierda")),
	Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "derecha")),

	Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
	Add:    key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "agregar")),
	Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
	Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "eliminar")),
	Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "volver")),

	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "siguiente")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "anterior")),
	Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "guardar")),

	Confirm: key.NewBinding(key.WithKeys("y", "s", "enter"), key.WithHelp("s", "eliminar")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancelar")),

	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
}
