package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"todomvc/internal/config"
)

type keyMap struct {
	Quit            key.Binding
	Add             key.Binding
	Up              key.Binding
	Down            key.Binding
	Toggle          key.Binding
	ToggleAll       key.Binding
	Delete          key.Binding
	Edit            key.Binding
	Confirm         key.Binding
	Cancel          key.Binding
	ClearCompleted  key.Binding
	FilterAll       key.Binding
	FilterActive    key.Binding
	FilterCompleted key.Binding
	NextFilter      key.Binding
	Help            key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:            binding("quit", k.Quit, "ctrl+c"),
		Add:             binding("add", k.Add),
		Up:              binding("up", k.Up, "up"),
		Down:            binding("down", k.Down, "down"),
		Toggle:          binding("toggle", k.Toggle),
		ToggleAll:       binding("toggle all", k.ToggleAll),
		Delete:          binding("delete", k.Delete),
		Edit:            binding("edit", k.Edit),
		Confirm:         binding("confirm", k.Confirm),
		Cancel:          binding("cancel", k.Cancel),
		ClearCompleted:  binding("clear completed", k.ClearCompleted),
		FilterAll:       binding("all", k.FilterAll),
		FilterActive:    binding("active", k.FilterActive),
		FilterCompleted: binding("completed", k.FilterCompleted),
		NextFilter:      binding("next filter", k.NextFilter),
		Help:            binding("help", "?"),
	}
}

func binding(desc, primary string, extra ...string) key.Binding {
	keys := append([]string{primary}, extra...)
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keyLabel(primary), desc))
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Edit, k.Delete, k.NextFilter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Edit, k.Confirm, k.Cancel},
		{k.Toggle, k.ToggleAll, k.Delete, k.ClearCompleted},
		{k.FilterAll, k.FilterActive, k.FilterCompleted, k.NextFilter},
		{k.Help, k.Quit},
	}
}
