package ui

import (
	"strings"

	"todomvc/internal/todo"
)

// Intent is a message naming exactly one state operation. Index fields
// are positions in the filtered view.
type Intent interface {
	apply(s *todo.State) error
	name() string
}

type AddMsg struct{}

type EditMsg struct{ Index int }

type UpdateMsg struct{ Text string }

type UpdateEditMsg struct{ Text string }

type RemoveMsg struct{ Index int }

type SetFilterMsg struct{ Filter todo.Filter }

type ToggleAllMsg struct{}

// ToggleEditMsg seeds the edit buffer and leaves only the target entry in
// edit mode.
type ToggleEditMsg struct{ Index int }

type ToggleMsg struct{ Index int }

type ClearCompletedMsg struct{}

func (AddMsg) name() string { return "add" }
func (AddMsg) apply(s *todo.State) error {
	s.Add(s.Value())
	return nil
}

func (EditMsg) name() string { return "edit" }
func (m EditMsg) apply(s *todo.State) error {
	err := s.CompleteEdit(m.Index, strings.TrimSpace(s.EditValue()))
	s.UpdateEditValue("")
	return err
}

func (UpdateMsg) name() string { return "update" }
func (m UpdateMsg) apply(s *todo.State) error {
	s.UpdateValue(m.Text)
	return nil
}

func (UpdateEditMsg) name() string { return "update_edit" }
func (m UpdateEditMsg) apply(s *todo.State) error {
	s.UpdateEditValue(m.Text)
	return nil
}

func (RemoveMsg) name() string { return "remove" }
func (m RemoveMsg) apply(s *todo.State) error {
	return s.Remove(m.Index)
}

func (SetFilterMsg) name() string { return "set_filter" }
func (m SetFilterMsg) apply(s *todo.State) error {
	s.SetFilter(m.Filter)
	return nil
}

func (ToggleAllMsg) name() string { return "toggle_all" }
func (ToggleAllMsg) apply(s *todo.State) error {
	s.ToggleAll(!s.IsAllCompleted())
	return nil
}

func (ToggleEditMsg) name() string { return "toggle_edit" }
func (m ToggleEditMsg) apply(s *todo.State) error {
	e, err := s.EntryAt(m.Index)
	if err != nil {
		return err
	}
	s.UpdateEditValue(e.Description)
	s.ClearAllEdit()
	return s.ToggleEdit(m.Index)
}

func (ToggleMsg) name() string { return "toggle" }
func (m ToggleMsg) apply(s *todo.State) error {
	return s.Toggle(m.Index)
}

func (ClearCompletedMsg) name() string { return "clear_completed" }
func (ClearCompletedMsg) apply(s *todo.State) error {
	s.ClearCompleted()
	return nil
}
