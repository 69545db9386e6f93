// Package todo holds the list state and every operation that mutates it.
//
// Operations that take an index resolve it against the filtered view (the
// entries that fit the current filter, in order), not against the full
// list.
package todo

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIndexOutOfRange = errors.New("todo: index out of range")

type State struct {
	entries   []Entry
	filter    Filter
	value     string
	editValue string
}

// New returns a state owning a copy of entries, showing every entry.
func New(entries []Entry) *State {
	owned := make([]Entry, len(entries))
	copy(owned, entries)
	return &State{entries: owned, filter: FilterAll}
}

func (s *State) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Visible returns the filtered view.
func (s *State) Visible() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if s.filter.Fits(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *State) Filter() Filter     { return s.filter }
func (s *State) Value() string      { return s.value }
func (s *State) EditValue() string  { return s.editValue }
func (s *State) SetFilter(f Filter) { s.filter = f }

func (s *State) Total() int {
	return len(s.entries)
}

func (s *State) TotalCompleted() int {
	return s.count(FilterCompleted)
}

func (s *State) TotalActive() int {
	return s.count(FilterActive)
}

func (s *State) count(f Filter) int {
	n := 0
	for _, e := range s.entries {
		if f.Fits(e) {
			n++
		}
	}
	return n
}

// IsAllCompleted reports the completed flag of the first entry in the
// filtered view, or false when the view is empty.
func (s *State) IsAllCompleted() bool {
	for _, e := range s.entries {
		if s.filter.Fits(e) {
			return e.Completed
		}
	}
	return false
}

// Add appends a new entry when description is not blank. The new-entry
// buffer is cleared either way.
func (s *State) Add(description string) {
	if d := strings.TrimSpace(description); d != "" {
		s.entries = append(s.entries, Entry{Description: d})
	}
	s.value = ""
}

func (s *State) UpdateValue(text string) {
	s.value = text
}

func (s *State) UpdateEditValue(text string) {
	s.editValue = text
}

func (s *State) EntryAt(idx int) (Entry, error) {
	abs, err := resolveFilteredIndex(s.entries, s.filter, idx)
	if err != nil {
		return Entry{}, err
	}
	return s.entries[abs], nil
}

func (s *State) Remove(idx int) error {
	abs, err := resolveFilteredIndex(s.entries, s.filter, idx)
	if err != nil {
		return err
	}
	s.entries = append(s.entries[:abs], s.entries[abs+1:]...)
	return nil
}

func (s *State) Toggle(idx int) error {
	abs, err := resolveFilteredIndex(s.entries, s.filter, idx)
	if err != nil {
		return err
	}
	s.entries[abs].Completed = !s.entries[abs].Completed
	return nil
}

// ToggleAll sets the completed flag on every entry that fits the current
// filter.
func (s *State) ToggleAll(value bool) {
	for i := range s.entries {
		if s.filter.Fits(s.entries[i]) {
			s.entries[i].Completed = value
		}
	}
}

// ToggleEdit flips the editing flag. Callers keep at most one entry in
// edit mode by calling ClearAllEdit first.
func (s *State) ToggleEdit(idx int) error {
	abs, err := resolveFilteredIndex(s.entries, s.filter, idx)
	if err != nil {
		return err
	}
	s.entries[abs].Editing = !s.entries[abs].Editing
	return nil
}

func (s *State) ClearAllEdit() {
	for i := range s.entries {
		s.entries[i].Editing = false
	}
}

// CompleteEdit commits text as the new description and flips the editing
// flag. Empty text removes the entry instead.
func (s *State) CompleteEdit(idx int, text string) error {
	if text == "" {
		return s.Remove(idx)
	}
	abs, err := resolveFilteredIndex(s.entries, s.filter, idx)
	if err != nil {
		return err
	}
	s.entries[abs].Description = text
	s.entries[abs].Editing = !s.entries[abs].Editing
	return nil
}

func (s *State) ClearCompleted() {
	kept := s.entries[:0]
	for _, e := range s.entries {
		if FilterActive.Fits(e) {
			kept = append(kept, e)
		}
	}
	clear(s.entries[len(kept):])
	s.entries = kept
}

// resolveFilteredIndex maps a position in the filtered view onto its
// position in entries.
func resolveFilteredIndex(entries []Entry, filter Filter, idx int) (int, error) {
	if idx >= 0 {
		seen := 0
		for abs, e := range entries {
			if !filter.Fits(e) {
				continue
			}
			if seen == idx {
				return abs, nil
			}
			seen++
		}
	}
	n := 0
	for _, e := range entries {
		if filter.Fits(e) {
			n++
		}
	}
	return -1, fmt.Errorf("%w: %d (filtered view has %d)", ErrIndexOutOfRange, idx, n)
}
