package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"todomvc/internal/config"
	"todomvc/internal/storage"
	"todomvc/internal/todo"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type Model struct {
	state     *todo.State
	slot      *storage.Slot
	logger    *log.Logger
	cfg       config.Config
	keys      keyMap
	help      help.Model
	input     textinput.Model
	cursor    int
	mode      mode
	editIdx   int
	editOrig  string
	status    string
	statusErr bool
	lastErr   error
}

func NewModel(state *todo.State, slot *storage.Slot, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		state:  state,
		slot:   slot,
		logger: logger,
		cfg:    cfg,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		input:  ti,
		mode:   modeList,
		status: fmt.Sprintf("Press '%s' to add, %s to toggle, '%s' to edit.", cfg.Keys.Add, keyLabel(cfg.Keys.Toggle), cfg.Keys.Edit),
	}
}

func Run(state *todo.State, slot *storage.Slot, cfg config.Config, logger *log.Logger) error {
	program := tea.NewProgram(NewModel(state, slot, cfg, logger), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		default:
			return m.updateListMode(msg)
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		m.help.Width = msg.Width
	case Intent:
		m = m.dispatch(msg)
	}
	return m, nil
}

// dispatch applies one intent and writes the entry list to the slot when
// it succeeds.
func (m Model) dispatch(in Intent) Model {
	m.logger.Debug("intent", "name", in.name(), "msg", fmt.Sprintf("%+v", in))
	if err := in.apply(m.state); err != nil {
		m.logger.Warn("intent failed", "name", in.name(), "err", err)
		m.lastErr = err
		m.setError(fmt.Sprintf("%s failed: %v", in.name(), err))
		return m
	}
	m.lastErr = nil
	if err := m.slot.Save(context.Background(), m.state.Entries()); err != nil {
		m.logger.Error("save failed", "name", in.name(), "err", err)
		m.lastErr = err
		m.setError(fmt.Sprintf("save failed: %v", err))
	}
	m.cursor = clampCursor(m.cursor, len(m.state.Visible()))
	return m
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := len(m.state.Visible())
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, visible)
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, visible)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue(m.state.Value())
		m.input.Placeholder = "What needs to be done?"
		m.input.CursorEnd()
		m.input.Focus()
		m.setStatus("Add mode: type a todo and press Enter")
	case key.Matches(msg, m.keys.Toggle):
		if visible == 0 {
			m.setStatus("No entries")
			return m, nil
		}
		m = m.dispatch(ToggleMsg{Index: m.cursor})
		if m.lastErr == nil {
			m.setStatus("Toggled entry")
		}
	case key.Matches(msg, m.keys.ToggleAll):
		m = m.dispatch(ToggleAllMsg{})
		if m.lastErr == nil {
			m.setStatus("Toggled all")
		}
	case key.Matches(msg, m.keys.Delete):
		if visible == 0 {
			m.setStatus("No entries")
			return m, nil
		}
		m = m.dispatch(RemoveMsg{Index: m.cursor})
		if m.lastErr == nil {
			m.setStatus("Removed entry")
		}
	case key.Matches(msg, m.keys.Edit):
		if visible == 0 {
			m.setStatus("No entries to edit")
			return m, nil
		}
		return m.startEdit(m.cursor)
	case key.Matches(msg, m.keys.ClearCompleted):
		n := m.state.TotalCompleted()
		m = m.dispatch(ClearCompletedMsg{})
		if m.lastErr == nil {
			m.setStatus(fmt.Sprintf("Cleared %d completed", n))
		}
	case key.Matches(msg, m.keys.FilterAll):
		m = m.setFilter(todo.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		m = m.setFilter(todo.FilterActive)
	case key.Matches(msg, m.keys.FilterCompleted):
		m = m.setFilter(todo.FilterCompleted)
	case key.Matches(msg, m.keys.NextFilter):
		m = m.setFilter(m.state.Filter().Next())
	}
	return m, nil
}

func (m Model) setFilter(f todo.Filter) Model {
	m = m.dispatch(SetFilterMsg{Filter: f})
	m.cursor = 0
	m.setStatus("Showing " + f.String())
	return m
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m = m.dispatch(UpdateMsg{Text: ""})
		m.leaveInput()
		m.setStatus("Cancelled")
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		before := m.state.Total()
		m = m.dispatch(AddMsg{})
		m.leaveInput()
		if m.lastErr != nil {
			return m, nil
		}
		if m.state.Total() == before {
			m.setStatus("Nothing to add")
			return m, nil
		}
		m.cursor = clampCursor(len(m.state.Visible())-1, len(m.state.Visible()))
		m.setStatus("Added entry")
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != m.state.Value() {
			m = m.dispatch(UpdateMsg{Text: v})
		}
		return m, cmd
	}
}

func (m Model) startEdit(idx int) (tea.Model, tea.Cmd) {
	m = m.dispatch(ToggleEditMsg{Index: idx})
	if m.lastErr != nil {
		return m, nil
	}
	m.mode = modeEdit
	m.editIdx = idx
	m.editOrig = m.state.EditValue()
	m.input.SetValue(m.state.EditValue())
	m.input.Placeholder = "Empty text removes the entry"
	m.input.CursorEnd()
	m.input.Focus()
	m.setStatus("Edit mode: Enter to save, Esc to cancel")
	return m, nil
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		// Commit the original text so the entry leaves edit mode unchanged.
		m = m.dispatch(UpdateEditMsg{Text: m.editOrig})
		m = m.dispatch(EditMsg{Index: m.editIdx})
		m.leaveInput()
		if m.lastErr == nil {
			m.setStatus("Edit cancelled")
		}
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		before := m.state.Total()
		m = m.dispatch(EditMsg{Index: m.editIdx})
		m.leaveInput()
		if m.lastErr != nil {
			return m, nil
		}
		if m.state.Total() < before {
			m.setStatus("Removed entry")
		} else {
			m.setStatus("Saved entry")
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != m.state.EditValue() {
			m = m.dispatch(UpdateEditMsg{Text: v})
		}
		return m, cmd
	}
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todos"))
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	if m.mode == modeAdd {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if m.state.Total() == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("No todos yet. Press '%s' to add one.", m.cfg.Keys.Add)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderEntries())
		b.WriteString("\n")
		b.WriteString(m.renderCounts())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.statusErr {
		b.WriteString(errorStyle.Render(m.status))
	} else {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return panelStyle.Render(b.String())
}

func (m Model) renderFilters() string {
	parts := make([]string, 0, len(todo.Filters()))
	for _, f := range todo.Filters() {
		if f == m.state.Filter() {
			parts = append(parts, accentStyle.Render("["+f.String()+"]"))
		} else {
			parts = append(parts, mutedStyle.Render(f.String()))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderEntries() string {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return mutedStyle.Render(fmt.Sprintf("Nothing under %s.", m.state.Filter())) + "\n"
	}
	var b strings.Builder
	for i, e := range visible {
		prefix := "  "
		if i == m.cursor && m.mode == modeList {
			prefix = selectedStyle.Render(">") + " "
		}

		checkbox := mutedStyle.Render("[ ]")
		text := e.Description
		if e.Completed {
			checkbox = successStyle.Render("[x]")
			text = doneStyle.Render(text)
		}
		if e.Editing && m.mode == modeEdit {
			text = m.input.View()
		}

		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, checkbox, text))
	}
	return b.String()
}

func (m Model) renderCounts() string {
	left := m.state.TotalActive()
	noun := "items"
	if left == 1 {
		noun = "item"
	}
	return mutedStyle.Render(fmt.Sprintf("%d %s left • %d total • clear completed (%d)",
		left, noun, m.state.Total(), m.state.TotalCompleted()))
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
