package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/getmockd/mcpconsole/pkg/console"
	"github.com/getmockd/mcpconsole/pkg/instance"
)

// Mode is the current view.
type Mode int

const (
	ModeList Mode = iota
	ModeCreate
	ModeConfirmDelete
)

// dialog focus targets
const (
	focusName = iota
	focusDescription
	focusTables
	focusCount
)

// Model is the Bubble Tea model. Durable state (list, form, banner, copy
// mark) lives in the console; the model keeps only view state.
type Model struct {
	ctx     context.Context
	console *console.Console
	keys    keyMap

	mode          Mode
	cursor        int
	pendingDelete string
	deleting      bool

	spinner     spinner.Model
	nameInput   textinput.Model
	descInput   textinput.Model
	focus       int
	tableCursor int

	width  int
	height int
}

// Messages for async operations
type refreshedMsg struct{ err error }
type createdMsg struct {
	inst *instance.Instance
	err  error
}
type deletedMsg struct {
	id  string
	err error
}
type copyExpiredMsg struct{ id string }

// New creates a model over c. ctx bounds every backend call started by
// the UI.
func New(ctx context.Context, c *console.Console) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	name := textinput.New()
	name.Placeholder = "e.g. Sales Analytics MCP"
	name.CharLimit = 100
	name.Width = 40

	desc := textinput.New()
	desc.Placeholder = "What this instance is for"
	desc.CharLimit = 200
	desc.Width = 40

	return Model{
		ctx:       ctx,
		console:   c,
		keys:      defaultKeyMap(),
		spinner:   s,
		nameInput: name,
		descInput: desc,
	}
}

// Mode returns the current view.
func (m Model) Mode() Mode {
	return m.mode
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshedMsg:
		m.clampCursor()
		return m, nil

	case createdMsg:
		if msg.err == nil {
			m.closeDialog()
		}
		m.clampCursor()
		return m, nil

	case deletedMsg:
		m.deleting = false
		m.clampCursor()
		return m, nil

	case copyExpiredMsg:
		// Re-render only; the console already cleared the mark.
		return m, nil
	}

	if m.mode == ModeCreate {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeCreate:
		return m.handleDialogKey(msg)
	case ModeConfirmDelete:
		return m.handleConfirmKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	instances := m.console.List.Snapshot().Instances

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(instances)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.spinner.Tick, m.refresh())

	case key.Matches(msg, m.keys.New):
		m.console.Form.Open()
		m.mode = ModeCreate
		m.setFocus(focusName)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Copy):
		if inst, ok := m.selected(instances); ok {
			// Failures land in the banner.
			_ = m.console.Copy(inst.ID)
		}

	case key.Matches(msg, m.keys.Delete):
		if inst, ok := m.selected(instances); ok {
			m.mode = ModeConfirmDelete
			m.pendingDelete = inst.ID
		}

	case key.Matches(msg, m.keys.Dismiss):
		m.console.DismissBanner()
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.pendingDelete
		m.mode = ModeList
		m.pendingDelete = ""
		m.deleting = true
		return m, tea.Batch(m.spinner.Tick, m.delete(id))

	case key.Matches(msg, m.keys.Decline):
		m.mode = ModeList
		m.pendingDelete = ""
	}
	return m, nil
}

func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.console.Cancel()
		m.closeDialog()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.console.Form.Snapshot().Submitting {
			return m, nil
		}
		return m, tea.Batch(m.spinner.Tick, m.submit())

	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focus + 1) % focusCount)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, textinput.Blink
	}

	if m.focus == focusTables {
		tables := m.console.Form.Catalog().All()
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.tableCursor > 0 {
				m.tableCursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.tableCursor < len(tables)-1 {
				m.tableCursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.tableCursor < len(tables) {
				m.console.Form.ToggleCategory(tables[m.tableCursor].ID)
			}
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput passes msg to the focused text input and copies its
// value into the form.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
		m.console.Form.SetName(m.nameInput.Value())
	case focusDescription:
		m.descInput, cmd = m.descInput.Update(msg)
		m.console.Form.SetDescription(m.descInput.Value())
	}
	return m, cmd
}

func (m *Model) setFocus(f int) {
	m.focus = f
	m.nameInput.Blur()
	m.descInput.Blur()
	switch f {
	case focusName:
		m.nameInput.Focus()
	case focusDescription:
		m.descInput.Focus()
	}
}

func (m *Model) closeDialog() {
	m.mode = ModeList
	m.nameInput.SetValue("")
	m.descInput.SetValue("")
	m.nameInput.Blur()
	m.descInput.Blur()
	m.focus = focusName
	m.tableCursor = 0
}

func (m *Model) clampCursor() {
	n := len(m.console.List.Snapshot().Instances)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected(instances []instance.Instance) (instance.Instance, bool) {
	if m.cursor < 0 || m.cursor >= len(instances) {
		return instance.Instance{}, false
	}
	return instances[m.cursor], true
}

func (m Model) refresh() tea.Cmd {
	c, ctx := m.console, m.ctx
	return func() tea.Msg {
		return refreshedMsg{err: c.Refresh(ctx)}
	}
}

func (m Model) submit() tea.Cmd {
	c, ctx := m.console, m.ctx
	return func() tea.Msg {
		inst, err := c.Submit(ctx)
		return createdMsg{inst: inst, err: err}
	}
}

func (m Model) delete(id string) tea.Cmd {
	c, ctx := m.console, m.ctx
	return func() tea.Msg {
		return deletedMsg{id: id, err: c.Delete(ctx, id)}
	}
}
