package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mcpconsole/pkg/console"
	"github.com/getmockd/mcpconsole/pkg/instance"
)

// memRepo is an in-memory console.Repository.
type memRepo struct {
	mu        sync.Mutex
	instances []instance.Instance
	next      int
	listErr   error
}

func (r *memRepo) List(context.Context) ([]instance.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]instance.Instance, len(r.instances))
	for i, inst := range r.instances {
		out[i] = inst.Clone()
	}
	return out, nil
}

func (r *memRepo) Create(_ context.Context, d instance.Draft) (*instance.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	inst := instance.Instance{
		ID:                  fmt.Sprintf("new-%d", r.next),
		Name:                d.Name,
		Description:         d.Description,
		EndpointURL:         fmt.Sprintf("https://x/new-%d", r.next),
		PermittedCategories: append([]string(nil), d.PermittedCategories...),
	}
	r.instances = append(r.instances, inst)
	return &inst, nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, inst := range r.instances {
		if inst.ID == id {
			r.instances = append(r.instances[:i], r.instances[i+1:]...)
			return nil
		}
	}
	return errors.New("MCP instance not found")
}

type fakeClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *fakeClipboard) write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func newTestModel(t *testing.T, seed ...instance.Instance) (Model, *memRepo, *fakeClipboard) {
	t.Helper()
	repo := &memRepo{instances: seed}
	clip := &fakeClipboard{}
	c := console.New(repo,
		console.WithEndpoint("http://api/mcp"),
		console.WithClipboard(clip.write),
		console.WithCopyWindow(time.Minute),
	)
	t.Cleanup(c.Close)

	m := New(context.Background(), c)
	// A static cursor keeps textinput from returning blink timers.
	m.nameInput.Cursor.SetMode(cursor.CursorStatic)
	m.descInput.Cursor.SetMode(cursor.CursorStatic)
	m = settle(t, m, m.Init())
	return m, repo, clip
}

// settle runs cmd and feeds the backend results back into the model.
// Timer-driven messages (spinner ticks, cursor blinks) are dropped.
func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = settle(t, m, c)
		}
	case refreshedMsg, createdMsg, deletedMsg:
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, cmd := m.Update(k)
		m = settle(t, next.(Model), cmd)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func seedInstances() []instance.Instance {
	return []instance.Instance{
		{ID: "1", Name: "Sales MCP", EndpointURL: "https://x/1", PermittedCategories: []string{"Sales"}},
		{ID: "2", Name: "People", Description: "hr data", EndpointURL: "https://x/2", PermittedCategories: []string{"HR", "Finance"}},
	}
}

func TestModel_InitLoadsList(t *testing.T) {
	m, _, _ := newTestModel(t, seedInstances()...)

	assert.Equal(t, console.StatusLoaded, m.console.List.Snapshot().Status)
	view := m.View()
	assert.Contains(t, view, "Sales MCP")
	assert.Contains(t, view, "People")
	assert.Contains(t, view, "https://x/2")
	assert.Contains(t, view, "About MCP Instances")
	assert.NotContains(t, view, "Loading MCP instances")
}

func TestModel_EmptyList(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No MCP instances yet")
}

func TestModel_RefreshFailureShowsBanner(t *testing.T) {
	m, repo, _ := newTestModel(t, seedInstances()...)
	repo.listErr = errors.New("connection refused")

	m = press(t, m, runes("r"))
	assert.Contains(t, m.View(), "Error: connection refused (API: http://api/mcp)")
	assert.Contains(t, m.View(), "Sales MCP", "last loaded list stays visible")

	m = press(t, m, keyEsc)
	assert.Empty(t, m.console.Banner())
}

func TestModel_CreateFlow(t *testing.T) {
	m, repo, _ := newTestModel(t, seedInstances()...)

	m = press(t, m, runes("n"))
	require.Equal(t, ModeCreate, m.Mode())
	assert.Contains(t, m.View(), "Create New MCP Instance")

	m = typeText(t, m, "Finance MCP")
	m = press(t, m, keyTab)
	m = typeText(t, m, "books")
	m = press(t, m, keyTab)
	// Catalog order: Sales, HR, Inventory, Finance, Support.
	m = press(t, m, keyDown, keyDown, keyDown, keySpace)

	form := m.console.Form.Snapshot()
	assert.Equal(t, "Finance MCP", form.Name)
	assert.Equal(t, "books", form.Description)
	assert.Equal(t, []string{"Finance"}, form.Selected)

	m = press(t, m, keyEnter)

	assert.Equal(t, ModeList, m.Mode())
	assert.Len(t, repo.instances, 3)
	list := m.console.List.Snapshot().Instances
	require.Len(t, list, 3)
	assert.Equal(t, "Finance MCP", list[2].Name)
	assert.Equal(t, "books", list[2].Description)
	assert.Equal(t, console.FormState{}, m.console.Form.Snapshot())
	assert.Empty(t, m.nameInput.Value())
}

func TestModel_CreateValidationKeepsDialogOpen(t *testing.T) {
	m, repo, _ := newTestModel(t)

	m = press(t, m, runes("n"))
	m = typeText(t, m, "x")
	m = press(t, m, keyEnter)

	assert.Equal(t, ModeCreate, m.Mode())
	assert.Contains(t, m.View(), "select at least one table")
	assert.Empty(t, repo.instances)
	assert.Equal(t, "x", m.console.Form.Snapshot().Name)
}

func TestModel_SpaceInNameIsText(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, runes("n"))
	m = typeText(t, m, "a")
	m = press(t, m, keySpace)
	m = typeText(t, m, "b")

	assert.Equal(t, "a b", m.console.Form.Snapshot().Name)
	assert.Empty(t, m.console.Form.Snapshot().Selected)
}

func TestModel_CancelClearsDialog(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = press(t, m, runes("n"))
	m = typeText(t, m, "draft")
	m = press(t, m, keyTab, keyTab, keySpace, keyEsc)

	assert.Equal(t, ModeList, m.Mode())
	assert.Equal(t, console.FormState{}, m.console.Form.Snapshot())

	m = press(t, m, runes("n"))
	assert.Empty(t, m.nameInput.Value())
}

func TestModel_DeleteAsksFirst(t *testing.T) {
	m, repo, _ := newTestModel(t, seedInstances()...)

	m = press(t, m, keyDown, runes("d"))
	require.Equal(t, ModeConfirmDelete, m.Mode())
	assert.Contains(t, m.View(), "Are you sure you want to delete this MCP instance?")

	m = press(t, m, runes("n"))
	assert.Equal(t, ModeList, m.Mode())
	assert.Len(t, repo.instances, 2)

	m = press(t, m, runes("d"), runes("y"))
	assert.Equal(t, ModeList, m.Mode())
	require.Len(t, repo.instances, 1)
	assert.Equal(t, "1", repo.instances[0].ID)
	assert.Equal(t, 0, m.cursor, "cursor clamps to the shorter list")
	assert.NotContains(t, m.View(), "People")
}

func TestModel_CopySelected(t *testing.T) {
	m, _, clip := newTestModel(t, seedInstances()...)

	m = press(t, m, keyDown, runes("c"))
	assert.Equal(t, "https://x/2", clip.text)
	assert.True(t, m.console.Clipboard.IsCopied("2"))
	assert.Contains(t, m.View(), "✓ copied")

	next, _ := m.Update(copyExpiredMsg{id: "2"})
	assert.Equal(t, ModeList, next.(Model).Mode())
}

func TestModel_CursorBounds(t *testing.T) {
	m, _, _ := newTestModel(t, seedInstances()...)

	m = press(t, m, runes("k"))
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 1, m.cursor)
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRenderCard(t *testing.T) {
	inst := instance.Instance{
		ID:                  "9",
		Name:                "Wide",
		EndpointURL:         "https://x/9",
		PermittedCategories: []string{"Sales", "HR", "Inventory", "Finance", "Support"},
	}
	card := RenderCard(inst, false, true, 80)

	assert.Contains(t, card, "Wide")
	assert.Contains(t, card, "ALLOWED TABLES (5)")
	assert.Contains(t, card, "✓ copied")
	for _, table := range inst.PermittedCategories {
		assert.True(t, strings.Contains(card, table), "badge %s missing", table)
	}
}
