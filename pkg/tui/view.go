package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/getmockd/mcpconsole/pkg/classify"
	"github.com/getmockd/mcpconsole/pkg/console"
	"github.com/getmockd/mcpconsole/pkg/instance"
)

const (
	title    = "MCP Instances"
	subtitle = "Manage your MCP server instances and their table permissions"

	aboutTitle = "About MCP Instances"
	aboutText  = "MCP (Model Context Protocol) instances allow LLMs to securely query and interact " +
		"with your organization's data. Each instance is configured with specific table access " +
		"permissions to ensure data security and proper access control."
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(title) + "\n")
	b.WriteString(SubtitleStyle.Render(subtitle) + "\n\n")

	if banner := m.console.Banner(); banner != "" {
		b.WriteString(BannerStyle.Render("Error: "+banner) + "\n\n")
	}

	if m.mode == ModeCreate {
		b.WriteString(m.renderDialog())
		b.WriteString("\n\n" + renderHelp(m.keys.dialogHelp()))
		return b.String()
	}

	b.WriteString(m.renderList())

	if m.mode == ModeConfirmDelete {
		b.WriteString("\n" + ErrorStyle.Render("Are you sure you want to delete this MCP instance?") +
			" " + DimmedStyle.Render("("+m.pendingDelete+") [y/n]") + "\n")
	}

	b.WriteString("\n" + RenderSeparator(m.separatorWidth()) + "\n")
	b.WriteString(InfoStyle.Render(LabelStyle.Render(aboutTitle)+"\n"+
		lipgloss.NewStyle().Width(m.textWidth()).Render(aboutText)) + "\n\n")
	b.WriteString(renderHelp(m.keys.listHelp()))
	return b.String()
}

func (m Model) renderList() string {
	state := m.console.List.Snapshot()

	var b strings.Builder
	if state.Status == console.StatusLoading || m.deleting {
		b.WriteString(m.spinner.View() + " " + DimmedStyle.Render("Loading MCP instances...") + "\n\n")
	}
	if len(state.Instances) == 0 {
		if state.Status == console.StatusLoaded {
			b.WriteString(DimmedStyle.Render("No MCP instances yet. Press n to create one.") + "\n")
		}
		return b.String()
	}

	copied := m.console.Clipboard.Copied()
	for i, inst := range state.Instances {
		b.WriteString(RenderCard(inst, i == m.cursor, inst.ID == copied, m.textWidth()))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderCard renders one instance card: glyph and name in the scheme
// color, description, endpoint with the copied marker, and table badges.
func RenderCard(inst instance.Instance, selected, copied bool, width int) string {
	scheme := classify.ForInstance(inst)

	nameStyle := DimmedStyle.Bold(true)
	if selected {
		nameStyle = SelectedStyle
	}
	lines := []string{IconStyle(scheme).Render("◆") + " " + nameStyle.Render(inst.Name)}
	if inst.Description != "" {
		lines = append(lines, DimmedStyle.Width(width).Render(inst.Description))
	}

	endpoint := EndpointStyle.Render(inst.EndpointURL)
	if copied {
		endpoint += " " + CopiedStyle.Render("✓ copied")
	}
	lines = append(lines, LabelStyle.Render("MCP ENDPOINT"), endpoint)

	badges := make([]string, 0, len(inst.PermittedCategories))
	for _, table := range inst.PermittedCategories {
		badges = append(badges, BadgeStyle(scheme).Render(table))
	}
	lines = append(lines,
		LabelStyle.Render(fmt.Sprintf("ALLOWED TABLES (%d)", inst.CategoryCount())),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
	)

	return CardStyle(scheme, selected).Render(strings.Join(lines, "\n"))
}

func (m Model) renderDialog() string {
	form := m.console.Form.Snapshot()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Create New MCP Instance") + "\n")
	b.WriteString(DimmedStyle.Render("Name the instance and choose the tables it may access.") + "\n\n")

	b.WriteString(fieldLabel("Name", m.focus == focusName) + "\n")
	b.WriteString(m.nameInput.View() + "\n\n")
	b.WriteString(fieldLabel("Description", m.focus == focusDescription) + "\n")
	b.WriteString(m.descInput.View() + "\n\n")
	b.WriteString(fieldLabel("Allowed Tables", m.focus == focusTables) + "\n")

	for i, cat := range m.console.Form.Catalog().All() {
		cursor := NoCursor()
		if m.focus == focusTables && i == m.tableCursor {
			cursor = Cursor()
		}
		box := "[ ]"
		if form.IsSelected(cat.ID) {
			box = CopiedStyle.Render("[x]")
		}
		line := cursor + box + " " + cat.DisplayLabel()
		if cat.Description != "" {
			line += "  " + DimmedStyle.Render(cat.Description)
		}
		b.WriteString(line + "\n")
	}

	if form.Error != "" {
		b.WriteString("\n" + ErrorStyle.Render(form.Error) + "\n")
	}
	if form.Submitting {
		b.WriteString("\n" + m.spinner.View() + " " + DimmedStyle.Render("Creating...") + "\n")
	}
	return DialogStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return Cursor() + SelectedStyle.Render(label)
	}
	return NoCursor() + LabelStyle.Render(label)
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, SelectedStyle.Render(h.Key)+" "+DimmedStyle.Render(h.Desc))
	}
	return strings.Join(parts, DimmedStyle.Render(" • "))
}

func (m Model) separatorWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 60
}

func (m Model) textWidth() int {
	if m.width > 8 {
		return m.width - 8
	}
	return 72
}
