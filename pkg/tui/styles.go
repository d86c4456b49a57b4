package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/getmockd/mcpconsole/pkg/classify"
)

// Colors, slate palette with the classify scheme colors for accents
var (
	colorText      = lipgloss.Color("#F8FAFC")
	colorDim       = lipgloss.Color("#64748B")
	colorSlate     = lipgloss.Color("#475569")
	colorSuccess   = lipgloss.Color("#16A34A")
	colorError     = lipgloss.Color("#EF4444")
	colorSeparator = lipgloss.Color("#334155")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	DimmedStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	EndpointStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(lipgloss.Color("#1E293B")).
			Padding(0, 1)

	BannerStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorError).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSlate).
			Padding(0, 1)

	InfoStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorSlate).
			Foreground(colorDim).
			PaddingLeft(1)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(classify.SchemeA.Color))

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(colorSeparator)
)

// CardStyle returns the card frame for a scheme: a thick left border in
// the scheme color. Selected cards get a full rounded frame.
func CardStyle(s classify.Scheme, selected bool) lipgloss.Style {
	color := lipgloss.Color(s.Color)
	if selected {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(color).
		Padding(0, 1).
		MarginLeft(1)
}

// IconStyle colors the card glyph.
func IconStyle(s classify.Scheme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Bold(true)
}

// BadgeStyle renders one permitted table.
func BadgeStyle(s classify.Scheme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Color)).
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(lipgloss.Color(s.Color)).
		Padding(0, 1)
}

// Cursor returns the selection cursor.
func Cursor() string {
	return SelectedStyle.Render("› ")
}

// NoCursor returns spacing for non-selected items.
func NoCursor() string {
	return "  "
}

// RenderSeparator returns a horizontal separator line.
func RenderSeparator(width int) string {
	if width <= 0 {
		width = 60
	}
	return SeparatorStyle.Render(strings.Repeat("─", width))
}
