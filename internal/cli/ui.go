package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	styleRegime   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleBounds   = lipgloss.NewStyle().Foreground(colorDim)
	styleHeatLoss = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleNoPath   = lipgloss.NewStyle().Foreground(colorRed)
	styleRoute    = lipgloss.NewStyle().Foreground(colorDim)
)

// column pads s to width before styling so columns stay aligned with colors on.
func column(style lipgloss.Style, s string, width int) string {
	return style.Render(lipgloss.NewStyle().Width(width).Render(s))
}
