package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mww/wr_zones/model"
)

const cellWidth = 20

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Notice   lipgloss.Style
	Cell     lipgloss.Style
	Field    lipgloss.Style

	bands map[model.HeatBand]lipgloss.Color
	diffs map[model.DiffColor]lipgloss.Color
}

// NewTheme builds the styles against r so color output matches whatever r is
// writing to.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:    r.NewStyle().Bold(true),
		Subtitle: r.NewStyle().Faint(true),
		Section:  r.NewStyle().Bold(true).Underline(true).MarginTop(1),
		Notice:   r.NewStyle().Italic(true).Faint(true),
		Cell: r.NewStyle().
			Width(cellWidth).
			Height(3).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Field: r.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("28")),

		bands: map[model.HeatBand]lipgloss.Color{
			model.BAND_GREEN:   lipgloss.Color("#22c55e"),
			model.BAND_YELLOW:  lipgloss.Color("#eab308"),
			model.BAND_RED:     lipgloss.Color("#ef4444"),
			model.BAND_NEUTRAL: lipgloss.Color("#334155"),
		},
		diffs: map[model.DiffColor]lipgloss.Color{
			model.DIFF_GREEN:  lipgloss.Color("#22c55e"),
			model.DIFF_YELLOW: lipgloss.Color("#eab308"),
			model.DIFF_RED:    lipgloss.Color("#ef4444"),
		},
	}
}

func (t Theme) cell(band model.HeatBand) lipgloss.Style {
	return t.Cell.BorderForeground(t.bands[band])
}

func (t Theme) diff(c model.DiffColor) lipgloss.Style {
	s := t.Subtitle.UnsetFaint()
	if color, found := t.diffs[c]; found {
		s = s.Foreground(color)
	}
	return s
}
