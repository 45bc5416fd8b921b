package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mww/wr_zones/model"
)

// Render writes the dashboard to w: the header with totals, the zone grid
// with deep zones on top, the route recommendations and the zone detail when
// one was selected.
func Render(w io.Writer, d *model.Dashboard) error {
	r := lipgloss.NewRenderer(w)
	t := NewTheme(r)

	if d == nil || !d.Visible {
		_, err := fmt.Fprintln(w, t.Notice.Render("Select a team or a player to see zone stats."))
		return err
	}

	sections := []string{
		header(t, d),
		grid(t, d.Rows),
		routes(t, d),
	}
	if d.Detail != nil {
		sections = append(sections, detail(t, d.Detail, d.IsTeam))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, sections...))
	return err
}

func header(t Theme, d *model.Dashboard) string {
	e := d.Entity
	title := t.Title.Render(e.Name)
	label := model.TeamLabel(e.Team)
	if div := model.ParseTeam(e.Team).Division(); div != "" {
		label = fmt.Sprintf("%s, %s", label, div)
	}
	sub := t.Subtitle.Render(label)

	s := e.TotalStats
	totals := fmt.Sprintf("Targets %d  Rec %d  Yds %d  TD %d  Catch %s  YPC %s",
		s.Targets, s.Receptions, s.Yards, s.TDs, d.CatchRate, d.YPC)
	return lipgloss.JoinVertical(lipgloss.Left, title+" "+sub, totals)
}

func grid(t Theme, rows [][]model.ZoneCell) string {
	lines := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, cell(t, c))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	lines = append(lines, t.Subtitle.Render("line of scrimmage"))
	return t.Field.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func cell(t Theme, c model.ZoneCell) string {
	if !c.HasData {
		return t.cell(model.BAND_NEUTRAL).Render(c.Label + "\n-")
	}

	body := fmt.Sprintf("%s\n%d/%d %s\n%d yds %s ypt",
		c.Label, c.Stats.Receptions, c.Stats.Targets, model.Percent(c.CatchRate, 1), c.Stats.Yards, model.ToFixed(c.YPT, 1))
	return t.cell(c.Band).Render(body)
}

func routes(t Theme, d *model.Dashboard) string {
	lines := []string{t.Section.Render("Route recommendations")}
	if d.Notice != "" {
		lines = append(lines, t.Notice.Render(d.Notice))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, rec := range d.Routes {
		lines = append(lines, fmt.Sprintf("%d. %s: %s %s",
			i+1, rec.Zone, strings.Join(rec.Routes, ", "), t.Subtitle.Render("("+model.ToFixed(rec.Score, 2)+")")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func detail(t Theme, z *model.ZoneComparison, isTeam bool) string {
	lines := []string{t.Section.Render(fmt.Sprintf("%s: %s", z.EntityName, z.Label))}

	if z.HasData {
		lines = append(lines, fmt.Sprintf("%d/%d for %d yds, %d TD",
			z.Stats.Receptions, z.Stats.Targets, z.Stats.Yards, z.Stats.TDs))
	} else {
		lines = append(lines, "No targets in this zone.")
	}

	ypt := "YPT " + model.ToFixed(z.YPT, 1)
	if z.HasLeague {
		ypt += fmt.Sprintf(" vs league %s %s", model.ToFixed(z.LeagueYPT, 1), t.diff(z.DiffColor).Render("("+model.Signed(z.Diff, 1)+")"))
	} else {
		ypt += " (no league average)"
	}
	lines = append(lines, ypt)

	if tm := z.BestTeammate; tm != nil {
		who := "teammate"
		if isTeam {
			who = "player"
		}
		line := fmt.Sprintf("Best %s: %s, %s YPT on %d targets", who, tm.Name, model.ToFixed(tm.YPT, 1), tm.Targets)
		if tm.HasBaseline {
			line += fmt.Sprintf(" vs %s %s %s", tm.BaselineName, model.ToFixed(tm.BaselineYPT, 1), t.diff(tm.DiffColor).Render("("+model.Signed(tm.Diff, 1)+")"))
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
