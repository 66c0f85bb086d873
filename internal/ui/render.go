package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/taskstore"
)

const maxTitle = 80

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxTitle {
		return string(r[:maxTitle-3]) + "..."
	}
	return s
}

// PriorityLabel renders the priority label in its display color.
func PriorityLabel(p model.Priority) string {
	if current.Name == "mono" {
		return p.Label()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color())).Render(p.Label())
}

// TaskLine renders one task: checkbox, id, title, priority.
func TaskLine(t model.Task) string {
	box := current.Muted.Render(current.BoxUnchecked)
	title := truncate(t.Title)
	if t.Completed {
		box = current.Success.Render(current.BoxChecked)
		title = current.Done.Render(title)
	}
	return fmt.Sprintf("%s %s %s  %s",
		box, current.Muted.Render(fmt.Sprintf("#%d", t.ID)), title, PriorityLabel(t.Priority))
}

// HeaderLine renders a group header row.
func HeaderLine(g taskstore.GroupKind) string {
	if g == taskstore.GroupDone {
		return current.Accent.Render(current.HeaderDone)
	}
	return current.Accent.Render(current.HeaderTodo)
}

// RowLines renders the grouped view. With grouped=false header rows are
// skipped.
func RowLines(rows []taskstore.Row, grouped bool) []string {
	if len(rows) == 0 {
		return []string{current.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		switch {
		case r.Header && grouped:
			out = append(out, HeaderLine(r.Group))
		case !r.Header:
			out = append(out, TaskLine(r.Task))
		}
	}
	return out
}

// StatsLine is the one-line summary shown under the title.
func StatsLine(st model.Stats) string {
	return fmt.Sprintf("Total: %d | Done: %d | Remaining: %d | Progress: %d%%",
		st.Total, st.Completed, st.Remaining, st.Percentage)
}

// CountsTitle is the compact header with live counts.
func CountsTitle(st model.Stats) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		current.Title.Render("Todos"),
		current.Success.Render(current.SymDone), st.Completed,
		current.Pending.Render(current.SymPending), st.Remaining,
		current.Accent.Render("Total"), st.Total,
	)
}

// Summary builds the full panel body: counts, progress, rows, stats.
func Summary(rows []taskstore.Row, st model.Stats, grouped bool) []string {
	lines := []string{
		CountsTitle(st),
		current.Muted.Render(ProgressBar(st, 28)),
		"",
	}
	lines = append(lines, RowLines(rows, grouped)...)
	if st.Total > 0 {
		lines = append(lines, "", current.Muted.Render(StatsLine(st)))
	}
	return lines
}
