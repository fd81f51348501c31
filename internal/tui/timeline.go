package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/prakharDvedi/PanditAI/internal/astro"
)

type periodRow struct {
	period astro.DashaPeriod
	active bool
}

func (a *App) handleTimelineKey(k string) {
	periods := a.timelinePeriods()
	switch k {
	case "up", "k":
		if a.timeline.cursor > 0 {
			a.timeline.cursor--
		}
	case "down", "j":
		if a.timeline.cursor < len(periods)-1 {
			a.timeline.cursor++
		}
	case "enter", " ":
		// At most one node holds sub-periods open; expanding another
		// collapses the previous one.
		if a.timeline.expanded == a.timeline.cursor {
			a.timeline.expanded = -1
		} else {
			a.timeline.expanded = a.timeline.cursor
		}
	}
}

func (a *App) timelinePeriods() []periodRow {
	if a.snapshot == nil {
		return nil
	}
	rows := make([]periodRow, 0, len(a.snapshot.Dasha.Timeline))
	now := time.Now()
	for _, p := range a.snapshot.Dasha.Timeline {
		rows = append(rows, periodRow{period: p, active: p.ActiveOn(now)})
	}
	return rows
}

func (a *App) viewTimeline(w int) string {
	var b strings.Builder
	t := a.theme

	rows := a.timelinePeriods()
	if len(rows) == 0 {
		b.WriteString(t.ValueMuted.Render("\n  No timeline data available.\n"))
		return b.String()
	}

	b.WriteString("\n")
	for i, row := range rows {
		p := row.period
		label := fmt.Sprintf("%s  %s — %s", p.Lord, p.Start, p.End)
		if p.Type != "" {
			label += t.ValueMuted.Render("  " + strings.ToLower(p.Type))
		}
		if row.active {
			label += t.StatusSuccess.Render("  ● CURRENTLY ACTIVE")
		}

		marker := "  "
		if len(p.SubPeriods) > 0 {
			marker = "▸ "
			if a.timeline.expanded == i {
				marker = "▾ "
			}
		}

		line := marker + label
		if i == a.timeline.cursor {
			b.WriteString(t.ListItemActive.Render("  " + line))
		} else {
			b.WriteString(t.ListItem.Render("  " + line))
		}
		b.WriteString("\n")

		if a.timeline.expanded != i {
			continue
		}
		if len(p.SubPeriods) == 0 {
			b.WriteString(t.ValueMuted.Render("        no sub-periods") + "\n")
			continue
		}
		now := time.Now()
		for _, sub := range p.SubPeriods {
			subLine := fmt.Sprintf("      · %s  %s — %s", sub.Lord, sub.Start, sub.End)
			if sub.ActiveOn(now) {
				subLine += t.StatusSuccess.Render("  ●")
			}
			b.WriteString(t.ListItem.Render("  " + subLine))
			b.WriteString("\n")
		}
	}
	return b.String()
}
