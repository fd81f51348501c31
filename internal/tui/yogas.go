package tui

import (
	"fmt"
	"strings"
)

func (a *App) handleYogasKey(k string) {
	n := 0
	if a.snapshot != nil {
		n = len(a.snapshot.Yogas)
	}
	switch k {
	case "up", "k":
		if a.yogas.cursor > 0 {
			a.yogas.cursor--
		}
	case "down", "j":
		if a.yogas.cursor < n-1 {
			a.yogas.cursor++
		}
	case "enter", " ":
		if a.yogas.expanded == a.yogas.cursor {
			a.yogas.expanded = -1
		} else {
			a.yogas.expanded = a.yogas.cursor
		}
	}
}

func (a *App) viewYogas(w int) string {
	var b strings.Builder
	t := a.theme

	if a.snapshot == nil || len(a.snapshot.Yogas) == 0 {
		b.WriteString(t.ValueMuted.Render("\n  No notable yogas found in this chart.\n"))
		return b.String()
	}

	b.WriteString("\n")
	for i, y := range a.snapshot.Yogas {
		line := y.Name
		if y.Category != "" {
			line += t.ValueMuted.Render(fmt.Sprintf("  (%s)", y.Category))
		}
		if i == a.yogas.cursor {
			b.WriteString(t.ListItemActive.Render("  ▸ " + line))
		} else {
			b.WriteString(t.ListItem.Render("    " + line))
		}
		b.WriteString("\n")

		if a.yogas.expanded == i {
			detail := y.Desc
			if len(y.Planets) > 0 {
				detail += "\n" + t.ValueMuted.Render("Planets: "+strings.Join(y.Planets, ", "))
			}
			b.WriteString(t.CardActive.Width(w - 10).Render(detail))
			b.WriteString("\n")
		}
	}
	return b.String()
}
