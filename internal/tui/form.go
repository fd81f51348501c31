package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/geocode"
)

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	// Every form field is a text input, so printable runes always belong to
	// the focused field. Only esc and ctrl+c quit from here.
	switch k {
	case "esc":
		if a.snapshot != nil {
			a.enterReport()
			return a, nil
		}
		return a.quit()
	case "tab", "down":
		a.focusField((a.form.focusIdx + 1) % fieldCount)
		return a, nil
	case "shift+tab":
		a.focusField((a.form.focusIdx + fieldCount - 1) % fieldCount)
		return a, nil
	case "up":
		if a.form.focusIdx == fieldLocation && len(a.form.suggestions) > 0 {
			if a.form.suggestIdx > 0 {
				a.form.suggestIdx--
			}
			return a, nil
		}
		a.focusField((a.form.focusIdx + fieldCount - 1) % fieldCount)
		return a, nil
	case "ctrl+n":
		if a.form.focusIdx == fieldLocation && a.form.suggestIdx < len(a.form.suggestions)-1 {
			a.form.suggestIdx++
		}
		return a, nil
	case "ctrl+p":
		if a.form.focusIdx == fieldLocation && a.form.suggestIdx > 0 {
			a.form.suggestIdx--
		}
		return a, nil
	case "enter":
		if a.form.focusIdx == fieldLocation && len(a.form.suggestions) > 0 {
			a.selectSuggestion(a.form.suggestions[a.form.suggestIdx])
			return a, nil
		}
		return a, a.submitForm()
	}

	if a.form.submitting {
		return a, nil
	}

	idx := a.form.focusIdx
	before := a.form.inputs[idx].Value()
	var cmd tea.Cmd
	a.form.inputs[idx], cmd = a.form.inputs[idx].Update(msg)
	after := a.form.inputs[idx].Value()

	if idx == fieldLocation && after != before {
		return a, tea.Batch(cmd, a.debounceSearch(after))
	}
	return a, cmd
}

// debounceSearch arms a new debounce generation for the current query. Any
// previously armed timer still fires, but its generation is stale by then
// and the handler drops it, so at most one search per pause reaches the
// network.
func (a *App) debounceSearch(query string) tea.Cmd {
	if utf8.RuneCountInString(query) < geocode.MinQueryLength {
		a.deb.Cancel()
		a.form.suggestions = nil
		a.form.searching = false
		return nil
	}
	gen := a.deb.Next()
	return tea.Tick(DebounceWindow, func(time.Time) tea.Msg {
		return DebounceFiredMsg{Gen: gen}
	})
}

func (a *App) selectSuggestion(s astro.LocationSuggestion) {
	loc := geocode.Select(s)
	city := loc.City
	if i := strings.Index(city, ","); i > 0 {
		city = city[:i]
	}
	a.form.city = city
	a.form.detail = a.form.detail.With(func(d *astro.BirthDetail) {
		d.Latitude = loc.Lat
		d.Longitude = loc.Lon
	})
	a.form.inputs[fieldLocation].SetValue(city)
	a.form.inputs[fieldLocation].CursorEnd()
	a.form.suggestions = nil
	a.form.searching = false
	a.deb.Cancel()
}

func (a *App) focusField(idx int) {
	a.form.inputs[a.form.focusIdx].Blur()
	a.form.focusIdx = idx
	a.form.inputs[idx].Focus()
	if idx != fieldLocation {
		a.form.suggestions = nil
		a.deb.Cancel()
	}
}

// submitForm validates the inputs and fires the prediction request.
func (a *App) submitForm() tea.Cmd {
	if a.form.submitting {
		return nil
	}
	detail, err := a.parseForm()
	if err != nil {
		a.form.errMsg = err.Error()
		return nil
	}
	a.form.errMsg = ""
	a.form.submitting = true
	a.form.detail = detail
	return a.submitCmd(detail)
}

func (a *App) parseForm() (astro.BirthDetail, error) {
	detail := a.form.detail

	name := strings.TrimSpace(a.form.inputs[fieldName].Value())

	date := strings.TrimSpace(a.form.inputs[fieldDate].Value())
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return detail, fmt.Errorf("date must be YYYY-MM-DD")
	}

	ts := strings.TrimSpace(a.form.inputs[fieldTime].Value())
	parts := strings.SplitN(ts, ":", 2)
	if len(parts) != 2 {
		return detail, fmt.Errorf("time must be HH:MM")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return detail, fmt.Errorf("time must be HH:MM")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return detail, fmt.Errorf("time must be HH:MM")
	}

	return detail.With(func(b *astro.BirthDetail) {
		b.Name = name
		b.Year = d.Year()
		b.Month = int(d.Month())
		b.Day = d.Day()
		b.Hour = hour
		b.Minute = minute
		b.Timezone = a.deps.Config.Timezone
	}), nil
}

func (a *App) viewForm(w, h int) string {
	var b strings.Builder
	t := a.theme

	b.WriteString("\n")
	b.WriteString(t.Logo.Render("  ☸ PanditAI"))
	if a.deps.Version != "" {
		b.WriteString(t.ValueMuted.Render(" v" + a.deps.Version))
	}
	b.WriteString("  ")
	b.WriteString(t.ValueMuted.Render("Vedic birth chart reading"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Name", "Birth date", "Birth time", "Birth place"}
	for i := 0; i < fieldCount; i++ {
		label := t.Label.Render(fmt.Sprintf("  %-12s", labels[i]))
		b.WriteString(label)
		b.WriteString(a.form.inputs[i].View())
		b.WriteString("\n")

		if i == fieldLocation {
			a.renderSuggestions(&b)
		}
	}

	b.WriteString("\n")
	b.WriteString(t.ValueMuted.Render(fmt.Sprintf("  Coordinates: %.4f, %.4f (%s)",
		a.form.detail.Latitude, a.form.detail.Longitude, a.form.city)))
	b.WriteString("\n\n")

	switch {
	case a.form.submitting:
		b.WriteString("  " + a.spinner.View() + " Consulting the stars...")
	case a.form.errMsg != "":
		b.WriteString(t.StatusError.Render("  ✗ " + a.form.errMsg))
	default:
		b.WriteString(t.Help.Render("  " + t.HelpKey.Render("enter") + " submit  " +
			t.HelpKey.Render("tab") + " next field  " +
			t.HelpKey.Render("ctrl+c") + " quit"))
	}
	b.WriteString("\n")

	pad(&b, h)
	return b.String()
}

func (a *App) renderSuggestions(b *strings.Builder) {
	t := a.theme
	if a.form.searching {
		b.WriteString(t.ValueMuted.Render("               " + a.spinner.View() + " searching..."))
		b.WriteString("\n")
		return
	}
	for i, s := range a.form.suggestions {
		line := truncate(s.DisplayName, 60)
		if i == a.form.suggestIdx {
			b.WriteString(t.ListItemActive.Render("             ▸ " + line))
		} else {
			b.WriteString(t.ListItem.Render("               " + line))
		}
		b.WriteString("\n")
	}
}
