package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/charts"
)

func (a *App) viewReport(w, h int) string {
	var b strings.Builder

	b.WriteString(a.renderHeader(w))
	b.WriteString(a.renderTabs())
	b.WriteString("\n")

	switch a.activeTab {
	case TabAnalysis:
		b.WriteString(a.viewAnalysis(w))
	case TabCharts:
		b.WriteString(a.viewCharts(w))
	case TabTimeline:
		b.WriteString(a.viewTimeline(w))
	case TabYogas:
		b.WriteString(a.viewYogas(w))
	case TabChat:
		b.WriteString(a.viewChat(w, h))
	}

	pad(&b, h-1)
	b.WriteString(a.renderFooter())
	return b.String()
}

func (a *App) renderHeader(w int) string {
	t := a.theme
	name := "Seeker"
	if a.request != nil && a.request.Name != "" {
		name = a.request.Name
	}

	left := t.Logo.Render("☸ PanditAI") + "  " + t.Value.Render(name)
	if a.snapshot != nil && a.snapshot.Meta.AscendantSign != "" {
		left += t.ValueMuted.Render("  ·  " + a.snapshot.Meta.AscendantSign + " ascendant")
	}

	score := ""
	if a.snapshot != nil {
		score = t.Score.Render(fmt.Sprintf("Destiny %.0f/100", a.snapshot.Meta.DestinyScore))
	}

	gap := w - lipgloss.Width(left) - lipgloss.Width(score) - 4
	if gap < 1 {
		gap = 1
	}
	line := "  " + left + strings.Repeat(" ", gap) + score
	return t.HeaderContainer.Render(line) + "\n"
}

func (a *App) renderTabs() string {
	t := a.theme
	var parts []string
	for i, name := range TabNames() {
		label := fmt.Sprintf(" %d %s ", i+1, name)
		if TabIndex(i) == a.activeTab {
			parts = append(parts, t.TabActive.Render(label))
		} else {
			parts = append(parts, t.TabInactive.Render(label))
		}
	}
	return "  " + strings.Join(parts, t.Help.Render("│")) + "\n"
}

func (a *App) renderFooter() string {
	t := a.theme
	var help string
	switch a.activeTab {
	case TabAnalysis:
		help = t.HelpKey.Render("↑/↓") + " select  " + t.HelpKey.Render("enter") + " open  "
	case TabTimeline, TabYogas:
		help = t.HelpKey.Render("↑/↓") + " select  " + t.HelpKey.Render("enter") + " expand  "
	case TabChat:
		help = t.HelpKey.Render("enter") + " send  " + t.HelpKey.Render("esc") + " back  "
	}
	help += t.HelpKey.Render("1-5") + " tabs  " + t.HelpKey.Render("n") + " new reading  " + t.HelpKey.Render("q") + " quit"
	return t.FooterContainer.Render("  " + help)
}

// Analysis tab

func (a *App) handleAnalysisKey(k string) {
	cats := astro.Categories()
	switch k {
	case "up", "k":
		if a.analysis.cursor > 0 {
			a.analysis.cursor--
		}
	case "down", "j":
		if a.analysis.cursor < len(cats)-1 {
			a.analysis.cursor++
		}
	case "enter", " ":
		key := cats[a.analysis.cursor]
		if a.analysis.activeCard != nil && *a.analysis.activeCard == key {
			a.analysis.activeCard = nil
		} else {
			a.analysis.activeCard = &key
		}
	}
}

func (a *App) viewAnalysis(w int) string {
	var b strings.Builder
	t := a.theme

	if a.snapshot == nil {
		b.WriteString(t.ValueMuted.Render("\n  No reading available. Press n to enter birth details.\n"))
		return b.String()
	}

	if a.snapshot.Meta.Insight != "" {
		b.WriteString("\n")
		b.WriteString(t.Card.Width(w - 6).Render(t.Title.Render("Key Insight") + "\n" + a.snapshot.Meta.Insight))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, key := range astro.Categories() {
		line := fmt.Sprintf("%s %s", key.Icon(), key.Title())
		if string(key) == a.snapshot.Meta.DominantCategory {
			line += t.StatusSuccess.Render("  ★ dominant")
		}
		if i == a.analysis.cursor {
			b.WriteString(t.ListItemActive.Render("  ▸ " + line))
		} else {
			b.WriteString(t.ListItem.Render("    " + line))
		}
		b.WriteString("\n")

		if a.analysis.activeCard != nil && *a.analysis.activeCard == key {
			reading := a.snapshot.ReadingFor(key)
			b.WriteString(t.CardActive.Width(w - 10).Render(reading))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Charts tab

func (a *App) viewCharts(w int) string {
	var b strings.Builder
	t := a.theme
	b.WriteString("\n")

	switch {
	case a.charts.loading:
		b.WriteString("  " + a.spinner.View() + " Drawing charts...\n")
	case !a.charts.loaded:
		b.WriteString(t.ValueMuted.Render("  Charts not loaded.\n"))
	default:
		a.renderChartAsset(&b, "Rashi (D1)", a.charts.result.D1)
		a.renderChartAsset(&b, "Navamsa (D9)", a.charts.result.D9)
	}
	return b.String()
}

func (a *App) renderChartAsset(b *strings.Builder, title string, asset *charts.Asset) {
	t := a.theme
	b.WriteString("  " + t.Title.Render(title) + "\n")
	if asset == nil {
		b.WriteString(t.StatusError.Render("    ✗ chart unavailable") + "\n\n")
		return
	}
	b.WriteString(t.Value.Render("    saved to "+asset.Path) + "\n")
	b.WriteString(t.ValueMuted.Render(fmt.Sprintf("    %d bytes · open with your image viewer", len(asset.Data))) + "\n\n")
}
