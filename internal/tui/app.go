package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/prakharDvedi/PanditAI/internal/api"
	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/charts"
	"github.com/prakharDvedi/PanditAI/internal/chat"
	"github.com/prakharDvedi/PanditAI/internal/config"
	"github.com/prakharDvedi/PanditAI/internal/geocode"
	"github.com/prakharDvedi/PanditAI/internal/store"
)

// Deps are the collaborators the TUI orchestrates. The cache is injected so
// tests can run against an in-memory store.
type Deps struct {
	Config   *config.Config
	API      *api.Client
	Cache    *store.Cache
	Resolver *geocode.Resolver
	Loader   *charts.Loader
	Log      *logrus.Logger
	Version  string
}

// App is the main TUI application model.
type App struct {
	deps  Deps
	theme *Theme

	viewMode  ViewMode
	activeTab TabIndex
	ready     bool
	quitting  bool

	width  int
	height int

	spinner spinner.Model

	// Hydrated report data. Written only by the submission flow (or the
	// initial cache read); every tab renders a slice of it.
	snapshot *astro.Snapshot
	request  *astro.BirthDetail

	form     formState
	analysis analysisState
	timeline timelineState
	yogas    yogasState
	charts   chartsState
	chat     chatState

	// Location search race control
	deb Debouncer

	toast       string
	toastExpiry time.Time
}

// NewApp creates the TUI application model.
func NewApp(deps Deps) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = DefaultTheme.Spinner

	detail := astro.DefaultBirthDetail()
	var request *astro.BirthDetail
	if req, err := deps.Cache.LoadRequest(); err == nil {
		detail = *req
		request = req
	}

	a := &App{
		deps:     deps,
		theme:    DefaultTheme,
		viewMode: ViewForm,
		request:  request,
		spinner:  s,
		form:     newFormState(detail),
		timeline: timelineState{expanded: -1},
		yogas:    yogasState{expanded: -1},
		width:    80,
		height:   24,
	}

	// Rehydrate from the durable cache so the report is reachable without
	// resubmitting. A missing or broken cache just means the form is the
	// only view with content.
	if snap, err := deps.Cache.Load(); err == nil {
		a.snapshot = snap
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.tick())
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case TickMsg:
		return a, a.tick()

	case DebounceFiredMsg:
		// Only the latest generation may reach the network.
		if !a.deb.Latest(msg.Gen) {
			return a, nil
		}
		query := a.form.inputs[fieldLocation].Value()
		if utf8.RuneCountInString(query) < geocode.MinQueryLength {
			return a, nil
		}
		a.form.searching = true
		return a, a.searchCmd(msg.Gen, query)

	case SuggestionsMsg:
		// A superseded call completing late must never overwrite newer
		// results.
		if !a.deb.Latest(msg.Gen) {
			return a, nil
		}
		a.form.searching = false
		a.form.suggestions = msg.Suggestions
		a.form.suggestIdx = 0
		return a, nil

	case PredictionResultMsg:
		a.form.submitting = false
		if msg.Err != nil {
			a.form.errMsg = msg.Err.Error()
			return a, nil
		}
		// Navigation reads its own write: the report hydrates from the
		// cache, not from the in-memory response.
		if snap, err := a.deps.Cache.Load(); err == nil {
			a.snapshot = snap
		} else {
			a.snapshot = msg.Snapshot
		}
		if req, err := a.deps.Cache.LoadRequest(); err == nil {
			a.request = req
		}
		a.enterReport()
		return a, nil

	case ChartsResultMsg:
		// A load finishing after the report unmounted has no owner; its
		// assets are released instead of mutating whatever view is up now.
		if a.viewMode != ViewReport || !a.charts.loading {
			msg.Result.Release()
			return a, nil
		}
		a.charts.loading = false
		if msg.Err != nil {
			a.showToast(msg.Err.Error(), 3*time.Second)
			return a, nil
		}
		a.charts.loaded = true
		a.charts.result = msg.Result
		return a, nil

	case ChatReplyMsg:
		a.chat.waiting = false
		if a.chat.session != nil {
			a.chat.session.AppendAssistant(msg.Text)
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	if k == "ctrl+c" {
		return a.quit()
	}

	switch a.viewMode {
	case ViewForm:
		return a.handleFormKey(msg)
	case ViewReport:
		return a.handleReportKey(msg)
	}
	return a, nil
}

func (a *App) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	// The chat input swallows most keys while focused.
	if a.activeTab == TabChat {
		return a.handleChatKey(msg)
	}

	switch k {
	case "q":
		return a.quit()
	case "esc", "n":
		a.leaveReport()
		return a, nil
	case "1", "2", "3", "4", "5":
		return a.switchTab(TabIndex(int(k[0] - '1')))
	case "tab":
		return a.switchTab((a.activeTab + 1) % TabCount)
	case "shift+tab":
		return a.switchTab((a.activeTab + TabCount - 1) % TabCount)
	}

	switch a.activeTab {
	case TabAnalysis:
		a.handleAnalysisKey(k)
	case TabTimeline:
		a.handleTimelineKey(k)
	case TabYogas:
		a.handleYogasKey(k)
	}
	return a, nil
}

// switchTab changes the active report tab, lazily starting the chart load
// the first time the charts tab is opened.
func (a *App) switchTab(tab TabIndex) (tea.Model, tea.Cmd) {
	a.activeTab = tab
	a.analysis.activeCard = nil
	if tab == TabChat {
		a.chat.input.Focus()
	} else {
		a.chat.input.Blur()
	}
	if tab == TabCharts && !a.charts.loaded && !a.charts.loading {
		if a.request == nil {
			return a, nil
		}
		a.charts.loading = true
		return a, a.loadChartsCmd(*a.request)
	}
	return a, nil
}

// enterReport mounts the report views over the freshly hydrated snapshot.
func (a *App) enterReport() {
	a.viewMode = ViewReport
	a.activeTab = TabAnalysis
	a.analysis = analysisState{}
	a.timeline = timelineState{expanded: -1}
	a.yogas = yogasState{expanded: -1}
	a.charts = chartsState{}
	a.chat = newChatState(chat.NewSession(a.snapshot.FactSheet()))
}

// leaveReport tears the report down. Chart assets are owned by the mounted
// view, so they are released here on every path out.
func (a *App) leaveReport() {
	if a.deps.Loader != nil {
		a.deps.Loader.Close()
	}
	a.charts = chartsState{}
	a.chat = chatState{}
	a.viewMode = ViewForm
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.quitting = true
	if a.deps.Loader != nil {
		a.deps.Loader.Close()
	}
	return a, tea.Quit
}

func (a *App) showToast(text string, d time.Duration) {
	a.toast = text
	a.toastExpiry = time.Now().Add(d)
}

// Commands

func (a *App) searchCmd(gen int, query string) tea.Cmd {
	resolver := a.deps.Resolver
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return SuggestionsMsg{Gen: gen, Suggestions: resolver.Search(ctx, query)}
	}
}

func (a *App) submitCmd(detail astro.BirthDetail) tea.Cmd {
	deps := a.deps
	return func() tea.Msg {
		snap, err := deps.API.Calculate(context.Background(), detail, deps.Config.Ayanamsa)
		if err != nil {
			return PredictionResultMsg{Err: err}
		}
		if err := deps.Cache.Save(detail, snap); err != nil {
			deps.Log.WithError(err).Warn("failed to cache prediction")
		}
		return PredictionResultMsg{Snapshot: snap}
	}
}

func (a *App) loadChartsCmd(detail astro.BirthDetail) tea.Cmd {
	loader := a.deps.Loader
	return func() tea.Msg {
		result, err := loader.Load(context.Background(), detail)
		return ChartsResultMsg{Result: result, Err: err}
	}
}

func (a *App) View() (output string) {
	// Recover from render panics so a bad snapshot can never crash the UI.
	defer func() {
		if r := recover(); r != nil {
			output = fmt.Sprintf("\n  Error rendering view: %v\n\n  Press ctrl+c to quit.", r)
		}
	}()

	if a.quitting {
		return ""
	}
	if !a.ready {
		return "\n  " + a.spinner.View() + " Starting..."
	}

	w, h := a.width, a.height
	if w < 40 {
		w = 40
	}
	if h < 10 {
		h = 10
	}

	var body string
	switch a.viewMode {
	case ViewForm:
		body = a.viewForm(w, h)
	case ViewReport:
		body = a.viewReport(w, h)
	}

	if time.Now().Before(a.toastExpiry) && a.toast != "" {
		body += "\n" + a.theme.StatusWarning.Render("  "+a.toast)
	}
	return body
}

func truncate(s string, max int) string {
	if len(s) <= max || max < 3 {
		return s
	}
	return s[:max-2] + ".."
}

func pad(b *strings.Builder, h int) {
	lines := strings.Count(b.String(), "\n")
	for lines < h-1 {
		b.WriteString("\n")
		lines++
	}
}

// Run starts the TUI.
func Run(deps Deps) error {
	app := NewApp(deps)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
