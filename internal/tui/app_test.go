package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/charts"
	"github.com/prakharDvedi/PanditAI/internal/chat"
	"github.com/prakharDvedi/PanditAI/internal/config"
	"github.com/prakharDvedi/PanditAI/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	a := NewApp(Deps{
		Config: config.Default(),
		Cache:  store.NewCache(store.NewMemoryStore()),
		Log:    log,
	})
	a.ready = true
	return a
}

func testSnapshot() *astro.Snapshot {
	day := func(offset int) string {
		return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
	}
	return &astro.Snapshot{
		Meta: astro.SnapshotMeta{DestinyScore: 72, FactSheet: "facts"},
		Reading: astro.ReadingByKey{
			"career": "A strong tenth house.",
		},
		Dasha: astro.DashaData{
			Timeline: []astro.DashaPeriod{
				{Lord: "Venus", Start: "1990-01-01", End: "2010-01-01", SubPeriods: []astro.DashaPeriod{
					{Lord: "Venus/Sun", Start: "1990-01-01", End: "1991-01-01"},
				}},
				{Lord: "Sun", Start: day(-30), End: day(30), SubPeriods: []astro.DashaPeriod{
					{Lord: "Sun/Moon", Start: day(-30), End: day(30)},
				}},
			},
		},
	}
}

func enterTestReport(a *App) {
	a.snapshot = testSnapshot()
	a.enterReport()
}

func TestTimelineSingleExpanded(t *testing.T) {
	a := newTestApp(t)
	enterTestReport(a)
	a.activeTab = TabTimeline

	a.handleTimelineKey("enter")
	if a.timeline.expanded != 0 {
		t.Fatalf("expanded = %d, want 0", a.timeline.expanded)
	}

	a.handleTimelineKey("down")
	a.handleTimelineKey("enter")
	if a.timeline.expanded != 1 {
		t.Errorf("expanded = %d, want 1: expanding a second node must collapse the first", a.timeline.expanded)
	}

	a.handleTimelineKey("enter")
	if a.timeline.expanded != -1 {
		t.Errorf("expanded = %d, want -1 after toggling off", a.timeline.expanded)
	}
}

func TestTimelineActiveMarker(t *testing.T) {
	a := newTestApp(t)
	enterTestReport(a)

	rows := a.timelinePeriods()
	if rows[0].active {
		t.Error("past period classified active")
	}
	if !rows[1].active {
		t.Error("covering period not classified active")
	}
}

func TestStaleSuggestionsDropped(t *testing.T) {
	a := newTestApp(t)

	first := a.deb.Next()
	second := a.deb.Next()

	older := []astro.LocationSuggestion{{DisplayName: "London, UK"}}
	newer := []astro.LocationSuggestion{{DisplayName: "Londonderry, UK"}}

	// The newer generation's results land first.
	a.Update(SuggestionsMsg{Gen: second, Suggestions: newer})
	// The superseded call completes late and must be dropped.
	a.Update(SuggestionsMsg{Gen: first, Suggestions: older})

	if len(a.form.suggestions) != 1 || a.form.suggestions[0].DisplayName != "Londonderry, UK" {
		t.Errorf("suggestions = %v, want the newer generation's results", a.form.suggestions)
	}
}

func TestStaleDebounceFireIgnored(t *testing.T) {
	a := newTestApp(t)
	a.form.inputs[fieldLocation].SetValue("London")

	first := a.deb.Next()
	a.deb.Next()

	_, cmd := a.Update(DebounceFiredMsg{Gen: first})
	if cmd != nil {
		t.Error("stale debounce fire issued a search command")
	}
	if a.form.searching {
		t.Error("stale debounce fire marked the form as searching")
	}
}

func TestChatReplyAppendsOnce(t *testing.T) {
	a := newTestApp(t)
	enterTestReport(a)
	a.activeTab = TabChat

	a.chat.session.AppendUser("what about my career?")
	a.chat.waiting = true

	a.Update(ChatReplyMsg{Text: "Saturn favors patience."})

	msgs := a.chat.session.Messages()
	if len(msgs) != 3 { // greeting, user, assistant
		t.Fatalf("message count = %d, want 3", len(msgs))
	}
	if msgs[2].Role != "assistant" || msgs[2].Content != "Saturn favors patience." {
		t.Errorf("last message = %+v", msgs[2])
	}
	if a.chat.waiting {
		t.Error("waiting flag not cleared")
	}
}

func TestChatSeededWithGreeting(t *testing.T) {
	a := newTestApp(t)
	enterTestReport(a)

	msgs := a.chat.session.Messages()
	if len(msgs) != 1 || msgs[0].Content != chat.Greeting {
		t.Fatalf("new session log = %+v, want only the greeting", msgs)
	}
}

func TestPredictionResultHydratesFromCache(t *testing.T) {
	a := newTestApp(t)
	detail := astro.DefaultBirthDetail()
	snap := testSnapshot()
	if err := a.deps.Cache.Save(detail, snap); err != nil {
		t.Fatal(err)
	}

	a.Update(PredictionResultMsg{Snapshot: snap})

	if a.viewMode != ViewReport {
		t.Fatal("did not transition to the report view")
	}
	if a.snapshot == nil || a.snapshot.Meta.DestinyScore != 72 {
		t.Errorf("snapshot not rehydrated from cache: %+v", a.snapshot)
	}
	if a.request == nil || a.request.Latitude != detail.Latitude {
		t.Errorf("request not rehydrated from cache: %+v", a.request)
	}
}

func TestPredictionErrorStaysOnForm(t *testing.T) {
	a := newTestApp(t)
	a.form.submitting = true

	a.Update(PredictionResultMsg{Err: errFake("backend down")})

	if a.viewMode != ViewForm {
		t.Error("error result left the form view")
	}
	if a.form.errMsg == "" {
		t.Error("error not surfaced on the form")
	}
	if a.form.submitting {
		t.Error("submitting flag not cleared")
	}
}

type errFake string

func (e errFake) Error() string { return string(e) }

func TestFormTypesLettersIntoFocusedField(t *testing.T) {
	a := newTestApp(t)

	for _, r := range "Raquel" {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	if a.quitting {
		t.Fatal("typing into the name field quit the app")
	}
	if got := a.form.inputs[fieldName].Value(); got != "Raquel" {
		t.Errorf("name field = %q, want %q", got, "Raquel")
	}
}

func TestChartResultAfterLeavingReportIsDiscarded(t *testing.T) {
	a := newTestApp(t)
	enterTestReport(a)
	a.activeTab = TabCharts
	a.charts.loading = true

	a.leaveReport()

	path := filepath.Join(t.TempDir(), "d1.png")
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}
	asset := &charts.Asset{Style: charts.StyleD1, Data: []byte("png"), Path: path}

	a.Update(ChartsResultMsg{Result: charts.Result{D1: asset}})

	if a.charts.loaded || a.charts.result.D1 != nil {
		t.Error("a load finishing after the report unmounted mutated view state")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("orphaned chart asset was not released")
	}
}

func TestVersionShownOnForm(t *testing.T) {
	a := newTestApp(t)
	a.deps.Version = "1.2.3"

	if view := a.viewForm(80, 24); !strings.Contains(view, "v1.2.3") {
		t.Error("form view does not show the app version")
	}
}
