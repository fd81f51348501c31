package tui

import (
	"time"

	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/charts"
)

// ViewMode represents what view is currently shown.
type ViewMode int

const (
	ViewForm ViewMode = iota // Birth-detail entry (first view)
	ViewReport
)

// TabIndex represents the active report tab.
type TabIndex int

const (
	TabAnalysis TabIndex = iota
	TabCharts
	TabTimeline
	TabYogas
	TabChat
)

const TabCount = 5

// String returns the tab name.
func (t TabIndex) String() string {
	switch t {
	case TabAnalysis:
		return "Analysis"
	case TabCharts:
		return "Charts"
	case TabTimeline:
		return "Timeline"
	case TabYogas:
		return "Yogas"
	case TabChat:
		return "Chat"
	default:
		return "Unknown"
	}
}

// TabNames returns all tab names in order.
func TabNames() []string {
	return []string{"Analysis", "Charts", "Timeline", "Yogas", "Chat"}
}

// Custom messages for Bubble Tea

// PredictionResultMsg is sent when the /calculate call completes.
type PredictionResultMsg struct {
	Snapshot *astro.Snapshot
	Err      error
}

// ChartsResultMsg is sent when both chart fetches have completed.
type ChartsResultMsg struct {
	Result charts.Result
	Err    error
}

// ChatReplyMsg carries the single assistant reply of one exchange.
type ChatReplyMsg struct {
	Text string
}

// DebounceFiredMsg is sent when the location-search debounce window closes.
// Gen identifies the input generation that armed the timer.
type DebounceFiredMsg struct {
	Gen int
}

// SuggestionsMsg carries geocoding results for one input generation.
type SuggestionsMsg struct {
	Gen         int
	Suggestions []astro.LocationSuggestion
}

// TickMsg is sent periodically for clock-driven redraws.
type TickMsg struct {
	Time time.Time
}
