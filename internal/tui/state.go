package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/prakharDvedi/PanditAI/internal/astro"
	"github.com/prakharDvedi/PanditAI/internal/charts"
	"github.com/prakharDvedi/PanditAI/internal/chat"
)

// Form input slots, in focus order.
const (
	fieldName = iota
	fieldDate
	fieldTime
	fieldLocation
	fieldCount
)

// formState is the birth-detail entry form. The BirthDetail record is owned
// here and mutated copy-on-write, one field at a time.
type formState struct {
	detail   astro.BirthDetail
	city     string
	inputs   []textinput.Model
	focusIdx int

	// Location autocomplete
	suggestions []astro.LocationSuggestion
	suggestIdx  int
	searching   bool

	submitting bool
	errMsg     string
}

// analysisState is the category grid: either the grid or one opened card.
type analysisState struct {
	cursor     int
	activeCard *astro.CategoryKey
}

// timelineState renders the dasha tree. At most one period is expanded;
// expanding another implicitly collapses it.
type timelineState struct {
	cursor   int
	expanded int // index of the expanded period, -1 for none
}

// yogasState mirrors the timeline's single-expanded semantics over the yoga
// collection.
type yogasState struct {
	cursor   int
	expanded int
}

// chartsState owns the chart assets while the report is mounted.
type chartsState struct {
	loading bool
	loaded  bool
	result  charts.Result
}

// chatState is the assistant conversation.
type chatState struct {
	session *chat.Session
	input   textinput.Model
	waiting bool
	scroll  int
}

func newFormState(detail astro.BirthDetail) formState {
	inputs := make([]textinput.Model, fieldCount)

	inputs[fieldName] = textinput.New()
	inputs[fieldName].Placeholder = "Your name"
	inputs[fieldName].CharLimit = 48
	inputs[fieldName].Width = 30
	inputs[fieldName].Prompt = ""

	inputs[fieldDate] = textinput.New()
	inputs[fieldDate].Placeholder = "YYYY-MM-DD"
	inputs[fieldDate].CharLimit = 10
	inputs[fieldDate].Width = 12
	inputs[fieldDate].Prompt = ""
	inputs[fieldDate].SetValue(detail.DateString())

	inputs[fieldTime] = textinput.New()
	inputs[fieldTime].Placeholder = "HH:MM"
	inputs[fieldTime].CharLimit = 5
	inputs[fieldTime].Width = 7
	inputs[fieldTime].Prompt = ""
	inputs[fieldTime].SetValue(detail.TimeString())

	inputs[fieldLocation] = textinput.New()
	inputs[fieldLocation].Placeholder = "Start typing city name..."
	inputs[fieldLocation].CharLimit = 64
	inputs[fieldLocation].Width = 36
	inputs[fieldLocation].Prompt = ""

	inputs[fieldName].Focus()

	return formState{
		detail: detail,
		city:   "Delhi",
		inputs: inputs,
	}
}

func newChatState(session *chat.Session) chatState {
	input := textinput.New()
	input.Placeholder = "Ask the stars..."
	input.CharLimit = 256
	input.Width = 48
	input.Prompt = "> "
	return chatState{session: session, input: input}
}
