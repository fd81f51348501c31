package astro

import "fmt"

// BirthDetail holds one person's birth data as the backend expects it.
type BirthDetail struct {
	Name      string  `json:"name,omitempty"`
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  float64 `json:"timezone"`
}

// DefaultBirthDetail seeds the entry form (Delhi, IST).
func DefaultBirthDetail() BirthDetail {
	return BirthDetail{
		Year:      1995,
		Month:     1,
		Day:       1,
		Hour:      12,
		Minute:    0,
		Latitude:  28.6139,
		Longitude: 77.209,
		Timezone:  5.5,
	}
}

// With returns a copy with one field replaced. Consumers of a BirthDetail
// never observe a partially mutated value.
func (b BirthDetail) With(mutate func(*BirthDetail)) BirthDetail {
	mutate(&b)
	return b
}

// DateString formats the birth date as YYYY-MM-DD.
func (b BirthDetail) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, b.Month, b.Day)
}

// TimeString formats the birth time as HH:MM.
func (b BirthDetail) TimeString() string {
	return fmt.Sprintf("%02d:%02d", b.Hour, b.Minute)
}

// BirthDetailPair is the request body of the matching flow.
type BirthDetailPair struct {
	P1 BirthDetail `json:"p1"`
	P2 BirthDetail `json:"p2"`
}

// Yoga is a named planetary combination detected by the backend. The client
// treats it as an opaque labeled fact.
type Yoga struct {
	Name     string   `json:"name"`
	Desc     string   `json:"desc"`
	Category string   `json:"category,omitempty"`
	Planets  []string `json:"planets,omitempty"`
}

// MatchAnalysis is the compatibility breakdown of the matching flow.
type MatchAnalysis struct {
	Score   float64            `json:"score"`
	Details map[string]float64 `json:"details"`
}

// MatchResult is the /match response.
type MatchResult struct {
	Analysis  MatchAnalysis `json:"analysis"`
	AIVerdict string        `json:"ai_verdict"`
}

// ChatMessage is one entry in the assistant session log.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// LocationSuggestion is a geocoded city candidate. It is transient: consumed
// on selection and then discarded.
type LocationSuggestion struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type"`
}

// Location is the resolved form of a selected suggestion.
type Location struct {
	City string
	Lat  float64
	Lon  float64
}
