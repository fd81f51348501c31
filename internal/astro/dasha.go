package astro

import "time"

// DashaPeriod is one ruling period in the chronological timeline. The
// rendered model is strictly two-level: sub-periods never recurse further.
type DashaPeriod struct {
	Lord       string        `json:"lord"`
	Start      string        `json:"start"` // YYYY-MM-DD
	End        string        `json:"end"`
	Type       string        `json:"type,omitempty"`
	SubPeriods []DashaPeriod `json:"sub_periods,omitempty"`
}

// ActiveOn reports whether the period covers the given instant, comparing by
// calendar date only. Unparseable bounds never classify as active.
func (p DashaPeriod) ActiveOn(now time.Time) bool {
	start, err := time.Parse("2006-01-02", p.Start)
	if err != nil {
		return false
	}
	end, err := time.Parse("2006-01-02", p.End)
	if err != nil {
		return false
	}
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
