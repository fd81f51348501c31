package commands

import (
	"testing"

	"github.com/prakharDvedi/PanditAI/internal/config"
)

func TestBuildDetail(t *testing.T) {
	cfg := config.Default()

	detail, err := buildDetail(cfg, nil, "Asha", "1995-01-01", "12:30", "", 19.076, 72.8777)
	if err != nil {
		t.Fatalf("buildDetail: %v", err)
	}
	if detail.Name != "Asha" || detail.Year != 1995 || detail.Month != 1 || detail.Day != 1 {
		t.Errorf("date fields = %+v", detail)
	}
	if detail.Hour != 12 || detail.Minute != 30 {
		t.Errorf("time fields = %d:%d", detail.Hour, detail.Minute)
	}
	if detail.Latitude != 19.076 || detail.Longitude != 72.8777 {
		t.Errorf("coordinates = %f,%f", detail.Latitude, detail.Longitude)
	}
	if detail.Timezone != cfg.Timezone {
		t.Errorf("timezone = %f, want %f", detail.Timezone, cfg.Timezone)
	}
}

func TestBuildDetailDefaultsCoordinates(t *testing.T) {
	// No city and no explicit coordinates: the Delhi defaults stay.
	detail, err := buildDetail(config.Default(), nil, "", "1988-07-21", "04:05", "", 0, 0)
	if err != nil {
		t.Fatalf("buildDetail: %v", err)
	}
	if detail.Latitude != 28.6139 {
		t.Errorf("latitude = %f, want the default", detail.Latitude)
	}
}

func TestBuildDetailRejectsBadInput(t *testing.T) {
	cases := []struct {
		date, time string
	}{
		{"1995-13-01", "12:00"},
		{"not-a-date", "12:00"},
		{"1995-01-01", "25:00"},
		{"1995-01-01", "12:61"},
		{"1995-01-01", "noon"},
	}
	for _, tc := range cases {
		if _, err := buildDetail(config.Default(), nil, "", tc.date, tc.time, "", 0, 0); err == nil {
			t.Errorf("buildDetail(%q, %q) accepted invalid input", tc.date, tc.time)
		}
	}
}
