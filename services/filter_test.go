package services

import (
	"testing"
	"time"

	"cropconnect-client/models"
)

func sampleCrops(now time.Time) []models.Crop {
	posted := now.Add(-10 * time.Minute).Format(time.RFC3339)
	expired := now.Add(-2 * time.Hour).Format(time.RFC3339)
	return []models.Crop{
		{ID: "c1", Name: "Wheat", Location: "Pune, Maharashtra", Status: "Available", Datetime: posted},
		{ID: "c2", Name: "Basmati Rice", Location: "Karnal, Haryana", Status: "Available", Datetime: posted},
		{ID: "c3", Name: "Wheat", Location: "Pune, Maharashtra", Status: "sold", Datetime: posted},
		{ID: "c4", Name: "Maize", Location: "Pune, Maharashtra", Status: "Available", Datetime: expired},
	}
}

func ids(crops []models.Crop) []string {
	out := make([]string, len(crops))
	for i, c := range crops {
		out[i] = c.ID
	}
	return out
}

func TestFilterOpen(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	open := FilterOpen(sampleCrops(now), now)
	got := ids(open)
	if len(got) != 2 || got[0] != "c1" || got[1] != "c2" {
		t.Errorf("FilterOpen = %v, want [c1 c2]", got)
	}
}

func TestFilterPipelineNarrows(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	crops := sampleCrops(now)

	// Status+time first, then location, then name. Later stages can
	// only narrow: the sold Pune wheat (c3) must never reappear.
	result := FilterName(FilterLocation(FilterOpen(crops, now), "pune"), "wheat")
	got := ids(result)
	if len(got) != 1 || got[0] != "c1" {
		t.Errorf("pipeline = %v, want [c1]", got)
	}
}

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	open := FilterOpen(sampleCrops(now), now)

	tests := []struct {
		query string
		want  int
	}{
		{"HARYANA", 1},
		{"aryan", 1},
		{"  pune ", 1},
		{"", 2},
		{"goa", 0},
	}
	for _, tt := range tests {
		if got := len(FilterLocation(open, tt.query)); got != tt.want {
			t.Errorf("FilterLocation(%q) kept %d, want %d", tt.query, got, tt.want)
		}
	}

	if got := len(FilterName(open, "rice")); got != 1 {
		t.Errorf("FilterName(rice) kept %d, want 1", got)
	}
}
