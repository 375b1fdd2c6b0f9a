package services

import (
	"testing"

	"cropconnect-client/models"
)

func TestNormalizeIdentityFallbacks(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	tests := []struct {
		name string
		raw  models.RawCrop
		want string
	}{
		{"mongo id wins", models.RawCrop{MongoID: "m1", ID: "p1"}, "m1"},
		{"plain id fallback", models.RawCrop{ID: "p1"}, "p1"},
		{"no id at all", models.RawCrop{Name: "Wheat"}, ""},
	}
	for _, tt := range tests {
		got := n.Normalize([]models.RawCrop{tt.raw})[0]
		if got.ID != tt.want {
			t.Errorf("%s: ID = %q, want %q", tt.name, got.ID, tt.want)
		}
	}
}

func TestNormalizeNameAndDatetimeFallbacks(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	got := n.Normalize([]models.RawCrop{{
		MongoID:  "c1",
		CropName: "Basmati",
		Time:     "2026-08-31T10:00:00Z",
	}})[0]

	if got.Name != "Basmati" {
		t.Errorf("Name = %q, want crop_name fallback", got.Name)
	}
	if got.Datetime != "2026-08-31T10:00:00Z" {
		t.Errorf("Datetime = %q, want time fallback", got.Datetime)
	}

	got = n.Normalize([]models.RawCrop{{
		MongoID:  "c2",
		Name:     "Wheat",
		CropName: "ignored",
		Datetime: "2026-08-31T11:00:00Z",
		Time:     "ignored",
	}})[0]
	if got.Name != "Wheat" || got.Datetime != "2026-08-31T11:00:00Z" {
		t.Errorf("primary fields should win: %+v", got)
	}
}

func TestNormalizeLegacySingleImage(t *testing.T) {
	n := NewNormalizer(newTestLogger())

	got := n.Normalize([]models.RawCrop{{MongoID: "c1", Image: "/a.jpg"}})[0]
	if len(got.Images) != 1 || got.Images[0] != "/a.jpg" {
		t.Errorf("legacy image not lifted into list: %v", got.Images)
	}

	got = n.Normalize([]models.RawCrop{{
		MongoID: "c2",
		Image:   "/legacy.jpg",
		Images:  []string{"/a.jpg", "/b.jpg"},
	}})[0]
	if len(got.Images) != 2 || got.Images[0] != "/a.jpg" {
		t.Errorf("images list should win over legacy field: %v", got.Images)
	}
}
