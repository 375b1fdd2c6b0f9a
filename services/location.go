package services

import (
	"fmt"

	"cropconnect-client/utils"
)

// Locator resolves the machine's position and a readable name for it.
type Locator interface {
	Locate() (lat, lon float64, err error)
	Reverse(lat, lon float64) (string, error)
}

// Location autofills the farmer form's location field. It is pure
// enrichment: every lookup failure is swallowed after a log line, and
// the field is left blank for manual entry. Submission is never
// blocked on it.
type Location struct {
	geo    Locator
	logger *utils.Logger
}

// NewLocation creates a Location service over the given geocoder.
func NewLocation(geo Locator, logger *utils.Logger) *Location {
	return &Location{geo: geo, logger: logger}
}

// AutoFill returns the best location string it can: "name (lat, lon)"
// when the reverse geocode succeeds, bare "lat, lon" when only the
// position lookup does, "" when nothing does.
func (l *Location) AutoFill() string {
	lat, lon, err := l.geo.Locate()
	if err != nil {
		l.logger.Warn("[location] position unavailable: %v", err)
		return ""
	}

	coords := fmt.Sprintf("%.4f, %.4f", lat, lon)
	name, err := l.geo.Reverse(lat, lon)
	if err != nil {
		l.logger.Warn("[location] reverse geocode failed: %v", err)
		return coords
	}
	if name == "" {
		return coords
	}
	return fmt.Sprintf("%s (%.4f, %.4f)", name, lat, lon)
}
