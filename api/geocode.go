package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cropconnect-client/config"
)

// Geocoder resolves the machine's approximate position and turns it
// into a readable place name. Both lookups are best-effort enrichment
// for the farmer form; callers swallow failures and leave the location
// field blank for manual entry.
type Geocoder struct {
	geoIPURL     string
	nominatimURL string
	http         *http.Client
}

// NewGeocoder creates a Geocoder from config.
func NewGeocoder(cfg *config.Config) *Geocoder {
	return &Geocoder{
		geoIPURL:     cfg.GeoIPURL,
		nominatimURL: cfg.NominatimURL,
		http:         &http.Client{},
	}
}

// Locate returns the current latitude and longitude from the IP
// geolocation service.
func (g *Geocoder) Locate() (lat, lon float64, err error) {
	resp, err := g.http.Get(g.geoIPURL)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: locate: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, 0, fmt.Errorf("geocode: locate: %w", err)
	}
	if out.Status != "" && out.Status != "success" {
		return 0, 0, fmt.Errorf("geocode: locate: lookup status %q", out.Status)
	}
	return out.Lat, out.Lon, nil
}

// Reverse resolves coordinates to a short readable name: the first
// three comma-separated segments of the geocoder's display name.
func (g *Geocoder) Reverse(lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", lat))
	q.Set("lon", fmt.Sprintf("%.4f", lon))
	q.Set("format", "json")

	resp, err := g.http.Get(g.nominatimURL + "?" + q.Encode())
	if err != nil {
		return "", fmt.Errorf("geocode: reverse: %w", err)
	}
	defer resp.Body.Close()

	var out struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("geocode: reverse: %w", err)
	}
	if out.DisplayName == "" {
		return "", nil
	}

	parts := strings.Split(out.DisplayName, ",")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, ","), nil
}
