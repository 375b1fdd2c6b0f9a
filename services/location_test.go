package services

import (
	"errors"
	"testing"
)

type fakeLocator struct {
	lat, lon   float64
	locateErr  error
	name       string
	reverseErr error
}

func (f *fakeLocator) Locate() (float64, float64, error) {
	return f.lat, f.lon, f.locateErr
}

func (f *fakeLocator) Reverse(lat, lon float64) (string, error) {
	return f.name, f.reverseErr
}

func TestAutoFillFullChain(t *testing.T) {
	loc := NewLocation(&fakeLocator{lat: 18.5204, lon: 73.8567, name: "Shivajinagar, Pune, Maharashtra"}, newTestLogger())
	got := loc.AutoFill()
	want := "Shivajinagar, Pune, Maharashtra (18.5204, 73.8567)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAutoFillReverseFailureFallsBackToCoords(t *testing.T) {
	loc := NewLocation(&fakeLocator{lat: 18.5204, lon: 73.8567, reverseErr: errors.New("rate limited")}, newTestLogger())
	if got := loc.AutoFill(); got != "18.5204, 73.8567" {
		t.Errorf("got %q, want bare coordinates", got)
	}

	loc = NewLocation(&fakeLocator{lat: 18.5204, lon: 73.8567, name: ""}, newTestLogger())
	if got := loc.AutoFill(); got != "18.5204, 73.8567" {
		t.Errorf("empty name: got %q, want bare coordinates", got)
	}
}

func TestAutoFillLocateFailureIsSwallowed(t *testing.T) {
	loc := NewLocation(&fakeLocator{locateErr: errors.New("no network")}, newTestLogger())
	if got := loc.AutoFill(); got != "" {
		t.Errorf("got %q, want empty string for manual entry", got)
	}
}
