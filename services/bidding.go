package services

import (
	"strings"
	"time"

	"cropconnect-client/models"
)

// BidWindow is how long bidding stays open after a crop is posted.
const BidWindow = time.Hour

// Posting timestamps arrive as ISO-8601 strings, with or without a
// zone or fractional seconds depending on which side wrote them.
var postedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// WindowEnd computes when bidding closes for a crop posted at
// postedAt. ok is false when postedAt is missing or unparsable: an
// indeterminate window, which never expires. Only status can close
// such a crop.
func WindowEnd(postedAt string) (end time.Time, ok bool) {
	postedAt = strings.TrimSpace(postedAt)
	if postedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range postedAtLayouts {
		if t, err := time.Parse(layout, postedAt); err == nil {
			return t.Add(BidWindow), true
		}
	}
	return time.Time{}, false
}

// IsOpen reports whether the crop's time window is still open at now.
// An indeterminate window counts as open. Status is not consulted
// here; the catalog filter applies the higher-priority status check.
func IsOpen(c models.Crop, now time.Time) bool {
	end, ok := WindowEnd(c.Datetime)
	if !ok {
		return true
	}
	return now.Before(end)
}

// IsBiddable reports whether bids may be placed on the crop at now:
// status must not close it (case-insensitive "closed" or "sold",
// regardless of time remaining) and the window must be open.
func IsBiddable(c models.Crop, now time.Time) bool {
	return !StatusClosed(c.Status) && IsOpen(c, now)
}

// StatusClosed reports whether the status field alone forces bidding
// closed.
func StatusClosed(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "closed", "sold":
		return true
	}
	return false
}

// Countdown is the remaining bidding time decomposed into whole hours,
// whole minutes within the hour and whole seconds within the minute.
// Components are never negative.
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int
}

// Remaining computes the live countdown for a crop. ok is false when
// there is nothing to count down: the window has expired, or it is
// indeterminate (such a crop stays open but shows no timer).
func Remaining(c models.Crop, now time.Time) (Countdown, bool) {
	end, known := WindowEnd(c.Datetime)
	if !known {
		return Countdown{}, false
	}
	d := end.Sub(now)
	if d <= 0 {
		return Countdown{}, false
	}
	return Countdown{
		Hours:   int(d / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
	}, true
}
