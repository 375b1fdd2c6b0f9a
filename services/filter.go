package services

import (
	"strings"
	"time"

	"cropconnect-client/models"
)

// FilterOpen keeps only crops that are biddable at now. It is always
// the first stage of the catalog pipeline; the text filters below
// narrow its result and never re-admit a crop.
func FilterOpen(crops []models.Crop, now time.Time) []models.Crop {
	out := make([]models.Crop, 0, len(crops))
	for _, c := range crops {
		if IsBiddable(c, now) {
			out = append(out, c)
		}
	}
	return out
}

// FilterLocation narrows crops to those whose location contains query,
// case-insensitively. An empty query keeps everything.
func FilterLocation(crops []models.Crop, query string) []models.Crop {
	return filterContains(crops, query, func(c models.Crop) string { return c.Location })
}

// FilterName narrows crops to those whose name contains query,
// case-insensitively. An empty query keeps everything.
func FilterName(crops []models.Crop, query string) []models.Crop {
	return filterContains(crops, query, func(c models.Crop) string { return c.Name })
}

func filterContains(crops []models.Crop, query string, field func(models.Crop) string) []models.Crop {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return crops
	}
	out := make([]models.Crop, 0, len(crops))
	for _, c := range crops {
		if strings.Contains(strings.ToLower(field(c)), query) {
			out = append(out, c)
		}
	}
	return out
}
