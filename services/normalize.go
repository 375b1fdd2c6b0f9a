package services

import (
	"strings"

	"cropconnect-client/models"
	"cropconnect-client/utils"
)

// Normalizer canonicalises raw API crop records into the fixed
// internal shape. It runs exactly once, at the ingestion boundary, so
// identity and image fallbacks are never re-derived on access.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize canonicalises a batch of raw records, preserving order.
func (n *Normalizer) Normalize(raw []models.RawCrop) []models.Crop {
	out := make([]models.Crop, 0, len(raw))
	for _, r := range raw {
		out = append(out, n.normalizeOne(r))
	}
	return out
}

func (n *Normalizer) normalizeOne(r models.RawCrop) models.Crop {
	id := firstNonEmpty(r.MongoID, r.ID)
	if id == "" {
		n.logger.Warn("[normalize] crop record without id: %q", r.Name)
	}

	images := r.Images
	if len(images) == 0 && r.Image != "" {
		// Legacy single-image field becomes a 1-element list.
		images = []string{r.Image}
	}

	return models.Crop{
		ID:         id,
		Name:       strings.TrimSpace(firstNonEmpty(r.Name, r.CropName)),
		Type:       strings.TrimSpace(r.Type),
		Quality:    strings.TrimSpace(r.Quality),
		Notes:      strings.TrimSpace(r.Notes),
		Location:   strings.TrimSpace(r.Location),
		FarmerID:   r.FarmerID,
		FarmerName: strings.TrimSpace(r.FarmerName),
		Price:      r.Price,
		Quantity:   r.Quantity,
		Datetime:   strings.TrimSpace(firstNonEmpty(r.Datetime, r.Time)),
		Status:     strings.TrimSpace(r.Status),
		Sold:       r.Sold,
		Images:     images,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
