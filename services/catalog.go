package services

import (
	"errors"
	"fmt"
	"strings"

	"cropconnect-client/api"
	"cropconnect-client/models"
	"cropconnect-client/utils"
)

// Validation failures abort a submission before any network call.
var (
	ErrNameRequired     = errors.New("crop name is required")
	ErrLocationRequired = errors.New("crop location is required")
)

// CatalogAPI is the slice of the marketplace API the catalog needs.
type CatalogAPI interface {
	ListCrops() ([]models.RawCrop, error)
	CreateCrop(form models.CropForm, images []api.Attachment) error
	UpdateCrop(id string, form models.CropForm, images []api.Attachment) error
	DeleteCrop(id string) error
}

// Catalog manages the crop list over the external API. The server is
// the single source of truth: every mutation is followed by a full
// list refresh, never a local merge or patch. Each refresh carries a
// monotonic sequence token so a view can discard responses that a
// newer refresh has already superseded.
type Catalog struct {
	api    CatalogAPI
	norm   *Normalizer
	seq    *utils.Sequencer
	logger *utils.Logger
}

// NewCatalog creates a Catalog over the given API.
func NewCatalog(capi CatalogAPI, logger *utils.Logger) *Catalog {
	return &Catalog{
		api:    capi,
		norm:   NewNormalizer(logger),
		seq:    utils.NewSequencer(),
		logger: logger,
	}
}

// List fetches and canonicalises the full crop list. The returned
// token identifies this refresh; it stops being Fresh as soon as a
// newer refresh is issued.
func (c *Catalog) List() ([]models.Crop, uint64, error) {
	token := c.seq.Next()
	raw, err := c.api.ListCrops()
	if err != nil {
		return nil, token, fmt.Errorf("catalog: list: %w", err)
	}
	return c.norm.Normalize(raw), token, nil
}

// Fresh reports whether token still identifies the latest refresh.
func (c *Catalog) Fresh(token uint64) bool {
	return c.seq.Latest(token)
}

// Create validates and submits a new crop, then returns the refreshed
// list.
func (c *Catalog) Create(form models.CropForm, images []api.Attachment) ([]models.Crop, uint64, error) {
	if err := validateForm(form); err != nil {
		return nil, 0, err
	}
	if err := c.api.CreateCrop(form, images); err != nil {
		return nil, 0, fmt.Errorf("catalog: create: %w", err)
	}
	c.logger.Info("[catalog] created crop %q", form.Name)
	return c.List()
}

// Update validates and submits changed fields for an existing crop,
// then returns the refreshed list.
func (c *Catalog) Update(id string, form models.CropForm, images []api.Attachment) ([]models.Crop, uint64, error) {
	if err := validateForm(form); err != nil {
		return nil, 0, err
	}
	if err := c.api.UpdateCrop(id, form, images); err != nil {
		return nil, 0, fmt.Errorf("catalog: update %s: %w", id, err)
	}
	c.logger.Info("[catalog] updated crop %s", id)
	return c.List()
}

// Delete removes a crop, then returns the refreshed list.
func (c *Catalog) Delete(id string) ([]models.Crop, uint64, error) {
	if err := c.api.DeleteCrop(id); err != nil {
		return nil, 0, fmt.Errorf("catalog: delete %s: %w", id, err)
	}
	c.logger.Info("[catalog] deleted crop %s", id)
	return c.List()
}

func validateForm(form models.CropForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(form.Location) == "" {
		return ErrLocationRequired
	}
	return nil
}
