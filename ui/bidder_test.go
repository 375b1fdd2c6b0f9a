package ui

import (
	"encoding/json"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"cropconnect-client/api"
	"cropconnect-client/config"
	"cropconnect-client/models"
	"cropconnect-client/services"
	"cropconnect-client/storage"
	"cropconnect-client/utils"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: make(map[string][]byte)} }

func (m *memStore) Get(key string, out any) error {
	raw, ok := m.data[key]
	if !ok {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return storage.ErrNotFound
	}
	return nil
}

func (m *memStore) Put(key string, val any) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

type fakeCatalogAPI struct {
	crops   []models.RawCrop
	created []models.CropForm
	updated []models.CropForm
}

func (f *fakeCatalogAPI) ListCrops() ([]models.RawCrop, error) { return f.crops, nil }
func (f *fakeCatalogAPI) CreateCrop(form models.CropForm, _ []api.Attachment) error {
	f.created = append(f.created, form)
	return nil
}
func (f *fakeCatalogAPI) UpdateCrop(_ string, form models.CropForm, _ []api.Attachment) error {
	f.updated = append(f.updated, form)
	return nil
}
func (f *fakeCatalogAPI) DeleteCrop(string) error { return nil }

func newTestApp(crops []models.RawCrop) *App {
	logger := utils.NewLogger(io.Discard)
	store := newMemStore()
	return &App{
		Cfg:      &config.Config{ChatPollMs: 2000, CountdownTickMs: 1000},
		Logger:   logger,
		Store:    store,
		Catalog:  services.NewCatalog(&fakeCatalogAPI{crops: crops}, logger),
		Wishlist: services.NewWishlist(store, logger),
	}
}

func openCrops(now time.Time) []models.RawCrop {
	posted := now.Format(time.RFC3339)
	return []models.RawCrop{
		{ID: "c1", Name: "Wheat", Location: "Pune", Datetime: posted, Price: 100},
		{ID: "c2", Name: "Rice", Location: "Nagpur", Datetime: posted, Price: 200},
	}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestBidderIgnoresForeignMessages(t *testing.T) {
	app := newTestApp(openCrops(time.Now()))
	active := newBidderView(app)
	stale := newBidderView(app)

	crops, token, err := app.Catalog.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	active.Update(bidderLoadedMsg{owner: stale, crops: crops, token: token})
	if len(active.filtered) != 0 {
		t.Fatalf("message owned by another instance applied, got %d crops", len(active.filtered))
	}

	active.Update(bidderLoadedMsg{owner: active, crops: crops, token: token})
	if len(active.filtered) != 2 {
		t.Fatalf("expected 2 crops after owned load, got %d", len(active.filtered))
	}
}

func TestBidderStaleLoadDiscarded(t *testing.T) {
	app := newTestApp(openCrops(time.Now()))
	v := newBidderView(app)

	crops, oldToken, err := app.Catalog.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, _, err := app.Catalog.List(); err != nil {
		t.Fatalf("second list: %v", err)
	}

	v.Update(bidderLoadedMsg{owner: v, crops: crops, token: oldToken})
	if len(v.filtered) != 0 {
		t.Fatalf("stale response applied, got %d crops", len(v.filtered))
	}
}

func TestBidderFilterPipeline(t *testing.T) {
	now := time.Now()
	app := newTestApp(openCrops(now))
	v := newBidderView(app)

	crops, token, _ := app.Catalog.List()
	v.Update(bidderLoadedMsg{owner: v, crops: crops, token: token})

	v.search.SetValue("whe")
	v.location.SetValue("pune")
	v.applyFilter()

	if len(v.filtered) != 1 || v.filtered[0].ID != "c1" {
		t.Fatalf("expected only c1 after filtering, got %+v", v.filtered)
	}

	v.search.SetValue("rice")
	v.applyFilter()
	if len(v.filtered) != 0 {
		t.Fatalf("conflicting filters should narrow to nothing, got %d", len(v.filtered))
	}
}

func TestBidderWishlistToggleKey(t *testing.T) {
	app := newTestApp(openCrops(time.Now()))
	v := newBidderView(app)

	crops, token, _ := app.Catalog.List()
	v.Update(bidderLoadedMsg{owner: v, crops: crops, token: token})

	v.Update(keyMsg('w'))
	if app.Wishlist.Count() != 1 {
		t.Fatalf("expected 1 wishlist item, got %d", app.Wishlist.Count())
	}
	v.Update(keyMsg('w'))
	if app.Wishlist.Count() != 0 {
		t.Fatalf("expected toggle to remove the item, got %d", app.Wishlist.Count())
	}
}

func TestBidderBidHandoffStashesCrop(t *testing.T) {
	app := newTestApp(openCrops(time.Now()))
	v := newBidderView(app)

	crops, token, _ := app.Catalog.List()
	v.Update(bidderLoadedMsg{owner: v, crops: crops, token: token})

	cmd := v.Update(keyMsg('b'))
	if cmd == nil {
		t.Fatal("expected a switch command")
	}
	if msg, ok := cmd().(switchViewMsg); !ok || msg.target != ViewBidPortal {
		t.Fatalf("expected switch to bid portal, got %#v", cmd())
	}

	var stashed models.Crop
	if err := app.Store.Get(storage.KeyCurrentBidCrop, &stashed); err != nil {
		t.Fatalf("crop not stashed: %v", err)
	}
	if stashed.ID != "c1" {
		t.Fatalf("expected c1 stashed, got %q", stashed.ID)
	}
}
