package ui

import (
	"testing"
	"time"

	"cropconnect-client/models"
	"cropconnect-client/services"
)

func newFarmerTestApp(crops []models.RawCrop) (*App, *fakeCatalogAPI) {
	app := newTestApp(nil)
	capi := &fakeCatalogAPI{crops: crops}
	app.Catalog = services.NewCatalog(capi, app.Logger)
	return app, capi
}

func TestFarmerEditKeepsPostingTime(t *testing.T) {
	posted := time.Now().Add(-2 * time.Hour).UTC().Format(time.RFC3339)
	raw := []models.RawCrop{
		{ID: "c1", Name: "Wheat", Location: "Pune", FarmerID: "f1", Datetime: posted},
	}
	app, capi := newFarmerTestApp(raw)
	app.User = models.User{ID: "f1", Role: "farmer"}
	v := newFarmerView(app)

	crops, token, err := app.Catalog.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	v.Update(farmerLoadedMsg{owner: v, crops: crops, token: token})

	v.openForm(v.current())
	cmd := v.submit()
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	msg, ok := cmd().(farmerSavedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("save failed: %#v", msg)
	}

	if len(capi.updated) != 1 {
		t.Fatalf("expected 1 update, got %d", len(capi.updated))
	}
	if got := capi.updated[0].Datetime; got != posted {
		t.Fatalf("edit moved the posting time: got %q, want %q", got, posted)
	}
}

func TestFarmerCreateStartsFreshWindow(t *testing.T) {
	app, capi := newFarmerTestApp(nil)
	v := newFarmerView(app)

	v.openForm(nil)
	v.inputs[fieldName].SetValue("Rice")
	v.inputs[fieldLocation].SetValue("Nagpur")

	before := time.Now().UTC().Add(-time.Second)
	cmd := v.submit()
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	msg, ok := cmd().(farmerSavedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("save failed: %#v", msg)
	}

	if len(capi.created) != 1 {
		t.Fatalf("expected 1 create, got %d", len(capi.created))
	}
	ts, err := time.Parse(time.RFC3339, capi.created[0].Datetime)
	if err != nil {
		t.Fatalf("new crop has unparsable posting time %q: %v", capi.created[0].Datetime, err)
	}
	if ts.Before(before) || ts.After(time.Now().UTC().Add(time.Second)) {
		t.Fatalf("new crop posting time %v not set to now", ts)
	}
}
