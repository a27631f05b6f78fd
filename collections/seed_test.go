package collections_test

import (
	"testing"

	"designdesk/collections"
	"designdesk/services"
	"designdesk/testhelpers"
)

func TestSeed_InstallsTaxonomy(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTaxonomy(t, app)

	records, err := app.FindRecordsByFilter("room_types", "name = 'Kitchen'", "", 1, 0, nil)
	if err != nil || len(records) == 0 {
		t.Fatalf("expected seeded Kitchen room type, err=%v", err)
	}

	rt, err := services.ParseRoomType("Kitchen", []byte(records[0].GetString("products")))
	if err != nil {
		t.Fatalf("parse seeded taxonomy: %v", err)
	}

	path := []string{"Counter Top Bottom", "Front Door", "Single Sheet"}
	leaf, err := rt.FindByPath(path)
	if err != nil {
		t.Fatalf("FindByPath on seeded tree: %v", err)
	}
	if leaf.DefaultPrice != 50 || leaf.DefaultWages != 10 {
		t.Errorf("seeded leaf defaults = %v/%v, want 50/10", leaf.DefaultPrice, leaf.DefaultWages)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTaxonomy(t, app)

	first, err := app.FindRecordsByFilter("room_types", "", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("list room_types: %v", err)
	}

	if err := collections.Seed(app); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	second, err := app.FindRecordsByFilter("room_types", "", "", 0, 0, nil)
	if err != nil {
		t.Fatalf("list room_types: %v", err)
	}
	if len(first) != len(second) {
		t.Errorf("seed is not idempotent: %d then %d room types", len(first), len(second))
	}
}

func TestDefaultTaxonomy_AllTreesValid(t *testing.T) {
	for _, rt := range collections.DefaultTaxonomy() {
		if err := rt.Validate(); err != nil {
			t.Errorf("default taxonomy %q invalid: %v", rt.Name, err)
		}
	}
}
