package services_test

import (
	"testing"

	"designdesk/services"
	"designdesk/testhelpers"
)

func TestLoadTaxonomy_SeededCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTaxonomy(t, app)

	roomTypes, err := services.LoadTaxonomy(app)
	if err != nil {
		t.Fatalf("LoadTaxonomy: %v", err)
	}
	if len(roomTypes) == 0 {
		t.Fatal("expected seeded room types")
	}
	if roomTypes[0].Name != "Kitchen" {
		t.Errorf("first room type = %q, want Kitchen (sort_order)", roomTypes[0].Name)
	}

	kitchen, err := services.FindRoomType(app, "Kitchen")
	if err != nil {
		t.Fatalf("FindRoomType: %v", err)
	}
	leaf, err := kitchen.FindByPath([]string{"Counter Top Bottom", "Front Door", "Single Sheet"})
	if err != nil {
		t.Fatalf("FindByPath: %v", err)
	}
	if leaf.DefaultPrice != 50 || leaf.DefaultWages != 10 {
		t.Errorf("leaf defaults = %v/%v, want 50/10", leaf.DefaultPrice, leaf.DefaultWages)
	}
}

func TestFindRoomType_Unknown(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTaxonomy(t, app)

	if _, err := services.FindRoomType(app, "Garage"); err == nil {
		t.Error("expected unknown room type to error")
	}
}
