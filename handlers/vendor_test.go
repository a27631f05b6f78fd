package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"designdesk/testhelpers"
)

func TestHandleVendorCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{
		"name":           {"Plywood Traders"},
		"contact_name": {"Ramesh"},
		"phone":          {"9800000000"},
	}
	req := asOwner(t, app, newFormRequest(http.MethodPost, "/vendors", form))
	rec := httptest.NewRecorder()

	if err := HandleVendorCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	vendors, err := app.FindRecordsByFilter(
		"vendors", "name = {:name}", "", 0, 0,
		map[string]any{"name": "Plywood Traders"},
	)
	if err != nil || len(vendors) != 1 {
		t.Fatalf("expected one vendor, got %d (err %v)", len(vendors), err)
	}
}

func TestHandleVendorList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Hardware House")
	testhelpers.CreateTestRawMaterial(t, app, "Hinges", 45)

	materials, _ := app.FindRecordsByFilter("raw_materials", "name = {:n}", "", 1, 0, map[string]any{"n": "Hinges"})
	if len(materials) == 1 {
		materials[0].Set("vendor", vendor.Id)
		app.Save(materials[0])
	}

	req := asOwner(t, app, httptest.NewRequest(http.MethodGet, "/vendors", nil))
	rec := httptest.NewRecorder()

	if err := HandleVendorList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Hardware House")
}

func TestHandleVendorDelete_BlockedWithOrders(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Ordered Vendor")
	testhelpers.CreateTestPurchasedOrder(t, app, vendor.Id, "PO-001")

	req := asOwner(t, app, newFormRequest(http.MethodDelete, "/vendors/"+vendor.Id, nil))
	req.SetPathValue("id", vendor.Id)
	rec := httptest.NewRecorder()

	HandleVendorDelete(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestHandleRawMaterialCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	vendor := testhelpers.CreateTestVendor(t, app, "Material Vendor")

	form := url.Values{
		"name":   {"Laminate Sheet"},
		"vendor": {vendor.Id},
		"unit":   {"Sq.ft"},
		"price":  {"85"},
	}
	req := asOwner(t, app, newFormRequest(http.MethodPost, "/raw-materials", form))
	rec := httptest.NewRecorder()

	if err := HandleRawMaterialCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	materials, err := app.FindRecordsByFilter(
		"raw_materials", "name = {:name}", "", 0, 0,
		map[string]any{"name": "Laminate Sheet"},
	)
	if err != nil || len(materials) != 1 {
		t.Fatalf("expected one material, got %d (err %v)", len(materials), err)
	}
	if got := materials[0].GetFloat("price"); got != 85 {
		t.Errorf("price = %v, want 85", got)
	}
}
