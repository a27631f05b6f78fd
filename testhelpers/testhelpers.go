// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/collections"
	"designdesk/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// SeedTaxonomy installs the default room type taxonomy.
func SeedTaxonomy(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()

	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed taxonomy: %v", err)
	}
}

// CreateTestClient creates a client record with the given name and returns it.
func CreateTestClient(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		t.Fatalf("failed to find clients collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("contact_number", "9876543210")
	record.Set("address", "14 MG Road, Bengaluru")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test client: %v", err)
	}

	return record
}

// CreateTestRoom creates a room record for a client in the given status.
func CreateTestRoom(t *testing.T, app *pocketbase.PocketBase, clientID, roomType string, status services.RoomStatus) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("rooms")
	if err != nil {
		t.Fatalf("failed to find rooms collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("client", clientID)
	record.Set("room_type", roomType)
	record.Set("status", string(status))

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test room: %v", err)
	}

	return record
}

// CreateTestMeasurement creates a measurement row for a room.
func CreateTestMeasurement(t *testing.T, app *pocketbase.PocketBase, roomID string, length float64, lengthUnit string, width float64, widthUnit string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("measurements")
	if err != nil {
		t.Fatalf("failed to find measurements collection: %v", err)
	}

	area, _ := services.Area(length, lengthUnit, width, widthUnit)

	record := core.NewRecord(col)
	record.Set("room", roomID)
	record.Set("length_value", length)
	record.Set("length_unit", lengthUnit)
	record.Set("width_value", width)
	record.Set("width_unit", widthUnit)
	record.Set("converted_sq_ft", area)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test measurement: %v", err)
	}

	return record
}

// CreateTestProduct creates a product line item for a room with the given price.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, roomID, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("room", roomID)
	record.Set("name", name)
	record.Set("product_category", "Counter Top Bottom")
	record.Set("product_subcategory", "Front Door / Single Sheet")
	record.Set("quantity", 10)
	record.Set("unit_type", "Sq.ft")
	record.Set("price", price)
	record.Set("default_price", price)
	record.Set("wages", 10)
	record.Set("default_wages", 10)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestWorker creates a worker record.
func CreateTestWorker(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("workers")
	if err != nil {
		t.Fatalf("failed to find workers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("phone", "9898989898")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test worker: %v", err)
	}

	return record
}

// CreateTestQuotation creates a quotation record for a client.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, clientID string, total float64, status services.QuotationStatus) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("client", clientID)
	record.Set("quotation_number", "QTN-25-26-999")
	record.Set("total_price", total)
	record.Set("status", string(status))

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestVendor creates a vendor record with the given name and returns it.
func CreateTestVendor(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		t.Fatalf("failed to find vendors collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("contact_name", "Test Contact")
	record.Set("phone", "9876543210")
	record.Set("gstin", "27AADCB2230M1ZV")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test vendor: %v", err)
	}

	return record
}

// CreateTestRawMaterial creates a raw material record.
func CreateTestRawMaterial(t *testing.T, app *pocketbase.PocketBase, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("raw_materials")
	if err != nil {
		t.Fatalf("failed to find raw_materials collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("unit", "Sheet")
	record.Set("price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test raw material: %v", err)
	}

	return record
}

// CreateTestPurchasedOrder creates a purchased order linked to a vendor.
func CreateTestPurchasedOrder(t *testing.T, app *pocketbase.PocketBase, vendorID, poNumber string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("purchased_orders")
	if err != nil {
		t.Fatalf("failed to find purchased_orders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("vendor", vendorID)
	record.Set("po_number", poNumber)
	record.Set("status", "draft")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test purchased order: %v", err)
	}

	return record
}

// CreateTestPOLineItem creates a purchased order line item record.
func CreateTestPOLineItem(t *testing.T, app *pocketbase.PocketBase, poID string, sortOrder int, description string, qty, rate float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("po_line_items")
	if err != nil {
		t.Fatalf("failed to find po_line_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("purchased_order", poID)
	record.Set("sort_order", sortOrder)
	record.Set("description", description)
	record.Set("qty", qty)
	record.Set("unit", "Nos")
	record.Set("rate", rate)
	record.Set("amount", qty*rate)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test PO line item: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
