package services_test

import (
	"strings"
	"testing"
	"time"

	"designdesk/services"
	"designdesk/testhelpers"
)

func TestBuildQuotationDocument(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Document Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", services.RoomActive)
	testhelpers.CreateTestProduct(t, app, room.Id, "Kitchen Counter", 500)

	quotation, err := services.SubmitQuotation(app, client.Id, []string{room.Id}, time.Now())
	if err != nil {
		t.Fatalf("SubmitQuotation: %v", err)
	}

	doc, err := services.BuildQuotationDocument(app, quotation.Id)
	if err != nil {
		t.Fatalf("BuildQuotationDocument: %v", err)
	}

	if doc.Number != quotation.GetString("quotation_number") {
		t.Errorf("Number = %q, want %q", doc.Number, quotation.GetString("quotation_number"))
	}
	if doc.ClientName != "Document Client" {
		t.Errorf("ClientName = %q", doc.ClientName)
	}
	if doc.TotalPrice != 500 {
		t.Errorf("TotalPrice = %v, want 500", doc.TotalPrice)
	}
	if len(doc.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(doc.Items))
	}
	item := doc.Items[0]
	if item.Name != "Kitchen Counter" {
		t.Errorf("item name = %q", item.Name)
	}
	if item.RoomType != "Kitchen" {
		t.Errorf("item room type = %q", item.RoomType)
	}
	if item.Price != 500 {
		t.Errorf("item price = %v", item.Price)
	}
	if doc.CreatedDate == "" {
		t.Error("CreatedDate is empty")
	}
}

func TestBuildQuotationDocument_RendersAndExports(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Export Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Bedroom", services.RoomActive)
	testhelpers.CreateTestProduct(t, app, room.Id, "Bedroom Wardrobe Sliding", 1000)

	quotation, err := services.SubmitQuotation(app, client.Id, []string{room.Id}, time.Now())
	if err != nil {
		t.Fatalf("SubmitQuotation: %v", err)
	}

	doc, err := services.BuildQuotationDocument(app, quotation.Id)
	if err != nil {
		t.Fatalf("BuildQuotationDocument: %v", err)
	}

	html := services.RenderQuotationHTML(doc, time.Now())
	for _, want := range []string{doc.Number, "Export Client", "Bedroom Wardrobe Sliding", "180.00", "1180.00"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered HTML missing %q", want)
		}
	}

	validUntil := time.Now().AddDate(0, 0, services.QuotationValidityDays).Format("02 Jan 2006")
	data := services.BuildQuotationExportData(doc, validUntil)

	pdf, err := services.GenerateQuotationPDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotationPDF: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(string(pdf[:4]), "%PDF") {
		t.Error("PDF output does not look like a PDF")
	}

	xlsx, err := services.GenerateQuotationExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuotationExcel: %v", err)
	}
	if len(xlsx) == 0 {
		t.Error("Excel output is empty")
	}
}

func TestBuildQuotationDocument_UnknownID(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := services.BuildQuotationDocument(app, "nope00000000id0"); err == nil {
		t.Error("expected error for unknown quotation id")
	}
}
