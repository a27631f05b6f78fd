package services

import (
	"strings"
	"testing"
	"time"
)

func sampleDocument() QuotationDocument {
	return QuotationDocument{
		Number:        "QTN-25-26-001",
		ClientName:    "Acme Interiors",
		ClientContact: "9876543210",
		TotalPrice:    1000,
		CreatedDate:   "2026-01-15",
		Items: []DocumentLineItem{
			{RoomType: "Kitchen", Name: "Kitchen Counter Top Bottom Front Door Single Sheet",
				Quantity: 10, UnitType: "Sq.ft", Price: 500, Wages: 10},
			{RoomType: "Bedroom", Name: "Bedroom Wardrobe Sliding Door",
				Quantity: 2, UnitType: "Nos", Price: 500, Wages: 50},
		},
	}
}

func TestRenderQuotationHTML_TaxLines(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	out := RenderQuotationHTML(sampleDocument(), now)

	// 18% on a 1000 subtotal.
	if !strings.Contains(out, "180.00") {
		t.Error("expected tax line 180.00 in output")
	}
	if !strings.Contains(out, "1180.00") {
		t.Error("expected grand total 1180.00 in output")
	}
	if !strings.Contains(out, "GST (18%)") {
		t.Error("expected GST (18%) label in output")
	}
}

func TestRenderQuotationHTML_RowTotals(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	out := RenderQuotationHTML(sampleDocument(), now)

	// Row total = quantity * price.
	if !strings.Contains(out, "5000.00") {
		t.Error("expected row total 5000.00 (10 x 500)")
	}
	if !strings.Contains(out, "1000.00") {
		t.Error("expected row total 1000.00 (2 x 500)")
	}
}

func TestRenderQuotationHTML_ValidUntil(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	out := RenderQuotationHTML(sampleDocument(), now)

	if !strings.Contains(out, "Valid until: 14 Feb 2026") {
		t.Error("expected valid-until line 30 days out")
	}
}

func TestRenderQuotationHTML_MissingOptionals(t *testing.T) {
	doc := sampleDocument()
	doc.ClientEmail = ""
	doc.ClientAddress = ""
	doc.Items[0].Description = ""

	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	out := RenderQuotationHTML(doc, now)

	if !strings.Contains(out, "Email: N/A") {
		t.Error("expected missing email to render as N/A")
	}
	if !strings.Contains(out, "Address: N/A") {
		t.Error("expected missing address to render as N/A")
	}
}

func TestRenderQuotationHTML_DeterministicUnderFrozenClock(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	doc := sampleDocument()

	first := RenderQuotationHTML(doc, now)
	second := RenderQuotationHTML(doc, now)
	if first != second {
		t.Error("expected byte-identical output for identical inputs and frozen clock")
	}
}

func TestRenderQuotationHTML_EscapesUserInput(t *testing.T) {
	doc := sampleDocument()
	doc.ClientName = `<script>alert("x")</script>`

	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	out := RenderQuotationHTML(doc, now)

	if strings.Contains(out, "<script>alert") {
		t.Error("expected client name to be HTML-escaped")
	}
}
