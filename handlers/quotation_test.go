package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"designdesk/testhelpers"
)

func TestHandleQuotationPicker_OnlyEligibleRooms(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Picker Client")
	testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Not Active")
	testhelpers.CreateTestRoom(t, app, client.Id, "Bedroom", "In Progress")

	req := asOwner(t, app, httptest.NewRequest(http.MethodGet, "/clients/"+client.Id+"/quotations/new", nil))
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := HandleQuotationPicker(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Kitchen")
	if strings.Contains(body, "Bedroom") {
		t.Error("ineligible room offered for quotation")
	}
}

func TestHandleQuotationSubmit(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Submit Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Not Active")
	testhelpers.CreateTestProduct(t, app, room.Id, "Counter", 500)

	form := url.Values{"room_ids": {room.Id}}
	req := asOwner(t, app, newFormRequest(http.MethodPost, "/clients/"+client.Id+"/quotations", form))
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := HandleQuotationSubmit(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	quotations, err := app.FindRecordsByFilter(
		"quotations", "client = {:clientId}", "", 0, 0,
		map[string]any{"clientId": client.Id},
	)
	if err != nil || len(quotations) != 1 {
		t.Fatalf("expected one quotation, got %d (err %v)", len(quotations), err)
	}
	if got := quotations[0].GetFloat("total_price"); got != 500 {
		t.Errorf("total_price = %v, want 500", got)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotations/"+quotations[0].Id)
}

func TestHandleQuotationSubmit_NoRooms(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "No Rooms Client")

	req := asOwner(t, app, newFormRequest(http.MethodPost, "/clients/"+client.Id+"/quotations", url.Values{}))
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	HandleQuotationSubmit(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleProductUpdate_Price(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Price Edit Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Not Active")
	product := testhelpers.CreateTestProduct(t, app, room.Id, "Counter", 500)

	form := url.Values{"price": {"750.5"}, "room_ids": {room.Id}}
	req := asOwner(t, app, newFormRequest(http.MethodPatch, "/products/"+product.Id, form))
	req.SetPathValue("id", product.Id)
	rec := httptest.NewRecorder()

	if err := HandleProductUpdate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	updated, _ := app.FindRecordById("products", product.Id)
	if got := updated.GetFloat("price"); got != 750.5 {
		t.Errorf("price = %v, want 750.5", got)
	}
}

func TestHandleProductUpdate_WagesAndDescription(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Wages Edit Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Not Active")
	product := testhelpers.CreateTestProduct(t, app, room.Id, "Counter", 500)

	form := url.Values{
		"wages":       {"120"},
		"description": {"  Teak finish  "},
		"room_ids":    {room.Id},
	}
	req := asOwner(t, app, newFormRequest(http.MethodPatch, "/products/"+product.Id, form))
	req.SetPathValue("id", product.Id)
	rec := httptest.NewRecorder()

	if err := HandleProductUpdate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	updated, _ := app.FindRecordById("products", product.Id)
	if got := updated.GetFloat("wages"); got != 120 {
		t.Errorf("wages = %v, want 120", got)
	}
	if got := updated.GetString("description"); got != "Teak finish" {
		t.Errorf("description = %q, want %q", got, "Teak finish")
	}
	if got := updated.GetFloat("price"); got != 500 {
		t.Errorf("price = %v, want untouched 500", got)
	}
}

func TestHandleProductUpdate_RejectsNegativePrice(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Negative Price Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Not Active")
	product := testhelpers.CreateTestProduct(t, app, room.Id, "Counter", 500)

	form := url.Values{"price": {"-1"}}
	req := asOwner(t, app, newFormRequest(http.MethodPatch, "/products/"+product.Id, form))
	req.SetPathValue("id", product.Id)
	rec := httptest.NewRecorder()

	HandleProductUpdate(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleProductUpdate_KeepsSelectedRooms(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Room Selection Client")
	roomA := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Not Active")
	roomB := testhelpers.CreateTestRoom(t, app, client.Id, "Bedroom", "Not Active")
	product := testhelpers.CreateTestProduct(t, app, roomA.Id, "Counter", 500)
	testhelpers.CreateTestProduct(t, app, roomB.Id, "Wardrobe", 900)

	// The edit carries only room A, so the rebuilt preview must not pull
	// room B back in even though it is still eligible.
	form := url.Values{"price": {"600"}, "room_ids": {roomA.Id}}
	req := asOwner(t, app, newFormRequest(http.MethodPatch, "/products/"+product.Id, form))
	req.SetPathValue("id", product.Id)
	rec := httptest.NewRecorder()

	if err := HandleProductUpdate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Kitchen", roomA.Id)
	if strings.Contains(body, roomB.Id) {
		t.Error("unselected room carried into the rebuilt preview")
	}
	if strings.Contains(body, "Wardrobe") {
		t.Error("unselected room's products rendered in the rebuilt preview")
	}
}

func TestHandleQuotationView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Quotation View Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Not Active")
	testhelpers.CreateTestProduct(t, app, room.Id, "Counter", 500)

	form := url.Values{"room_ids": {room.Id}}
	submitReq := asOwner(t, app, newFormRequest(http.MethodPost, "/clients/"+client.Id+"/quotations", form))
	submitReq.SetPathValue("id", client.Id)
	if err := HandleQuotationSubmit(app)(newTestRequestEvent(app, submitReq, httptest.NewRecorder())); err != nil {
		t.Fatalf("submit: %v", err)
	}

	quotations, _ := app.FindRecordsByFilter(
		"quotations", "client = {:clientId}", "", 1, 0,
		map[string]any{"clientId": client.Id},
	)
	if len(quotations) != 1 {
		t.Fatal("quotation missing")
	}

	req := asOwner(t, app, httptest.NewRequest(http.MethodGet, "/quotations/"+quotations[0].Id, nil))
	req.SetPathValue("id", quotations[0].Id)
	rec := httptest.NewRecorder()

	if err := HandleQuotationView(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		quotations[0].GetString("quotation_number"), "Quotation View Client", "Kitchen")
}

func TestHandleQuotationAssign(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Assign Client")
	quotation := testhelpers.CreateTestQuotation(t, app, client.Id, 1000, "Active")
	worker := testhelpers.CreateTestWorker(t, app, "Assignable Worker")

	form := url.Values{"worker_id": {worker.Id}}
	req := asOwner(t, app, newFormRequest(http.MethodPost, "/quotations/"+quotation.Id+"/assign", form))
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()

	if err := HandleQuotationAssign(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	updated, _ := app.FindRecordById("quotations", quotation.Id)
	if got := updated.GetString("assigned_worker"); got != worker.Id {
		t.Errorf("assigned_worker = %q, want %q", got, worker.Id)
	}
	if got := updated.GetString("status"); got != "Closed" {
		t.Errorf("status = %q, want Closed", got)
	}
}
