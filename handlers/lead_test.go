package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"designdesk/testhelpers"
)

func TestHandleLeadCreateAndStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{
		"name":           {"Walk-in Lead"},
		"contact_number": {"9700000000"},
		"source":         {"referral"},
	}
	req := asOwner(t, app, newFormRequest(http.MethodPost, "/leads", form))
	rec := httptest.NewRecorder()

	if err := HandleLeadCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("create: %v", err)
	}

	leads, err := app.FindRecordsByFilter(
		"leads", "name = {:name}", "", 0, 0,
		map[string]any{"name": "Walk-in Lead"},
	)
	if err != nil || len(leads) != 1 {
		t.Fatalf("expected one lead, got %d (err %v)", len(leads), err)
	}
	if got := leads[0].GetString("status"); got != "new" {
		t.Errorf("initial status = %q, want new", got)
	}

	statusForm := url.Values{"status": {"contacted"}}
	statusReq := asOwner(t, app, newFormRequest(http.MethodPatch, "/leads/"+leads[0].Id+"/status", statusForm))
	statusReq.SetPathValue("id", leads[0].Id)
	statusRec := httptest.NewRecorder()

	if err := HandleLeadStatusUpdate(app)(newTestRequestEvent(app, statusReq, statusRec)); err != nil {
		t.Fatalf("status: %v", err)
	}

	updated, _ := app.FindRecordById("leads", leads[0].Id)
	if got := updated.GetString("status"); got != "contacted" {
		t.Errorf("status = %q, want contacted", got)
	}
}

func TestHandleLeadStatusUpdate_UnknownStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	createForm := url.Values{"name": {"Status Lead"}}
	createReq := asOwner(t, app, newFormRequest(http.MethodPost, "/leads", createForm))
	if err := HandleLeadCreate(app)(newTestRequestEvent(app, createReq, httptest.NewRecorder())); err != nil {
		t.Fatalf("create: %v", err)
	}
	leads, _ := app.FindRecordsByFilter("leads", "name = {:n}", "", 1, 0, map[string]any{"n": "Status Lead"})
	if len(leads) != 1 {
		t.Fatal("lead missing")
	}

	form := url.Values{"status": {"archived"}}
	req := asOwner(t, app, newFormRequest(http.MethodPatch, "/leads/"+leads[0].Id+"/status", form))
	req.SetPathValue("id", leads[0].Id)
	rec := httptest.NewRecorder()

	HandleLeadStatusUpdate(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleLeadList(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	createForm := url.Values{"name": {"Listed Lead"}, "source": {"instagram"}}
	createReq := asOwner(t, app, newFormRequest(http.MethodPost, "/leads", createForm))
	if err := HandleLeadCreate(app)(newTestRequestEvent(app, createReq, httptest.NewRecorder())); err != nil {
		t.Fatalf("create: %v", err)
	}

	req := asOwner(t, app, httptest.NewRequest(http.MethodGet, "/leads", nil))
	rec := httptest.NewRecorder()

	if err := HandleLeadList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("list: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Listed Lead", "instagram")
}
