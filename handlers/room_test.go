package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"designdesk/testhelpers"
)

func newMultipartRequest(t *testing.T, target string, fields map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return req
}

func TestHandleRoomNew_ShowsCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTaxonomy(t, app)
	client := testhelpers.CreateTestClient(t, app, "Catalog Client")

	req := asOwner(t, app, httptest.NewRequest(http.MethodGet, "/clients/"+client.Id+"/rooms/new", nil))
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := HandleRoomNew(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Kitchen", "Bedroom", "taxonomy-data")
}

func TestHandleRoomCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTaxonomy(t, app)
	client := testhelpers.CreateTestClient(t, app, "Room Client")

	req := newMultipartRequest(t, "/clients/"+client.Id+"/rooms", map[string]string{
		"room_type":    "Kitchen",
		"description":  "North wall",
		"length_value": "10",
		"length_unit":  "ft",
		"width_value":  "12",
		"width_unit":   "ft",
		"item_0_path":  "Counter Top Bottom|Front Door|Single Sheet",
		"item_0_qty":   "20",
		"item_0_unit":  "Sq.ft",
	})
	req = asOwner(t, app, req)
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := HandleRoomCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	rooms, err := app.FindRecordsByFilter(
		"rooms", "client = {:clientId}", "", 0, 0,
		map[string]any{"clientId": client.Id},
	)
	if err != nil || len(rooms) != 1 {
		t.Fatalf("expected one room, got %d (err %v)", len(rooms), err)
	}
	if got := rooms[0].GetFloat("total_sq_ft"); got != 120 {
		t.Errorf("total_sq_ft = %v, want 120", got)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/rooms/"+rooms[0].Id)
}

func TestHandleRoomCreate_RejectsEmptyItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedTaxonomy(t, app)
	client := testhelpers.CreateTestClient(t, app, "Empty Items Client")

	req := newMultipartRequest(t, "/clients/"+client.Id+"/rooms", map[string]string{
		"room_type": "Kitchen",
	})
	req = asOwner(t, app, req)
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	HandleRoomCreate(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRoomView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Room View Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Active")
	testhelpers.CreateTestProduct(t, app, room.Id, "Kitchen Counter", 500)

	req := asOwner(t, app, httptest.NewRequest(http.MethodGet, "/rooms/"+room.Id, nil))
	req.SetPathValue("id", room.Id)
	rec := httptest.NewRecorder()

	if err := HandleRoomView(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Kitchen", "Kitchen Counter", "Room View Client")
}

func TestHandleRoomStatusUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Status Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Ready to Start")

	form := url.Values{"status": {"In Progress"}}
	req := asOwner(t, app, newFormRequest(http.MethodPatch, "/rooms/"+room.Id+"/status", form))
	req.SetPathValue("id", room.Id)
	rec := httptest.NewRecorder()

	if err := HandleRoomStatusUpdate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	updated, _ := app.FindRecordById("rooms", room.Id)
	if got := updated.GetString("status"); got != "In Progress" {
		t.Errorf("status = %q, want In Progress", got)
	}
}

func TestHandleRoomStatusUpdate_RejectsBackward(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Backward Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Completed")

	form := url.Values{"status": {"In Progress"}}
	req := asOwner(t, app, newFormRequest(http.MethodPatch, "/rooms/"+room.Id+"/status", form))
	req.SetPathValue("id", room.Id)
	rec := httptest.NewRecorder()

	HandleRoomStatusUpdate(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	unchanged, _ := app.FindRecordById("rooms", room.Id)
	if got := unchanged.GetString("status"); got != "Completed" {
		t.Errorf("room status = %q, want Completed", got)
	}
}

func TestHandleRoomStatusUpdate_ViewerForbidden(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Viewer Client")
	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Ready to Start")

	form := url.Values{"status": {"In Progress"}}
	// No user in context means viewer role.
	req := newFormRequest(http.MethodPatch, "/rooms/"+room.Id+"/status", form)
	req.SetPathValue("id", room.Id)
	rec := httptest.NewRecorder()

	HandleRoomStatusUpdate(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}
