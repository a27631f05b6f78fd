package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/testhelpers"
)

func createAuthUser(t *testing.T, app *pocketbase.PocketBase, email string) *core.Record {
	t.Helper()

	usersCol, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		t.Fatalf("users collection: %v", err)
	}
	user := core.NewRecord(usersCol)
	user.Set("email", email)
	user.Set("password", "test-password-123")
	user.Set("role", "worker")
	if err := app.Save(user); err != nil {
		t.Fatalf("save user: %v", err)
	}
	return user
}

func TestHandleWorkerCreate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{"name": {"Suresh"}, "phone": {"9000000001"}}
	req := asOwner(t, app, newFormRequest(http.MethodPost, "/workers", form))
	rec := httptest.NewRecorder()

	if err := HandleWorkerCreate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}

	workers, err := app.FindRecordsByFilter(
		"workers", "name = {:name}", "", 0, 0,
		map[string]any{"name": "Suresh"},
	)
	if err != nil || len(workers) != 1 {
		t.Fatalf("expected one worker, got %d (err %v)", len(workers), err)
	}
}

func TestHandleWorkerList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestWorker(t, app, "Listed Worker")

	req := asOwner(t, app, httptest.NewRequest(http.MethodGet, "/workers", nil))
	rec := httptest.NewRecorder()

	if err := HandleWorkerList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Listed Worker")
}

func TestHandleWorkerDelete_BlockedWhileAssigned(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Busy Client")
	worker := testhelpers.CreateTestWorker(t, app, "Busy Worker")
	quotation := testhelpers.CreateTestQuotation(t, app, client.Id, 1000, "Closed")
	quotation.Set("assigned_worker", worker.Id)
	if err := app.Save(quotation); err != nil {
		t.Fatalf("assign: %v", err)
	}

	req := asOwner(t, app, newFormRequest(http.MethodDelete, "/workers/"+worker.Id, nil))
	req.SetPathValue("id", worker.Id)
	rec := httptest.NewRecorder()

	HandleWorkerDelete(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
	if _, err := app.FindRecordById("workers", worker.Id); err != nil {
		t.Error("worker was deleted despite assignment")
	}
}

func TestHandleWorkerDashboard(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	user := createAuthUser(t, app, "dash@example.com")

	client := testhelpers.CreateTestClient(t, app, "Dashboard Client")
	worker := testhelpers.CreateTestWorker(t, app, "Dashboard Worker")
	worker.Set("user", user.Id)
	if err := app.Save(worker); err != nil {
		t.Fatalf("link worker: %v", err)
	}

	room := testhelpers.CreateTestRoom(t, app, client.Id, "Kitchen", "Ready to Start")
	quotation := testhelpers.CreateTestQuotation(t, app, client.Id, 2000, "Closed")
	quotation.Set("assigned_worker", worker.Id)
	if err := app.Save(quotation); err != nil {
		t.Fatalf("assign: %v", err)
	}

	linksCol, err := app.FindCollectionByNameOrId("quotation_rooms")
	if err != nil {
		t.Fatalf("quotation_rooms collection: %v", err)
	}
	link := core.NewRecord(linksCol)
	link.Set("quotation", quotation.Id)
	link.Set("room", room.Id)
	link.Set("room_total_price", 2000)
	if err := app.Save(link); err != nil {
		t.Fatalf("link room: %v", err)
	}

	req := asWorkerUser(httptest.NewRequest(http.MethodGet, "/dashboard", nil), user.Id)
	rec := httptest.NewRecorder()

	if err := HandleWorkerDashboard(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Dashboard Worker", "Dashboard Client", "Kitchen", "In Progress")
}

func TestHandleWorkerDashboard_Unauthenticated(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()

	HandleWorkerDashboard(app)(newTestRequestEvent(app, req, rec))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
