package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/templates"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newFormRequest builds an HTMX form POST (or PATCH/DELETE) request.
func newFormRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

// asOwner puts an owner-role user into the request context, the way
// LoadUserMiddleware would for a signed-in owner. The user is a real auth
// record so handlers can store it in relation fields.
func asOwner(t *testing.T, app *pocketbase.PocketBase, req *http.Request) *http.Request {
	t.Helper()

	record, err := app.FindAuthRecordByEmail("users", "owner@test.local")
	if err != nil {
		usersCol, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			t.Fatalf("users collection: %v", err)
		}
		record = core.NewRecord(usersCol)
		record.Set("email", "owner@test.local")
		record.Set("password", "test-password-123")
		record.Set("role", "owner")
		if err := app.Save(record); err != nil {
			t.Fatalf("save owner user: %v", err)
		}
	}

	user := &templates.ActiveUser{ID: record.Id, Name: "Owner", Role: "owner"}
	ctx := context.WithValue(req.Context(), ActiveUserKey, user)
	ctx = context.WithValue(ctx, HeaderDataKey, templates.HeaderData{User: user})
	ctx = context.WithValue(ctx, SidebarDataKey, templates.DefaultSidebar(req.URL.Path))
	return req.WithContext(ctx)
}

func asWorkerUser(req *http.Request, userID string) *http.Request {
	user := &templates.ActiveUser{ID: userID, Name: "Worker", Role: "worker"}
	ctx := context.WithValue(req.Context(), ActiveUserKey, user)
	return req.WithContext(ctx)
}
