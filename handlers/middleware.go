package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/services"
	"designdesk/templates"
)

type contextKey string

const ActiveUserKey contextKey = "activeUser"
const HeaderDataKey contextKey = "headerData"
const SidebarDataKey contextKey = "sidebarData"

// GetActiveUser extracts the signed-in user from the request context.
func GetActiveUser(r *http.Request) *templates.ActiveUser {
	if val, ok := r.Context().Value(ActiveUserKey).(*templates.ActiveUser); ok {
		return val
	}
	return nil
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// GetSidebarData extracts the pre-built SidebarData from the request context.
func GetSidebarData(r *http.Request) templates.SidebarData {
	if val, ok := r.Context().Value(SidebarDataKey).(templates.SidebarData); ok {
		return val
	}
	return templates.SidebarData{}
}

// ActiveRole reads the effective role for the current request.
func ActiveRole(r *http.Request) services.Role {
	if user := GetActiveUser(r); user != nil {
		return services.ParseRole(user.Role)
	}
	return services.RoleViewer
}

// LoadUserMiddleware resolves the PocketBase auth record into an ActiveUser
// and builds the header and role-scoped sidebar for every page render.
func LoadUserMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var activeUser *templates.ActiveUser

		if authRecord := e.Auth; authRecord != nil {
			name := authRecord.GetString("name")
			if name == "" {
				name = authRecord.GetString("email")
			}
			activeUser = &templates.ActiveUser{
				ID:   authRecord.Id,
				Name: name,
				Role: authRecord.GetString("role"),
			}
		}

		headerData := templates.HeaderData{User: activeUser}

		var sidebarData templates.SidebarData
		role := services.RoleViewer
		if activeUser != nil {
			role = services.ParseRole(activeUser.Role)
		}
		if role.CanManageBusiness() {
			sidebarData = templates.DefaultSidebar(e.Request.URL.Path)
		} else {
			sidebarData = templates.WorkerSidebar(e.Request.URL.Path)
		}

		ctx := context.WithValue(e.Request.Context(), ActiveUserKey, activeUser)
		ctx = context.WithValue(ctx, HeaderDataKey, headerData)
		ctx = context.WithValue(ctx, SidebarDataKey, sidebarData)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// RequireOwner rejects requests whose role cannot manage the business.
func RequireOwner(next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !ActiveRole(e.Request).CanManageBusiness() {
			return ErrorToast(e, http.StatusForbidden, "You do not have permission to do that.")
		}
		return next(e)
	}
}
