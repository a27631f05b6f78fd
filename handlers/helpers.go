package handlers

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/services"
	"designdesk/templates"
)

// render writes the full page, or just the content fragment for HTMX swaps.
func render(e *core.RequestEvent, title string, content templ.Component) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		return content.Render(e.Request.Context(), e.Response)
	}
	header := GetHeaderData(e.Request)
	sidebar := GetSidebarData(e.Request)
	return templates.Layout(title, header, sidebar, content).Render(e.Request.Context(), e.Response)
}

func roomStatusBadgeClass(status services.RoomStatus) string {
	switch status {
	case services.RoomCompleted:
		return "badge-success"
	case services.RoomInProgress:
		return "badge-info"
	case services.RoomReadyToStart:
		return "badge-accent"
	case services.RoomInQuotation:
		return "badge-warning"
	default:
		return "badge-ghost"
	}
}

func quotationStatusBadgeClass(status services.QuotationStatus) string {
	switch status {
	case services.QuotationClosed:
		return "badge-success"
	case services.QuotationActive:
		return "badge-info"
	default:
		return "badge-ghost"
	}
}

func poStatusBadgeClass(status string) string {
	switch status {
	case "received":
		return "badge-success"
	case "ordered":
		return "badge-info"
	default:
		return "badge-ghost"
	}
}

func leadStatusBadgeClass(status string) string {
	switch status {
	case "converted":
		return "badge-success"
	case "contacted":
		return "badge-info"
	case "dropped":
		return "badge-error"
	default:
		return "badge-ghost"
	}
}

func createdDate(rec *core.Record) string {
	if dt := rec.GetDateTime("created"); !dt.IsZero() {
		return dt.Time().Format("02 Jan 2006")
	}
	return "—"
}

// formatFloat renders a float without forcing decimals, for quantities
// and areas where "12" should not become "12.00".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// redirect issues an HX-Redirect for HTMX requests and a regular 302
// otherwise.
func redirect(e *core.RequestEvent, url string) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", url)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, url)
}
