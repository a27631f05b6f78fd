package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/templates"
)

// LeadStatusOptions lists the intake pipeline states.
var LeadStatusOptions = []string{"new", "contacted", "converted", "dropped"}

func HandleLeadList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leadsCol, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("lead_list: could not find leads collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(leadsCol, "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("lead_list: could not query leads: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.LeadListItem
		for _, rec := range records {
			status := rec.GetString("status")
			items = append(items, templates.LeadListItem{
				ID:               rec.Id,
				Name:             rec.GetString("name"),
				Phone:            rec.GetString("contact_number"),
				Source:           rec.GetString("source"),
				Status:           status,
				StatusBadgeClass: leadStatusBadgeClass(status),
				Notes:            rec.GetString("notes"),
				CreatedDate:      createdDate(rec),
			})
		}

		data := templates.LeadListData{Items: items, Statuses: LeadStatusOptions}
		return render(e, "Leads", templates.LeadListContent(data))
	}
}

func HandleLeadCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Lead name is required")
		}

		leadsCol, err := app.FindCollectionByNameOrId("leads")
		if err != nil {
			log.Printf("lead_create: could not find leads collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(leadsCol)
		record.Set("name", name)
		record.Set("contact_number", strings.TrimSpace(e.Request.FormValue("contact_number")))
		record.Set("source", strings.TrimSpace(e.Request.FormValue("source")))
		record.Set("notes", strings.TrimSpace(e.Request.FormValue("notes")))
		record.Set("status", "new")

		if err := app.Save(record); err != nil {
			log.Printf("lead_create: could not save lead: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the lead. Please try again.")
		}

		SetToast(e, "success", "Lead added")
		return redirect(e, "/leads")
	}
}

func HandleLeadStatusUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leadID := e.Request.PathValue("id")

		lead, err := app.FindRecordById("leads", leadID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Lead not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		status := e.Request.FormValue("status")

		valid := false
		for _, s := range LeadStatusOptions {
			if s == status {
				valid = true
				break
			}
		}
		if !valid {
			return ErrorToast(e, http.StatusBadRequest, "Unknown status")
		}

		lead.Set("status", status)
		if err := app.Save(lead); err != nil {
			log.Printf("lead_status: could not save lead %s: %v", leadID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not update the lead. Please try again.")
		}

		SetToast(e, "success", "Lead marked "+status)
		return redirect(e, "/leads")
	}
}

func HandleLeadDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		leadID := e.Request.PathValue("id")

		lead, err := app.FindRecordById("leads", leadID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Lead not found")
		}

		if err := app.Delete(lead); err != nil {
			log.Printf("lead_delete: could not delete lead %s: %v", leadID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not delete the lead. Please try again.")
		}

		SetToast(e, "success", "Lead deleted")
		return redirect(e, "/leads")
	}
}
