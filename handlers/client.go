package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/services"
	"designdesk/templates"
)

func HandleClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientsCol, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("client_list: could not find clients collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(clientsCol)
		if err != nil {
			log.Printf("client_list: could not query clients: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.ClientListItem
		for _, rec := range records {
			rooms, err := app.FindRecordsByFilter(
				"rooms", "client = {:clientId}", "", 0, 0,
				map[string]any{"clientId": rec.Id},
			)
			if err != nil {
				rooms = nil
			}

			items = append(items, templates.ClientListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				ContactNumber: rec.GetString("contact_number"),
				Email:         rec.GetString("email"),
				RoomCount:     len(rooms),
				CreatedDate:   createdDate(rec),
			})
		}

		data := templates.ClientListData{Items: items, TotalCount: len(records)}
		return render(e, "Clients", templates.ClientListContent(data))
	}
}

func HandleClientNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return render(e, "New Client", templates.ClientFormContent(templates.ClientFormData{}))
	}
}

func HandleClientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Client name is required")
		}

		clientsCol, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			log.Printf("client_create: could not find clients collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(clientsCol)
		record.Set("name", name)
		record.Set("contact_number", strings.TrimSpace(e.Request.FormValue("contact_number")))
		record.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		record.Set("address", strings.TrimSpace(e.Request.FormValue("address")))
		if user := GetActiveUser(e.Request); user != nil {
			record.Set("owner", user.ID)
		}

		if err := app.Save(record); err != nil {
			log.Printf("client_create: could not save client: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the client. Please try again.")
		}

		SetToast(e, "success", "Client created")
		return redirect(e, "/clients/"+record.Id)
	}
}

func HandleClientView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		client, err := app.FindRecordById("clients", clientID)
		if err != nil {
			log.Printf("client_view: client %s not found: %v", clientID, err)
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		rooms, err := app.FindRecordsByFilter(
			"rooms", "client = {:clientId}", "-created", 0, 0,
			map[string]any{"clientId": clientID},
		)
		if err != nil {
			rooms = nil
		}

		var roomItems []templates.ClientRoomItem
		for _, room := range rooms {
			products, _ := app.FindRecordsByFilter(
				"products", "room = {:roomId}", "", 0, 0,
				map[string]any{"roomId": room.Id},
			)
			status, _ := services.ParseRoomStatus(room.GetString("status"))
			area := ""
			if sqft := room.GetFloat("total_sq_ft"); sqft > 0 {
				area = formatFloat(sqft)
			}
			roomItems = append(roomItems, templates.ClientRoomItem{
				ID:               room.Id,
				RoomType:         room.GetString("room_type"),
				Status:           string(status),
				StatusBadgeClass: roomStatusBadgeClass(status),
				TotalSqFt:        area,
				ProductCount:     len(products),
			})
		}

		quotations, err := app.FindRecordsByFilter(
			"quotations", "client = {:clientId}", "-created", 0, 0,
			map[string]any{"clientId": clientID},
		)
		if err != nil {
			quotations = nil
		}

		var quotationItems []templates.ClientQuotationItem
		for _, q := range quotations {
			quotationItems = append(quotationItems, templates.ClientQuotationItem{
				ID:          q.Id,
				Number:      q.GetString("quotation_number"),
				Status:      q.GetString("status"),
				Total:       services.FormatINR(q.GetFloat("total_price")),
				CreatedDate: createdDate(q),
			})
		}

		data := templates.ClientViewData{
			Client: templates.ClientFormData{
				ID:            client.Id,
				Name:          client.GetString("name"),
				ContactNumber: client.GetString("contact_number"),
				Email:         client.GetString("email"),
				Address:       client.GetString("address"),
			},
			Rooms:      roomItems,
			Quotations: quotationItems,
		}
		return render(e, data.Client.Name, templates.ClientViewContent(data))
	}
}

func HandleClientEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		client, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		data := templates.ClientFormData{
			ID:            client.Id,
			Name:          client.GetString("name"),
			ContactNumber: client.GetString("contact_number"),
			Email:         client.GetString("email"),
			Address:       client.GetString("address"),
			IsEdit:        true,
		}
		return render(e, "Edit Client", templates.ClientFormContent(data))
	}
}

func HandleClientUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		client, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Client name is required")
		}

		client.Set("name", name)
		client.Set("contact_number", strings.TrimSpace(e.Request.FormValue("contact_number")))
		client.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		client.Set("address", strings.TrimSpace(e.Request.FormValue("address")))

		if err := app.Save(client); err != nil {
			log.Printf("client_update: could not save client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the client. Please try again.")
		}

		SetToast(e, "success", "Client updated")
		return redirect(e, "/clients/"+client.Id)
	}
}

func HandleClientDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		client, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		// Cascade rules take the client's rooms, measurements and products
		// down with it.
		if err := app.Delete(client); err != nil {
			log.Printf("client_delete: could not delete client %s: %v", clientID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not delete the client. Please try again.")
		}

		SetToast(e, "success", "Client deleted")
		return redirect(e, "/clients")
	}
}
