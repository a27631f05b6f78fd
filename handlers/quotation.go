package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/services"
	"designdesk/templates"
)

func HandleQuotationPicker(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		client, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		rooms, err := services.EligibleRooms(app, clientID)
		if err != nil {
			log.Printf("quotation_picker: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := templates.QuotationPickerData{
			ClientID:   client.Id,
			ClientName: client.GetString("name"),
		}
		for _, room := range rooms {
			products, _ := services.RoomProducts(app, []string{room.Id})

			var total float64
			for _, p := range products {
				total += p.GetFloat("price")
			}

			area := ""
			if sqft := room.GetFloat("total_sq_ft"); sqft > 0 {
				area = formatFloat(sqft)
			}
			data.Rooms = append(data.Rooms, templates.EligibleRoomItem{
				ID:        room.Id,
				RoomType:  room.GetString("room_type"),
				Status:    room.GetString("status"),
				TotalSqFt: area,
				ItemCount: len(products),
				Total:     services.FormatINR(total),
			})
		}

		return render(e, "New Quotation", templates.QuotationPickerContent(data))
	}
}

func buildPreviewData(app *pocketbase.PocketBase, client *core.Record, roomIDs []string) (templates.QuotationPreviewData, error) {
	data := templates.QuotationPreviewData{
		ClientID:   client.Id,
		ClientName: client.GetString("name"),
		RoomIDs:    roomIDs,
	}

	roomTypeByID := make(map[string]string, len(roomIDs))
	for _, id := range roomIDs {
		room, err := app.FindRecordById("rooms", id)
		if err != nil {
			return data, err
		}
		roomTypeByID[id] = room.GetString("room_type")
	}

	products, err := services.RoomProducts(app, roomIDs)
	if err != nil {
		return data, err
	}

	var items []services.LineItemForTotals
	for _, p := range products {
		items = append(items, services.LineItemForTotals{
			Quantity: p.GetFloat("quantity"),
			Price:    p.GetFloat("price"),
			Wages:    p.GetFloat("wages"),
		})
		data.Items = append(data.Items, templates.PreviewLineItem{
			ProductID:   p.Id,
			RoomType:    roomTypeByID[p.GetString("room")],
			Name:        p.GetString("name"),
			Description: p.GetString("description"),
			Quantity:    formatFloat(p.GetFloat("quantity")),
			UnitType:    p.GetString("unit_type"),
			Price:       services.FormatAmount(p.GetFloat("price")),
			Wages:       services.FormatAmount(p.GetFloat("wages")),
			RowTotal:    services.FormatAmount(services.LineRowTotal(p.GetFloat("quantity"), p.GetFloat("price"))),
		})
	}
	data.Total = services.FormatINR(services.QuotationTotal(items))
	return data, nil
}

func HandleQuotationPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		client, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		roomIDs := e.Request.Form["room_ids"]
		if len(roomIDs) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Select at least one room")
		}

		data, err := buildPreviewData(app, client, roomIDs)
		if err != nil {
			log.Printf("quotation_preview: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not load the selected rooms.")
		}

		return render(e, "Quotation Preview", templates.QuotationPreviewContent(data))
	}
}

// HandleProductUpdate patches one product's price, wages or description
// during quotation preview. The edit lands on the product row itself, so the
// eventual quotation freezes whatever the row holds at submission. The form
// also carries the selected room_ids, so the re-rendered preview covers
// exactly the rooms the user picked.
func HandleProductUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		productID := e.Request.PathValue("id")

		product, err := app.FindRecordById("products", productID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Product not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		if _, ok := e.Request.Form["price"]; ok {
			price, err := strconv.ParseFloat(e.Request.FormValue("price"), 64)
			if err != nil || price < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Price must be a non-negative number")
			}
			product.Set("price", price)
		}
		if _, ok := e.Request.Form["wages"]; ok {
			wages, err := strconv.ParseFloat(e.Request.FormValue("wages"), 64)
			if err != nil || wages < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Wages must be a non-negative number")
			}
			product.Set("wages", wages)
		}
		if _, ok := e.Request.Form["description"]; ok {
			product.Set("description", strings.TrimSpace(e.Request.FormValue("description")))
		}

		if err := app.Save(product); err != nil {
			log.Printf("product_update: could not save product %s: %v", productID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the change. Please try again.")
		}

		room, err := app.FindRecordById("rooms", product.GetString("room"))
		if err != nil {
			log.Printf("product_update: room for product %s not found: %v", productID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		client, err := app.FindRecordById("clients", room.GetString("client"))
		if err != nil {
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		roomIDs := e.Request.Form["room_ids"]
		if len(roomIDs) == 0 {
			roomIDs = []string{room.Id}
		}

		data, err := buildPreviewData(app, client, roomIDs)
		if err != nil {
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return render(e, "Quotation Preview", templates.QuotationPreviewContent(data))
	}
}

func HandleQuotationSubmit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		roomIDs := e.Request.Form["room_ids"]
		if len(roomIDs) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Select at least one room")
		}

		quotation, err := services.SubmitQuotation(app, clientID, roomIDs, time.Now())
		if err != nil {
			log.Printf("quotation_submit: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not create the quotation: "+err.Error())
		}

		SetToast(e, "success", "Quotation "+quotation.GetString("quotation_number")+" created")
		return redirect(e, "/quotations/"+quotation.Id)
	}
}

func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationsCol, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_list: could not find quotations collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(quotationsCol, "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("quotation_list: could not query quotations: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.QuotationListItem
		for _, rec := range records {
			clientName := ""
			if client, err := app.FindRecordById("clients", rec.GetString("client")); err == nil {
				clientName = client.GetString("name")
			}
			workerName := ""
			if workerID := rec.GetString("assigned_worker"); workerID != "" {
				if worker, err := app.FindRecordById("workers", workerID); err == nil {
					workerName = worker.GetString("name")
				}
			}

			status, _ := services.ParseQuotationStatus(rec.GetString("status"))
			items = append(items, templates.QuotationListItem{
				ID:               rec.Id,
				Number:           rec.GetString("quotation_number"),
				ClientName:       clientName,
				Status:           string(status),
				StatusBadgeClass: quotationStatusBadgeClass(status),
				Total:            services.FormatINR(rec.GetFloat("total_price")),
				WorkerName:       workerName,
				CreatedDate:      createdDate(rec),
			})
		}

		data := templates.QuotationListData{Items: items, TotalCount: len(records)}
		return render(e, "Quotations", templates.QuotationListContent(data))
	}
}

func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		quotation, err := app.FindRecordById("quotations", quotationID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found")
		}

		client, err := app.FindRecordById("clients", quotation.GetString("client"))
		if err != nil {
			log.Printf("quotation_view: client for %s not found: %v", quotationID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		status, _ := services.ParseQuotationStatus(quotation.GetString("status"))
		data := templates.QuotationViewData{
			ID:               quotation.Id,
			Number:           quotation.GetString("quotation_number"),
			ClientID:         client.Id,
			ClientName:       client.GetString("name"),
			Status:           string(status),
			StatusBadgeClass: quotationStatusBadgeClass(status),
			Total:            services.FormatINR(quotation.GetFloat("total_price")),
			CreatedDate:      createdDate(quotation),
			CanAssign:        ActiveRole(e.Request).CanManageBusiness() && status != services.QuotationClosed,
		}

		if workerID := quotation.GetString("assigned_worker"); workerID != "" {
			if worker, err := app.FindRecordById("workers", workerID); err == nil {
				data.WorkerName = worker.GetString("name")
			}
		}

		links, err := app.FindRecordsByFilter(
			"quotation_rooms", "quotation = {:q}", "", 0, 0,
			map[string]any{"q": quotationID},
		)
		if err != nil {
			links = nil
		}
		for _, link := range links {
			room, err := app.FindRecordById("rooms", link.GetString("room"))
			if err != nil {
				continue
			}
			row := templates.QuotationRoomRow{
				RoomType:  room.GetString("room_type"),
				RoomTotal: services.FormatINR(link.GetFloat("room_total_price")),
				Status:    room.GetString("status"),
			}
			if pps := link.GetFloat("price_per_sq_ft"); pps > 0 {
				row.PricePerSqFt = services.FormatINR(pps)
			}
			data.Rooms = append(data.Rooms, row)
		}

		if data.CanAssign {
			workersCol, err := app.FindCollectionByNameOrId("workers")
			if err == nil {
				workers, _ := app.FindAllRecords(workersCol)
				for _, w := range workers {
					data.Workers = append(data.Workers, templates.WorkerOption{
						ID:   w.Id,
						Name: w.GetString("name"),
					})
				}
			}
		}

		return render(e, data.Number, templates.QuotationViewContent(data))
	}
}

func HandleQuotationAssign(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		workerID := e.Request.FormValue("worker_id")
		if workerID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Choose a worker")
		}

		if err := services.AssignWorker(app, quotationID, workerID); err != nil {
			log.Printf("quotation_assign: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not assign the worker: "+err.Error())
		}

		SetToast(e, "success", "Worker assigned")
		return redirect(e, "/quotations/"+quotationID)
	}
}
