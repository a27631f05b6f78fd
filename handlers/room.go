package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"

	"designdesk/services"
	"designdesk/templates"
)

// maxRoomFormMemory bounds the in-memory portion of the multipart parse.
const maxRoomFormMemory = 32 << 20

func HandleRoomNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		client, err := app.FindRecordById("clients", clientID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Client not found")
		}

		roomTypes, err := services.LoadTaxonomy(app)
		if err != nil {
			log.Printf("room_new: could not load taxonomy: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load the product catalog.")
		}

		names := make([]string, 0, len(roomTypes))
		for _, rt := range roomTypes {
			names = append(names, rt.Name)
		}

		taxonomyJSON, err := services.EncodeTaxonomy(roomTypes)
		if err != nil {
			log.Printf("room_new: could not encode taxonomy: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not load the product catalog.")
		}

		data := templates.RoomFormData{
			ClientID:     client.Id,
			ClientName:   client.GetString("name"),
			RoomTypes:    names,
			TaxonomyJSON: taxonomyJSON,
			Units:        services.MeasurementUnits,
		}
		return render(e, "Add Room", templates.RoomFormContent(data))
	}
}

// parseLineItems collects the item_N_* form fields into line item inputs.
// Selection paths arrive as "Category|Subcategory|Leaf".
func parseLineItems(e *core.RequestEvent) ([]services.LineItemInput, error) {
	var items []services.LineItemInput
	for i := 0; ; i++ {
		prefix := fmt.Sprintf("item_%d_", i)
		rawPath := e.Request.FormValue(prefix + "path")
		if rawPath == "" {
			break
		}

		qty, err := strconv.ParseFloat(e.Request.FormValue(prefix+"qty"), 64)
		if err != nil {
			return nil, fmt.Errorf("item %d: quantity is not a number", i+1)
		}

		item := services.LineItemInput{
			SelectionPath: strings.Split(rawPath, "|"),
			Quantity:      qty,
			UnitType:      strings.TrimSpace(e.Request.FormValue(prefix + "unit")),
			Description:   strings.TrimSpace(e.Request.FormValue(prefix + "description")),
		}
		if raw := e.Request.FormValue(prefix + "price"); raw != "" {
			if item.Price, err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("item %d: price is not a number", i+1)
			}
		}
		if raw := e.Request.FormValue(prefix + "wages"); raw != "" {
			if item.Wages, err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("item %d: wages is not a number", i+1)
			}
		}
		if raw := e.Request.FormValue(prefix + "length"); raw != "" {
			if item.LengthValue, err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("item %d: length is not a number", i+1)
			}
			item.LengthUnit = e.Request.FormValue(prefix + "length_unit")
		}
		if raw := e.Request.FormValue(prefix + "width"); raw != "" {
			if item.WidthValue, err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("item %d: width is not a number", i+1)
			}
			item.WidthUnit = e.Request.FormValue(prefix + "width_unit")
		}

		items = append(items, item)
	}
	return items, nil
}

func HandleRoomCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := e.Request.PathValue("id")

		if err := e.Request.ParseMultipartForm(maxRoomFormMemory); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		roomTypeName := strings.TrimSpace(e.Request.FormValue("room_type"))
		if roomTypeName == "" {
			return ErrorToast(e, http.StatusBadRequest, "Choose a room type")
		}

		roomType, err := services.FindRoomType(app, roomTypeName)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unknown room type")
		}

		items, err := parseLineItems(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}
		if len(items) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Add at least one product")
		}

		input := services.CreateRoomInput{
			ClientID:    clientID,
			RoomType:    roomType,
			Description: strings.TrimSpace(e.Request.FormValue("description")),
			Items:       items,
		}

		if rawLen := e.Request.FormValue("length_value"); rawLen != "" {
			length, errL := strconv.ParseFloat(rawLen, 64)
			width, errW := strconv.ParseFloat(e.Request.FormValue("width_value"), 64)
			if errL != nil || errW != nil {
				return ErrorToast(e, http.StatusBadRequest, "Dimensions must be numbers")
			}
			input.Length = length
			input.LengthUnit = e.Request.FormValue("length_unit")
			input.Width = width
			input.WidthUnit = e.Request.FormValue("width_unit")
			input.HasDimensions = true
		}

		if e.Request.MultipartForm != nil {
			for _, fh := range e.Request.MultipartForm.File["ref_images"] {
				file, err := filesystem.NewFileFromMultipart(fh)
				if err != nil {
					log.Printf("room_create: skipping unreadable upload %s: %v", fh.Filename, err)
					continue
				}
				input.Images = append(input.Images, file)
			}
		}

		room, err := services.CreateRoom(app, input)
		if err != nil {
			log.Printf("room_create: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not create the room: "+err.Error())
		}

		SetToast(e, "success", "Room created")
		return redirect(e, "/rooms/"+room.Id)
	}
}

func HandleRoomView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("id")

		room, err := app.FindRecordById("rooms", roomID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Room not found")
		}

		client, err := app.FindRecordById("clients", room.GetString("client"))
		if err != nil {
			log.Printf("room_view: client for room %s not found: %v", roomID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		status, _ := services.ParseRoomStatus(room.GetString("status"))

		data := templates.RoomViewData{
			ID:               room.Id,
			ClientID:         client.Id,
			ClientName:       client.GetString("name"),
			RoomType:         room.GetString("room_type"),
			Description:      room.GetString("description"),
			Status:           string(status),
			StatusBadgeClass: roomStatusBadgeClass(status),
			ImageURLs:        services.RoomImageURLs(room),
			CanUpdateStatus:  ActiveRole(e.Request).CanUpdateProgress(),
		}
		if sqft := room.GetFloat("total_sq_ft"); sqft > 0 {
			data.TotalSqFt = formatFloat(sqft)
		}

		measurements, _ := app.FindRecordsByFilter(
			"measurements", "room = {:roomId}", "", 1, 0,
			map[string]any{"roomId": roomID},
		)
		if len(measurements) > 0 {
			m := measurements[0]
			data.LengthLabel = formatFloat(m.GetFloat("length_value")) + " " + m.GetString("length_unit")
			data.WidthLabel = formatFloat(m.GetFloat("width_value")) + " " + m.GetString("width_unit")
		}

		products, _ := app.FindRecordsByFilter(
			"products", "room = {:roomId}", "name", 0, 0,
			map[string]any{"roomId": roomID},
		)
		for _, p := range products {
			data.Products = append(data.Products, templates.RoomProductItem{
				Name:        p.GetString("name"),
				Category:    p.GetString("product_category"),
				Subcategory: p.GetString("product_subcategory"),
				Quantity:    formatFloat(p.GetFloat("quantity")),
				UnitType:    p.GetString("unit_type"),
				Price:       services.FormatAmount(p.GetFloat("price")),
				Wages:       services.FormatAmount(p.GetFloat("wages")),
				Description: p.GetString("description"),
			})
		}

		for _, next := range services.RoomStatuses {
			if status.CanTransition(next) {
				data.NextStatuses = append(data.NextStatuses, string(next))
			}
		}

		return render(e, data.RoomType, templates.RoomViewContent(data))
	}
}

func HandleRoomStatusUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("id")

		if !ActiveRole(e.Request).CanUpdateProgress() {
			return ErrorToast(e, http.StatusForbidden, "You do not have permission to do that.")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		next, ok := services.ParseRoomStatus(e.Request.FormValue("status"))
		if !ok {
			return ErrorToast(e, http.StatusBadRequest, "Unknown status")
		}

		if err := services.UpdateRoomStatus(app, roomID, next); err != nil {
			log.Printf("room_status: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "That status change is not allowed.")
		}

		SetToast(e, "success", "Room moved to "+string(next))
		return redirect(e, "/rooms/"+roomID)
	}
}
