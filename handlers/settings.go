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

func roomTypeSettingsItems(app *pocketbase.PocketBase) ([]templates.RoomTypeSettingItem, error) {
	records, err := app.FindRecordsByFilter(
		"room_types", "id != ''", "sort_order", 0, 0,
	)
	if err != nil {
		return nil, err
	}

	var items []templates.RoomTypeSettingItem
	for _, rec := range records {
		rt, err := services.ParseRoomType(rec.GetString("name"), []byte(rec.GetString("products")))
		productCount := 0
		if err == nil {
			productCount = len(rt.Products)
		}
		items = append(items, templates.RoomTypeSettingItem{
			ID:           rec.Id,
			Name:         rec.GetString("name"),
			ProductCount: productCount,
			SortOrder:    int(rec.GetFloat("sort_order")),
		})
	}
	return items, nil
}

func HandleRoomTypeSettings(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		items, err := roomTypeSettingsItems(app)
		if err != nil {
			log.Printf("settings: could not query room types: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := templates.RoomTypeSettingsData{Items: items, EditProducts: "[]"}
		return render(e, "Room Type Catalog", templates.RoomTypeSettingsContent(data))
	}
}

func HandleRoomTypeEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("room_types", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Room type not found")
		}

		items, err := roomTypeSettingsItems(app)
		if err != nil {
			log.Printf("settings: could not query room types: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := templates.RoomTypeSettingsData{
			Items:        items,
			EditID:       rec.Id,
			EditName:     rec.GetString("name"),
			EditProducts: rec.GetString("products"),
		}
		return render(e, "Room Type Catalog", templates.RoomTypeSettingsContent(data))
	}
}

// saveRoomType validates the submitted tree before persisting, so a broken
// catalog can never reach the room capture flow.
func saveRoomType(app *pocketbase.PocketBase, rec *core.Record, name, productsJSON string) error {
	rt, err := services.ParseRoomType(name, []byte(productsJSON))
	if err != nil {
		return err
	}

	encoded, err := services.EncodeProducts(rt.Products)
	if err != nil {
		return err
	}

	rec.Set("name", name)
	rec.Set("products", encoded)
	return app.Save(rec)
}

func HandleRoomTypeCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Room type name is required")
		}

		existing, _ := app.FindRecordsByFilter(
			"room_types", "name = {:name}", "", 1, 0,
			map[string]any{"name": name},
		)
		if len(existing) > 0 {
			return ErrorToast(e, http.StatusConflict, "A room type with this name already exists")
		}

		roomTypesCol, err := app.FindCollectionByNameOrId("room_types")
		if err != nil {
			log.Printf("settings: could not find room_types collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		all, _ := app.FindAllRecords(roomTypesCol)
		rec := core.NewRecord(roomTypesCol)
		rec.Set("sort_order", len(all)+1)

		if err := saveRoomType(app, rec, name, e.Request.FormValue("products")); err != nil {
			log.Printf("settings: could not save room type: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid catalog: "+err.Error())
		}

		SetToast(e, "success", "Room type created")
		return redirect(e, "/settings/room-types")
	}
}

func HandleRoomTypeUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("room_types", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Room type not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Room type name is required")
		}

		if err := saveRoomType(app, rec, name, e.Request.FormValue("products")); err != nil {
			log.Printf("settings: could not save room type %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusBadRequest, "Invalid catalog: "+err.Error())
		}

		SetToast(e, "success", "Room type updated")
		return redirect(e, "/settings/room-types")
	}
}
