package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/templates"
)

func HandleVendorList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		vendorsCol, err := app.FindCollectionByNameOrId("vendors")
		if err != nil {
			log.Printf("vendor_list: could not find vendors collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(vendorsCol)
		if err != nil {
			log.Printf("vendor_list: could not query vendors: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.VendorListItem
		for _, rec := range records {
			materials, err := app.FindRecordsByFilter(
				"raw_materials", "vendor = {:vendorId}", "", 0, 0,
				map[string]any{"vendorId": rec.Id},
			)
			if err != nil {
				materials = nil
			}
			items = append(items, templates.VendorListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				ContactPerson: rec.GetString("contact_name"),
				Phone:         rec.GetString("phone"),
				Email:         rec.GetString("email"),
				MaterialCount: len(materials),
			})
		}

		data := templates.VendorListData{Items: items, TotalCount: len(records)}
		return render(e, "Vendors", templates.VendorListContent(data))
	}
}

func HandleVendorNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return render(e, "New Vendor", templates.VendorFormContent(templates.VendorFormData{}))
	}
}

func HandleVendorCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Vendor name is required")
		}

		vendorsCol, err := app.FindCollectionByNameOrId("vendors")
		if err != nil {
			log.Printf("vendor_create: could not find vendors collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(vendorsCol)
		record.Set("name", name)
		record.Set("contact_name", strings.TrimSpace(e.Request.FormValue("contact_name")))
		record.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))
		record.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		record.Set("address", strings.TrimSpace(e.Request.FormValue("address")))

		if err := app.Save(record); err != nil {
			log.Printf("vendor_create: could not save vendor: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the vendor. Please try again.")
		}

		SetToast(e, "success", "Vendor added")
		return redirect(e, "/vendors")
	}
}

func HandleVendorDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		vendorID := e.Request.PathValue("id")

		vendor, err := app.FindRecordById("vendors", vendorID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Vendor not found")
		}

		orders, err := app.FindRecordsByFilter(
			"purchased_orders", "vendor = {:vendorId}", "", 1, 0,
			map[string]any{"vendorId": vendorID},
		)
		if err == nil && len(orders) > 0 {
			return ErrorToast(e, http.StatusConflict, "This vendor still has purchase orders.")
		}

		if err := app.Delete(vendor); err != nil {
			log.Printf("vendor_delete: could not delete vendor %s: %v", vendorID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not delete the vendor. Please try again.")
		}

		SetToast(e, "success", "Vendor deleted")
		return redirect(e, "/vendors")
	}
}

func vendorOptions(app *pocketbase.PocketBase) []templates.VendorOption {
	vendorsCol, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		return nil
	}
	records, err := app.FindAllRecords(vendorsCol)
	if err != nil {
		return nil
	}
	options := make([]templates.VendorOption, 0, len(records))
	for _, rec := range records {
		options = append(options, templates.VendorOption{ID: rec.Id, Name: rec.GetString("name")})
	}
	return options
}

func HandleRawMaterialList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		materialsCol, err := app.FindCollectionByNameOrId("raw_materials")
		if err != nil {
			log.Printf("raw_material_list: could not find raw_materials collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(materialsCol)
		if err != nil {
			log.Printf("raw_material_list: could not query raw materials: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.RawMaterialItem
		for _, rec := range records {
			vendorName := ""
			if vendorID := rec.GetString("vendor"); vendorID != "" {
				if vendor, err := app.FindRecordById("vendors", vendorID); err == nil {
					vendorName = vendor.GetString("name")
				}
			}
			rate := ""
			if r := rec.GetFloat("price"); r > 0 {
				rate = formatFloat(r)
			}
			items = append(items, templates.RawMaterialItem{
				ID:         rec.Id,
				Name:       rec.GetString("name"),
				VendorName: vendorName,
				Unit:       rec.GetString("unit"),
				Rate:       rate,
			})
		}

		data := templates.RawMaterialListData{Items: items, Vendors: vendorOptions(app)}
		return render(e, "Raw Materials", templates.RawMaterialListContent(data))
	}
}

func HandleRawMaterialCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Material name is required")
		}

		materialsCol, err := app.FindCollectionByNameOrId("raw_materials")
		if err != nil {
			log.Printf("raw_material_create: could not find raw_materials collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(materialsCol)
		record.Set("name", name)
		record.Set("vendor", e.Request.FormValue("vendor"))
		record.Set("unit", strings.TrimSpace(e.Request.FormValue("unit")))
		if raw := e.Request.FormValue("price"); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil || price < 0 {
				return ErrorToast(e, http.StatusBadRequest, "Price must be a non-negative number")
			}
			record.Set("price", price)
		}

		if err := app.Save(record); err != nil {
			log.Printf("raw_material_create: could not save material: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the material. Please try again.")
		}

		SetToast(e, "success", "Material added")
		return redirect(e, "/raw-materials")
	}
}

func HandleRawMaterialDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		materialID := e.Request.PathValue("id")

		material, err := app.FindRecordById("raw_materials", materialID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Material not found")
		}

		if err := app.Delete(material); err != nil {
			log.Printf("raw_material_delete: could not delete material %s: %v", materialID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not delete the material. Please try again.")
		}

		SetToast(e, "success", "Material deleted")
		return redirect(e, "/raw-materials")
	}
}
