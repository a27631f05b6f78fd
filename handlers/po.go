package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/services"
	"designdesk/templates"
)

// POStatusOptions orders the purchase order lifecycle.
var POStatusOptions = []string{"draft", "ordered", "received"}

func nextPOStatuses(status string) []string {
	switch status {
	case "draft":
		return []string{"ordered"}
	case "ordered":
		return []string{"received"}
	default:
		return nil
	}
}

func HandlePOList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		poCol, err := app.FindCollectionByNameOrId("purchased_orders")
		if err != nil {
			log.Printf("po_list: could not find purchased_orders collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(poCol, "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("po_list: could not query purchase orders: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.POListItem
		for _, rec := range records {
			vendorName := ""
			if vendor, err := app.FindRecordById("vendors", rec.GetString("vendor")); err == nil {
				vendorName = vendor.GetString("name")
			}
			lineItems, err := app.FindRecordsByFilter(
				"po_line_items", "purchased_order = {:poId}", "", 0, 0,
				map[string]any{"poId": rec.Id},
			)
			if err != nil {
				lineItems = nil
			}

			status := rec.GetString("status")
			items = append(items, templates.POListItem{
				ID:               rec.Id,
				Number:           rec.GetString("po_number"),
				VendorName:       vendorName,
				Status:           status,
				StatusBadgeClass: poStatusBadgeClass(status),
				Total:            services.FormatINR(rec.GetFloat("total_amount")),
				LineItemCount:    len(lineItems),
				CreatedDate:      createdDate(rec),
			})
		}

		data := templates.POListData{Items: items, TotalCount: len(records)}
		return render(e, "Purchase Orders", templates.POListContent(data))
	}
}

func HandlePONew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.POFormData{Vendors: vendorOptions(app)}
		return render(e, "New Purchase Order", templates.POFormContent(data))
	}
}

func HandlePOCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		vendorID := e.Request.FormValue("vendor")
		poNumber := strings.TrimSpace(e.Request.FormValue("po_number"))
		if vendorID == "" || poNumber == "" {
			return ErrorToast(e, http.StatusBadRequest, "Vendor and PO number are required")
		}

		if _, err := app.FindRecordById("vendors", vendorID); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Unknown vendor")
		}

		existing, _ := app.FindRecordsByFilter(
			"purchased_orders", "po_number = {:num}", "", 1, 0,
			map[string]any{"num": poNumber},
		)
		if len(existing) > 0 {
			return ErrorToast(e, http.StatusConflict, "A purchase order with this number already exists")
		}

		poCol, err := app.FindCollectionByNameOrId("purchased_orders")
		if err != nil {
			log.Printf("po_create: could not find purchased_orders collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(poCol)
		record.Set("vendor", vendorID)
		record.Set("po_number", poNumber)
		record.Set("status", "draft")
		record.Set("total_amount", 0)

		if err := app.Save(record); err != nil {
			log.Printf("po_create: could not save purchase order: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not create the purchase order. Please try again.")
		}

		SetToast(e, "success", "Purchase order created")
		return redirect(e, "/purchase-orders/"+record.Id)
	}
}

func buildPOViewData(app *pocketbase.PocketBase, po *core.Record) templates.POViewData {
	vendorName := ""
	if vendor, err := app.FindRecordById("vendors", po.GetString("vendor")); err == nil {
		vendorName = vendor.GetString("name")
	}

	status := po.GetString("status")
	data := templates.POViewData{
		ID:               po.Id,
		Number:           po.GetString("po_number"),
		VendorName:       vendorName,
		Status:           status,
		StatusBadgeClass: poStatusBadgeClass(status),
		Total:            services.FormatINR(po.GetFloat("total_amount")),
		NextStatuses:     nextPOStatuses(status),
	}

	lineItems, err := app.FindRecordsByFilter(
		"po_line_items", "purchased_order = {:poId}", "sort_order", 0, 0,
		map[string]any{"poId": po.Id},
	)
	if err != nil {
		lineItems = nil
	}
	for _, item := range lineItems {
		materialName := ""
		if materialID := item.GetString("raw_material"); materialID != "" {
			if material, err := app.FindRecordById("raw_materials", materialID); err == nil {
				materialName = material.GetString("name")
			}
		}
		data.Items = append(data.Items, templates.POLineItemRow{
			ID:           item.Id,
			Description:  item.GetString("description"),
			MaterialName: materialName,
			Quantity:     formatFloat(item.GetFloat("qty")),
			Unit:         item.GetString("unit"),
			Rate:         services.FormatAmount(item.GetFloat("rate")),
			Amount:       services.FormatAmount(item.GetFloat("amount")),
		})
	}

	if status == "draft" {
		materialsCol, err := app.FindCollectionByNameOrId("raw_materials")
		if err == nil {
			materials, _ := app.FindAllRecords(materialsCol)
			for _, m := range materials {
				data.Materials = append(data.Materials, templates.MaterialOption{
					ID:   m.Id,
					Name: m.GetString("name"),
				})
			}
		}
	}

	return data
}

func HandlePOView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		po, err := app.FindRecordById("purchased_orders", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Purchase order not found")
		}

		data := buildPOViewData(app, po)
		return render(e, data.Number, templates.POViewContent(data))
	}
}

// recalcPOTotal sums the line item amounts back onto the order.
func recalcPOTotal(txApp core.App, poID string) error {
	po, err := txApp.FindRecordById("purchased_orders", poID)
	if err != nil {
		return err
	}
	lineItems, err := txApp.FindRecordsByFilter(
		"po_line_items", "purchased_order = {:poId}", "", 0, 0,
		map[string]any{"poId": poID},
	)
	if err != nil {
		return err
	}
	var total float64
	for _, item := range lineItems {
		total += item.GetFloat("amount")
	}
	po.Set("total_amount", total)
	return txApp.Save(po)
}

func HandlePOLineItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		poID := e.Request.PathValue("id")

		po, err := app.FindRecordById("purchased_orders", poID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Purchase order not found")
		}
		if po.GetString("status") != "draft" {
			return ErrorToast(e, http.StatusConflict, "Only draft orders can be edited")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		description := strings.TrimSpace(e.Request.FormValue("description"))
		if description == "" {
			return ErrorToast(e, http.StatusBadRequest, "Description is required")
		}
		qty, err := strconv.ParseFloat(e.Request.FormValue("quantity"), 64)
		if err != nil || qty <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "Quantity must be a positive number")
		}
		rate, err := strconv.ParseFloat(e.Request.FormValue("rate"), 64)
		if err != nil || rate < 0 {
			return ErrorToast(e, http.StatusBadRequest, "Rate must be a non-negative number")
		}

		existing, _ := app.FindRecordsByFilter(
			"po_line_items", "purchased_order = {:poId}", "", 0, 0,
			map[string]any{"poId": poID},
		)

		err = app.RunInTransaction(func(txApp core.App) error {
			itemsCol, err := txApp.FindCollectionByNameOrId("po_line_items")
			if err != nil {
				return err
			}
			item := core.NewRecord(itemsCol)
			item.Set("purchased_order", poID)
			item.Set("raw_material", e.Request.FormValue("raw_material"))
			item.Set("sort_order", len(existing)+1)
			item.Set("description", description)
			item.Set("qty", qty)
			item.Set("unit", strings.TrimSpace(e.Request.FormValue("unit")))
			item.Set("rate", rate)
			item.Set("amount", qty*rate)
			if err := txApp.Save(item); err != nil {
				return err
			}
			return recalcPOTotal(txApp, poID)
		})
		if err != nil {
			log.Printf("po_line_item_add: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not add the item. Please try again.")
		}

		SetToast(e, "success", "Item added")
		return redirect(e, "/purchase-orders/"+poID)
	}
}

func HandlePOLineItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		poID := e.Request.PathValue("id")
		itemID := e.Request.PathValue("itemId")

		po, err := app.FindRecordById("purchased_orders", poID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Purchase order not found")
		}
		if po.GetString("status") != "draft" {
			return ErrorToast(e, http.StatusConflict, "Only draft orders can be edited")
		}

		item, err := app.FindRecordById("po_line_items", itemID)
		if err != nil || item.GetString("purchased_order") != poID {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}

		err = app.RunInTransaction(func(txApp core.App) error {
			if err := txApp.Delete(item); err != nil {
				return err
			}
			return recalcPOTotal(txApp, poID)
		})
		if err != nil {
			log.Printf("po_line_item_delete: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not remove the item. Please try again.")
		}

		SetToast(e, "success", "Item removed")
		return redirect(e, "/purchase-orders/"+poID)
	}
}

func HandlePOStatusUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		poID := e.Request.PathValue("id")

		po, err := app.FindRecordById("purchased_orders", poID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Purchase order not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		next := e.Request.FormValue("status")

		allowed := false
		for _, s := range nextPOStatuses(po.GetString("status")) {
			if s == next {
				allowed = true
				break
			}
		}
		if !allowed {
			return ErrorToast(e, http.StatusBadRequest, "That status change is not allowed.")
		}

		po.Set("status", next)
		if err := app.Save(po); err != nil {
			log.Printf("po_status: could not save purchase order %s: %v", poID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not update the status. Please try again.")
		}

		SetToast(e, "success", "Purchase order marked "+next)
		return redirect(e, "/purchase-orders/"+poID)
	}
}
