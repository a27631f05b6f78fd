package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type EligibleRoomItem struct {
	ID        string
	RoomType  string
	Status    string
	TotalSqFt string
	ItemCount int
	Total     string
}

type QuotationPickerData struct {
	ClientID   string
	ClientName string
	Rooms      []EligibleRoomItem
}

// QuotationPickerContent lists the client's rooms that can still enter a
// quotation and lets the owner tick the ones to include.
func QuotationPickerContent(data QuotationPickerData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<h1 class="text-2xl font-semibold mb-4">New Quotation for %s</h1>`, esc(data.ClientName))
		if len(data.Rooms) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No rooms are eligible. Rooms already in a quotation or in progress cannot be quoted again.</div>`)
			return nil
		}
		fmt.Fprintf(w, `<form class="card bg-base-100 p-6" hx-post="/clients/%s/quotations/preview" hx-target="#main-content">`, esc(data.ClientID))
		io.WriteString(w, `<table class="table"><thead><tr><th></th><th>Room</th><th>Status</th><th>Area (sq.ft)</th><th>Items</th><th>Total</th></tr></thead><tbody>`)
		for _, room := range data.Rooms {
			fmt.Fprintf(w, `<tr><td><input type="checkbox" name="room_ids" value="%s" class="checkbox"/></td><td>%s</td><td><span class="badge badge-ghost">%s</span></td><td>%s</td><td>%d</td><td>%s</td></tr>`,
				esc(room.ID), esc(room.RoomType), esc(room.Status), esc(room.TotalSqFt), room.ItemCount, esc(room.Total))
		}
		io.WriteString(w, `</tbody></table><div class="mt-4"><button type="submit" class="btn btn-primary">Preview Quotation</button></div></form>`)
		return nil
	})
}

func QuotationPickerPage(data QuotationPickerData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("New Quotation", header, sidebar, QuotationPickerContent(data))
}

type PreviewLineItem struct {
	ProductID   string
	RoomType    string
	Name        string
	Description string
	Quantity    string
	UnitType    string
	Price       string
	Wages       string
	RowTotal    string
}

type QuotationPreviewData struct {
	ClientID   string
	ClientName string
	RoomIDs    []string
	Items      []PreviewLineItem
	Total      string
}

// QuotationPreviewContent shows the editable line items before submission.
// Description, price and wages edits patch the product rows in place;
// submitting freezes the quotation from whatever the rows hold at that
// moment. The selected room ids ride along on every edit so the re-rendered
// preview keeps covering the same rooms.
func QuotationPreviewContent(data QuotationPreviewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<h1 class="text-2xl font-semibold mb-4">Quotation Preview — %s</h1>`, esc(data.ClientName))
		io.WriteString(w, `<div id="preview-room-ids" hidden>`)
		for _, id := range data.RoomIDs {
			fmt.Fprintf(w, `<input type="hidden" name="room_ids" value="%s"/>`, esc(id))
		}
		io.WriteString(w, `</div>`)
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100 mb-4"><table class="table"><thead><tr><th>Room</th><th>Item</th><th>Description</th><th>Qty</th><th>Unit</th><th>Price</th><th>Wages</th><th>Row Total</th></tr></thead><tbody id="preview-items">`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr id="preview-row-%s"><td>%s</td><td>%s</td>`,
				esc(item.ProductID), esc(item.RoomType), esc(item.Name))
			fmt.Fprintf(w, `<td><input type="text" value="%s" class="input input-bordered input-sm w-44" name="description" hx-patch="/products/%s" hx-trigger="change" hx-include="#preview-room-ids" hx-target="#main-content"/></td>`,
				esc(item.Description), esc(item.ProductID))
			fmt.Fprintf(w, `<td>%s</td><td>%s</td>`, esc(item.Quantity), esc(item.UnitType))
			fmt.Fprintf(w, `<td><input type="number" step="any" min="0" value="%s" class="input input-bordered input-sm w-28" name="price" hx-patch="/products/%s" hx-trigger="change" hx-include="#preview-room-ids" hx-target="#main-content"/></td>`,
				esc(item.Price), esc(item.ProductID))
			fmt.Fprintf(w, `<td><input type="number" step="any" min="0" value="%s" class="input input-bordered input-sm w-28" name="wages" hx-patch="/products/%s" hx-trigger="change" hx-include="#preview-room-ids" hx-target="#main-content"/></td>`,
				esc(item.Wages), esc(item.ProductID))
			fmt.Fprintf(w, `<td>%s</td></tr>`, esc(item.RowTotal))
		}
		io.WriteString(w, `</tbody></table></div>`)
		fmt.Fprintf(w, `<div class="flex items-center justify-between card bg-base-100 p-4"><span class="text-lg font-semibold">Total: %s</span>`, esc(data.Total))
		fmt.Fprintf(w, `<form hx-post="/clients/%s/quotations" hx-target="#main-content">`, esc(data.ClientID))
		for _, id := range data.RoomIDs {
			fmt.Fprintf(w, `<input type="hidden" name="room_ids" value="%s"/>`, esc(id))
		}
		io.WriteString(w, `<button type="submit" class="btn btn-primary">Submit Quotation</button></form></div>`)
		return nil
	})
}

func QuotationPreviewPage(data QuotationPreviewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Quotation Preview", header, sidebar, QuotationPreviewContent(data))
}

type QuotationListItem struct {
	ID               string
	Number           string
	ClientName       string
	Status           string
	StatusBadgeClass string
	Total            string
	WorkerName       string
	CreatedDate      string
}

type QuotationListData struct {
	Items      []QuotationListItem
	TotalCount int
}

func QuotationListContent(data QuotationListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-semibold mb-4">Quotations</h1>`)
		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No quotations yet. Create one from a client's page.</div>`)
			return nil
		}
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100"><table class="table"><thead><tr><th>Number</th><th>Client</th><th>Status</th><th>Total</th><th>Worker</th><th>Created</th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td><a class="link" href="/quotations/%s">%s</a></td><td>%s</td><td><span class="badge %s">%s</span></td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				esc(item.ID), esc(item.Number), esc(item.ClientName), esc(item.StatusBadgeClass), esc(item.Status), esc(item.Total), esc(orDash(item.WorkerName)), esc(item.CreatedDate))
		}
		fmt.Fprintf(w, `</tbody></table></div><p class="text-sm text-base-content/60 mt-2">%d quotations</p>`, data.TotalCount)
		return nil
	})
}

func QuotationListPage(data QuotationListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Quotations", header, sidebar, QuotationListContent(data))
}

type QuotationRoomRow struct {
	RoomType     string
	RoomTotal    string
	PricePerSqFt string
	Status       string
}

type WorkerOption struct {
	ID   string
	Name string
}

type QuotationViewData struct {
	ID               string
	Number           string
	ClientID         string
	ClientName       string
	Status           string
	StatusBadgeClass string
	Total            string
	WorkerName       string
	CreatedDate      string
	Rooms            []QuotationRoomRow
	Workers          []WorkerOption
	CanAssign        bool
}

func QuotationViewContent(data QuotationViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-1"><h1 class="text-2xl font-semibold">%s</h1><span class="badge %s badge-lg">%s</span></div>`,
			esc(data.Number), esc(data.StatusBadgeClass), esc(data.Status))
		fmt.Fprintf(w, `<p class="text-sm text-base-content/60 mb-4"><a class="link" href="/clients/%s">%s</a> · %s</p>`,
			esc(data.ClientID), esc(data.ClientName), esc(data.CreatedDate))

		io.WriteString(w, `<div class="flex gap-2 mb-4">`)
		fmt.Fprintf(w, `<a class="btn btn-sm" href="/quotations/%s/html" target="_blank">View Document</a>`, esc(data.ID))
		fmt.Fprintf(w, `<a class="btn btn-sm" href="/quotations/%s/pdf">Download PDF</a>`, esc(data.ID))
		fmt.Fprintf(w, `<a class="btn btn-sm" href="/quotations/%s/excel">Download Excel</a></div>`, esc(data.ID))

		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100 mb-4"><table class="table"><thead><tr><th>Room</th><th>Room Total</th><th>Price / sq.ft</th><th>Status</th></tr></thead><tbody>`)
		for _, room := range data.Rooms {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td><span class="badge badge-ghost">%s</span></td></tr>`,
				esc(room.RoomType), esc(room.RoomTotal), esc(orDash(room.PricePerSqFt)), esc(room.Status))
		}
		fmt.Fprintf(w, `</tbody></table></div><p class="text-lg font-semibold mb-4">Total: %s</p>`, esc(data.Total))

		if data.WorkerName != "" {
			fmt.Fprintf(w, `<p class="mb-2">Assigned to <span class="font-semibold">%s</span></p>`, esc(data.WorkerName))
		}
		if data.CanAssign && len(data.Workers) > 0 {
			fmt.Fprintf(w, `<form class="flex gap-2 items-end" hx-post="/quotations/%s/assign" hx-target="#main-content">`, esc(data.ID))
			io.WriteString(w, `<label class="form-control"><span class="label-text">Assign worker</span><select name="worker_id" class="select select-bordered select-sm" required>`)
			for _, worker := range data.Workers {
				fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(worker.ID), esc(worker.Name))
			}
			io.WriteString(w, `</select></label><button type="submit" class="btn btn-primary btn-sm">Assign</button></form>`)
		}
		return nil
	})
}

func QuotationViewPage(data QuotationViewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout(data.Number, header, sidebar, QuotationViewContent(data))
}
