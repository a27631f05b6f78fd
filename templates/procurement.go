package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type POListItem struct {
	ID               string
	Number           string
	VendorName       string
	Status           string
	StatusBadgeClass string
	Total            string
	LineItemCount    int
	CreatedDate      string
}

type POListData struct {
	Items      []POListItem
	TotalCount int
}

func POListContent(data POListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="flex items-center justify-between mb-4"><h1 class="text-2xl font-semibold">Purchase Orders</h1>`)
		io.WriteString(w, `<a href="/purchase-orders/new" class="btn btn-primary btn-sm" hx-get="/purchase-orders/new" hx-target="#main-content" hx-push-url="true">New PO</a></div>`)
		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No purchase orders yet.</div>`)
			return nil
		}
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100"><table class="table"><thead><tr><th>PO Number</th><th>Vendor</th><th>Status</th><th>Items</th><th>Total</th><th>Created</th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td><a class="link" href="/purchase-orders/%s">%s</a></td><td>%s</td><td><span class="badge %s">%s</span></td><td>%d</td><td>%s</td><td>%s</td></tr>`,
				esc(item.ID), esc(item.Number), esc(item.VendorName), esc(item.StatusBadgeClass), esc(item.Status), item.LineItemCount, esc(item.Total), esc(item.CreatedDate))
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

func POListPage(data POListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Purchase Orders", header, sidebar, POListContent(data))
}

type POFormData struct {
	Vendors []VendorOption
}

func POFormContent(data POFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-semibold mb-4">New Purchase Order</h1>`)
		io.WriteString(w, `<form class="card bg-base-100 p-6 max-w-xl flex flex-col gap-3" hx-post="/purchase-orders" hx-target="#main-content">`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Vendor</span><select name="vendor" class="select select-bordered" required><option value="" disabled selected>Choose a vendor</option>`)
		for _, v := range data.Vendors {
			fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(v.ID), esc(v.Name))
		}
		io.WriteString(w, `</select></label>`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">PO number</span><input type="text" name="po_number" class="input input-bordered" required/></label>`)
		io.WriteString(w, `<div class="flex gap-2 mt-2"><button type="submit" class="btn btn-primary">Create Draft</button><a href="/purchase-orders" class="btn btn-ghost" hx-get="/purchase-orders" hx-target="#main-content">Cancel</a></div></form>`)
		return nil
	})
}

func POFormPage(data POFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("New Purchase Order", header, sidebar, POFormContent(data))
}

type POLineItemRow struct {
	ID           string
	Description  string
	MaterialName string
	Quantity     string
	Unit         string
	Rate         string
	Amount       string
}

type MaterialOption struct {
	ID   string
	Name string
}

type POViewData struct {
	ID               string
	Number           string
	VendorName       string
	Status           string
	StatusBadgeClass string
	Total            string
	Items            []POLineItemRow
	Materials        []MaterialOption
	NextStatuses     []string
}

func POViewContent(data POViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-1"><h1 class="text-2xl font-semibold">%s</h1><span class="badge %s badge-lg">%s</span></div>`,
			esc(data.Number), esc(data.StatusBadgeClass), esc(data.Status))
		fmt.Fprintf(w, `<p class="text-sm text-base-content/60 mb-4">%s</p>`, esc(data.VendorName))

		if len(data.Items) > 0 {
			io.WriteString(w, `<div class="overflow-x-auto card bg-base-100 mb-4"><table class="table table-sm"><thead><tr><th>Description</th><th>Material</th><th>Qty</th><th>Unit</th><th>Rate</th><th>Amount</th><th></th></tr></thead><tbody>`)
			for _, item := range data.Items {
				fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
					esc(item.Description), esc(orDash(item.MaterialName)), esc(item.Quantity), esc(orDash(item.Unit)), esc(item.Rate), esc(item.Amount))
				fmt.Fprintf(w, `<td class="text-right"><button class="btn btn-ghost btn-xs" hx-delete="/purchase-orders/%s/items/%s" hx-target="#main-content">Remove</button></td></tr>`, esc(data.ID), esc(item.ID))
			}
			io.WriteString(w, `</tbody></table></div>`)
		}

		if data.Status == "draft" {
			fmt.Fprintf(w, `<form class="card bg-base-100 p-4 mb-4 flex flex-wrap gap-2 items-end" hx-post="/purchase-orders/%s/items" hx-target="#main-content">`, esc(data.ID))
			io.WriteString(w, `<label class="form-control"><span class="label-text">Description</span><input type="text" name="description" class="input input-bordered input-sm" required/></label>`)
			io.WriteString(w, `<label class="form-control"><span class="label-text">Material</span><select name="raw_material" class="select select-bordered select-sm"><option value="">None</option>`)
			for _, m := range data.Materials {
				fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(m.ID), esc(m.Name))
			}
			io.WriteString(w, `</select></label>`)
			io.WriteString(w, `<label class="form-control"><span class="label-text">Qty</span><input type="number" step="any" min="0" name="quantity" class="input input-bordered input-sm w-24" required/></label>`)
			io.WriteString(w, `<label class="form-control"><span class="label-text">Unit</span><input type="text" name="unit" class="input input-bordered input-sm w-24"/></label>`)
			io.WriteString(w, `<label class="form-control"><span class="label-text">Rate</span><input type="number" step="any" min="0" name="rate" class="input input-bordered input-sm w-28" required/></label>`)
			io.WriteString(w, `<button type="submit" class="btn btn-primary btn-sm">Add Item</button></form>`)
		}

		fmt.Fprintf(w, `<div class="flex items-center justify-between card bg-base-100 p-4"><span class="text-lg font-semibold">Total: %s</span><div class="flex gap-2">`, esc(data.Total))
		for _, status := range data.NextStatuses {
			fmt.Fprintf(w, `<button class="btn btn-sm btn-outline" hx-patch="/purchase-orders/%s/status" hx-vals='{"status":"%s"}' hx-target="#main-content">Mark %s</button>`,
				esc(data.ID), esc(status), esc(status))
		}
		io.WriteString(w, `</div></div>`)
		return nil
	})
}

func POViewPage(data POViewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout(data.Number, header, sidebar, POViewContent(data))
}
