package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type VendorListItem struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	MaterialCount int
}

type VendorListData struct {
	Items      []VendorListItem
	TotalCount int
}

func VendorListContent(data VendorListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="flex items-center justify-between mb-4"><h1 class="text-2xl font-semibold">Vendors</h1>`)
		io.WriteString(w, `<a href="/vendors/new" class="btn btn-primary btn-sm" hx-get="/vendors/new" hx-target="#main-content" hx-push-url="true">New Vendor</a></div>`)
		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No vendors yet.</div>`)
			return nil
		}
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100"><table class="table"><thead><tr><th>Name</th><th>Contact Person</th><th>Phone</th><th>Email</th><th>Materials</th><th></th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%d</td>`,
				esc(item.Name), esc(orDash(item.ContactPerson)), esc(orDash(item.Phone)), esc(orDash(item.Email)), item.MaterialCount)
			fmt.Fprintf(w, `<td class="text-right"><button class="btn btn-ghost btn-xs" hx-delete="/vendors/%s" hx-confirm="Delete this vendor?" hx-target="closest tr" hx-swap="outerHTML">Delete</button></td></tr>`, esc(item.ID))
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

func VendorListPage(data VendorListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Vendors", header, sidebar, VendorListContent(data))
}

type VendorFormData struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
}

func VendorFormContent(data VendorFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-semibold mb-4">New Vendor</h1>`)
		io.WriteString(w, `<form class="card bg-base-100 p-6 max-w-xl flex flex-col gap-3" hx-post="/vendors" hx-target="#main-content">`)
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Name</span><input type="text" name="name" value="%s" class="input input-bordered" required/></label>`, esc(data.Name))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Contact person</span><input type="text" name="contact_name" value="%s" class="input input-bordered"/></label>`, esc(data.ContactPerson))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Phone</span><input type="tel" name="phone" value="%s" class="input input-bordered"/></label>`, esc(data.Phone))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Email</span><input type="email" name="email" value="%s" class="input input-bordered"/></label>`, esc(data.Email))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Address</span><textarea name="address" class="textarea textarea-bordered">%s</textarea></label>`, esc(data.Address))
		io.WriteString(w, `<div class="flex gap-2 mt-2"><button type="submit" class="btn btn-primary">Save</button><a href="/vendors" class="btn btn-ghost" hx-get="/vendors" hx-target="#main-content">Cancel</a></div></form>`)
		return nil
	})
}

func VendorFormPage(data VendorFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("New Vendor", header, sidebar, VendorFormContent(data))
}

type RawMaterialItem struct {
	ID         string
	Name       string
	VendorName string
	Unit       string
	Rate       string
}

type VendorOption struct {
	ID   string
	Name string
}

type RawMaterialListData struct {
	Items   []RawMaterialItem
	Vendors []VendorOption
}

func RawMaterialListContent(data RawMaterialListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-semibold mb-4">Raw Materials</h1>`)

		io.WriteString(w, `<form class="card bg-base-100 p-4 mb-4 flex flex-wrap gap-2 items-end" hx-post="/raw-materials" hx-target="#main-content">`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Name</span><input type="text" name="name" class="input input-bordered input-sm" required/></label>`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Vendor</span><select name="vendor" class="select select-bordered select-sm"><option value="">None</option>`)
		for _, v := range data.Vendors {
			fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(v.ID), esc(v.Name))
		}
		io.WriteString(w, `</select></label>`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Unit</span><input type="text" name="unit" class="input input-bordered input-sm w-24" placeholder="Sq.ft"/></label>`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Price</span><input type="number" step="any" min="0" name="price" class="input input-bordered input-sm w-28"/></label>`)
		io.WriteString(w, `<button type="submit" class="btn btn-primary btn-sm">Add</button></form>`)

		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No raw materials yet.</div>`)
			return nil
		}
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100"><table class="table"><thead><tr><th>Name</th><th>Vendor</th><th>Unit</th><th>Rate</th><th></th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td>`,
				esc(item.Name), esc(orDash(item.VendorName)), esc(orDash(item.Unit)), esc(orDash(item.Rate)))
			fmt.Fprintf(w, `<td class="text-right"><button class="btn btn-ghost btn-xs" hx-delete="/raw-materials/%s" hx-confirm="Delete this material?" hx-target="closest tr" hx-swap="outerHTML">Delete</button></td></tr>`, esc(item.ID))
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

func RawMaterialListPage(data RawMaterialListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Raw Materials", header, sidebar, RawMaterialListContent(data))
}
