package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type ClientListItem struct {
	ID            string
	Name          string
	ContactNumber string
	Email         string
	RoomCount     int
	CreatedDate   string
}

type ClientListData struct {
	Items      []ClientListItem
	TotalCount int
}

func ClientListContent(data ClientListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="flex items-center justify-between mb-4"><h1 class="text-2xl font-semibold">Clients</h1>`)
		io.WriteString(w, `<a href="/clients/new" class="btn btn-primary btn-sm" hx-get="/clients/new" hx-target="#main-content" hx-push-url="true">New Client</a></div>`)
		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No clients yet. Add your first client to get started.</div>`)
			return nil
		}
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100"><table class="table"><thead><tr><th>Name</th><th>Contact</th><th>Email</th><th>Rooms</th><th>Added</th><th></th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td><a class="link" href="/clients/%s">%s</a></td><td>%s</td><td>%s</td><td>%d</td><td>%s</td>`,
				esc(item.ID), esc(item.Name), esc(item.ContactNumber), esc(item.Email), item.RoomCount, esc(item.CreatedDate))
			fmt.Fprintf(w, `<td class="text-right"><button class="btn btn-ghost btn-xs" hx-delete="/clients/%s" hx-confirm="Delete this client and all their rooms?" hx-target="closest tr" hx-swap="outerHTML">Delete</button></td></tr>`, esc(item.ID))
		}
		fmt.Fprintf(w, `</tbody></table></div><p class="text-sm text-base-content/60 mt-2">%d clients</p>`, data.TotalCount)
		return nil
	})
}

func ClientListPage(data ClientListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Clients", header, sidebar, ClientListContent(data))
}

type ClientFormData struct {
	ID            string
	Name          string
	ContactNumber string
	Email         string
	Address       string
	IsEdit        bool
}

func ClientFormContent(data ClientFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title, action := "New Client", "/clients"
		if data.IsEdit {
			title = "Edit Client"
			action = "/clients/" + data.ID
		}
		fmt.Fprintf(w, `<h1 class="text-2xl font-semibold mb-4">%s</h1>`, esc(title))
		fmt.Fprintf(w, `<form class="card bg-base-100 p-6 max-w-xl flex flex-col gap-3" hx-post="%s" hx-target="#main-content">`, esc(action))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Name</span><input type="text" name="name" value="%s" class="input input-bordered" required/></label>`, esc(data.Name))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Contact number</span><input type="tel" name="contact_number" value="%s" class="input input-bordered"/></label>`, esc(data.ContactNumber))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Email</span><input type="email" name="email" value="%s" class="input input-bordered"/></label>`, esc(data.Email))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Address</span><textarea name="address" class="textarea textarea-bordered">%s</textarea></label>`, esc(data.Address))
		io.WriteString(w, `<div class="flex gap-2 mt-2"><button type="submit" class="btn btn-primary">Save</button><a href="/clients" class="btn btn-ghost" hx-get="/clients" hx-target="#main-content">Cancel</a></div></form>`)
		return nil
	})
}

func ClientFormPage(data ClientFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Client", header, sidebar, ClientFormContent(data))
}

type ClientRoomItem struct {
	ID               string
	RoomType         string
	Status           string
	StatusBadgeClass string
	TotalSqFt        string
	ProductCount     int
}

type ClientQuotationItem struct {
	ID          string
	Number      string
	Status      string
	Total       string
	CreatedDate string
}

type ClientViewData struct {
	Client     ClientFormData
	Rooms      []ClientRoomItem
	Quotations []ClientQuotationItem
}

func ClientViewContent(data ClientViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-4"><h1 class="text-2xl font-semibold">%s</h1><div class="flex gap-2">`, esc(data.Client.Name))
		fmt.Fprintf(w, `<a class="btn btn-sm" href="/clients/%s/edit" hx-get="/clients/%s/edit" hx-target="#main-content">Edit</a>`, esc(data.Client.ID), esc(data.Client.ID))
		fmt.Fprintf(w, `<a class="btn btn-primary btn-sm" href="/clients/%s/rooms/new" hx-get="/clients/%s/rooms/new" hx-target="#main-content" hx-push-url="true">Add Room</a>`, esc(data.Client.ID), esc(data.Client.ID))
		fmt.Fprintf(w, `<a class="btn btn-secondary btn-sm" href="/clients/%s/quotations/new" hx-get="/clients/%s/quotations/new" hx-target="#main-content" hx-push-url="true">New Quotation</a></div></div>`, esc(data.Client.ID), esc(data.Client.ID))

		io.WriteString(w, `<div class="card bg-base-100 p-4 mb-4 grid grid-cols-1 sm:grid-cols-3 gap-2 text-sm">`)
		fmt.Fprintf(w, `<div><span class="text-base-content/60">Contact</span><div>%s</div></div>`, esc(orDash(data.Client.ContactNumber)))
		fmt.Fprintf(w, `<div><span class="text-base-content/60">Email</span><div>%s</div></div>`, esc(orDash(data.Client.Email)))
		fmt.Fprintf(w, `<div><span class="text-base-content/60">Address</span><div>%s</div></div></div>`, esc(orDash(data.Client.Address)))

		io.WriteString(w, `<h2 class="text-lg font-semibold mb-2">Rooms</h2>`)
		if len(data.Rooms) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-6 text-center text-base-content/60 mb-4">No rooms yet.</div>`)
		} else {
			io.WriteString(w, `<div class="overflow-x-auto card bg-base-100 mb-4"><table class="table"><thead><tr><th>Room</th><th>Status</th><th>Area (sq.ft)</th><th>Items</th></tr></thead><tbody>`)
			for _, room := range data.Rooms {
				fmt.Fprintf(w, `<tr><td><a class="link" href="/rooms/%s">%s</a></td><td><span class="badge %s">%s</span></td><td>%s</td><td>%d</td></tr>`,
					esc(room.ID), esc(room.RoomType), esc(room.StatusBadgeClass), esc(room.Status), esc(room.TotalSqFt), room.ProductCount)
			}
			io.WriteString(w, `</tbody></table></div>`)
		}

		io.WriteString(w, `<h2 class="text-lg font-semibold mb-2">Quotations</h2>`)
		if len(data.Quotations) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-6 text-center text-base-content/60">No quotations yet.</div>`)
		} else {
			io.WriteString(w, `<div class="overflow-x-auto card bg-base-100"><table class="table"><thead><tr><th>Number</th><th>Status</th><th>Total</th><th>Created</th></tr></thead><tbody>`)
			for _, q := range data.Quotations {
				fmt.Fprintf(w, `<tr><td><a class="link" href="/quotations/%s">%s</a></td><td><span class="badge badge-ghost">%s</span></td><td>%s</td><td>%s</td></tr>`,
					esc(q.ID), esc(q.Number), esc(q.Status), esc(q.Total), esc(q.CreatedDate))
			}
			io.WriteString(w, `</tbody></table></div>`)
		}
		return nil
	})
}

func ClientViewPage(data ClientViewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout(data.Client.Name, header, sidebar, ClientViewContent(data))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
