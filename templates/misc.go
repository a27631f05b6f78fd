package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type LeadListItem struct {
	ID               string
	Name             string
	Phone            string
	Source           string
	Status           string
	StatusBadgeClass string
	Notes            string
	CreatedDate      string
}

type LeadListData struct {
	Items    []LeadListItem
	Statuses []string
}

func LeadListContent(data LeadListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-semibold mb-4">Leads</h1>`)

		io.WriteString(w, `<form class="card bg-base-100 p-4 mb-4 flex flex-wrap gap-2 items-end" hx-post="/leads" hx-target="#main-content">`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Name</span><input type="text" name="name" class="input input-bordered input-sm" required/></label>`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Phone</span><input type="tel" name="contact_number" class="input input-bordered input-sm"/></label>`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Source</span><input type="text" name="source" class="input input-bordered input-sm" placeholder="referral, instagram..."/></label>`)
		io.WriteString(w, `<button type="submit" class="btn btn-primary btn-sm">Add Lead</button></form>`)

		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No leads yet.</div>`)
			return nil
		}
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100"><table class="table"><thead><tr><th>Name</th><th>Phone</th><th>Source</th><th>Status</th><th>Added</th><th></th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td>`,
				esc(item.Name), esc(orDash(item.Phone)), esc(orDash(item.Source)))
			fmt.Fprintf(w, `<td><select class="select select-bordered select-xs" name="status" hx-patch="/leads/%s/status" hx-trigger="change" hx-target="#main-content">`, esc(item.ID))
			for _, status := range data.Statuses {
				selected := ""
				if status == item.Status {
					selected = " selected"
				}
				fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(status), selected, esc(status))
			}
			fmt.Fprintf(w, `</select></td><td>%s</td>`, esc(item.CreatedDate))
			fmt.Fprintf(w, `<td class="text-right"><button class="btn btn-ghost btn-xs" hx-delete="/leads/%s" hx-confirm="Delete this lead?" hx-target="closest tr" hx-swap="outerHTML">Delete</button></td></tr>`, esc(item.ID))
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

func LeadListPage(data LeadListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Leads", header, sidebar, LeadListContent(data))
}

type GalleryImageItem struct {
	ID       string
	Title    string
	URL      string
	RoomType string
}

type GalleryData struct {
	Items     []GalleryImageItem
	CanUpload bool
}

func GalleryContent(data GalleryData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-semibold mb-4">Gallery</h1>`)
		if data.CanUpload {
			io.WriteString(w, `<form class="card bg-base-100 p-4 mb-4 flex flex-wrap gap-2 items-end" hx-post="/gallery" hx-target="#main-content" hx-encoding="multipart/form-data">`)
			io.WriteString(w, `<label class="form-control"><span class="label-text">Title</span><input type="text" name="title" class="input input-bordered input-sm"/></label>`)
			io.WriteString(w, `<label class="form-control"><span class="label-text">Image</span><input type="file" name="image" class="file-input file-input-bordered file-input-sm" accept="image/*" required/></label>`)
			io.WriteString(w, `<button type="submit" class="btn btn-primary btn-sm">Upload</button></form>`)
		}
		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No images yet.</div>`)
			return nil
		}
		io.WriteString(w, `<div class="grid grid-cols-2 sm:grid-cols-3 lg:grid-cols-4 gap-3">`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<figure class="card bg-base-100 overflow-hidden"><a href="%s" target="_blank"><img src="%s?thumb=400x300" class="w-full h-40 object-cover" alt="%s"/></a>`,
				esc(item.URL), esc(item.URL), esc(item.Title))
			if item.Title != "" || item.RoomType != "" {
				fmt.Fprintf(w, `<figcaption class="p-2 text-sm">%s`, esc(item.Title))
				if item.RoomType != "" {
					fmt.Fprintf(w, ` <span class="badge badge-ghost badge-sm">%s</span>`, esc(item.RoomType))
				}
				io.WriteString(w, `</figcaption>`)
			}
			io.WriteString(w, `</figure>`)
		}
		io.WriteString(w, `</div>`)
		return nil
	})
}

func GalleryPage(data GalleryData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Gallery", header, sidebar, GalleryContent(data))
}

type RoomTypeSettingItem struct {
	ID           string
	Name         string
	ProductCount int
	SortOrder    int
}

type RoomTypeSettingsData struct {
	Items        []RoomTypeSettingItem
	EditID       string
	EditName     string
	EditProducts string
}

// RoomTypeSettingsContent is the raw catalog editor. The products tree is
// edited as JSON; the handler validates it before saving.
func RoomTypeSettingsContent(data RoomTypeSettingsData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-semibold mb-4">Room Type Catalog</h1>`)
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100 mb-4"><table class="table"><thead><tr><th>Room Type</th><th>Top-level Products</th><th>Order</th><th></th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%d</td><td>%d</td>`, esc(item.Name), item.ProductCount, item.SortOrder)
			fmt.Fprintf(w, `<td class="text-right"><a class="btn btn-ghost btn-xs" href="/settings/room-types/%s" hx-get="/settings/room-types/%s" hx-target="#main-content">Edit</a></td></tr>`, esc(item.ID), esc(item.ID))
		}
		io.WriteString(w, `</tbody></table></div>`)

		action := "/settings/room-types"
		heading := "New Room Type"
		if data.EditID != "" {
			action = "/settings/room-types/" + data.EditID
			heading = "Edit " + data.EditName
		}
		fmt.Fprintf(w, `<h2 class="text-lg font-semibold mb-2">%s</h2>`, esc(heading))
		fmt.Fprintf(w, `<form class="card bg-base-100 p-6 flex flex-col gap-3" hx-post="%s" hx-target="#main-content">`, esc(action))
		fmt.Fprintf(w, `<label class="form-control max-w-xs"><span class="label-text">Name</span><input type="text" name="name" value="%s" class="input input-bordered" required/></label>`, esc(data.EditName))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Products (JSON)</span><textarea name="products" class="textarea textarea-bordered font-mono" rows="14">%s</textarea></label>`, esc(data.EditProducts))
		io.WriteString(w, `<div><button type="submit" class="btn btn-primary">Save</button></div></form>`)
		return nil
	})
}

func RoomTypeSettingsPage(data RoomTypeSettingsData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Room Type Catalog", header, sidebar, RoomTypeSettingsContent(data))
}
