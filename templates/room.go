package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type RoomFormData struct {
	ClientID     string
	ClientName   string
	RoomTypes    []string
	TaxonomyJSON string
	Units        []string
}

// RoomFormContent renders the room capture form. Product rows are driven
// client-side from the embedded taxonomy JSON; the form posts item_N_*
// fields that the handler reassembles.
func RoomFormContent(data RoomFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<h1 class="text-2xl font-semibold mb-4">Add Room for %s</h1>`, esc(data.ClientName))
		fmt.Fprintf(w, `<form class="card bg-base-100 p-6 flex flex-col gap-3" hx-post="/clients/%s/rooms" hx-target="#main-content" hx-encoding="multipart/form-data">`, esc(data.ClientID))

		io.WriteString(w, `<label class="form-control max-w-xs"><span class="label-text">Room type</span><select name="room_type" class="select select-bordered" id="room-type-select" required>`)
		io.WriteString(w, `<option value="" disabled selected>Choose a room</option>`)
		for _, rt := range data.RoomTypes {
			fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(rt), esc(rt))
		}
		io.WriteString(w, `</select></label>`)

		io.WriteString(w, `<label class="form-control"><span class="label-text">Description</span><textarea name="description" class="textarea textarea-bordered" placeholder="L-shaped, north facing..."></textarea></label>`)

		io.WriteString(w, `<fieldset class="border rounded p-3"><legend class="text-sm px-1">Dimensions (optional)</legend><div class="flex flex-wrap gap-2 items-end">`)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Length</span><input type="number" step="any" min="0" name="length_value" class="input input-bordered input-sm w-28"/></label>`)
		writeUnitSelect(w, "length_unit", data.Units)
		io.WriteString(w, `<label class="form-control"><span class="label-text">Width</span><input type="number" step="any" min="0" name="width_value" class="input input-bordered input-sm w-28"/></label>`)
		writeUnitSelect(w, "width_unit", data.Units)
		io.WriteString(w, `</div></fieldset>`)

		io.WriteString(w, `<fieldset class="border rounded p-3"><legend class="text-sm px-1">Products</legend>`)
		io.WriteString(w, `<div id="line-items"></div>`)
		io.WriteString(w, `<button type="button" class="btn btn-sm btn-outline mt-2" id="add-line-item">Add Product</button></fieldset>`)

		io.WriteString(w, `<label class="form-control"><span class="label-text">Reference photos</span><input type="file" name="ref_images" class="file-input file-input-bordered" accept="image/*" multiple/></label>`)

		fmt.Fprintf(w, `<script type="application/json" id="taxonomy-data">%s</script>`, data.TaxonomyJSON)
		fmt.Fprintf(w, `<div class="flex gap-2 mt-2"><button type="submit" class="btn btn-primary">Create Room</button><a href="/clients/%s" class="btn btn-ghost" hx-get="/clients/%s" hx-target="#main-content">Cancel</a></div></form>`, esc(data.ClientID), esc(data.ClientID))
		return nil
	})
}

func writeUnitSelect(w io.Writer, name string, units []string) {
	fmt.Fprintf(w, `<select name="%s" class="select select-bordered select-sm">`, esc(name))
	for _, u := range units {
		fmt.Fprintf(w, `<option value="%s">%s</option>`, esc(u), esc(u))
	}
	io.WriteString(w, `</select>`)
}

func RoomFormPage(data RoomFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Add Room", header, sidebar, RoomFormContent(data))
}

type RoomProductItem struct {
	Name        string
	Category    string
	Subcategory string
	Quantity    string
	UnitType    string
	Price       string
	Wages       string
	Description string
}

type RoomViewData struct {
	ID               string
	ClientID         string
	ClientName       string
	RoomType         string
	Description      string
	Status           string
	StatusBadgeClass string
	TotalSqFt        string
	LengthLabel      string
	WidthLabel       string
	Products         []RoomProductItem
	ImageURLs        []string
	NextStatuses     []string
	CanUpdateStatus  bool
}

func RoomViewContent(data RoomViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<div class="flex items-center justify-between mb-1"><h1 class="text-2xl font-semibold">%s</h1><span class="badge %s badge-lg">%s</span></div>`,
			esc(data.RoomType), esc(data.StatusBadgeClass), esc(data.Status))
		fmt.Fprintf(w, `<p class="text-sm text-base-content/60 mb-4"><a class="link" href="/clients/%s">%s</a></p>`, esc(data.ClientID), esc(data.ClientName))

		if data.Description != "" {
			fmt.Fprintf(w, `<p class="mb-4">%s</p>`, esc(data.Description))
		}

		io.WriteString(w, `<div class="card bg-base-100 p-4 mb-4 grid grid-cols-3 gap-2 text-sm">`)
		fmt.Fprintf(w, `<div><span class="text-base-content/60">Length</span><div>%s</div></div>`, esc(orDash(data.LengthLabel)))
		fmt.Fprintf(w, `<div><span class="text-base-content/60">Width</span><div>%s</div></div>`, esc(orDash(data.WidthLabel)))
		fmt.Fprintf(w, `<div><span class="text-base-content/60">Area</span><div>%s sq.ft</div></div></div>`, esc(orDash(data.TotalSqFt)))

		if len(data.Products) > 0 {
			io.WriteString(w, `<h2 class="text-lg font-semibold mb-2">Products</h2><div class="overflow-x-auto card bg-base-100 mb-4"><table class="table table-sm"><thead><tr><th>Item</th><th>Category</th><th>Qty</th><th>Unit</th><th>Price</th><th>Wages</th></tr></thead><tbody>`)
			for _, p := range data.Products {
				fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
					esc(p.Name), esc(p.Category), esc(p.Quantity), esc(p.UnitType), esc(p.Price), esc(p.Wages))
			}
			io.WriteString(w, `</tbody></table></div>`)
		}

		if len(data.ImageURLs) > 0 {
			io.WriteString(w, `<h2 class="text-lg font-semibold mb-2">Reference Photos</h2><div class="flex flex-wrap gap-2 mb-4">`)
			for _, url := range data.ImageURLs {
				fmt.Fprintf(w, `<a href="%s" target="_blank"><img src="%s?thumb=200x200" class="rounded w-32 h-32 object-cover" alt="reference photo"/></a>`, esc(url), esc(url))
			}
			io.WriteString(w, `</div>`)
		}

		if data.CanUpdateStatus && len(data.NextStatuses) > 0 {
			io.WriteString(w, `<h2 class="text-lg font-semibold mb-2">Move to</h2><div class="flex gap-2">`)
			for _, status := range data.NextStatuses {
				fmt.Fprintf(w, `<button class="btn btn-sm btn-outline" hx-patch="/rooms/%s/status" hx-vals='{"status":"%s"}' hx-target="#main-content">%s</button>`,
					esc(data.ID), esc(status), esc(status))
			}
			io.WriteString(w, `</div>`)
		}
		return nil
	})
}

func RoomViewPage(data RoomViewData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout(data.RoomType, header, sidebar, RoomViewContent(data))
}
