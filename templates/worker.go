package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

type WorkerListItem struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	ActiveJobs  int
	CreatedDate string
}

type WorkerListData struct {
	Items      []WorkerListItem
	TotalCount int
}

func WorkerListContent(data WorkerListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<div class="flex items-center justify-between mb-4"><h1 class="text-2xl font-semibold">Workers</h1>`)
		io.WriteString(w, `<a href="/workers/new" class="btn btn-primary btn-sm" hx-get="/workers/new" hx-target="#main-content" hx-push-url="true">New Worker</a></div>`)
		if len(data.Items) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">No workers yet.</div>`)
			return nil
		}
		io.WriteString(w, `<div class="overflow-x-auto card bg-base-100"><table class="table"><thead><tr><th>Name</th><th>Email</th><th>Phone</th><th>Active Jobs</th><th></th></tr></thead><tbody>`)
		for _, item := range data.Items {
			fmt.Fprintf(w, `<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td>`,
				esc(item.Name), esc(orDash(item.Email)), esc(orDash(item.Phone)), item.ActiveJobs)
			fmt.Fprintf(w, `<td class="text-right"><button class="btn btn-ghost btn-xs" hx-delete="/workers/%s" hx-confirm="Remove this worker?" hx-target="closest tr" hx-swap="outerHTML">Delete</button></td></tr>`, esc(item.ID))
		}
		io.WriteString(w, `</tbody></table></div>`)
		return nil
	})
}

func WorkerListPage(data WorkerListData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("Workers", header, sidebar, WorkerListContent(data))
}

type WorkerFormData struct {
	Name  string
	Email string
	Phone string
}

func WorkerFormContent(data WorkerFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, `<h1 class="text-2xl font-semibold mb-4">New Worker</h1>`)
		io.WriteString(w, `<form class="card bg-base-100 p-6 max-w-xl flex flex-col gap-3" hx-post="/workers" hx-target="#main-content">`)
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Name</span><input type="text" name="name" value="%s" class="input input-bordered" required/></label>`, esc(data.Name))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Email</span><input type="email" name="email" value="%s" class="input input-bordered"/></label>`, esc(data.Email))
		fmt.Fprintf(w, `<label class="form-control"><span class="label-text">Phone</span><input type="tel" name="phone" value="%s" class="input input-bordered"/></label>`, esc(data.Phone))
		io.WriteString(w, `<div class="flex gap-2 mt-2"><button type="submit" class="btn btn-primary">Save</button><a href="/workers" class="btn btn-ghost" hx-get="/workers" hx-target="#main-content">Cancel</a></div></form>`)
		return nil
	})
}

func WorkerFormPage(data WorkerFormData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("New Worker", header, sidebar, WorkerFormContent(data))
}

type DashboardJobRoom struct {
	ID               string
	RoomType         string
	Status           string
	StatusBadgeClass string
	NextStatuses     []string
}

type DashboardJob struct {
	QuotationID string
	Number      string
	ClientName  string
	Total       string
	Rooms       []DashboardJobRoom
}

type WorkerDashboardData struct {
	WorkerName string
	Jobs       []DashboardJob
}

// WorkerDashboardContent is the worker's landing view: every closed
// quotation assigned to them, with per-room progress buttons.
func WorkerDashboardContent(data WorkerDashboardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<h1 class="text-2xl font-semibold mb-4">My Work — %s</h1>`, esc(data.WorkerName))
		if len(data.Jobs) == 0 {
			io.WriteString(w, `<div class="card bg-base-100 p-8 text-center text-base-content/60">Nothing assigned yet.</div>`)
			return nil
		}
		for _, job := range data.Jobs {
			fmt.Fprintf(w, `<div class="card bg-base-100 p-4 mb-4"><div class="flex items-center justify-between mb-2"><span class="font-semibold">%s · %s</span><span>%s</span></div>`,
				esc(job.Number), esc(job.ClientName), esc(job.Total))
			io.WriteString(w, `<table class="table table-sm"><thead><tr><th>Room</th><th>Status</th><th>Progress</th></tr></thead><tbody>`)
			for _, room := range job.Rooms {
				fmt.Fprintf(w, `<tr><td>%s</td><td><span class="badge %s">%s</span></td><td class="flex gap-1">`,
					esc(room.RoomType), esc(room.StatusBadgeClass), esc(room.Status))
				for _, status := range room.NextStatuses {
					fmt.Fprintf(w, `<button class="btn btn-xs btn-outline" hx-patch="/rooms/%s/status" hx-vals='{"status":"%s"}' hx-target="#main-content">%s</button>`,
						esc(room.ID), esc(status), esc(status))
				}
				io.WriteString(w, `</td></tr>`)
			}
			io.WriteString(w, `</tbody></table></div>`)
		}
		return nil
	})
}

func WorkerDashboardPage(data WorkerDashboardData, header HeaderData, sidebar SidebarData) templ.Component {
	return Layout("My Work", header, sidebar, WorkerDashboardContent(data))
}
