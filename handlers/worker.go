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

func HandleWorkerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		workersCol, err := app.FindCollectionByNameOrId("workers")
		if err != nil {
			log.Printf("worker_list: could not find workers collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(workersCol)
		if err != nil {
			log.Printf("worker_list: could not query workers: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.WorkerListItem
		for _, rec := range records {
			jobs, err := services.WorkerQuotations(app, rec.Id)
			if err != nil {
				jobs = nil
			}
			items = append(items, templates.WorkerListItem{
				ID:          rec.Id,
				Name:        rec.GetString("name"),
				Email:       rec.GetString("email"),
				Phone:       rec.GetString("phone"),
				ActiveJobs:  len(jobs),
				CreatedDate: createdDate(rec),
			})
		}

		data := templates.WorkerListData{Items: items, TotalCount: len(records)}
		return render(e, "Workers", templates.WorkerListContent(data))
	}
}

func HandleWorkerNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return render(e, "New Worker", templates.WorkerFormContent(templates.WorkerFormData{}))
	}
}

func HandleWorkerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Worker name is required")
		}

		workersCol, err := app.FindCollectionByNameOrId("workers")
		if err != nil {
			log.Printf("worker_create: could not find workers collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(workersCol)
		record.Set("name", name)
		record.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		record.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))

		if err := app.Save(record); err != nil {
			log.Printf("worker_create: could not save worker: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the worker. Please try again.")
		}

		SetToast(e, "success", "Worker added")
		return redirect(e, "/workers")
	}
}

func HandleWorkerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		workerID := e.Request.PathValue("id")

		worker, err := app.FindRecordById("workers", workerID)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Worker not found")
		}

		jobs, err := services.WorkerQuotations(app, workerID)
		if err == nil && len(jobs) > 0 {
			return ErrorToast(e, http.StatusConflict, "This worker still has assigned quotations.")
		}

		if err := app.Delete(worker); err != nil {
			log.Printf("worker_delete: could not delete worker %s: %v", workerID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not delete the worker. Please try again.")
		}

		SetToast(e, "success", "Worker removed")
		return redirect(e, "/workers")
	}
}

// HandleWorkerDashboard shows the signed-in worker their assigned, closed
// quotations with per-room progress controls.
func HandleWorkerDashboard(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		user := GetActiveUser(e.Request)
		if user == nil {
			return ErrorToast(e, http.StatusUnauthorized, "Sign in to see your work.")
		}

		// The worker record is linked to the auth user.
		workers, err := app.FindRecordsByFilter(
			"workers", "user = {:userId}", "", 1, 0,
			map[string]any{"userId": user.ID},
		)
		if err != nil || len(workers) == 0 {
			log.Printf("worker_dashboard: no worker record for user %s", user.ID)
			return ErrorToast(e, http.StatusNotFound, "No worker profile is linked to your account.")
		}
		worker := workers[0]

		quotations, err := services.WorkerQuotations(app, worker.Id)
		if err != nil {
			log.Printf("worker_dashboard: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		data := templates.WorkerDashboardData{WorkerName: worker.GetString("name")}
		for _, q := range quotations {
			job := templates.DashboardJob{
				QuotationID: q.Id,
				Number:      q.GetString("quotation_number"),
				Total:       services.FormatINR(q.GetFloat("total_price")),
			}
			if client, err := app.FindRecordById("clients", q.GetString("client")); err == nil {
				job.ClientName = client.GetString("name")
			}

			rooms, err := services.QuotationRooms(app, q.Id)
			if err != nil {
				rooms = nil
			}
			for _, room := range rooms {
				status, _ := services.ParseRoomStatus(room.GetString("status"))
				jobRoom := templates.DashboardJobRoom{
					ID:               room.Id,
					RoomType:         room.GetString("room_type"),
					Status:           string(status),
					StatusBadgeClass: roomStatusBadgeClass(status),
				}
				for _, next := range services.WorkerStatuses {
					if status.CanTransition(next) {
						jobRoom.NextStatuses = append(jobRoom.NextStatuses, string(next))
					}
				}
				job.Rooms = append(job.Rooms, jobRoom)
			}
			data.Jobs = append(data.Jobs, job)
		}

		return render(e, "My Work", templates.WorkerDashboardContent(data))
	}
}
