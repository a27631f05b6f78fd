package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"

	"designdesk/templates"
)

func HandleGallery(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		galleryCol, err := app.FindCollectionByNameOrId("gallery_images")
		if err != nil {
			log.Printf("gallery: could not find gallery_images collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(galleryCol, "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("gallery: could not query images: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var items []templates.GalleryImageItem
		for _, rec := range records {
			filename := rec.GetString("image")
			if filename == "" {
				continue
			}
			roomType := ""
			if roomID := rec.GetString("room"); roomID != "" {
				if room, err := app.FindRecordById("rooms", roomID); err == nil {
					roomType = room.GetString("room_type")
				}
			}
			items = append(items, templates.GalleryImageItem{
				ID:       rec.Id,
				Title:    rec.GetString("title"),
				URL:      fmt.Sprintf("/api/files/%s/%s/%s", galleryCol.Id, rec.Id, filename),
				RoomType: roomType,
			})
		}

		data := templates.GalleryData{
			Items:     items,
			CanUpload: ActiveRole(e.Request).CanUpdateProgress(),
		}
		return render(e, "Gallery", templates.GalleryContent(data))
	}
}

func HandleGalleryUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !ActiveRole(e.Request).CanUpdateProgress() {
			return ErrorToast(e, http.StatusForbidden, "You do not have permission to do that.")
		}

		if err := e.Request.ParseMultipartForm(maxRoomFormMemory); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		files := e.Request.MultipartForm.File["image"]
		if len(files) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Choose an image to upload")
		}

		file, err := filesystem.NewFileFromMultipart(files[0])
		if err != nil {
			log.Printf("gallery_upload: unreadable upload %s: %v", files[0].Filename, err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the uploaded image")
		}

		galleryCol, err := app.FindCollectionByNameOrId("gallery_images")
		if err != nil {
			log.Printf("gallery_upload: could not find gallery_images collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(galleryCol)
		record.Set("title", strings.TrimSpace(e.Request.FormValue("title")))
		record.Set("image", file)
		if roomID := e.Request.FormValue("room"); roomID != "" {
			record.Set("room", roomID)
		}

		if err := app.Save(record); err != nil {
			log.Printf("gallery_upload: could not save image: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save the image. Please try again.")
		}

		SetToast(e, "success", "Image uploaded")
		return redirect(e, "/gallery")
	}
}
