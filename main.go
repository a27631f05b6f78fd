package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/collections"
	"designdesk/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateRoomAreas(app); err != nil {
			log.Printf("Warning: room area migration failed: %v", err)
		}
		return se.Next()
	})

	// Serve static files from ./static
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve the signed-in user and role for every request
		se.Router.BindFunc(handlers.LoadUserMiddleware(app))

		// ── Clients ──────────────────────────────────────────────
		se.Router.GET("/clients", handlers.HandleClientList(app))
		se.Router.GET("/clients/new", handlers.HandleClientNew(app))
		se.Router.POST("/clients", handlers.HandleClientCreate(app))
		se.Router.GET("/clients/{id}/edit", handlers.HandleClientEdit(app))
		se.Router.POST("/clients/{id}", handlers.HandleClientUpdate(app))
		se.Router.DELETE("/clients/{id}", handlers.RequireOwner(handlers.HandleClientDelete(app)))
		se.Router.GET("/clients/{id}", handlers.HandleClientView(app))

		// ── Rooms (client-scoped creation, global view) ──────────
		se.Router.GET("/clients/{id}/rooms/new", handlers.HandleRoomNew(app))
		se.Router.POST("/clients/{id}/rooms", handlers.HandleRoomCreate(app))
		se.Router.GET("/rooms/{id}", handlers.HandleRoomView(app))
		se.Router.PATCH("/rooms/{id}/status", handlers.HandleRoomStatusUpdate(app))

		// ── Quotations ───────────────────────────────────────────
		se.Router.GET("/clients/{id}/quotations/new", handlers.HandleQuotationPicker(app))
		se.Router.POST("/clients/{id}/quotations/preview", handlers.HandleQuotationPreview(app))
		se.Router.POST("/clients/{id}/quotations", handlers.HandleQuotationSubmit(app))
		se.Router.PATCH("/products/{id}", handlers.HandleProductUpdate(app))

		se.Router.GET("/quotations", handlers.HandleQuotationList(app))
		se.Router.GET("/quotations/{id}/html", handlers.HandleQuotationHTML(app))
		se.Router.GET("/quotations/{id}/pdf", handlers.HandleQuotationPDF(app))
		se.Router.GET("/quotations/{id}/excel", handlers.HandleQuotationExcel(app))
		se.Router.POST("/quotations/{id}/assign", handlers.RequireOwner(handlers.HandleQuotationAssign(app)))
		se.Router.GET("/quotations/{id}", handlers.HandleQuotationView(app))

		// ── Workers ──────────────────────────────────────────────
		se.Router.GET("/workers", handlers.HandleWorkerList(app))
		se.Router.GET("/workers/new", handlers.RequireOwner(handlers.HandleWorkerNew(app)))
		se.Router.POST("/workers", handlers.RequireOwner(handlers.HandleWorkerCreate(app)))
		se.Router.DELETE("/workers/{id}", handlers.RequireOwner(handlers.HandleWorkerDelete(app)))

		// Worker job dashboard
		se.Router.GET("/dashboard", handlers.HandleWorkerDashboard(app))

		// ── Vendors & raw materials ──────────────────────────────
		se.Router.GET("/vendors", handlers.HandleVendorList(app))
		se.Router.GET("/vendors/new", handlers.RequireOwner(handlers.HandleVendorNew(app)))
		se.Router.POST("/vendors", handlers.RequireOwner(handlers.HandleVendorCreate(app)))
		se.Router.DELETE("/vendors/{id}", handlers.RequireOwner(handlers.HandleVendorDelete(app)))

		se.Router.GET("/raw-materials", handlers.HandleRawMaterialList(app))
		se.Router.POST("/raw-materials", handlers.RequireOwner(handlers.HandleRawMaterialCreate(app)))
		se.Router.DELETE("/raw-materials/{id}", handlers.RequireOwner(handlers.HandleRawMaterialDelete(app)))

		// ── Purchase orders ──────────────────────────────────────
		se.Router.GET("/purchase-orders", handlers.HandlePOList(app))
		se.Router.GET("/purchase-orders/new", handlers.RequireOwner(handlers.HandlePONew(app)))
		se.Router.POST("/purchase-orders", handlers.RequireOwner(handlers.HandlePOCreate(app)))
		se.Router.POST("/purchase-orders/{id}/items", handlers.RequireOwner(handlers.HandlePOLineItemAdd(app)))
		se.Router.DELETE("/purchase-orders/{id}/items/{itemId}", handlers.RequireOwner(handlers.HandlePOLineItemDelete(app)))
		se.Router.PATCH("/purchase-orders/{id}/status", handlers.RequireOwner(handlers.HandlePOStatusUpdate(app)))
		se.Router.GET("/purchase-orders/{id}", handlers.HandlePOView(app))

		// ── Leads ────────────────────────────────────────────────
		se.Router.GET("/leads", handlers.HandleLeadList(app))
		se.Router.POST("/leads", handlers.HandleLeadCreate(app))
		se.Router.PATCH("/leads/{id}/status", handlers.HandleLeadStatusUpdate(app))
		se.Router.DELETE("/leads/{id}", handlers.RequireOwner(handlers.HandleLeadDelete(app)))

		// ── Gallery ──────────────────────────────────────────────
		se.Router.GET("/gallery", handlers.HandleGallery(app))
		se.Router.POST("/gallery", handlers.HandleGalleryUpload(app))

		// ── Room type settings ───────────────────────────────────
		se.Router.GET("/settings/room-types", handlers.RequireOwner(handlers.HandleRoomTypeSettings(app)))
		se.Router.POST("/settings/room-types", handlers.RequireOwner(handlers.HandleRoomTypeCreate(app)))
		se.Router.GET("/settings/room-types/{id}", handlers.RequireOwner(handlers.HandleRoomTypeEdit(app)))
		se.Router.POST("/settings/room-types/{id}", handlers.RequireOwner(handlers.HandleRoomTypeUpdate(app)))

		// Redirect home to the client list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/clients")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
