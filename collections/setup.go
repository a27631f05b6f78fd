// Package collections creates and seeds the PocketBase collections backing
// the app: clients, rooms, measurements, products, quotations and the
// procurement and gallery side tables.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/services"
)

// Setup programmatically creates/ensures every collection exists.
func Setup(app *pocketbase.PocketBase) {
	usersCol, err := app.FindCollectionByNameOrId("users")
	if err != nil {
		log.Fatalf("users auth collection not found: %v", err)
	}
	ensureUserRoleField(app, usersCol)

	roomStatusValues := make([]string, len(services.RoomStatuses))
	for i, st := range services.RoomStatuses {
		roomStatusValues[i] = string(st)
	}
	quotationStatusValues := make([]string, len(services.QuotationStatuses))
	for i, st := range services.QuotationStatuses {
		quotationStatusValues[i] = string(st)
	}

	clients := ensureCollection(app, "clients", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "owner",
			CollectionId: usersCol.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_number"})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	rooms := ensureCollection(app, "rooms", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "client",
			Required:      true,
			CollectionId:  clients.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "room_type", Required: true})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    roomStatusValues,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "total_sq_ft"})
		c.Fields.Add(&core.FileField{
			Name:      "ref_images",
			MaxSelect: 6,
			MaxSize:   10 << 20,
			MimeTypes: []string{"image/jpeg", "image/png", "image/webp"},
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "measurements", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "room",
			Required:      true,
			CollectionId:  rooms.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "length_value", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "length_unit",
			Required:  true,
			Values:    services.MeasurementUnits,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "width_value", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "width_unit",
			Required:  true,
			Values:    services.MeasurementUnits,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "converted_sq_ft"})
	})

	ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "room",
			Required:      true,
			CollectionId:  rooms.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "product_category", Required: true})
		c.Fields.Add(&core.TextField{Name: "product_subcategory"})
		c.Fields.Add(&core.NumberField{Name: "quantity", Required: true, Min: floatPtr(0.000001)})
		c.Fields.Add(&core.TextField{Name: "unit_type"})
		c.Fields.Add(&core.NumberField{Name: "price"})
		c.Fields.Add(&core.NumberField{Name: "default_price"})
		c.Fields.Add(&core.NumberField{Name: "wages"})
		c.Fields.Add(&core.NumberField{Name: "default_wages"})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.NumberField{Name: "length_value"})
		c.Fields.Add(&core.TextField{Name: "length_unit"})
		c.Fields.Add(&core.NumberField{Name: "width_value"})
		c.Fields.Add(&core.TextField{Name: "width_unit"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	workers := ensureCollection(app, "workers", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "user",
			CollectionId: usersCol.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "client",
			Required:      true,
			CollectionId:  clients.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "quotation_number", Required: true})
		c.Fields.Add(&core.NumberField{Name: "total_price"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    quotationStatusValues,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "assigned_worker",
			CollectionId: workers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.FileField{
			Name:      "pdf_file",
			MaxSelect: 1,
			MaxSize:   20 << 20,
		})
		c.Fields.Add(&core.FileField{
			Name:      "excel_file",
			MaxSelect: 1,
			MaxSize:   20 << 20,
		})
		c.Fields.Add(&core.TextField{Name: "pdf_url"})
		c.Fields.Add(&core.TextField{Name: "excel_url"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotation_rooms", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "room",
			Required:     true,
			CollectionId: rooms.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "price_per_sq_ft"})
		c.Fields.Add(&core.NumberField{Name: "room_total_price"})
	})

	vendors := ensureCollection(app, "vendors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_name"})
		c.Fields.Add(&core.TextField{Name: "phone"})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.TextField{Name: "gstin"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	rawMaterials := ensureCollection(app, "raw_materials", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit"})
		c.Fields.Add(&core.NumberField{Name: "price"})
		c.Fields.Add(&core.RelationField{
			Name:         "vendor",
			CollectionId: vendors.Id,
			MaxSelect:    1,
		})
	})

	purchasedOrders := ensureCollection(app, "purchased_orders", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "vendor",
			Required:     true,
			CollectionId: vendors.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "po_number", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"draft", "ordered", "received"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "total_amount"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "po_line_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "purchased_order",
			Required:      true,
			CollectionId:  purchasedOrders.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "raw_material",
			CollectionId: rawMaterials.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "qty", Required: true})
		c.Fields.Add(&core.TextField{Name: "unit"})
		c.Fields.Add(&core.NumberField{Name: "rate"})
		c.Fields.Add(&core.NumberField{Name: "amount"})
	})

	ensureCollection(app, "leads", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_number"})
		c.Fields.Add(&core.EmailField{Name: "email"})
		c.Fields.Add(&core.TextField{Name: "source"})
		c.Fields.Add(&core.TextField{Name: "notes"})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"new", "contacted", "converted", "dropped"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "room_types", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.JSONField{Name: "products", MaxSize: 1 << 20})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
	})

	ensureCollection(app, "gallery_images", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "title"})
		c.Fields.Add(&core.FileField{
			Name:      "image",
			Required:  true,
			MaxSelect: 1,
			MaxSize:   10 << 20,
			MimeTypes: []string{"image/jpeg", "image/png", "image/webp"},
		})
		c.Fields.Add(&core.RelationField{
			Name:         "room",
			CollectionId: rooms.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureUserRoleField adds the role select field to the users auth
// collection if it is not there yet.
func ensureUserRoleField(app *pocketbase.PocketBase, usersCol *core.Collection) {
	if usersCol.Fields.GetByName("role") != nil {
		return
	}

	roleValues := make([]string, len(services.Roles))
	for i, r := range services.Roles {
		roleValues[i] = string(r)
	}
	usersCol.Fields.Add(&core.SelectField{
		Name:      "role",
		Values:    roleValues,
		MaxSelect: 1,
	})

	if err := app.Save(usersCol); err != nil {
		log.Fatalf("Failed to add role field to users: %v", err)
	}
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

func floatPtr(v float64) *float64 {
	return &v
}
