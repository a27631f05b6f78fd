package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"designdesk/services"
)

// DefaultTaxonomy is the room type tree installed on first boot. Entries are
// data, not code: the owner edits them later from Settings > Manage Room
// Types, so the seed only runs against an empty room_types collection.
func DefaultTaxonomy() []services.RoomType {
	sqft := []string{"Sq.ft"}
	nos := []string{"Nos"}
	rft := []string{"R.ft"}

	return []services.RoomType{
		{
			Name: "Kitchen",
			Products: []services.ProductType{
				{
					Name: "Counter Top Bottom",
					SubProducts: []services.ProductType{
						{
							Name: "Front Door",
							SubProducts: []services.ProductType{
								{Name: "Single Sheet", DefaultPrice: 50, DefaultWages: 10, Units: sqft},
								{Name: "Double Sheet", DefaultPrice: 80, DefaultWages: 15, Units: sqft},
							},
						},
						{Name: "Carcass", DefaultPrice: 45, DefaultWages: 12, Units: sqft},
						{Name: "Shutters", DefaultPrice: 60, DefaultWages: 14, Units: sqft},
					},
				},
				{
					Name: "Counter Top Loft",
					SubProducts: []services.ProductType{
						{Name: "Single Sheet", DefaultPrice: 48, DefaultWages: 10, Units: sqft},
						{Name: "Double Sheet", DefaultPrice: 75, DefaultWages: 14, Units: sqft},
					},
				},
				{Name: "Chimney Installation", DefaultPrice: 1500, DefaultWages: 300, Units: nos},
				{Name: "Handles", DefaultPrice: 150, DefaultWages: 20, Units: nos},
				{Name: "Skirting", DefaultPrice: 35, DefaultWages: 8, Units: rft},
			},
		},
		{
			Name: "Bedroom",
			Products: []services.ProductType{
				{
					Name: "Wardrobe",
					SubProducts: []services.ProductType{
						{Name: "Sliding Door", DefaultPrice: 95, DefaultWages: 18, Units: sqft},
						{Name: "Hinged Door", DefaultPrice: 85, DefaultWages: 16, Units: sqft},
						{Name: "Loft", DefaultPrice: 55, DefaultWages: 12, Units: sqft},
					},
				},
				{Name: "Bed Back Panelling", DefaultPrice: 70, DefaultWages: 15, Units: sqft},
				{Name: "Study Table", DefaultPrice: 4500, DefaultWages: 800, Units: nos},
			},
		},
		{
			Name: "Living Room",
			Products: []services.ProductType{
				{Name: "TV Unit", DefaultPrice: 90, DefaultWages: 18, Units: sqft},
				{Name: "False Ceiling", DefaultPrice: 65, DefaultWages: 20, Units: sqft},
				{Name: "Wall Panelling", DefaultPrice: 75, DefaultWages: 15, Units: sqft},
				{Name: "Crockery Unit", DefaultPrice: 85, DefaultWages: 16, Units: sqft},
			},
		},
		{
			Name: "Bathroom",
			Products: []services.ProductType{
				{Name: "Vanity Unit", DefaultPrice: 95, DefaultWages: 20, Units: sqft},
				{Name: "Mirror Cabinet", DefaultPrice: 2500, DefaultWages: 400, Units: nos},
			},
		},
	}
}

// Seed installs the default taxonomy when room_types is empty. It is safe
// to call on every startup.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("room_types")
	if err != nil {
		return fmt.Errorf("room_types collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("list room_types: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i, rt := range DefaultTaxonomy() {
		if err := rt.Validate(); err != nil {
			return fmt.Errorf("seed taxonomy: %w", err)
		}
		encoded, err := services.EncodeProducts(rt.Products)
		if err != nil {
			return fmt.Errorf("seed taxonomy %q: %w", rt.Name, err)
		}

		record := core.NewRecord(col)
		record.Set("name", rt.Name)
		record.Set("products", encoded)
		record.Set("sort_order", i+1)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("save room type %q: %w", rt.Name, err)
		}
	}

	return nil
}
