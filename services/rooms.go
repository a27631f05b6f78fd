package services

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"
)

// LineItemInput is one product selection made during room capture.
type LineItemInput struct {
	SelectionPath []string
	Quantity      float64
	UnitType      string
	Price         float64 // 0 means "use the taxonomy default"
	Wages         float64 // 0 means "use the taxonomy default"
	Description   string
	LengthValue   float64
	LengthUnit    string
	WidthValue    float64
	WidthUnit     string
}

// CreateRoomInput carries everything the room capture screen submits.
type CreateRoomInput struct {
	ClientID    string
	RoomType    RoomType
	Description string

	// Dimensions. HasDimensions is false when either raw value failed to
	// parse; the area is then absent, never zero.
	Length        float64
	LengthUnit    string
	Width         float64
	WidthUnit     string
	HasDimensions bool

	Items  []LineItemInput
	Images []*filesystem.File
}

// CreateRoom persists a room with its measurement, product line items and
// reference images as one transaction. A failure in any step rolls back the
// whole aggregate instead of leaving an orphaned room behind.
func CreateRoom(app core.App, input CreateRoomInput) (*core.Record, error) {
	if input.ClientID == "" {
		return nil, fmt.Errorf("create room: client is required")
	}
	if _, err := app.FindRecordById("clients", input.ClientID); err != nil {
		return nil, fmt.Errorf("create room: client not found: %w", err)
	}

	// Resolve every selection against the taxonomy before writing anything.
	resolved := make([]resolvedLineItem, 0, len(input.Items))
	for _, item := range input.Items {
		r, err := resolveLineItem(input.RoomType, item)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}

	var roomRecord *core.Record
	err := app.RunInTransaction(func(txApp core.App) error {
		roomsCol, err := txApp.FindCollectionByNameOrId("rooms")
		if err != nil {
			return fmt.Errorf("rooms collection: %w", err)
		}

		roomRecord = core.NewRecord(roomsCol)
		roomRecord.Set("client", input.ClientID)
		roomRecord.Set("room_type", input.RoomType.Name)
		roomRecord.Set("description", input.Description)
		roomRecord.Set("status", string(RoomNotActive))

		var area float64
		var areaOK bool
		if input.HasDimensions {
			area, areaOK = Area(input.Length, input.LengthUnit, input.Width, input.WidthUnit)
		}
		if areaOK {
			roomRecord.Set("total_sq_ft", area)
		}
		if len(input.Images) > 0 {
			roomRecord.Set("ref_images", input.Images)
		}

		if err := txApp.Save(roomRecord); err != nil {
			return fmt.Errorf("save room: %w", err)
		}

		if input.HasDimensions {
			measurementsCol, err := txApp.FindCollectionByNameOrId("measurements")
			if err != nil {
				return fmt.Errorf("measurements collection: %w", err)
			}
			m := core.NewRecord(measurementsCol)
			m.Set("room", roomRecord.Id)
			m.Set("length_value", input.Length)
			m.Set("length_unit", input.LengthUnit)
			m.Set("width_value", input.Width)
			m.Set("width_unit", input.WidthUnit)
			if areaOK {
				m.Set("converted_sq_ft", area)
			}
			if err := txApp.Save(m); err != nil {
				return fmt.Errorf("save measurement: %w", err)
			}
		}

		productsCol, err := txApp.FindCollectionByNameOrId("products")
		if err != nil {
			return fmt.Errorf("products collection: %w", err)
		}
		for _, r := range resolved {
			p := core.NewRecord(productsCol)
			p.Set("room", roomRecord.Id)
			p.Set("name", r.name)
			p.Set("product_category", r.category)
			p.Set("product_subcategory", r.subcategory)
			p.Set("quantity", r.input.Quantity)
			p.Set("unit_type", r.unitType)
			p.Set("price", r.price)
			p.Set("default_price", r.defaultPrice)
			p.Set("wages", r.wages)
			p.Set("default_wages", r.defaultWages)
			p.Set("description", r.input.Description)
			if r.input.LengthValue > 0 {
				p.Set("length_value", r.input.LengthValue)
				p.Set("length_unit", r.input.LengthUnit)
			}
			if r.input.WidthValue > 0 {
				p.Set("width_value", r.input.WidthValue)
				p.Set("width_unit", r.input.WidthUnit)
			}
			if err := txApp.Save(p); err != nil {
				return fmt.Errorf("save product %q: %w", r.name, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return roomRecord, nil
}

// UpdateMeasurement replaces a room's dimensions and recomputes both the
// measurement's converted_sq_ft and the room's total_sq_ft in one
// transaction. converted_sq_ft is always derived, never edited directly.
func UpdateMeasurement(app core.App, roomID string, length float64, lengthUnit string, width float64, widthUnit string) error {
	area, ok := Area(length, lengthUnit, width, widthUnit)
	if !ok {
		return fmt.Errorf("update measurement: dimensions are not numeric")
	}

	return app.RunInTransaction(func(txApp core.App) error {
		room, err := txApp.FindRecordById("rooms", roomID)
		if err != nil {
			return fmt.Errorf("room not found: %w", err)
		}

		measurements, err := txApp.FindRecordsByFilter(
			"measurements", "room = {:roomId}", "", 1, 0,
			map[string]any{"roomId": roomID},
		)
		if err != nil {
			return fmt.Errorf("load measurement: %w", err)
		}

		var m *core.Record
		if len(measurements) > 0 {
			m = measurements[0]
		} else {
			col, err := txApp.FindCollectionByNameOrId("measurements")
			if err != nil {
				return fmt.Errorf("measurements collection: %w", err)
			}
			m = core.NewRecord(col)
			m.Set("room", roomID)
		}

		m.Set("length_value", length)
		m.Set("length_unit", lengthUnit)
		m.Set("width_value", width)
		m.Set("width_unit", widthUnit)
		m.Set("converted_sq_ft", area)
		if err := txApp.Save(m); err != nil {
			return fmt.Errorf("save measurement: %w", err)
		}

		room.Set("total_sq_ft", area)
		if err := txApp.Save(room); err != nil {
			return fmt.Errorf("save room: %w", err)
		}
		return nil
	})
}

// RoomImageURLs returns the public file URLs of a room's reference images.
func RoomImageURLs(room *core.Record) []string {
	filenames := room.GetStringSlice("ref_images")
	urls := make([]string, 0, len(filenames))
	for _, name := range filenames {
		urls = append(urls, fmt.Sprintf("/api/files/%s/%s/%s", room.Collection().Name, room.Id, name))
	}
	return urls
}

type resolvedLineItem struct {
	input        LineItemInput
	name         string
	category     string
	subcategory  string
	unitType     string
	price        float64
	defaultPrice float64
	wages        float64
	defaultWages float64
}

// resolveLineItem validates one selection against the taxonomy and fills in
// defaults from the leaf.
func resolveLineItem(rt RoomType, item LineItemInput) (resolvedLineItem, error) {
	leaf, err := rt.FindByPath(item.SelectionPath)
	if err != nil {
		return resolvedLineItem{}, err
	}

	if item.Quantity <= 0 {
		return resolvedLineItem{}, fmt.Errorf("line item %q: quantity must be positive",
			LineItemName(rt.Name, item.SelectionPath))
	}

	unitType := strings.TrimSpace(item.UnitType)
	if len(leaf.Units) > 0 {
		allowed := false
		for _, u := range leaf.Units {
			if u == unitType {
				allowed = true
				break
			}
		}
		if !allowed {
			return resolvedLineItem{}, fmt.Errorf("line item %q: unit %q is not one of %v",
				LineItemName(rt.Name, item.SelectionPath), unitType, leaf.Units)
		}
	} else if unitType == "" {
		// A leaf without authored units needs a manually typed one.
		return resolvedLineItem{}, fmt.Errorf("line item %q: a unit is required",
			LineItemName(rt.Name, item.SelectionPath))
	}

	price := item.Price
	if price == 0 {
		price = leaf.DefaultPrice
	}
	wages := item.Wages
	if wages == 0 {
		wages = leaf.DefaultWages
	}

	return resolvedLineItem{
		input:        item,
		name:         LineItemName(rt.Name, item.SelectionPath),
		category:     CategoryOf(item.SelectionPath),
		subcategory:  SubcategoryOf(item.SelectionPath),
		unitType:     unitType,
		price:        price,
		defaultPrice: leaf.DefaultPrice,
		wages:        wages,
		defaultWages: leaf.DefaultWages,
	}, nil
}
