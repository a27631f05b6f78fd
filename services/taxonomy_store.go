package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// LoadTaxonomy reads every room type tree from the room_types collection in
// authored order. Invalid trees abort the load; the selection flow must
// never see an unvalidated tree.
func LoadTaxonomy(app core.App) ([]RoomType, error) {
	records, err := app.FindRecordsByFilter("room_types", "id != ''", "sort_order", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}

	taxonomy := make([]RoomType, 0, len(records))
	for _, rec := range records {
		rt, err := ParseRoomType(rec.GetString("name"), []byte(rec.GetString("products")))
		if err != nil {
			return nil, err
		}
		taxonomy = append(taxonomy, rt)
	}
	return taxonomy, nil
}

// FindRoomType loads a single room type tree by name.
func FindRoomType(app core.App, name string) (RoomType, error) {
	records, err := app.FindRecordsByFilter(
		"room_types",
		"name = {:name}",
		"", 1, 0,
		map[string]any{"name": name},
	)
	if err != nil || len(records) == 0 {
		return RoomType{}, fmt.Errorf("room type %q not found", name)
	}
	return ParseRoomType(name, []byte(records[0].GetString("products")))
}
