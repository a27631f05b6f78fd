package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"designdesk/services"
)

// MigrateRoomAreas backfills rooms.total_sq_ft from their measurement rows
// and parks rooms without any measurement at Not Active. Rooms created
// before the measurement capture screen shipped have neither.
// Safe to call on every startup -- returns early if nothing to migrate.
func MigrateRoomAreas(app *pocketbase.PocketBase) error {
	roomsCol, err := app.FindCollectionByNameOrId("rooms")
	if err != nil {
		return fmt.Errorf("migrate: could not find rooms collection: %w", err)
	}

	rooms, err := app.FindRecordsByFilter(roomsCol, "total_sq_ft = 0 || total_sq_ft = null", "", 0, 0, nil)
	if err != nil {
		return fmt.Errorf("migrate: could not query rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil
	}

	migrated := 0
	for _, room := range rooms {
		measurements, err := app.FindRecordsByFilter(
			"measurements",
			"room = {:roomId}",
			"", 1, 0,
			map[string]any{"roomId": room.Id},
		)
		if err != nil || len(measurements) == 0 {
			// No qualifying measurements: the room stays parked.
			if room.GetString("status") == "" {
				room.Set("status", string(services.RoomNotActive))
				if err := app.Save(room); err != nil {
					log.Printf("migrate: failed to park room %s: %v\n", room.Id, err)
				}
			}
			continue
		}

		m := measurements[0]
		area, ok := services.Area(
			m.GetFloat("length_value"), m.GetString("length_unit"),
			m.GetFloat("width_value"), m.GetString("width_unit"),
		)
		if !ok {
			continue
		}

		m.Set("converted_sq_ft", area)
		if err := app.Save(m); err != nil {
			log.Printf("migrate: failed to update measurement %s: %v\n", m.Id, err)
			continue
		}

		room.Set("total_sq_ft", area)
		if err := app.Save(room); err != nil {
			log.Printf("migrate: failed to backfill room %s: %v\n", room.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: backfilled area for %d room(s).\n", migrated)
	}
	return nil
}
