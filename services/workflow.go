package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// UpdateRoomStatus moves a room to the next lifecycle state. Backward moves
// are rejected.
func UpdateRoomStatus(app core.App, roomID string, next RoomStatus) error {
	room, err := app.FindRecordById("rooms", roomID)
	if err != nil {
		return fmt.Errorf("room not found: %w", err)
	}

	current, ok := ParseRoomStatus(room.GetString("status"))
	if !ok {
		return fmt.Errorf("room %s has unknown status %q", roomID, room.GetString("status"))
	}
	if !current.CanTransition(next) {
		return fmt.Errorf("room cannot move from %q to %q", current, next)
	}

	room.Set("status", string(next))
	if err := app.Save(room); err != nil {
		return fmt.Errorf("save room: %w", err)
	}
	return nil
}

// AssignWorker sets a quotation's assigned worker and closes it so it
// surfaces on the worker dashboard. Re-assignment is last write wins.
func AssignWorker(app core.App, quotationID, workerID string) error {
	quotation, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return fmt.Errorf("quotation not found: %w", err)
	}
	if _, err := app.FindRecordById("workers", workerID); err != nil {
		return fmt.Errorf("worker not found: %w", err)
	}

	quotation.Set("assigned_worker", workerID)
	quotation.Set("status", string(QuotationClosed))
	if err := app.Save(quotation); err != nil {
		return fmt.Errorf("save quotation: %w", err)
	}
	return nil
}

// WorkerQuotations lists the closed quotations assigned to a worker.
func WorkerQuotations(app core.App, workerID string) ([]*core.Record, error) {
	quotations, err := app.FindRecordsByFilter(
		"quotations",
		"assigned_worker = {:workerId} && status = {:status}",
		"-created", 0, 0,
		map[string]any{"workerId": workerID, "status": string(QuotationClosed)},
	)
	if err != nil {
		return nil, fmt.Errorf("load worker quotations: %w", err)
	}
	return quotations, nil
}

// QuotationRooms loads the rooms linked to a quotation.
func QuotationRooms(app core.App, quotationID string) ([]*core.Record, error) {
	links, err := app.FindRecordsByFilter(
		"quotation_rooms",
		"quotation = {:quotationId}",
		"", 0, 0,
		map[string]any{"quotationId": quotationID},
	)
	if err != nil {
		return nil, fmt.Errorf("load quotation rooms: %w", err)
	}

	rooms := make([]*core.Record, 0, len(links))
	for _, link := range links {
		room, err := app.FindRecordById("rooms", link.GetString("room"))
		if err != nil {
			return nil, fmt.Errorf("load room %s: %w", link.GetString("room"), err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
