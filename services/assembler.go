package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// EligibleRooms lists a client's rooms whose status still permits inclusion
// in a new quotation. Rooms already in a quotation or further along never
// appear here.
func EligibleRooms(app core.App, clientID string) ([]*core.Record, error) {
	rooms, err := app.FindRecordsByFilter(
		"rooms",
		"client = {:clientId}",
		"-created", 0, 0,
		map[string]any{"clientId": clientID},
	)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	var eligible []*core.Record
	for _, room := range rooms {
		status, ok := ParseRoomStatus(room.GetString("status"))
		if ok && status.EligibleForQuotation() {
			eligible = append(eligible, room)
		}
	}
	return eligible, nil
}

// RoomProducts loads every product belonging to the given rooms. Used both
// for the preview screen and for the submission total.
func RoomProducts(app core.App, roomIDs []string) ([]*core.Record, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}

	clauses := make([]string, len(roomIDs))
	params := make(map[string]any, len(roomIDs))
	for i, id := range roomIDs {
		key := fmt.Sprintf("room%d", i)
		clauses[i] = fmt.Sprintf("room = {:%s}", key)
		params[key] = id
	}

	products, err := app.FindRecordsByFilter(
		"products",
		strings.Join(clauses, " || "),
		"created", 0, 0,
		params,
	)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

// SubmitQuotation snapshots the selected rooms' products into a new
// quotation. The quotation row, its room links and the room status
// transitions are one transaction: either the whole submission lands or
// none of it does.
func SubmitQuotation(app core.App, clientID string, roomIDs []string, now time.Time) (*core.Record, error) {
	if len(roomIDs) == 0 {
		return nil, fmt.Errorf("submit quotation: at least one room is required")
	}
	if _, err := app.FindRecordById("clients", clientID); err != nil {
		return nil, fmt.Errorf("submit quotation: client not found: %w", err)
	}

	// Validate room ownership and eligibility up front.
	rooms := make([]*core.Record, 0, len(roomIDs))
	for _, id := range roomIDs {
		room, err := app.FindRecordById("rooms", id)
		if err != nil {
			return nil, fmt.Errorf("submit quotation: room %s not found: %w", id, err)
		}
		if room.GetString("client") != clientID {
			return nil, fmt.Errorf("submit quotation: room %s does not belong to this client", id)
		}
		status, ok := ParseRoomStatus(room.GetString("status"))
		if !ok || !status.EligibleForQuotation() {
			return nil, fmt.Errorf("submit quotation: room %s is not eligible (status %q)",
				id, room.GetString("status"))
		}
		rooms = append(rooms, room)
	}

	products, err := RoomProducts(app, roomIDs)
	if err != nil {
		return nil, err
	}

	// Total is a snapshot of current prices, including preview edits.
	items := make([]LineItemForTotals, 0, len(products))
	perRoomTotal := make(map[string]float64, len(roomIDs))
	for _, p := range products {
		items = append(items, LineItemForTotals{
			Quantity: p.GetFloat("quantity"),
			Price:    p.GetFloat("price"),
			Wages:    p.GetFloat("wages"),
		})
		perRoomTotal[p.GetString("room")] += p.GetFloat("price")
	}
	total := QuotationTotal(items)

	var quotation *core.Record
	err = app.RunInTransaction(func(txApp core.App) error {
		quotationsCol, err := txApp.FindCollectionByNameOrId("quotations")
		if err != nil {
			return fmt.Errorf("quotations collection: %w", err)
		}

		quotation = core.NewRecord(quotationsCol)
		quotation.Set("client", clientID)
		quotation.Set("quotation_number", GenerateQuotationNumber(txApp, now))
		quotation.Set("total_price", total)
		quotation.Set("status", string(QuotationPending))
		if err := txApp.Save(quotation); err != nil {
			return fmt.Errorf("save quotation: %w", err)
		}

		linksCol, err := txApp.FindCollectionByNameOrId("quotation_rooms")
		if err != nil {
			return fmt.Errorf("quotation_rooms collection: %w", err)
		}
		for _, room := range rooms {
			link := core.NewRecord(linksCol)
			link.Set("quotation", quotation.Id)
			link.Set("room", room.Id)

			roomTotal := perRoomTotal[room.Id]
			link.Set("room_total_price", roomTotal)
			if sqft := room.GetFloat("total_sq_ft"); sqft > 0 {
				link.Set("price_per_sq_ft", roomTotal/sqft)
			}
			if err := txApp.Save(link); err != nil {
				return fmt.Errorf("link room %s: %w", room.Id, err)
			}

			room.Set("status", string(RoomInQuotation))
			if err := txApp.Save(room); err != nil {
				return fmt.Errorf("transition room %s: %w", room.Id, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return quotation, nil
}
