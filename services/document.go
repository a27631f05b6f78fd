package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// BuildQuotationDocument assembles the renderer input from the persisted
// quotation, its client and the products of its linked rooms.
func BuildQuotationDocument(app core.App, quotationID string) (QuotationDocument, error) {
	quotation, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return QuotationDocument{}, fmt.Errorf("quotation not found: %w", err)
	}

	client, err := app.FindRecordById("clients", quotation.GetString("client"))
	if err != nil {
		return QuotationDocument{}, fmt.Errorf("client not found: %w", err)
	}

	rooms, err := QuotationRooms(app, quotationID)
	if err != nil {
		return QuotationDocument{}, err
	}

	doc := QuotationDocument{
		Number:        quotation.GetString("quotation_number"),
		ClientName:    client.GetString("name"),
		ClientContact: client.GetString("contact_number"),
		ClientEmail:   client.GetString("email"),
		ClientAddress: client.GetString("address"),
		TotalPrice:    quotation.GetFloat("total_price"),
		CreatedDate:   quotation.GetDateTime("created").Time().Format("02 Jan 2006"),
	}

	roomTypeByID := make(map[string]string, len(rooms))
	roomIDs := make([]string, 0, len(rooms))
	for _, room := range rooms {
		roomTypeByID[room.Id] = room.GetString("room_type")
		roomIDs = append(roomIDs, room.Id)
	}

	products, err := RoomProducts(app, roomIDs)
	if err != nil {
		return QuotationDocument{}, err
	}
	for _, p := range products {
		doc.Items = append(doc.Items, DocumentLineItem{
			RoomType:    roomTypeByID[p.GetString("room")],
			Name:        p.GetString("name"),
			Description: p.GetString("description"),
			Quantity:    p.GetFloat("quantity"),
			UnitType:    p.GetString("unit_type"),
			Price:       p.GetFloat("price"),
			Wages:       p.GetFloat("wages"),
		})
	}

	return doc, nil
}
