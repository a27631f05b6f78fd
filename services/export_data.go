package services

import "strconv"

// QuotationExportRow is one line item row on an exported quotation.
type QuotationExportRow struct {
	Index       string
	Name        string
	RoomType    string
	Description string
	Qty         float64
	UnitType    string
	Price       float64
	Amount      float64 // Qty * Price
}

// QuotationExportData holds everything the PDF and Excel exporters need.
type QuotationExportData struct {
	Number      string
	ClientName  string
	CreatedDate string
	ValidUntil  string
	Rows        []QuotationExportRow
	Totals      DocumentTotals
}

// BuildQuotationExportData maps a quotation document into export rows with
// the tax breakdown applied.
func BuildQuotationExportData(doc QuotationDocument, validUntil string) QuotationExportData {
	data := QuotationExportData{
		Number:      doc.Number,
		ClientName:  doc.ClientName,
		CreatedDate: doc.CreatedDate,
		ValidUntil:  validUntil,
		Totals:      CalcDocumentTotals(doc.TotalPrice),
	}
	for i, item := range doc.Items {
		data.Rows = append(data.Rows, QuotationExportRow{
			Index:       strconv.Itoa(i + 1),
			Name:        item.Name,
			RoomType:    item.RoomType,
			Description: item.Description,
			Qty:         item.Quantity,
			UnitType:    item.UnitType,
			Price:       item.Price,
			Amount:      LineRowTotal(item.Quantity, item.Price),
		})
	}
	return data
}
