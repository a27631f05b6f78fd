package services

// TaxRatePercent is the GST rate applied to every quotation document.
// Kept as a single constant rather than per-tenant configuration.
const TaxRatePercent = 18.0

// QuotationValidityDays is how long a rendered quotation stays open for
// acceptance, counted from the render date.
const QuotationValidityDays = 30

// LineItemForTotals carries the pricing fields of one product line item.
type LineItemForTotals struct {
	Quantity float64
	Price    float64
	Wages    float64
}

// QuotationTotal sums the line item prices into the quotation total.
// The total is a snapshot taken at submission time; later product edits do
// not flow back into an already persisted quotation.
func QuotationTotal(items []LineItemForTotals) float64 {
	var total float64
	for _, item := range items {
		total += item.Price
	}
	return total
}

// LineRowTotal is the displayed row total of one line item.
func LineRowTotal(quantity, price float64) float64 {
	return quantity * price
}

// DocumentTotals is the tax breakdown printed on a quotation document.
type DocumentTotals struct {
	Subtotal   float64
	TaxAmount  float64
	GrandTotal float64
}

// CalcDocumentTotals applies the fixed GST rate to a quotation subtotal.
func CalcDocumentTotals(subtotal float64) DocumentTotals {
	tax := subtotal * TaxRatePercent / 100
	return DocumentTotals{
		Subtotal:   subtotal,
		TaxAmount:  tax,
		GrandTotal: subtotal + tax,
	}
}
