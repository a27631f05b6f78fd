package services

import (
	"fmt"
	"math"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotationPDF creates a PDF document for a quotation using
// maroto/v2. It returns the raw PDF bytes or an error.
func GenerateQuotationPDF(data QuotationExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuotationHeader(m, data)
	addQuotationTableHeader(m)
	for _, r := range data.Rows {
		addQuotationTableRow(m, r)
	}
	addQuotationSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the quotation number, client and dates.
func addQuotationHeader(m core.Maroto, data QuotationExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Quotation "+data.Number, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	meta := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	metaRight := meta
	metaRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Client: %s", data.ClientName), meta)),
			col.New(6).Add(text.New(fmt.Sprintf("Date: %s", data.CreatedDate), metaRight)),
		),
		row.New(8).Add(
			col.New(12).Add(text.New(fmt.Sprintf("Valid until: %s", data.ValidUntil), metaRight)),
		),
		row.New(4),
	)
}

// addQuotationTableHeader adds the column header row for the line item table.
func addQuotationTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Room", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Rate", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)
}

// addQuotationTableRow adds a single line item row.
func addQuotationTableRow(m core.Maroto, r QuotationExportRow) {
	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.Index, baseText)),
			col.New(4).Add(text.New(r.Name, leftText)),
			col.New(2).Add(text.New(r.RoomType, leftText)),
			col.New(1).Add(text.New(formatQty(r.Qty), rightText)),
			col.New(1).Add(text.New(r.UnitType, baseText)),
			col.New(1).Add(text.New(FormatINR(r.Price), rightText)),
			col.New(2).Add(text.New(FormatINR(r.Amount), rightText)),
		),
	)
}

// addQuotationSummary adds subtotal, GST and grand total rows.
func addQuotationSummary(m core.Maroto, data QuotationExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := labelStyle

	summary := []struct {
		label string
		value float64
	}{
		{"Subtotal", data.Totals.Subtotal},
		{fmt.Sprintf("GST (%.0f%%)", TaxRatePercent), data.Totals.TaxAmount},
		{"Grand Total", data.Totals.GrandTotal},
	}
	for _, s := range summary {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(s.label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatINR(s.value), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(
		row.New(6),
		row.New(6).Add(
			col.New(12).Add(
				text.New(AmountInWords(data.Totals.GrandTotal), props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)
}

// formatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
