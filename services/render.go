package services

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// DocumentLineItem is one priced row on a quotation document.
type DocumentLineItem struct {
	RoomType    string
	Name        string
	Description string
	Quantity    float64
	UnitType    string
	Price       float64
	Wages       float64
}

// QuotationDocument bundles everything the renderer needs. It is assembled
// from the persisted quotation, client and product rows before rendering.
type QuotationDocument struct {
	Number        string
	ClientName    string
	ClientContact string
	ClientEmail   string
	ClientAddress string
	TotalPrice    float64
	CreatedDate   string
	Items         []DocumentLineItem
}

// orNA substitutes "N/A" for missing optional fields on the document.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return html.EscapeString(s)
}

// RenderQuotationHTML renders a quotation into a self-contained HTML
// document suitable for PDF conversion or sharing. The only time-dependent
// output is the valid-until line derived from now; rendering the same
// inputs with a frozen clock is byte-identical.
func RenderQuotationHTML(doc QuotationDocument, now time.Time) string {
	totals := CalcDocumentTotals(doc.TotalPrice)
	validUntil := now.AddDate(0, 0, QuotationValidityDays)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>Quotation " + html.EscapeString(doc.Number) + "</title>\n")
	b.WriteString(`<style>
body { font-family: Arial, sans-serif; margin: 32px; color: #212529; }
h1 { font-size: 22px; margin-bottom: 4px; }
.meta { color: #555; font-size: 13px; margin-bottom: 20px; }
table { width: 100%; border-collapse: collapse; font-size: 13px; }
th { background: #212529; color: #fff; padding: 6px 8px; text-align: left; }
td { border-bottom: 1px solid #ddd; padding: 6px 8px; }
td.num, th.num { text-align: right; }
.totals td { border: none; font-weight: bold; padding: 4px 8px; }
.terms { margin-top: 28px; font-size: 12px; color: #555; }
</style>
</head>
<body>
`)

	b.WriteString("<h1>Quotation " + html.EscapeString(doc.Number) + "</h1>\n")
	b.WriteString("<div class=\"meta\">\n")
	b.WriteString("<div>Client: " + orNA(doc.ClientName) + "</div>\n")
	b.WriteString("<div>Contact: " + orNA(doc.ClientContact) + "</div>\n")
	b.WriteString("<div>Email: " + orNA(doc.ClientEmail) + "</div>\n")
	b.WriteString("<div>Address: " + orNA(doc.ClientAddress) + "</div>\n")
	b.WriteString("<div>Date: " + orNA(doc.CreatedDate) + "</div>\n")
	b.WriteString("<div>Valid until: " + validUntil.Format("02 Jan 2006") + "</div>\n")
	b.WriteString("</div>\n")

	b.WriteString("<table>\n<thead>\n<tr>")
	for _, h := range []string{"#", "Item", "Room", "Description", "Qty", "Unit", "Rate", "Amount"} {
		class := ""
		if h == "Qty" || h == "Rate" || h == "Amount" {
			class = " class=\"num\""
		}
		b.WriteString("<th" + class + ">" + h + "</th>")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for i, item := range doc.Items {
		qty := item.Quantity
		b.WriteString("<tr>")
		b.WriteString(fmt.Sprintf("<td>%d</td>", i+1))
		b.WriteString("<td>" + orNA(item.Name) + "</td>")
		b.WriteString("<td>" + orNA(item.RoomType) + "</td>")
		b.WriteString("<td>" + orNA(item.Description) + "</td>")
		b.WriteString(fmt.Sprintf("<td class=\"num\">%g</td>", qty))
		b.WriteString("<td>" + orNA(item.UnitType) + "</td>")
		b.WriteString("<td class=\"num\">" + FormatAmount(item.Price) + "</td>")
		b.WriteString("<td class=\"num\">" + FormatAmount(LineRowTotal(qty, item.Price)) + "</td>")
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")

	b.WriteString("<table class=\"totals\" style=\"margin-top:16px\">\n")
	b.WriteString("<tr><td>Subtotal</td><td class=\"num\">" + FormatAmount(totals.Subtotal) + "</td></tr>\n")
	b.WriteString(fmt.Sprintf("<tr><td>GST (%.0f%%)</td><td class=\"num\">%s</td></tr>\n",
		TaxRatePercent, FormatAmount(totals.TaxAmount)))
	b.WriteString("<tr><td>Grand Total</td><td class=\"num\">" + FormatAmount(totals.GrandTotal) + "</td></tr>\n")
	b.WriteString("</table>\n")

	b.WriteString(`<div class="terms">
<p>Terms &amp; Conditions</p>
<ol>
<li>Prices include materials and workmanship as itemised above.</li>
<li>50% advance on confirmation, balance on completion.</li>
<li>Any change in scope is quoted and billed separately.</li>
</ol>
</div>
</body>
</html>
`)

	return b.String()
}
