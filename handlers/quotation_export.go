package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/filesystem"

	"designdesk/services"
)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// storeQuotationArtifact keeps the latest generated document on the
// quotation record and records its public file URL. The download still
// streams to the caller when persistence fails.
func storeQuotationArtifact(app *pocketbase.PocketBase, quotationID, fileField, urlField, filename string, data []byte) {
	quotation, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		log.Printf("quotation_export: quotation %s not found for artifact: %v", quotationID, err)
		return
	}
	file, err := filesystem.NewFileFromBytes(data, filename)
	if err != nil {
		log.Printf("quotation_export: artifact %s: %v", filename, err)
		return
	}
	quotation.Set(fileField, file)
	if err := app.Save(quotation); err != nil {
		log.Printf("quotation_export: store %s on %s: %v", fileField, quotationID, err)
		return
	}
	quotation.Set(urlField, fmt.Sprintf("/api/files/%s/%s/%s",
		quotation.Collection().Name, quotation.Id, quotation.GetString(fileField)))
	if err := app.Save(quotation); err != nil {
		log.Printf("quotation_export: record %s on %s: %v", urlField, quotationID, err)
	}
}

// HandleQuotationHTML renders the printable quotation document.
func HandleQuotationHTML(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		doc, err := services.BuildQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("quotation_html: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		return e.HTML(http.StatusOK, services.RenderQuotationHTML(doc, time.Now()))
	}
}

// HandleQuotationPDF generates and downloads the quotation as a PDF.
func HandleQuotationPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		doc, err := services.BuildQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("quotation_pdf: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		validUntil := time.Now().AddDate(0, 0, services.QuotationValidityDays).Format("02 Jan 2006")
		data := services.BuildQuotationExportData(doc, validUntil)

		pdfBytes, err := services.GenerateQuotationPDF(data)
		if err != nil {
			log.Printf("quotation_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(doc.Number))
		storeQuotationArtifact(app, quotationID, "pdf_file", "pdf_url", filename, pdfBytes)

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuotationExcel generates and downloads the quotation as an Excel file.
func HandleQuotationExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotationID := e.Request.PathValue("id")
		if quotationID == "" {
			return e.String(http.StatusBadRequest, "Missing quotation ID")
		}

		doc, err := services.BuildQuotationDocument(app, quotationID)
		if err != nil {
			log.Printf("quotation_excel: %v", err)
			return e.String(http.StatusNotFound, "Quotation not found")
		}

		validUntil := time.Now().AddDate(0, 0, services.QuotationValidityDays).Format("02 Jan 2006")
		data := services.BuildQuotationExportData(doc, validUntil)

		xlsxBytes, err := services.GenerateQuotationExcel(data)
		if err != nil {
			log.Printf("quotation_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(doc.Number))
		storeQuotationArtifact(app, quotationID, "excel_file", "excel_url", filename, xlsxBytes)

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
