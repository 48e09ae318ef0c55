package reports

import (
	"bytes"
	"fmt"
	"strings"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/usecase/interfaces"

	"github.com/phpdave11/gofpdf"
)

// PMReportRenderer renders a completed preventive-maintenance checklist into
// the report PDF attached to the customer notification.

type PMReportRenderer struct{}

var _ interfaces.IReportRenderer = (*PMReportRenderer)(nil)

func NewPMReportRenderer() *PMReportRenderer {
	return &PMReportRenderer{}
}

func (r *PMReportRenderer) RenderPMReport(record entities.MaintenanceRecord, result entities.SubmissionResult, engineerName string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 14)
	pdf.SetTitle("Preventive Maintenance Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "Preventive Maintenance Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(60, 60, 60)
	pdf.CellFormat(0, 6, fmt.Sprintf("Engineer: %s (%s)", safeText(engineerName), record.PMEngineerCode), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Done date: %s", record.PMDoneDate), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	sectionTitle(pdf, "1. Equipment")
	kv(pdf, "Part Number", record.PartNumber)
	kv(pdf, "Serial Number", record.SerialNumber)
	kv(pdf, "Customer Code", record.CustomerCode)
	kv(pdf, "PM Due Month", record.PMDueMonth)
	kv(pdf, "Document Ref", joinRef(record.DocumentChlNo, record.DocumentRevNo))
	kv(pdf, "Format Ref", joinRef(record.FormatChlNo, record.FormatRevNo))
	pdf.Ln(2)

	sectionTitle(pdf, "2. Checklist")
	for i, item := range result.Items {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(20, 20, 20)
		pdf.MultiCell(0, 5, fmt.Sprintf("%d. %s", i+1, safeText(item.Checkpoint)), "", "L", false)
		pdf.SetFont("Helvetica", "", 9)
		if item.IsNegative() || item.Result == entities.ResultFailed {
			pdf.SetTextColor(160, 30, 30)
		} else {
			pdf.SetTextColor(40, 40, 40)
		}
		pdf.MultiCell(0, 4.5, fmt.Sprintf("Result: %s", safeText(item.Result)), "", "L", false)
		if strings.TrimSpace(item.Remark) != "" {
			pdf.SetTextColor(40, 40, 40)
			pdf.MultiCell(0, 4.5, fmt.Sprintf("Remark: %s", safeText(item.Remark)), "", "L", false)
		}
		pdf.Ln(1)
	}
	pdf.Ln(2)

	if strings.TrimSpace(result.GlobalRemark) != "" {
		sectionTitle(pdf, "3. Overall Remark")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(30, 30, 30)
		pdf.MultiCell(0, 5, safeText(result.GlobalRemark), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pdf.GetX(), pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(2)
}

func kv(pdf *gofpdf.Fpdf, key, value string) {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(30, 30, 30)
	pdf.CellFormat(36, 5.2, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(20, 20, 20)
	pdf.MultiCell(0, 5.2, safeText(value), "", "L", false)
}

func joinRef(chl, rev string) string {
	if strings.TrimSpace(chl) == "" {
		return ""
	}
	if strings.TrimSpace(rev) == "" {
		return chl
	}
	return chl + " rev " + rev
}

// safeText keeps the core Helvetica font happy: non-ASCII runes are replaced
// so generation never fails on odd input.
func safeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 32 && r <= 126 {
			b.WriteRune(r)
		} else {
			b.WriteRune('?')
		}
	}
	return b.String()
}
