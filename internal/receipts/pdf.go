package receipts

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer lays the receipt out as a single-page PDF.
type PDFRenderer struct{}

func (r *PDFRenderer) Extension() string { return ".pdf" }

func (r *PDFRenderer) Render(doc Document, path string) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	// badge + title
	pdf.SetFillColor(139, 92, 246)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(16, 14, "EE", "1", 0, "CM", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 14, "  ERS 220 Component Reservation", "", 1, "LM", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, "COMPONENT COMPASS", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, "Reservations", "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	details := [][2]string{
		{"Student:", doc.StudentName},
		{"Email:", doc.StudentEmail},
		{"Reservation Date:", doc.ReservationDate},
		{"Collection Deadline:", doc.CollectionDeadline},
	}
	for _, row := range details {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 6, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Collection Instructions", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5,
		"Please collect your reserved components within 3 days from the respective stores. "+
			"Bring this reservation confirmation and your student ID.", "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Reserved Components", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(80, 8, "Component Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Store", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range doc.Lines {
		pdf.CellFormat(80, 7, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, line.Store, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, "$"+line.Price.StringFixed(2), "1", 1, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(211, 211, 211)
	pdf.CellFormat(80, 8, "", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Total Cost:", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "$"+doc.Total.StringFixed(2), "1", 1, "L", true, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(128, 0, 128)
	pdf.MultiCell(0, 6,
		"Good luck with your practical! We're excited to see what you'll build with these components.",
		"", "C", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(255, 0, 0)
	pdf.MultiCell(0, 5,
		"Note: Components are reserved for 3 days only. Uncollected items will be released back to general stock.",
		"", "C", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
