package app

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/askhookio/askhook/internal/answer"
	"github.com/askhookio/askhook/internal/ui"
)

// writeResultPDF renders a minimal PDF from an answered query: the question as
// heading, the answer as body text, clickable source links, and a small
// metadata footer. Intentionally simple, no rich layout.
func writeResultPDF(query string, res *answer.Response, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, query, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, res.Answer, "", "L", false)

	if len(res.Sources) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Sources", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for i, s := range res.Sources {
			pdf.Write(5, fmt.Sprintf("%d. ", i+1))
			target := ui.SafeURL(s.URL)
			if target == answer.PlaceholderURL {
				pdf.Write(5, s.Name)
			} else {
				pdf.WriteLinkString(5, s.Name, target)
			}
			pdf.Ln(6)
		}
	}

	if md := res.Metadata; md != nil {
		var parts []string
		if md.FileCount != nil {
			parts = append(parts, fmt.Sprintf("%d files searched", *md.FileCount))
		}
		if md.ProcessingTime != nil {
			parts = append(parts, fmt.Sprintf("answered in %.2fs", *md.ProcessingTime))
		}
		if md.Timestamp != "" {
			parts = append(parts, md.Timestamp)
		}
		if len(parts) > 0 {
			pdf.Ln(4)
			pdf.SetFont("Helvetica", "I", 9)
			pdf.MultiCell(0, 4, strings.Join(parts, " / "), "", "L", false)
		}
	}

	return pdf.OutputFileAndClose(outPath)
}
