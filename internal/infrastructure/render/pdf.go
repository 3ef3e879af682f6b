package render

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

// metaTimeFormat renders meeting start/end like "2024-09-29 12:21 PM".
const metaTimeFormat = "2006-01-02 03:04 PM"

// PDFRenderer writes report documents as A4 PDF files.
type PDFRenderer struct {
	style Style
}

// NewPDFRenderer constructs a PDF renderer using the given style.
func NewPDFRenderer(style Style) *PDFRenderer {
	return &PDFRenderer{style: style}
}

// Render writes the document to path.
func (r *PDFRenderer) Render(doc entities.ReportDocument, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")

	// A single Unicode TTF backs every style; headings rely on size, with
	// the bold slot mapped to the same face.
	pdf.AddUTF8Font(r.style.FontFamily, "", r.style.FontFile)
	pdf.AddUTF8Font(r.style.FontFamily, "B", r.style.FontFile)
	pdf.SetFont(r.style.FontFamily, "", r.style.BodySize)
	pdf.AddPage()

	pdf.SetFont(r.style.FontFamily, "B", r.style.TitleSize)
	pdf.MultiCell(0, 10, doc.Title, "", "C", false)
	pdf.Ln(4)

	if doc.Meta != nil {
		pdf.SetFont(r.style.FontFamily, "", r.style.BodySize)
		meta := fmt.Sprintf("Convenor: %s\nStart Time: %s\nEnd Time: %s\nAttendees: %s",
			doc.Meta.Convenor,
			doc.Meta.Start.Format(metaTimeFormat),
			doc.Meta.End.Format(metaTimeFormat),
			strings.Join(doc.Meta.Attendees, ", "),
		)
		pdf.MultiCell(0, 5.5, meta, "", "L", false)
		pdf.Ln(6)
	}

	for _, sec := range doc.Sections {
		if sec.Heading != "" {
			size := r.style.H2Size
			if sec.Level == 3 {
				size = r.style.H3Size
			}
			pdf.SetFont(r.style.FontFamily, "B", size)
			pdf.MultiCell(0, 7, sec.Heading, "", "L", false)
			pdf.Ln(1)
		}

		if sec.ImagePath != "" {
			// Centered 100mm square, flowing with the text cursor.
			pdf.ImageOptions(sec.ImagePath, 55, pdf.GetY()+2, 100, 100, true,
				fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			pdf.Ln(6)
		}

		if sec.Body != "" {
			pdf.SetFont(r.style.FontFamily, "", r.style.BodySize)
			pdf.MultiCell(0, 5.5, sec.Body, "", "L", false)
			pdf.Ln(4)
		}
	}

	return pdf.OutputFileAndClose(path)
}
