package render

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/common/units"
	"github.com/gomutex/godocx/docx"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

// DOCXRenderer writes report documents as Word files.
type DOCXRenderer struct {
	style Style
}

// NewDOCXRenderer constructs a DOCX renderer using the given style.
func NewDOCXRenderer(style Style) *DOCXRenderer {
	return &DOCXRenderer{style: style}
}

// Render writes the document to path.
func (r *DOCXRenderer) Render(rep entities.ReportDocument, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	r.addStyledRun(doc.AddParagraph(""), rep.Title, true, r.style.TitleSize)

	if rep.Meta != nil {
		r.addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Convenor: %s", rep.Meta.Convenor), false, r.style.BodySize)
		r.addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Time: %s - %s",
			rep.Meta.Start.Format(metaTimeFormat),
			rep.Meta.End.Format(metaTimeFormat)), false, r.style.BodySize)
		r.addStyledRun(doc.AddParagraph(""), fmt.Sprintf("Attendees: %s", strings.Join(rep.Meta.Attendees, ", ")), false, r.style.BodySize)
	}

	for _, sec := range rep.Sections {
		if sec.Heading != "" {
			size := r.style.H2Size
			if sec.Level == 3 {
				size = r.style.H3Size
			}
			r.addStyledRun(doc.AddParagraph(""), sec.Heading, true, size)
		}

		if sec.ImagePath != "" {
			if _, err := doc.AddPicture(sec.ImagePath, units.Inch(4), units.Inch(4)); err != nil {
				return fmt.Errorf("embed chart image: %w", err)
			}
		}

		if sec.Body != "" {
			for _, line := range strings.Split(sec.Body, "\n") {
				r.addStyledRun(doc.AddParagraph(""), line, false, r.style.BodySize)
			}
		}
	}

	return doc.SaveTo(path)
}

func (r *DOCXRenderer) addStyledRun(p *docx.Paragraph, text string, bold bool, size float64) {
	run := p.AddText(text).Font(r.style.FontFamily).Size(uint64(size)).Color("000000")
	if bold {
		run.Bold(true)
	}
}
