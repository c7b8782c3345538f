package report

import (
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/schema"
)

// renderSection appends one section to the document: title heading at a
// level derived from depth, then description, elements, subsections and
// conclusion, exactly in declaration order.
func renderSection(rc *renderContext, sec *schema.Section, index, depth int) error {
	addHeading(rc, sec.Title, clampLevel(depth+1))

	if sec.Description != "" {
		addBodyText(rc, sec.Description)
	}

	for j := range sec.Elements {
		if err := renderElement(rc, &sec.Elements[j], index, j); err != nil {
			return err
		}
	}

	for i := range sec.Subsections {
		if err := renderSection(rc, &sec.Subsections[i], index, depth+1); err != nil {
			return err
		}
	}

	if sec.Conclusion != "" {
		p := rc.doc.AddParagraph("")
		p.AddText(rc.locale.ConclusionLabel+": ").
			Font(rc.locale.BaseFont).
			Size(rc.locale.BaseFontSize).
			Color("000000").
			Bold(true)
		p.AddText(sec.Conclusion).
			Font(rc.locale.BaseFont).
			Size(rc.locale.BaseFontSize).
			Color("000000")
	}

	return nil
}
