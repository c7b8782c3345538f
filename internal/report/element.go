package report

import (
	"fmt"

	"github.com/gomutex/godocx/docx"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/language"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/schema"
)

const tableStyle = "LightGrid-Accent1"

// renderContext carries the state of one document build: the document being
// mutated and the resolved locale. One value per Assemble call, never shared.
type renderContext struct {
	doc    *docx.RootDoc
	locale language.Locale
}

// renderElement appends one element to the document. section/index locate
// the element for diagnostics; they never affect the output.
func renderElement(rc *renderContext, el *schema.DocElement, section, index int) error {
	switch el.Type {
	case schema.ElementParagraph:
		addBodyText(rc, el.Text)

	case schema.ElementHeading:
		addHeading(rc, el.Text, clampLevel(el.Level))

	case schema.ElementList:
		// An empty item list renders nothing, not an empty container.
		for i, item := range el.ListItems {
			marker := "• "
			if el.ListType == schema.ListOrdered {
				marker = fmt.Sprintf("%d. ", i+1)
			}
			addBodyText(rc, marker+item)
		}

	case schema.ElementTable:
		renderTable(rc, el.TableData)

	case schema.ElementQuote:
		p := rc.doc.AddParagraph("")
		p.AddText(el.QuoteText).
			Font(rc.locale.BaseFont).
			Size(rc.locale.BaseFontSize).
			Color("000000").
			Italic(true)

	default:
		return &schema.SchemaError{
			Section: section,
			Element: index,
			Reason:  fmt.Sprintf("unknown element type %q", el.Type),
		}
	}

	return nil
}

// renderTable appends the header row bold, then each data row in column
// order. Rows shorter than the header are padded with empty cells; extra
// cells beyond the header width are dropped. Upstream data is best effort,
// so a sparse table beats no table.
func renderTable(rc *renderContext, data *schema.TableData) {
	table := rc.doc.AddTable()
	table.Style(tableStyle)

	header := table.AddRow()
	for _, h := range data.Headers {
		p := header.AddCell().AddParagraph("")
		run := p.AddText(h).
			Font(rc.locale.BaseFont).
			Size(rc.locale.BaseFontSize).
			Color("000000")
		if rc.locale.HeaderRowBold {
			run.Bold(true)
		}
	}

	width := len(data.Headers)
	for _, cells := range data.Rows {
		row := table.AddRow()
		for j := 0; j < width; j++ {
			value := ""
			if j < len(cells) {
				value = cells[j]
			}
			row.AddCell().AddParagraph("").
				AddText(value).
				Font(rc.locale.BaseFont).
				Size(rc.locale.BaseFontSize).
				Color("000000")
		}
	}
}

// addHeading renders a heading as a bold run sized by level.
func addHeading(rc *renderContext, text string, level int) {
	p := rc.doc.AddParagraph("")
	p.AddText(text).
		Font(rc.locale.BaseFont).
		Size(headingSize(rc, level)).
		Color("000000").
		Bold(true)
}

func addBodyText(rc *renderContext, text string) {
	rc.doc.AddParagraph("").
		AddText(text).
		Font(rc.locale.BaseFont).
		Size(rc.locale.BaseFontSize).
		Color("000000")
}

// clampLevel clamps a heading level to the valid 1-6 range.
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

func headingSize(rc *renderContext, level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return rc.locale.BaseFontSize
	}
}
