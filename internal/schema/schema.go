package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ElementType discriminates the DocElement union.
type ElementType string

const (
	ElementParagraph ElementType = "paragraph"
	ElementHeading   ElementType = "heading"
	ElementList      ElementType = "list"
	ElementTable     ElementType = "table"
	ElementQuote     ElementType = "quote"
)

// ListType selects the list marker style.
type ListType string

const (
	ListOrdered   ListType = "ordered"
	ListUnordered ListType = "unordered"
)

// DocStructure is the root of a planned document. It is produced once by the
// structure planner, validated, and consumed once by the report assembler.
type DocStructure struct {
	Sections []Section `json:"sections"`
}

// Section is one titled block of the document. Content lives in Elements
// (preferred) or in nested Subsections; Description and Conclusion are
// optional framing paragraphs.
type Section struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Elements    []DocElement `json:"elements,omitempty"`
	Subsections []Section    `json:"subsections,omitempty"`
	Conclusion  string       `json:"conclusion,omitempty"`
}

// DocElement is a tagged union over the element kinds. Exactly one payload
// matching Type is populated.
type DocElement struct {
	Type      ElementType `json:"type"`
	Text      string      `json:"text,omitempty"`
	Level     int         `json:"level,omitempty"`
	ListType  ListType    `json:"list_type,omitempty"`
	ListItems []string    `json:"list_items,omitempty"`
	TableData *TableData  `json:"table_data,omitempty"`
	QuoteText string      `json:"quote_text,omitempty"`
}

// TableData holds a table as one header row plus data rows in column order.
type TableData struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// SchemaError reports a malformed section or element. Section and Element
// are indexes into the structure (-1 when not applicable) so the caller can
// log which part of the upstream output was broken.
type SchemaError struct {
	Section int
	Element int
	Reason  string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Section < 0:
		return fmt.Sprintf("schema: %s", e.Reason)
	case e.Element < 0:
		return fmt.Sprintf("schema: section %d: %s", e.Section, e.Reason)
	default:
		return fmt.Sprintf("schema: section %d, element %d: %s", e.Section, e.Element, e.Reason)
	}
}

// Parse decodes a DocStructure from JSON. The upstream producer is an LLM
// with no structural guarantee, so unknown fields are rejected and the
// result is validated before it is returned.
func Parse(data []byte) (*DocStructure, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var structure DocStructure
	if err := dec.Decode(&structure); err != nil {
		return nil, &SchemaError{Section: -1, Element: -1, Reason: fmt.Sprintf("decode: %v", err)}
	}
	if err := structure.Validate(); err != nil {
		return nil, err
	}
	return &structure, nil
}

// Validate checks every section and element against the schema. It does not
// reject missing optional fields or short table rows; those are filled with
// empty defaults at render time.
func (d *DocStructure) Validate() error {
	for i := range d.Sections {
		if err := validateSection(&d.Sections[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateSection(sec *Section, index int) error {
	if sec.Title == "" {
		return &SchemaError{Section: index, Element: -1, Reason: "title is required"}
	}
	if len(sec.Elements) == 0 && len(sec.Subsections) == 0 {
		return &SchemaError{Section: index, Element: -1, Reason: "section has no elements and no subsections"}
	}

	for j := range sec.Elements {
		if err := validateElement(&sec.Elements[j], index, j); err != nil {
			return err
		}
	}

	// Subsections recurse with the same shape; index paths stay relative to
	// the top-level section so diagnostics remain actionable.
	for i := range sec.Subsections {
		if err := validateSection(&sec.Subsections[i], index); err != nil {
			return err
		}
	}

	return nil
}

func validateElement(el *DocElement, section, index int) error {
	switch el.Type {
	case ElementParagraph:
		if el.Text == "" {
			return &SchemaError{Section: section, Element: index, Reason: "paragraph requires text"}
		}
	case ElementHeading:
		if el.Text == "" {
			return &SchemaError{Section: section, Element: index, Reason: "heading requires text"}
		}
	case ElementList:
		if el.ListType != ListOrdered && el.ListType != ListUnordered {
			return &SchemaError{Section: section, Element: index, Reason: fmt.Sprintf("unknown list_type %q", el.ListType)}
		}
	case ElementTable:
		if el.TableData == nil || len(el.TableData.Headers) == 0 {
			return &SchemaError{Section: section, Element: index, Reason: "table requires table_data with headers"}
		}
	case ElementQuote:
		if el.QuoteText == "" {
			return &SchemaError{Section: section, Element: index, Reason: "quote requires quote_text"}
		}
	default:
		return &SchemaError{Section: section, Element: index, Reason: fmt.Sprintf("unknown element type %q", el.Type)}
	}
	return nil
}
