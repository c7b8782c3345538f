package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValidStructure(t *testing.T) {
	data := []byte(`{
		"sections": [
			{
				"title": "Анамнез",
				"description": "Загальні дані клієнта",
				"elements": [
					{"type": "paragraph", "text": "Клієнт 35 років."},
					{"type": "heading", "text": "Харчування", "level": 2},
					{"type": "list", "list_type": "unordered", "list_items": ["Вегетаріанство", "Інтервальне голодування"]},
					{"type": "table", "table_data": {"headers": ["Показник", "Значення"], "rows": [["Вага", "72 кг"]]}},
					{"type": "quote", "quote_text": "Болить після тривалого сидіння."}
				],
				"conclusion": "Потрібна корекція постави."
			}
		]
	}`)

	structure, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, structure.Sections, 1)

	sec := structure.Sections[0]
	assert.Equal(t, "Анамнез", sec.Title)
	require.Len(t, sec.Elements, 5)
	assert.Equal(t, ElementParagraph, sec.Elements[0].Type)
	assert.Equal(t, 2, sec.Elements[1].Level)
	assert.Equal(t, ListUnordered, sec.Elements[2].ListType)
	require.NotNil(t, sec.Elements[3].TableData)
	assert.Equal(t, []string{"Показник", "Значення"}, sec.Elements[3].TableData.Headers)
	assert.Equal(t, "Потрібна корекція постави.", sec.Conclusion)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	data := []byte(`{"sections": [{"title": "A", "elements": [{"type": "paragraph", "text": "x"}], "extra": true}]}`)

	_, err := Parse(data)
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"sections": [`))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		structure   DocStructure
		wantErr     bool
		wantSection int
		wantElement int
	}{
		{
			name: "section via subsections only",
			structure: DocStructure{Sections: []Section{{
				Title: "Root",
				Subsections: []Section{{
					Title:    "Nested",
					Elements: []DocElement{{Type: ElementParagraph, Text: "x"}},
				}},
			}}},
		},
		{
			name:        "missing title",
			structure:   DocStructure{Sections: []Section{{Elements: []DocElement{{Type: ElementParagraph, Text: "x"}}}}},
			wantErr:     true,
			wantSection: 0,
			wantElement: -1,
		},
		{
			name:        "empty section",
			structure:   DocStructure{Sections: []Section{{Title: "Empty"}}},
			wantErr:     true,
			wantSection: 0,
			wantElement: -1,
		},
		{
			name: "unknown element type",
			structure: DocStructure{Sections: []Section{{
				Title: "A",
				Elements: []DocElement{
					{Type: ElementParagraph, Text: "ok"},
					{Type: "image", Text: "nope"},
				},
			}}},
			wantErr:     true,
			wantSection: 0,
			wantElement: 1,
		},
		{
			name: "list with bad marker type",
			structure: DocStructure{Sections: []Section{{
				Title:    "A",
				Elements: []DocElement{{Type: ElementList, ListType: "roman", ListItems: []string{"i"}}},
			}}},
			wantErr:     true,
			wantSection: 0,
			wantElement: 0,
		},
		{
			name: "table without headers",
			structure: DocStructure{Sections: []Section{{
				Title:    "A",
				Elements: []DocElement{{Type: ElementTable, TableData: &TableData{}}},
			}}},
			wantErr:     true,
			wantSection: 0,
			wantElement: 0,
		},
		{
			name: "quote without text",
			structure: DocStructure{Sections: []Section{{
				Title:    "A",
				Elements: []DocElement{{Type: ElementQuote}},
			}}},
			wantErr:     true,
			wantSection: 0,
			wantElement: 0,
		},
		{
			name: "short table rows are allowed",
			structure: DocStructure{Sections: []Section{{
				Title: "A",
				Elements: []DocElement{{
					Type:      ElementTable,
					TableData: &TableData{Headers: []string{"A", "B"}, Rows: [][]string{{"1"}}},
				}},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.structure.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tt.wantSection, schemaErr.Section)
			assert.Equal(t, tt.wantElement, schemaErr.Element)
		})
	}
}
