package report

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/logger"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/schema"
)

func newTestAssembler() Assembler {
	return New(logger.New("error"))
}

// documentXML extracts word/document.xml from a .docx artifact so tests can
// assert on the rendered content.
func documentXML(t *testing.T, path string) string {
	t.Helper()

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}

	t.Fatalf("word/document.xml not found in %s", path)
	return ""
}

func paragraphSection(title string, texts ...string) schema.Section {
	sec := schema.Section{Title: title}
	for _, text := range texts {
		sec.Elements = append(sec.Elements, schema.DocElement{Type: schema.ElementParagraph, Text: text})
	}
	return sec
}

func TestAssembleSectionsInDeclarationOrder(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{
		paragraphSection("Anamnesis", "first"),
		paragraphSection("Posture", "second"),
		paragraphSection("Recommendations", "third"),
	}}

	out := filepath.Join(t.TempDir(), "report.docx")
	path, err := newTestAssembler().Assemble(context.Background(), structure, "en", out)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))

	xml := documentXML(t, path)
	first := strings.Index(xml, "Anamnesis")
	second := strings.Index(xml, "Posture")
	third := strings.Index(xml, "Recommendations")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestAssembleTableRoundTrip(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{{
		Title: "Measurements",
		Elements: []schema.DocElement{{
			Type: schema.ElementTable,
			TableData: &schema.TableData{
				Headers: []string{"HeaderA", "HeaderB"},
				Rows:    [][]string{{"Value1", "Value2"}},
			},
		}},
	}}}

	out := filepath.Join(t.TempDir(), "table.docx")
	path, err := newTestAssembler().Assemble(context.Background(), structure, "en", out)
	require.NoError(t, err)

	xml := documentXML(t, path)
	assert.Equal(t, 4, strings.Count(xml, "<w:tc>"), "one header row and one data row, two cells each")
	for _, want := range []string{"HeaderA", "HeaderB", "Value1", "Value2"} {
		assert.Contains(t, xml, want)
	}
	assert.Less(t, strings.Index(xml, "HeaderA"), strings.Index(xml, "Value1"), "header row comes first")
	assert.Less(t, strings.Index(xml, "Value1"), strings.Index(xml, "Value2"), "column order preserved")
}

func TestAssembleShortRowPadded(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{{
		Title: "Sparse",
		Elements: []schema.DocElement{{
			Type: schema.ElementTable,
			TableData: &schema.TableData{
				Headers: []string{"HeaderA", "HeaderB"},
				Rows:    [][]string{{"only"}},
			},
		}},
	}}}

	out := filepath.Join(t.TempDir(), "sparse.docx")
	path, err := newTestAssembler().Assemble(context.Background(), structure, "en", out)
	require.NoError(t, err)

	xml := documentXML(t, path)
	assert.Contains(t, xml, "only")
	assert.Equal(t, 4, strings.Count(xml, "<w:tc>"), "missing cell padded, not dropped")
}

func TestAssembleIdempotentBody(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{
		paragraphSection("Stable", "same content every time"),
	}}

	dir := t.TempDir()
	a := newTestAssembler()
	first, err := a.Assemble(context.Background(), structure, "uk", filepath.Join(dir, "a.docx"))
	require.NoError(t, err)
	second, err := a.Assemble(context.Background(), structure, "uk", filepath.Join(dir, "b.docx"))
	require.NoError(t, err)

	assert.Equal(t, documentXML(t, first), documentXML(t, second))
}

func TestAssembleEmptyStructure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.docx")

	_, err := newTestAssembler().Assemble(context.Background(), &schema.DocStructure{}, "uk", out)
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no artifact on empty structure")
}

func TestAssembleUnknownElementLeavesExistingFileUntouched(t *testing.T) {
	out := filepath.Join(t.TempDir(), "existing.docx")
	require.NoError(t, os.WriteFile(out, []byte("previous artifact"), 0644))

	structure := &schema.DocStructure{Sections: []schema.Section{{
		Title:    "Broken",
		Elements: []schema.DocElement{{Type: "hologram", Text: "nope"}},
	}}}

	_, err := newTestAssembler().Assemble(context.Background(), structure, "uk", out)
	require.Error(t, err)

	var schemaErr *schema.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, 0, schemaErr.Section)
	assert.Equal(t, 0, schemaErr.Element)

	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "previous artifact", string(data))

	_, statErr := os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(statErr), "no temp file left behind")
}

func TestAssembleUnknownLanguageFallsBackToUkrainian(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{{
		Title:      "Розділ",
		Elements:   []schema.DocElement{{Type: schema.ElementParagraph, Text: "текст"}},
		Conclusion: "підсумок",
	}}}

	out := filepath.Join(t.TempDir(), "fallback.docx")
	path, err := newTestAssembler().Assemble(context.Background(), structure, "fr", out)
	require.NoError(t, err)

	xml := documentXML(t, path)
	assert.Contains(t, xml, "Діагностичний звіт")
	assert.Contains(t, xml, "Висновок: ")
}

func TestAssembleConclusionLabel(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{{
		Title:      "Summary",
		Elements:   []schema.DocElement{{Type: schema.ElementParagraph, Text: "body"}},
		Conclusion: "done",
	}}}

	out := filepath.Join(t.TempDir(), "conclusion.docx")
	path, err := newTestAssembler().Assemble(context.Background(), structure, "en", out)
	require.NoError(t, err)

	xml := documentXML(t, path)
	assert.Contains(t, xml, "Conclusion: ")
	assert.Less(t, strings.Index(xml, "body"), strings.Index(xml, "Conclusion: "),
		"conclusion comes after the elements")
}

// headingSizeBefore returns the last w:sz value preceding the given text,
// i.e. the run size of the heading that carries it. Heading levels manifest
// as run sizes (16/15/14/13 points, doubled to half-points in the XML).
func headingSizeBefore(t *testing.T, xml, text string) string {
	t.Helper()

	idx := strings.Index(xml, text)
	require.GreaterOrEqual(t, idx, 0, "text %q not found", text)

	matches := reRunSize.FindAllStringSubmatch(xml[:idx], -1)
	require.NotEmpty(t, matches, "no run size before %q", text)
	return matches[len(matches)-1][1]
}

var reRunSize = regexp.MustCompile(`<w:sz w:val="(\d+)"`)

func TestAssembleNestedSubsections(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{{
		Title: "Parent",
		Subsections: []schema.Section{{
			Title: "Child",
			Subsections: []schema.Section{{
				Title:    "Grandchild",
				Elements: []schema.DocElement{{Type: schema.ElementParagraph, Text: "leaf"}},
			}},
		}},
	}}}

	out := filepath.Join(t.TempDir(), "nested.docx")
	path, err := newTestAssembler().Assemble(context.Background(), structure, "en", out)
	require.NoError(t, err)

	xml := documentXML(t, path)
	parent := strings.Index(xml, "Parent")
	child := strings.Index(xml, "Child")
	grandchild := strings.Index(xml, "Grandchild")
	require.True(t, parent >= 0 && child >= 0 && grandchild >= 0)
	assert.Less(t, parent, child)
	assert.Less(t, child, grandchild)

	// Depth maps to heading level: 16pt, 15pt and 14pt runs, half-points
	// in the XML.
	assert.Equal(t, "32", headingSizeBefore(t, xml, "Parent"))
	assert.Equal(t, "30", headingSizeBefore(t, xml, "Child"))
	assert.Equal(t, "28", headingSizeBefore(t, xml, "Grandchild"))
}

func TestAssembleHeadingLevelClamped(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{{
		Title: "Assessment",
		Elements: []schema.DocElement{
			{Type: schema.ElementHeading, Text: "TooLow", Level: 0},
			{Type: schema.ElementHeading, Text: "TooHigh", Level: 99},
		},
	}}}

	out := filepath.Join(t.TempDir(), "clamped.docx")
	path, err := newTestAssembler().Assemble(context.Background(), structure, "en", out)
	require.NoError(t, err)

	xml := documentXML(t, path)
	assert.Equal(t, "32", headingSizeBefore(t, xml, "TooLow"), "level below range clamps to 1")
	assert.Equal(t, "26", headingSizeBefore(t, xml, "TooHigh"), "level above range clamps to 6, base size")
}

func TestAssembleDeepNestingClampsHeadingLevel(t *testing.T) {
	// Eight levels deep: depths 3+ all render at the base size, same as the
	// clamped level 6.
	leaf := schema.Section{
		Title:    "Level8",
		Elements: []schema.DocElement{{Type: schema.ElementParagraph, Text: "leaf"}},
	}
	sec := leaf
	for i := 7; i >= 1; i-- {
		sec = schema.Section{
			Title:       fmt.Sprintf("Level%d", i),
			Subsections: []schema.Section{sec},
		}
	}

	out := filepath.Join(t.TempDir(), "deep.docx")
	path, err := newTestAssembler().Assemble(context.Background(), &schema.DocStructure{Sections: []schema.Section{sec}}, "en", out)
	require.NoError(t, err)

	xml := documentXML(t, path)
	assert.Equal(t, "32", headingSizeBefore(t, xml, "Level1"))
	assert.Equal(t, "30", headingSizeBefore(t, xml, "Level2"))
	assert.Equal(t, "28", headingSizeBefore(t, xml, "Level3"))
	assert.Equal(t, "26", headingSizeBefore(t, xml, "Level4"))
	assert.Equal(t, "26", headingSizeBefore(t, xml, "Level8"))
}

func TestAssembleEmptyListRendersNothing(t *testing.T) {
	withList := &schema.DocStructure{Sections: []schema.Section{{
		Title: "Habits",
		Elements: []schema.DocElement{
			{Type: schema.ElementParagraph, Text: "intro"},
			{Type: schema.ElementList, ListType: schema.ListUnordered},
		},
	}}}
	plain := &schema.DocStructure{Sections: []schema.Section{{
		Title:    "Habits",
		Elements: []schema.DocElement{{Type: schema.ElementParagraph, Text: "intro"}},
	}}}

	dir := t.TempDir()
	a := newTestAssembler()
	withPath, err := a.Assemble(context.Background(), withList, "en", filepath.Join(dir, "with.docx"))
	require.NoError(t, err)
	plainPath, err := a.Assemble(context.Background(), plain, "en", filepath.Join(dir, "plain.docx"))
	require.NoError(t, err)

	assert.Equal(t, documentXML(t, plainPath), documentXML(t, withPath))
}

func TestAssembleOrderedListMarkers(t *testing.T) {
	structure := &schema.DocStructure{Sections: []schema.Section{{
		Title: "Plan",
		Elements: []schema.DocElement{{
			Type:      schema.ElementList,
			ListType:  schema.ListOrdered,
			ListItems: []string{"warm up", "stretch"},
		}},
	}}}

	out := filepath.Join(t.TempDir(), "ordered.docx")
	path, err := newTestAssembler().Assemble(context.Background(), structure, "en", out)
	require.NoError(t, err)

	xml := documentXML(t, path)
	assert.Contains(t, xml, "1. warm up")
	assert.Contains(t, xml, "2. stretch")
}

func TestAssembleCreatesParentDirectories(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deep", "nested", "report.docx")
	structure := &schema.DocStructure{Sections: []schema.Section{
		paragraphSection("Only", "text"),
	}}

	path, err := newTestAssembler().Assemble(context.Background(), structure, "uk", out)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
