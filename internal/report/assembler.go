package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gomutex/godocx"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/language"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/schema"
)

// Assemble renders the structure into a .docx file at outputPath and returns
// the absolute path of the artifact. The structure comes from an upstream
// with no structural guarantee, so it is validated before any rendering.
//
// The write is atomic: the full document is built in memory, saved to a temp
// file in the destination directory, then renamed into place. On any error
// no artifact is left behind and a pre-existing file at outputPath stays
// untouched.
func (a *implAssembler) Assemble(ctx context.Context, structure *schema.DocStructure, languageCode, outputPath string) (string, error) {
	if structure == nil || len(structure.Sections) == 0 {
		return "", ErrEmptyDocument
	}

	if err := structure.Validate(); err != nil {
		return "", err
	}

	locale := language.Resolve(languageCode)
	a.logger.Info(ctx, "Assembling report: %d sections, language=%s -> %s",
		len(structure.Sections), locale.Code, outputPath)

	doc, err := godocx.NewDocument()
	if err != nil {
		return "", &AssemblyError{Path: outputPath, Err: fmt.Errorf("new document: %w", err)}
	}

	rc := &renderContext{doc: doc, locale: locale}

	// Document title, then every top-level section at depth 0.
	addHeading(rc, locale.ReportTitle, 1)

	for i := range structure.Sections {
		if err := renderSection(rc, &structure.Sections[i], i, 0); err != nil {
			return "", err
		}
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", &AssemblyError{Path: outputPath, Err: fmt.Errorf("resolve path: %w", err)}
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return "", &AssemblyError{Path: absPath, Err: fmt.Errorf("create output dir: %w", err)}
	}

	tempPath := absPath + ".tmp"
	if err := doc.SaveTo(tempPath); err != nil {
		os.Remove(tempPath)
		return "", &AssemblyError{Path: absPath, Err: fmt.Errorf("save document: %w", err)}
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return "", &AssemblyError{Path: absPath, Err: fmt.Errorf("move into place: %w", err)}
	}

	a.logger.Info(ctx, "Report assembled: %s", absPath)
	return absPath, nil
}
