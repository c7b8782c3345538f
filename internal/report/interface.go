package report

import (
	"context"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/schema"
)

// Assembler renders a validated DocStructure into a .docx artifact.
// One call produces exactly one artifact or none; concurrent calls for
// different output paths are independent.
type Assembler interface {
	Assemble(ctx context.Context, structure *schema.DocStructure, languageCode, outputPath string) (string, error)
}
