package planner

import (
	"context"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/schema"
)

// Planner turns extracted client facts into a validated document structure.
type Planner interface {
	Plan(ctx context.Context, facts []string, structureHint string) (*schema.DocStructure, error)
}
