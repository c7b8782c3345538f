package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/schema"
)

// sessionState is the persisted summary of one diagnostic session.
type sessionState struct {
	Identifier string    `json:"identifier"`
	Input      string    `json:"input"`
	Language   string    `json:"language"`
	FactCount  int       `json:"fact_count"`
	Sections   int       `json:"sections"`
	Artifact   string    `json:"artifact"`
	StartedAt  time.Time `json:"started_at"`
	Duration   string    `json:"duration"`
}

// newIdentifier generates a unique session identifier, e.g.
// 20260825_153012_a1b2c3d4.
func newIdentifier() string {
	return fmt.Sprintf("%s_%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
	)
}

// saveStructureDebug persists a serialized copy of the planned structure
// next to the report. Write-only, never read back; exists for post-hoc
// inspection of what the planner produced.
func (p *implProcessor) saveStructureDebug(ctx context.Context, structure *schema.DocStructure, sessionDir string) error {
	data, err := json.MarshalIndent(structure, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal structure: %w", err)
	}

	path := filepath.Join(sessionDir, "structure.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write structure: %w", err)
	}

	p.logger.Debug(ctx, "Structure debug copy saved: %s", path)
	return nil
}

func (p *implProcessor) saveState(ctx context.Context, state *sessionState, sessionDir string) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	path := filepath.Join(sessionDir, "state.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	p.logger.Debug(ctx, "Session state saved: %s", path)
	return nil
}
