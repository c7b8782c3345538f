package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/schema"
)

const plannerPrompt = `You are an expert document planner. Analyze the provided personal data and create a detailed structure for a diagnostic document.

IMPORTANT GUIDELINES:
- Prefer placing elements directly in sections rather than using subsections
- Use tables extensively for structured data: personal info, medical history, test results, physical assessment findings, recommendations
- Only use subsections when absolutely necessary for complex hierarchical organization
- Each section should have a clear title and can include description/conclusion if needed
- Use paragraph elements for narrative text, tables for structured data, lists for bullet points
- Never invent facts; use only what the personal data contains

Respond with ONLY a JSON object matching this schema, no commentary:
{
  "sections": [
    {
      "title": "string, required",
      "description": "string, optional",
      "elements": [
        {"type": "paragraph", "text": "..."},
        {"type": "heading", "text": "...", "level": 2},
        {"type": "list", "list_type": "ordered|unordered", "list_items": ["..."]},
        {"type": "table", "table_data": {"headers": ["..."], "rows": [["..."]]}},
        {"type": "quote", "quote_text": "..."}
      ],
      "subsections": [ /* same shape as sections, optional */ ],
      "conclusion": "string, optional"
    }
  ]
}

%s<personal_data>
%s
</personal_data>

The document should be comprehensive and tailored to the client's needs based on the facts.`

// Plan asks Gemini for a document outline over the extracted facts and
// parses the response into a validated DocStructure. structureHint is an
// optional operator instruction describing the desired section layout.
func (p *implPlanner) Plan(ctx context.Context, facts []string, structureHint string) (*schema.DocStructure, error) {
	p.logger.Info(ctx, "Planning document structure from %d facts", len(facts))

	hint := ""
	if structureHint != "" {
		hint = fmt.Sprintf("DOCUMENT STRUCTURE REQUIREMENTS:\n%s\n\n", structureHint)
	}

	prompt := fmt.Sprintf(plannerPrompt, hint, strings.Join(facts, "\n"))

	response, err := p.client.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("plan structure: %w", err)
	}

	structure, err := schema.Parse([]byte(stripFences(response)))
	if err != nil {
		return nil, fmt.Errorf("parse planned structure: %w", err)
	}

	p.logger.Info(ctx, "Planned %d sections", len(structure.Sections))
	return structure, nil
}

// stripFences removes the markdown code fences the model wraps JSON in.
func stripFences(response string) string {
	trimmed := strings.TrimSpace(response)
	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
