package extractor

import (
	"context"
	"fmt"
	"strings"
)

const portraitPrompt = `You are an expert at creating comprehensive client portraits from diagnostic transcripts. Your goal is to extract MAXIMUM information about the client - every detail, nuance, and observation matters.

Extract information across ALL these categories:
- Personal information: name, age, profession, work type, location, family status
- Lifestyle and daily routine: wake/sleep times, work schedule, activity patterns
- Nutrition and eating habits: diet type, meal timing, restrictions, fasting practices
- Physical activity and sports history: current routine, previous experience, preferences
- Medical history: childhood conditions, injuries, diagnoses, procedures, pain patterns
- Physical assessment findings: posture, alignment, breathing, mobility tests, asymmetries
- Emotional and mental state: stress levels, motivation, self-awareness, mental practices
- Habits and behaviors: good and bad habits, movement and sleep patterns
- Specific observations from tests: results, trainer observations, left/right comparisons
- Recommendations mentioned by the trainer during the session

IMPORTANT GUIDELINES:
- Extract EVERY fact, no matter how small or seemingly insignificant
- Include both explicit statements and implicit observations
- Include trainer's observations, not just client's statements
- Use present tense for current state, past tense for history
- Include quantitative data (times, frequencies, measurements) when available
- One fact per line

Output format: List each fact on a separate line. No numbering, no bullets, just plain facts. Start immediately with facts, no introduction or explanation.

Transcript:
---
%s
---`

// Extract sends the transcript to Gemini and returns the client portrait as
// one fact per entry.
func (e *implExtractor) Extract(ctx context.Context, transcript string) ([]string, error) {
	e.logger.Info(ctx, "Extracting client portrait (%d characters of transcript)", len(transcript))

	response, err := e.client.Generate(ctx, fmt.Sprintf(portraitPrompt, transcript))
	if err != nil {
		return nil, fmt.Errorf("extract portrait: %w", err)
	}

	facts := parseFacts(response)
	if len(facts) == 0 {
		return nil, fmt.Errorf("no facts extracted from transcript")
	}

	e.logger.Info(ctx, "Extracted %d client portrait facts", len(facts))
	return facts, nil
}

// parseFacts splits the model response into facts, one per line. Blank lines
// and markdown headings the model sometimes emits are dropped.
func parseFacts(response string) []string {
	var facts []string
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		facts = append(facts, trimmed)
	}
	return facts
}
