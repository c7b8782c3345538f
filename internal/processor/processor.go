package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/language"
)

// minTranscriptLen guards against empty or truncated transcriptions reaching
// the extraction step.
const minTranscriptLen = 10

// Process runs one full diagnostic session for an input file: transcribe (or
// read) the transcript, extract the client portrait, plan the document
// structure and assemble the .docx report. All session artifacts land in one
// directory under the output path.
func (p *implProcessor) Process(ctx context.Context, inputPath string) error {
	startTime := time.Now()
	identifier := newIdentifier()
	sessionDir := filepath.Join(p.cfg.Paths.Output, identifier)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting diagnostic session %s: %s", identifier, inputPath)
	p.logger.Info(ctx, "========================================")

	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}

	// Isolated temp dir per session so concurrent sessions never collide
	tempDir, err := os.MkdirTemp(p.cfg.Paths.Temp, "session-*")
	if err != nil {
		return fmt.Errorf("create session temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	// Step 1: Obtain transcript
	transcript, err := p.obtainTranscript(ctx, inputPath, tempDir)
	if err != nil {
		return fmt.Errorf("obtain transcript: %w", err)
	}
	if len(strings.TrimSpace(transcript)) < minTranscriptLen {
		return fmt.Errorf("transcript is too short or empty")
	}

	transcriptPath := filepath.Join(sessionDir, "transcript.txt")
	if err := os.WriteFile(transcriptPath, []byte(transcript), 0644); err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript saved: %s", transcriptPath)

	// Step 2: Resolve language (config override wins over detection)
	lang := p.cfg.Report.Language
	if lang == "" {
		lang = string(language.Detect(transcript))
	}
	p.logger.Info(ctx, "Report language: %s", lang)

	// Step 3: Extract client portrait
	facts, err := p.extractor.Extract(ctx, transcript)
	if err != nil {
		return fmt.Errorf("extract facts: %w", err)
	}
	factsPath := filepath.Join(sessionDir, "facts.txt")
	if err := os.WriteFile(factsPath, []byte(strings.Join(facts, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("save facts: %w", err)
	}

	// Step 4: Plan document structure
	structure, err := p.planner.Plan(ctx, facts, p.cfg.Report.StructurePrompt)
	if err != nil {
		return fmt.Errorf("plan structure: %w", err)
	}
	if err := p.saveStructureDebug(ctx, structure, sessionDir); err != nil {
		p.logger.Warn(ctx, "Failed to save structure debug copy: %v", err)
	}

	// Step 5: Assemble report
	outputPath := filepath.Join(sessionDir, fmt.Sprintf("diagnostic_report_%s.docx", identifier))
	artifactPath, err := p.assembler.Assemble(ctx, structure, lang, outputPath)
	if err != nil {
		return fmt.Errorf("assemble report: %w", err)
	}

	// Step 6: Persist session state and archive the input
	duration := time.Since(startTime)
	state := sessionState{
		Identifier: identifier,
		Input:      inputPath,
		Language:   lang,
		FactCount:  len(facts),
		Sections:   len(structure.Sections),
		Artifact:   artifactPath,
		StartedAt:  startTime.UTC(),
		Duration:   duration.String(),
	}
	if err := p.saveState(ctx, &state, sessionDir); err != nil {
		p.logger.Warn(ctx, "Failed to save session state: %v", err)
	}

	if err := p.moveToArchived(ctx, inputPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive input: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Session %s completed successfully!", identifier)
	p.logger.Info(ctx, "Report: %s", artifactPath)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// obtainTranscript reads .txt inputs directly; audio and video inputs go
// through ffmpeg extraction and whisper transcription.
func (p *implProcessor) obtainTranscript(ctx context.Context, inputPath, tempDir string) (string, error) {
	if isTranscriptFile(inputPath) {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return "", fmt.Errorf("read transcript file: %w", err)
		}
		p.logger.Info(ctx, "Transcript loaded from file: %s", inputPath)
		return string(data), nil
	}

	if !isAudioFile(inputPath) {
		return "", fmt.Errorf("unsupported input format: %s", filepath.Ext(inputPath))
	}

	audioPath, err := p.extractAudio(ctx, inputPath, tempDir)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	return p.transcribe(ctx, audioPath, tempDir)
}

// isAudioFile checks if the file has a supported audio or video extension
func isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	supportedFormats := []string{".mp3", ".wav", ".m4a", ".aac", ".ogg", ".flac", ".mp4", ".mov", ".m4v"}

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}

	return false
}

// isTranscriptFile checks if the file is a plain text transcript
func isTranscriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".txt"
}
