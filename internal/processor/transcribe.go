package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// transcribe runs whisper.cpp on the extracted audio and returns the plain
// text transcript. Runs in the session temp dir so the output prefix stays
// relative and per-session.
func (p *implProcessor) transcribe(ctx context.Context, audioPath, tempDir string) (string, error) {
	const outputPrefix = "transcript"

	p.logger.Info(ctx, "Starting transcription with %d threads: %s", p.cfg.Whisper.Threads, audioPath)

	// -otxt: plain text output
	// -l: language ("auto" lets Whisper detect it)
	// -bo 5: best-of 5 for better accuracy
	args := []string{
		"-m", p.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-otxt",
		"-l", p.cfg.Whisper.Language,
		"-t", strconv.Itoa(p.cfg.Whisper.Threads),
		"-bo", "5",
		"--prompt", p.cfg.Whisper.Prompt,
		"--output-file", outputPrefix,
	}

	if p.cfg.Whisper.UseGPU {
		p.logger.Debug(ctx, "GPU acceleration enabled")
	}

	if _, err := p.executor.ExecuteInDir(ctx, tempDir, p.cfg.Whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	textPath := filepath.Join(tempDir, outputPrefix+".txt")
	data, err := os.ReadFile(textPath)
	if err != nil {
		return "", fmt.Errorf("read transcription output: %w", err)
	}

	p.logger.Info(ctx, "Transcription completed: %d characters", len(data))
	return string(data), nil
}
