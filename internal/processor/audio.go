package processor

import (
	"context"
	"fmt"
	"path/filepath"
)

// extractAudio converts the input to 16kHz mono WAV in the session temp dir.
// This format is optimal for Whisper processing.
func (p *implProcessor) extractAudio(ctx context.Context, inputPath, tempDir string) (string, error) {
	audioPath := filepath.Join(tempDir, "audio.wav")

	p.logger.Info(ctx, "Extracting audio: %s", inputPath)

	// -vn: drop any video stream
	// -ar 16000 -ac 1: 16kHz mono, what Whisper expects
	// -c:a pcm_s16le: uncompressed PCM 16-bit
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}
