package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/config"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/extractor"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/gemini"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/logger"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/planner"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/processor"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/report"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/watcher"
	"github.com/Kapustin2000/blw-diagnostic-agent/pkg/executor"
)

func main() {
	ctx := context.Background()

	// API keys may live in a local .env file
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Body Diagnostics Report Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Sessions: %d", cfg.Performance.MaxConcurrent)
	log.Info(ctx, "Configuration loaded successfully")

	apiKeys := geminiAPIKeys()
	if len(apiKeys) == 0 {
		log.Error(ctx, "No Gemini API keys found. Set GEMINI_API_KEYS, GEMINI_API_KEY or GOOGLE_API_KEY.")
		os.Exit(1)
	}
	log.Info(ctx, "Gemini: model %s, %d API key(s)", cfg.Gemini.Model, len(apiKeys))

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()
	client := gemini.New(apiKeys, cfg.Gemini.Model, log)
	extr := extractor.New(client, log)
	plan := planner.New(client, log)
	asm := report.New(log)
	proc := processor.New(cfg, exec, extr, plan, asm, log)

	// Create watcher with processor as handler and concurrency control
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start watcher in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Diagnostics pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "")
	log.Info(ctx, "Drop an audio recording or a .txt transcript into the input folder")
	log.Info(ctx, "to generate a diagnostic report.")
	log.Info(ctx, "")
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Diagnostics pipeline stopped")
}

// geminiAPIKeys collects API keys from the environment. GEMINI_API_KEYS
// holds a comma-separated list for quota rotation; the single-key variables
// are fallbacks.
func geminiAPIKeys() []string {
	if list := os.Getenv("GEMINI_API_KEYS"); list != "" {
		var keys []string
		for _, key := range strings.Split(list, ",") {
			if key = strings.TrimSpace(key); key != "" {
				keys = append(keys, key)
			}
		}
		return keys
	}

	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(name); key != "" {
			return []string{key}
		}
	}

	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
