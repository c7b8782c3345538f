package processor

import (
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/config"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/extractor"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/logger"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/planner"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/report"
	"github.com/Kapustin2000/blw-diagnostic-agent/pkg/executor"
)

type implProcessor struct {
	cfg       *config.Config
	executor  executor.Executor
	extractor extractor.Extractor
	planner   planner.Planner
	assembler report.Assembler
	logger    logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, extr extractor.Extractor, plan planner.Planner, asm report.Assembler, log logger.Logger) Processor {
	return &implProcessor{
		cfg:       cfg,
		executor:  exec,
		extractor: extr,
		planner:   plan,
		assembler: asm,
		logger:    log,
	}
}
