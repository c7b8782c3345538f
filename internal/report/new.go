package report

import (
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/logger"
)

type implAssembler struct {
	logger logger.Logger
}

// New creates a new Assembler instance
func New(log logger.Logger) Assembler {
	return &implAssembler{
		logger: log,
	}
}
