package planner

import (
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/gemini"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/logger"
)

type implPlanner struct {
	client gemini.Client
	logger logger.Logger
}

// New creates a new Planner instance
func New(client gemini.Client, log logger.Logger) Planner {
	return &implPlanner{
		client: client,
		logger: log,
	}
}
