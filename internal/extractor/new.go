package extractor

import (
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/gemini"
	"github.com/Kapustin2000/blw-diagnostic-agent/internal/logger"
)

type implExtractor struct {
	client gemini.Client
	logger logger.Logger
}

// New creates a new Extractor instance
func New(client gemini.Client, log logger.Logger) Extractor {
	return &implExtractor{
		client: client,
		logger: log,
	}
}
