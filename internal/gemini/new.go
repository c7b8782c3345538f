package gemini

import (
	"sync"

	"github.com/Kapustin2000/blw-diagnostic-agent/internal/logger"
)

type implClient struct {
	apiKeys    []string
	currentKey int
	mu         sync.Mutex
	model      string
	logger     logger.Logger
}

// New creates a Client that rotates through the supplied Gemini API keys.
func New(apiKeys []string, model string, log logger.Logger) Client {
	return &implClient{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
