package processor

import "context"

// Processor defines the interface for diagnostic session processing
type Processor interface {
	Process(ctx context.Context, inputPath string) error
}
