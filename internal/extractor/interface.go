package extractor

import "context"

// Extractor builds a client portrait from a diagnostic transcript: a flat
// list of facts, one per entry, covering everything the session revealed.
type Extractor interface {
	Extract(ctx context.Context, transcript string) ([]string, error)
}
