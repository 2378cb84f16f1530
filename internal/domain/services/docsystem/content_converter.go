package docsystem

import "context"

// ContentConverter converts a document's stored rich content to markdown.
//
// Implementations should be stateless and thread-safe.
type ContentConverter interface {
	// Convert transforms input content to markdown.
	// Returns an error if conversion fails.
	Convert(ctx context.Context, input []byte) (markdown string, err error)

	// Name returns a human-readable converter name for logging/debugging.
	Name() string
}
