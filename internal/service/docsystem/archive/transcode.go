package archive

import (
	"context"
	"log/slog"
	"strings"

	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
)

// EmptyDocumentPlaceholder is written for documents with no content, so an
// empty file in the archive always reads as intentional.
const EmptyDocumentPlaceholder = "*(Empty Document)*"

// Transcoder turns a document's rich content into portable markdown.
// It never fails: if the primary converter errors, the fallback extracts
// whatever text it can.
type Transcoder struct {
	primary  docsysSvc.ContentConverter
	fallback docsysSvc.ContentConverter
	logger   *slog.Logger
}

// NewTranscoder creates a transcoder. fallback is used when primary fails.
func NewTranscoder(primary, fallback docsysSvc.ContentConverter, logger *slog.Logger) *Transcoder {
	return &Transcoder{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// Transcode converts content (nil means the document was never written) to
// markdown. docID is only used for logging.
func (t *Transcoder) Transcode(ctx context.Context, docID string, content *string) string {
	if content == nil || *content == "" {
		return EmptyDocumentPlaceholder
	}
	input := []byte(strings.ToValidUTF8(*content, "�"))

	markdown, err := t.primary.Convert(ctx, input)
	if err != nil {
		t.logger.Warn("transcode degraded, falling back to plain text",
			"doc_id", docID,
			"converter", t.primary.Name(),
			"fallback", t.fallback.Name(),
			"error", err,
		)

		markdown, err = t.fallback.Convert(ctx, input)
		if err != nil {
			// Last resort: keep the raw content rather than lose the document
			t.logger.Warn("plain text fallback failed, keeping raw content",
				"doc_id", docID,
				"error", err,
			)
			markdown = string(input)
		}
	}

	if strings.TrimSpace(markdown) == "" {
		return EmptyDocumentPlaceholder
	}
	return markdown
}
