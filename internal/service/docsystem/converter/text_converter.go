package converter

import (
	"context"
	"html"
	"strings"

	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/service/docsystem/converter/sanitizer"
)

// textExtractor is the degraded path: it drops every tag and keeps the text.
// Used when the HTML converter fails on a document.
type textExtractor struct {
	sanitizer *sanitizer.HTMLSanitizer
}

// NewTextExtractor creates a best-effort plain text extractor.
func NewTextExtractor() docsysSvc.ContentConverter {
	return &textExtractor{
		sanitizer: sanitizer.NewStrictHTMLSanitizer(),
	}
}

// Convert strips all markup, decodes entities and normalizes whitespace
// line by line. Blank lines between paragraphs are collapsed to one.
func (c *textExtractor) Convert(ctx context.Context, input []byte) (string, error) {
	stripped, err := c.sanitizer.Sanitize(string(input))
	if err != nil {
		return "", err
	}
	text := html.UnescapeString(stripped)

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n")), nil
}

// Name returns the converter name for logging.
func (c *textExtractor) Name() string {
	return "plaintext"
}
