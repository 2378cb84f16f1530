package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer removes dangerous HTML elements and attributes before conversion.
//
// Thread-safe for concurrent use.
type HTMLSanitizer struct {
	policy *bluemonday.Policy
}

// NewHTMLSanitizer creates a sanitizer for editor content.
// Uses the UGC (User Generated Content) policy: formatting, headings, lists,
// links, tables and code survive; scripts, event handlers and javascript: URLs
// are stripped.
func NewHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.UGCPolicy()

	// Pasted images are stored inline as data URIs
	policy.AllowDataURIImages()

	return &HTMLSanitizer{policy: policy}
}

// NewStrictHTMLSanitizer creates a sanitizer that strips all HTML and keeps
// only text (entity-encoded). Stripped tags become spaces so adjacent blocks
// don't run together.
func NewStrictHTMLSanitizer() *HTMLSanitizer {
	policy := bluemonday.StrictPolicy()
	policy.AddSpaceWhenStrippingTag(true)
	return &HTMLSanitizer{policy: policy}
}

// Sanitize returns the sanitized HTML string.
func (s *HTMLSanitizer) Sanitize(html string) (string, error) {
	return s.policy.Sanitize(html), nil
}
