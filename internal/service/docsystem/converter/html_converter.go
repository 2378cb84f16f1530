package converter

import (
	"context"
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"

	docsysSvc "github.com/FuFicFac/vibe-writer/internal/domain/services/docsystem"
	"github.com/FuFicFac/vibe-writer/internal/service/docsystem/converter/sanitizer"
)

// htmlConverter converts editor HTML to markdown.
// Two stages:
// 1. Sanitize HTML to remove dangerous elements (scripts, event handlers)
// 2. Convert sanitized HTML to markdown
type htmlConverter struct {
	sanitizer *sanitizer.HTMLSanitizer
	converter *md.Converter
}

// NewHTMLConverter creates the HTML to markdown converter used for backups.
// Output uses ATX headings, "---" rules, "-" bullets and fenced code blocks.
func NewHTMLConverter() docsysSvc.ContentConverter {
	return &htmlConverter{
		sanitizer: sanitizer.NewHTMLSanitizer(),
		converter: md.NewConverter("", true, &md.Options{
			HeadingStyle:     "atx",
			HorizontalRule:   "---",
			BulletListMarker: "-",
			CodeBlockStyle:   "fenced",
			Fence:            "```",
		}).AddRules(inlineSpaceRule),
	}
}

// markElements are inline tags editors emit for marks that the converter
// does not list as inline.
var markElements = map[string]bool{
	"mark": true, "u": true, "s": true, "strike": true, "del": true, "ins": true,
}

// inlineSpaceRule keeps a whitespace-only text node as a single space when it
// separates two inline siblings, e.g. "<span>hello</span> <span>there</span>".
// The default text rule drops it, which glues the words together.
var inlineSpaceRule = md.Rule{
	Filter: []string{"#text"},
	Replacement: func(content string, selec *goquery.Selection, opt *md.Options) *string {
		if strings.TrimSpace(selec.Text()) != "" {
			return nil
		}
		prev, next := siblingNodes(selec)
		if isInline(prev) && isInline(next) {
			return md.String(" ")
		}
		return nil
	},
}

// siblingNodes returns the nodes (text included) directly before and after
// selec. A missing sibling is an empty selection.
func siblingNodes(selec *goquery.Selection) (prev, next *goquery.Selection) {
	contents := selec.Parent().Contents()
	prev, next = contents.Slice(0, 0), contents.Slice(0, 0)
	node := selec.Get(0)
	for i, n := range contents.Nodes {
		if n != node {
			continue
		}
		if i > 0 {
			prev = contents.Eq(i - 1)
		}
		if i+1 < len(contents.Nodes) {
			next = contents.Eq(i + 1)
		}
		break
	}
	return prev, next
}

func isInline(s *goquery.Selection) bool {
	if s.Length() == 0 {
		return false
	}
	name := goquery.NodeName(s)
	if name == "#text" {
		return strings.TrimSpace(s.Text()) != ""
	}
	return name != "br" && (md.IsInlineElement(name) || markElements[name])
}

// Convert transforms HTML to markdown.
// A panic inside the converter is returned as an error so that one malformed
// document cannot take down the whole export.
func (c *htmlConverter) Convert(ctx context.Context, input []byte) (markdown string, err error) {
	defer func() {
		if r := recover(); r != nil {
			markdown = ""
			err = fmt.Errorf("html converter panicked: %v", r)
		}
	}()

	sanitized, err := c.sanitizer.Sanitize(string(input))
	if err != nil {
		return "", fmt.Errorf("failed to sanitize HTML: %w", err)
	}

	markdown, err = c.converter.ConvertString(sanitized)
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
	}

	return markdown, nil
}

// Name returns the converter name for logging.
func (c *htmlConverter) Name() string {
	return "html"
}
