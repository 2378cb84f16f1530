package archive

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"
)

// Charset selects which characters survive name sanitization.
type Charset int

const (
	// Relaxed keeps ASCII letters, digits, space, hyphen and underscore.
	// Used for folder and file names inside the archive.
	Relaxed Charset = iota

	// Strict keeps ASCII letters and digits only. Used for the archive's own
	// file name; every other character becomes one underscore per UTF-16
	// code unit, so "🚀" becomes "__" as in archives named by earlier releases.
	Strict
)

var relaxedDisallowed = regexp.MustCompile(`[^a-zA-Z0-9 \-_]`)

// Fallback prefixes used when a name sanitizes to nothing
const (
	FallbackProject  = "Project"
	FallbackFolder   = "Folder"
	FallbackDocument = "Untitled"
	FallbackProfile  = "profile"
)

// Sanitize maps a display name to a filesystem-safe path segment.
//
// Relaxed names drop disallowed characters; Strict names replace them with
// "_". Surrounding whitespace is trimmed afterwards. If nothing is left the
// result is "<fallbackPrefix>_<fallbackIndex>", where fallbackIndex is the
// 1-based position among the siblings being named. Two siblings can still
// sanitize to the same name; callers decide what happens then.
func Sanitize(raw string, charset Charset, fallbackPrefix string, fallbackIndex int) string {
	var name string
	switch charset {
	case Strict:
		name = replaceStrict(raw)
	default:
		name = relaxedDisallowed.ReplaceAllString(raw, "")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Sprintf("%s_%d", fallbackPrefix, fallbackIndex)
	}
	return name
}

func replaceStrict(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
			continue
		}
		n := utf16.RuneLen(r)
		if n < 1 {
			n = 1
		}
		b.WriteString(strings.Repeat("_", n))
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
