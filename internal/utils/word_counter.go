package utils

import (
	"strings"
	"unicode"
)

// CountWords counts the words a reader would see in a markdown document.
// Fenced code, emphasis markers, heading hashes, list markers, blockquote
// markers and rules are not words.
func CountWords(markdown string) int {
	count := 0
	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || isRule(trimmed) {
			continue
		}
		for _, field := range strings.Fields(stripLineMarker(trimmed)) {
			if strings.IndexFunc(field, isWordRune) >= 0 {
				count++
			}
		}
	}
	return count
}

// stripLineMarker removes a leading heading, list or quote marker
func stripLineMarker(line string) string {
	line = strings.TrimLeft(line, "#> ")
	for _, marker := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(line, marker) {
			return line[len(marker):]
		}
	}
	// Numbered list: "12. item"
	if i := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsDigit(r) }); i > 0 && strings.HasPrefix(line[i:], ". ") {
		return line[i+2:]
	}
	return line
}

func isRule(line string) bool {
	if len(line) < 3 {
		return false
	}
	return strings.Trim(line, "-") == "" || strings.Trim(line, "*") == "" || strings.Trim(line, "_") == ""
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
