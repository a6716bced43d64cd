// Package ingestion normalizes raw job-posting input (pasted text or HTML)
// into clean text for the extractor.
package ingestion

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`[ \t]{2,}`)

// CleanText normalizes line endings and whitespace while preserving the
// posting's structure (headings, bullet lists, paragraph breaks).
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = collapseBlankLines(result)
	return strings.TrimSpace(result)
}

// cleanLine trims trailing whitespace and collapses runs of spaces, keeping
// bullet indentation intact.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	// Preserve indentation before list bullets
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "• ") {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + multiSpace.ReplaceAllString(trimmed, " ")
	}

	return multiSpace.ReplaceAllString(trimmed, " ")
}

// collapseBlankLines limits consecutive blank lines to one.
func collapseBlankLines(content string) string {
	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}
	return content
}
