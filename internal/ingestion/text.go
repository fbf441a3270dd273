// Package ingestion assembles the candidate résumé and the ordered JD list
// from files, pasted text, and URLs.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	spaceRun  = regexp.MustCompile(`\s+`)
	blankRuns = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes text pulled from web pages while preserving structure:
// line endings become LF, runs of spaces collapse, and blank-line runs shrink
// to at most one separator. Markdown-style headings and bullets keep their
// prefixes. File-extracted text is never passed through here; extraction
// output stays verbatim.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	// Keep heading and bullet prefixes intact so JD structure survives.
	if strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return trimmed
	}

	return spaceRun.ReplaceAllString(trimmed, " ")
}
