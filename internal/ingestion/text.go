// Package ingestion loads job descriptions from files or URLs and normalizes their text.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrEmptyContent is returned when a source yields no text after cleaning
var ErrEmptyContent = errors.New("job description is empty")

var (
	innerSpaceRe   = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRunRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes line endings and whitespace while keeping line structure,
// which requirement-section detection relies on. At most one blank line is kept in a row.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLineRunRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inner whitespace and normalizes bullet glyphs to "- "
func cleanLine(line string) string {
	line = strings.TrimSpace(innerSpaceRe.ReplaceAllString(line, " "))
	for _, glyph := range []string{"• ", "· ", "* ", "▪ ", "– "} {
		if strings.HasPrefix(line, glyph) {
			return "- " + strings.TrimPrefix(line, glyph)
		}
	}
	return line
}

// IngestFromFile reads a text file, cleans it, and returns cleaned text with metadata
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := CleanText(string(content))
	if cleaned == "" {
		return "", nil, fmt.Errorf("%s: %w", path, ErrEmptyContent)
	}

	metadata := NewMetadata(cleaned)
	metadata.Path = path
	return cleaned, metadata, nil
}
