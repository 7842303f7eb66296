// ABOUTME: Layout snapshot embedded as YAML frontmatter at the top of an HTML page
// ABOUTME: Splits "---"-delimited frontmatter from the markup body; CRLF normalized

package layout

import (
	"errors"
	"fmt"
	"strings"
)

const frontmatterDelimiter = "---"

// ErrUnterminatedFrontmatter is returned when the opening delimiter has no closing one.
var ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter: missing closing ---")

// SplitPage separates a page into its embedded layout snapshot and HTML body.
// A page without frontmatter yields a nil snapshot and the content unchanged.
func SplitPage(content string) (*Snapshot, string, error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return nil, content, nil
	}

	header, body, ok := cutClosing(normalized[len(frontmatterDelimiter)+1:])
	if !ok {
		return nil, "", ErrUnterminatedFrontmatter
	}
	body = strings.TrimPrefix(body, "\n")

	s, err := Parse([]byte(header))
	if err != nil {
		return nil, "", fmt.Errorf("parse layout frontmatter: %w", err)
	}
	return s, body, nil
}

// cutClosing splits rest at the first line that is exactly the delimiter.
// The header excludes the newline before that line; the body starts after it.
func cutClosing(rest string) (header, body string, ok bool) {
	padded := "\n" + rest
	for off := 0; ; {
		i := strings.Index(padded[off:], "\n"+frontmatterDelimiter)
		if i < 0 {
			return "", "", false
		}
		start := off + i
		end := start + 1 + len(frontmatterDelimiter)
		if end == len(padded) || padded[end] == '\n' {
			if start > 0 {
				header = padded[1:start]
			}
			return header, padded[end:], true
		}
		off = end
	}
}
