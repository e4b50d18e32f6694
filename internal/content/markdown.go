package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown = goldmark.New()
	// Author copy may carry emphasis and links, nothing that runs.
	bioPolicy = bluemonday.UGCPolicy()
)

// renderMarkdown converts Markdown to sanitised HTML.
func renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimSpace(bioPolicy.Sanitize(buf.String())), nil
}
