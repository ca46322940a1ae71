package docgen

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// TerminalOptions controls terminal rendering. An empty Style picks one based
// on the terminal background.
type TerminalOptions struct {
	Width int
	Style string
}

// RenderTerminal renders markdown with ANSI styling for display in a terminal.
func RenderTerminal(markdown []byte, opts TerminalOptions) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = 100
	}
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("terminal renderer: %w", err)
	}
	return renderer.Render(string(markdown))
}

// RenderHTML converts markdown to an HTML fragment.
func RenderHTML(markdown []byte) ([]byte, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown convert: %w", err)
	}
	return buf.Bytes(), nil
}
