// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter transforms markdown into an HTML fragment. The goldmark backend
// is used in production; tests substitute fakes.
type Converter interface {
	// Convert returns the HTML fragment for markdown.
	Convert(markdown []byte) ([]byte, error)
}

// GoldmarkConverter converts CommonMark with the GFM table, strikethrough,
// autolink and task list extensions. Raw HTML in the note is passed through
// unchanged and headings get no generated IDs.
type GoldmarkConverter struct {
	engine goldmark.Markdown
}

// NewGoldmarkConverter builds the converter. The engine is stateless and is
// reused for every conversion.
func NewGoldmarkConverter() *GoldmarkConverter {
	return &GoldmarkConverter{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.Table,
				extension.Strikethrough,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Convert renders markdown into HTML.
func (g *GoldmarkConverter) Convert(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown conversion: %w", err)
	}
	return buf.Bytes(), nil
}

// StripFrontmatter removes a leading frontmatter block (YAML "---", TOML
// "+++" or JSON ";;;" delimited) and returns the remaining body. Input
// without frontmatter is returned unchanged.
func StripFrontmatter(markdown []byte) ([]byte, error) {
	var discard map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(markdown), &discard)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return body, nil
}
