// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a note into the final output document: it fetches the
// markdown, converts it to HTML and substitutes it into the template.
package render

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pdiddy/hedgewatch/pkg/types"
)

// DocumentFetcher returns the raw markdown of the watched note.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context) ([]byte, error)
}

// Renderer produces output text for a note. The template is fixed at
// construction and never modified.
type Renderer struct {
	fetcher          DocumentFetcher
	converter        Converter
	template         string
	stripFrontmatter bool
}

// New returns a Renderer over template. A nil converter selects goldmark.
func New(fetcher DocumentFetcher, converter Converter, template string, cfg types.RenderConfig) *Renderer {
	if converter == nil {
		converter = NewGoldmarkConverter()
	}
	return &Renderer{
		fetcher:          fetcher,
		converter:        converter,
		template:         template,
		stripFrontmatter: cfg.StripFrontmatter,
	}
}

// Render fetches the note body, converts it and returns the substituted
// template. Fetch failures keep their KindNetwork classification; frontmatter
// and conversion failures are KindRender.
func (r *Renderer) Render(ctx context.Context, meta types.Metadata) (string, error) {
	markdown, err := r.fetcher.FetchDocument(ctx)
	if err != nil {
		return "", err
	}

	if r.stripFrontmatter {
		markdown, err = StripFrontmatter(markdown)
		if err != nil {
			return "", types.NewError(types.KindRender, "strip frontmatter", err)
		}
	}

	fragment, err := r.converter.Convert(markdown)
	if err != nil {
		return "", types.NewError(types.KindRender, "convert markdown", err)
	}

	return Substitute(r.template, string(fragment), meta.Title), nil
}

// LoadTemplate reads the template file once. A missing, unreadable or
// non-UTF-8 file is a KindStartup error.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", types.NewError(types.KindStartup, "read template", err)
	}
	if !utf8.Valid(data) {
		return "", types.NewError(types.KindStartup, "read template", fmt.Errorf("%s is not valid UTF-8", path))
	}
	return string(data), nil
}
