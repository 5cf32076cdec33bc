// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package hedgedoc reads a single HedgeDoc note: its metadata from the info
// endpoint and its raw markdown from the download endpoint.
package hedgedoc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/hedgewatch/internal/httputil"
	"github.com/pdiddy/hedgewatch/pkg/types"
)

const (
	infoPath     = "/info"
	downloadPath = "/download"
)

// Client talks to one note. It is safe to reuse across cycles.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// NewClient returns a client for the note at baseURL. A nil httpClient
// falls back to http.DefaultClient. Trailing slashes on baseURL are dropped
// so the endpoint paths join cleanly.
func NewClient(httpClient *http.Client, baseURL string, cfg types.HTTPConfig) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:      httpClient,
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: cfg.UserAgent,
	}
}

// InfoURL returns the metadata endpoint of the note.
func (c *Client) InfoURL() string { return c.baseURL + infoPath }

// DownloadURL returns the raw markdown endpoint of the note.
func (c *Client) DownloadURL() string { return c.baseURL + downloadPath }

// FetchMetadata retrieves and decodes the note metadata. Transport and
// status failures are KindNetwork; an undecodable body, or one missing
// "title" or "updatetime" as strings, is KindDecode.
func (c *Client) FetchMetadata(ctx context.Context) (types.Metadata, error) {
	body, err := httputil.Get(ctx, c.http, c.InfoURL(), c.header("application/json"))
	if err != nil {
		return types.Metadata{}, err
	}
	meta, err := DecodeMetadata(body)
	if err != nil {
		return types.Metadata{}, types.NewError(types.KindDecode, "decode metadata", err)
	}
	return meta, nil
}

// FetchDocument retrieves the raw markdown body of the note.
func (c *Client) FetchDocument(ctx context.Context) ([]byte, error) {
	return httputil.Get(ctx, c.http, c.DownloadURL(), c.header("text/markdown, text/plain;q=0.9, */*;q=0.1"))
}

func (c *Client) header(accept string) http.Header {
	h := http.Header{}
	if c.userAgent != "" {
		h.Set("User-Agent", c.userAgent)
	}
	h.Set("Accept", accept)
	return h
}

// DecodeMetadata parses an info response. The required fields must be
// present and be strings; optional fields are read when they have the
// expected type and ignored otherwise, since nothing downstream relies on
// them.
func DecodeMetadata(data []byte) (types.Metadata, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return types.Metadata{}, fmt.Errorf("parsing info response: %w", err)
	}
	if fields == nil {
		return types.Metadata{}, fmt.Errorf("info response is not a JSON object")
	}

	var meta types.Metadata
	if err := requiredString(fields, "title", &meta.Title); err != nil {
		return types.Metadata{}, err
	}
	if err := requiredString(fields, "updatetime", &meta.LastModified); err != nil {
		return types.Metadata{}, err
	}

	optional(fields, "description", &meta.Description)
	optional(fields, "viewcount", &meta.ViewCount)
	optional(fields, "createtime", &meta.CreatedAt)
	return meta, nil
}

func requiredString(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("info response missing %q", key)
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("info field %q: %w", key, err)
	}
	if s == nil {
		return fmt.Errorf("info field %q is null", key)
	}
	*dst = *s
	return nil
}

func optional(fields map[string]json.RawMessage, key string, dst any) {
	if raw, ok := fields[key]; ok {
		_ = json.Unmarshal(raw, dst)
	}
}
