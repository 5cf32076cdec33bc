// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the plain GET helper shared by the note client.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/hedgewatch/pkg/types"
)

// MaxBodyBytes caps how much of a response body Get will read. Notes larger
// than this are refused rather than read into memory.
var MaxBodyBytes int64 = 32 << 20

// ErrBodyTooLarge is wrapped by the error Get returns for a response body
// over MaxBodyBytes.
var ErrBodyTooLarge = errors.New("response body too large")

// Get issues a single GET request for rawURL with the given headers and
// returns the response body. It never retries.
//
// Every failure is a types.KindNetwork error: an unbuildable request, a
// transport error or timeout, a status outside 2xx, or a body that cannot be
// read in full. An oversized body also wraps ErrBodyTooLarge. The body of a
// failed response is drained and closed before returning.
func Get(ctx context.Context, client *http.Client, rawURL string, header http.Header) ([]byte, error) {
	op := "GET " + rawURL

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, types.NewError(types.KindNetwork, op, fmt.Errorf("creating request: %w", err))
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, types.NewError(types.KindNetwork, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, types.NewError(types.KindNetwork, op, fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, types.NewError(types.KindNetwork, op, fmt.Errorf("reading body: %w", err))
	}
	if int64(len(body)) > MaxBodyBytes {
		return nil, types.NewError(types.KindNetwork, op, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, MaxBodyBytes))
	}
	return body, nil
}
