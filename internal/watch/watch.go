// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watch implements the regeneration loop: poll the note metadata,
// regenerate the output when the revision marker changed, then wait for the
// next scheduled cycle.
package watch

import (
	"context"
	"io"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/pdiddy/hedgewatch/internal/output"
	"github.com/pdiddy/hedgewatch/internal/schedule"
	"github.com/pdiddy/hedgewatch/pkg/types"
)

// MetadataFetcher polls the note metadata.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context) (types.Metadata, error)
}

// Renderer produces the output document for a note revision.
type Renderer interface {
	Render(ctx context.Context, meta types.Metadata) (string, error)
}

// Config holds the loop settings.
type Config struct {
	// OutputPath is the file rewritten on every regeneration.
	OutputPath string

	// Schedule decides when the next cycle starts, measured from the end of
	// the previous one.
	Schedule cron.Schedule

	// Clock defaults to schedule.SystemClock.
	Clock schedule.Clock
}

// HasChanged reports whether current carries a revision marker different
// from lastSeen. The comparison is exact; an empty lastSeen therefore always
// reports a change for a real marker.
func HasChanged(current types.Metadata, lastSeen string) bool {
	return current.LastModified != lastSeen
}

// Watcher owns the last seen revision marker. It is not safe for concurrent
// use; cycles run one at a time.
type Watcher struct {
	meta     MetadataFetcher
	renderer Renderer
	writer   output.Writer
	cfg      Config
	logger   *slog.Logger

	// lastSeen is the revision that produced the file at cfg.OutputPath. It
	// starts empty and advances only after a successful write.
	lastSeen string
}

// New builds a Watcher. A nil writer selects output.FileWriter and a nil
// logger discards log output.
func New(meta MetadataFetcher, renderer Renderer, writer output.Writer, cfg Config, logger *slog.Logger) *Watcher {
	if writer == nil {
		writer = output.FileWriter{}
	}
	if cfg.Clock == nil {
		cfg.Clock = schedule.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Watcher{
		meta:     meta,
		renderer: renderer,
		writer:   writer,
		cfg:      cfg,
		logger:   logger,
	}
}

// LastSeen returns the revision marker of the most recent successful
// regeneration, or "" if none happened yet.
func (w *Watcher) LastSeen() string { return w.lastSeen }

// Cycle runs one poll. It regenerates the output only when the revision
// marker differs from the last one written and reports whether it did. Any
// error leaves the last seen marker untouched.
func (w *Watcher) Cycle(ctx context.Context) (bool, error) {
	meta, err := w.meta.FetchMetadata(ctx)
	if err != nil {
		return false, err
	}

	if !HasChanged(meta, w.lastSeen) {
		w.logger.Debug("no update", "version", meta.LastModified)
		return false, nil
	}

	w.logger.Info("update detected, generating static page", "version", meta.LastModified, "title", meta.Title)
	if err := w.regenerate(ctx, meta); err != nil {
		return false, err
	}
	return true, nil
}

// Regenerate renders and writes the current revision regardless of the last
// seen marker, and returns the metadata it rendered.
func (w *Watcher) Regenerate(ctx context.Context) (types.Metadata, error) {
	meta, err := w.meta.FetchMetadata(ctx)
	if err != nil {
		return types.Metadata{}, err
	}
	if err := w.regenerate(ctx, meta); err != nil {
		return types.Metadata{}, err
	}
	return meta, nil
}

func (w *Watcher) regenerate(ctx context.Context, meta types.Metadata) error {
	out, err := w.renderer.Render(ctx, meta)
	if err != nil {
		return err
	}
	if err := w.writer.Write(w.cfg.OutputPath, out); err != nil {
		return err
	}
	w.lastSeen = meta.LastModified
	w.logger.Info("output written", "path", w.cfg.OutputPath, "bytes", len(out))
	return nil
}

// Run cycles until ctx ends or a cycle fails. The first cycle starts
// immediately. It returns the failing cycle's error, or ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	return schedule.Run(ctx, w.cfg.Schedule, w.cfg.Clock, func(ctx context.Context) error {
		_, err := w.Cycle(ctx)
		return err
	})
}
