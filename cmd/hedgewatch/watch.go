// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/pdiddy/hedgewatch/internal/hedgedoc"
	"github.com/pdiddy/hedgewatch/internal/output"
	"github.com/pdiddy/hedgewatch/internal/render"
	"github.com/pdiddy/hedgewatch/internal/schedule"
	"github.com/pdiddy/hedgewatch/internal/watch"
	"github.com/pdiddy/hedgewatch/pkg/types"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the note and regenerate the page whenever it changes",
	Long: `Watch loads the template once, then polls the note's metadata. The first
poll always generates the page; later polls regenerate it only when the
note's revision marker differs from the one last written. Between polls it
waits --frequency seconds, counted from the end of the previous poll, or
until the next match of --cron when that is set.

The page is replaced through a temporary file created next to it, so the
output directory must be writable, not just the output file. When the
output path is a symlink, the file it points to is replaced instead.

Any failure while polling, downloading, converting or writing stops the
watcher with a non-zero exit status.`,
	RunE: runWatch,
}

func init() {
	addNoteFlags(watchCmd)
	addRenderFlags(watchCmd)
	watchCmd.Flags().IntP("frequency", "f", defaultFrequency, "seconds to wait between polls")
	watchCmd.Flags().String("cron", "", "cron expression replacing --frequency (e.g. \"*/5 * * * *\" or \"@hourly\")")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyFrequency(&cfg); err != nil {
		return err
	}
	sched, err := schedule.New(cfg.Interval, cfg.Cron)
	if err != nil {
		return err
	}

	w, err := newWatcher(cfg, sched, logger)
	if err != nil {
		return err
	}

	logger.Info("watching note", "url", cfg.URL, "output", cfg.OutputPath, "interval", cfg.Interval, "cron", cfg.Cron)

	ctx := cmd.Context()
	err = w.Run(ctx)
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		logger.Info("stopped", "last_version", w.LastSeen())
		return nil
	}
	return err
}

// newWatcher loads the template and wires the note client, renderer and
// file writer. A template that cannot be loaded is a startup error.
func newWatcher(cfg types.WatchConfig, sched cron.Schedule, logger *slog.Logger) (*watch.Watcher, error) {
	tmpl, err := render.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}

	client := hedgedoc.NewClient(newHTTPClient(cfg.HTTPConfig), cfg.URL, cfg.HTTPConfig)
	renderer := render.New(client, render.NewGoldmarkConverter(), tmpl, cfg.RenderConfig)

	return watch.New(client, renderer, output.FileWriter{}, watch.Config{
		OutputPath: cfg.OutputPath,
		Schedule:   sched,
	}, logger), nil
}
