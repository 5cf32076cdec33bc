// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/hedgewatch/pkg/types"
)

const (
	defaultTemplatePath = "template.html"
	defaultOutputPath   = "index.html"
	defaultFrequency    = 600 // seconds
	defaultTimeout      = 60 * time.Second
	defaultUserAgent    = "hedgewatch/0.1"
)

// addNoteFlags registers the flags every command that talks to the note needs.
func addNoteFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("url", "u", "", "URL of the HedgeDoc note (required)")
	cmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
}

// addRenderFlags registers the flags of commands that write the output page.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("template-path", "t", defaultTemplatePath, "path to the HTML template")
	cmd.Flags().StringP("output-path", "o", defaultOutputPath, "path to the HTML output document")
	cmd.Flags().Bool("strip-frontmatter", false, "remove a leading YAML frontmatter block before conversion")
}

// loadConfig resolves the watch configuration from flags, environment and
// config file, in that order of precedence.
func loadConfig() (types.WatchConfig, error) {
	cfg := types.WatchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: defaultUserAgent,
		},
		RenderConfig: types.RenderConfig{
			TemplatePath:     viper.GetString("template-path"),
			OutputPath:       viper.GetString("output-path"),
			StripFrontmatter: viper.GetBool("strip-frontmatter"),
		},
		URL:  strings.TrimSpace(viper.GetString("url")),
		Cron: strings.TrimSpace(viper.GetString("cron")),
	}

	if cfg.URL == "" {
		return cfg, fmt.Errorf("--url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.TemplatePath == "" {
		cfg.TemplatePath = defaultTemplatePath
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaultOutputPath
	}

	return cfg, nil
}

// applyFrequency sets cfg.Interval from --frequency. Only watch polls, so
// only watch calls it. A non-positive value is accepted when --cron
// replaces the interval.
func applyFrequency(cfg *types.WatchConfig) error {
	freq := defaultFrequency
	if viper.IsSet("frequency") {
		freq = viper.GetInt("frequency")
	}
	if freq <= 0 && cfg.Cron == "" {
		return fmt.Errorf("--frequency must be a positive number of seconds, got %d", freq)
	}
	cfg.Interval = time.Duration(freq) * time.Second
	return nil
}

func newHTTPClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// newLogger builds the process logger from --log-level and --log-format.
func newLogger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	if s := viper.GetString("log-level"); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	opts := &slog.HandlerOptions{Level: level}

	switch format := viper.GetString("log-format"); format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: must be text or json", format)
	}
}
