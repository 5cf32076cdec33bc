// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds HTTP settings for requests to the note service.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. It is the only network timeout
	// applied to a cycle.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "hedgewatch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RenderConfig holds settings for turning a note into the output document.
type RenderConfig struct {
	// TemplatePath is the HTML template containing {document} and {title}.
	TemplatePath string `json:"template_path" yaml:"template_path"`

	// OutputPath is the file overwritten on every regeneration.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// StripFrontmatter removes a leading YAML frontmatter block from the
	// note before conversion.
	StripFrontmatter bool `json:"strip_frontmatter" yaml:"strip_frontmatter"`
}

// WatchConfig groups everything the watch loop needs.
type WatchConfig struct {
	HTTPConfig   `yaml:",inline"`
	RenderConfig `yaml:",inline"`

	// URL is the base URL of the HedgeDoc note (required).
	URL string `json:"url" yaml:"url"`

	// Interval is the fixed delay between the end of one cycle and the start
	// of the next (default 600s).
	Interval time.Duration `json:"interval" yaml:"interval"`

	// Cron optionally replaces Interval with a cron expression such as
	// "*/5 * * * *" or "@hourly".
	Cron string `json:"cron,omitempty" yaml:"cron,omitempty"`
}
