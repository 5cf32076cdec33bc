// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate the page once from the note's current revision",
	Long: `Render fetches the note, converts it and writes the output page a single
time, whatever revision was generated before. Useful to seed the page or
to check a template.`,
	RunE: runRender,
}

func init() {
	addNoteFlags(renderCmd)
	addRenderFlags(renderCmd)

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, err := newWatcher(cfg, nil, logger)
	if err != nil {
		return err
	}

	meta, err := w.Regenerate(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Written HTML file to %s (revision %s)\n", cfg.OutputPath, meta.LastModified)
	return nil
}
