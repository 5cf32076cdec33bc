// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/hedgewatch/internal/hedgedoc"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the note's metadata",
	Long: `Info fetches the note's metadata (title, revision marker, description,
view count) and prints it as YAML, or as JSON with --json. It does not
touch the output page.`,
	RunE: runInfo,
}

func init() {
	addNoteFlags(infoCmd)
	infoCmd.Flags().Bool("json", false, "output metadata as JSON")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := hedgedoc.NewClient(newHTTPClient(cfg.HTTPConfig), cfg.URL, cfg.HTTPConfig)
	meta, err := client.FetchMetadata(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}

	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	_, err = out.Write(data)
	return err
}
