// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the hedgewatch CLI, which keeps a
// static HTML page in sync with a HedgeDoc note.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the hedgewatch CLI.
var rootCmd = &cobra.Command{
	Use:   "hedgewatch",
	Short: "Render a HedgeDoc note into a static HTML page and keep it current",
	Long: `hedgewatch polls a HedgeDoc note, and whenever its revision changes it
downloads the markdown, converts it to HTML and writes it into an HTML
template. The template's {document} token receives the note body and its
{title} token the note title.

Every flag can also be set in hedgewatch.yaml or through HEDGEWATCH_*
environment variables (e.g. HEDGEWATCH_URL).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		return viper.BindPFlags(cmd.InheritedFlags())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./hedgewatch.yaml or ~/.config/hedgewatch/hedgewatch.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hedgewatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "hedgewatch"))
		}
	}

	viper.SetEnvPrefix("HEDGEWATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
