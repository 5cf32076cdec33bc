// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/hedgewatch/pkg/types"
)

// executeCommand runs the CLI with args against fresh viper and flag state.
func executeCommand(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// newNote serves a note at /n/abc; onInfo runs on every info request.
func newNote(t *testing.T, onInfo func(n int32)) *httptest.Server {
	t.Helper()
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/n/abc/info", func(w http.ResponseWriter, _ *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if onInfo != nil {
			onInfo(n)
		}
		fmt.Fprint(w, `{"title":"Handbook","description":"How we work","viewcount":3,"createtime":"c0","updatetime":"v1"}`)
	})
	mux.HandleFunc("/n/abc/download", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "# Hi")
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "template.html")
	require.NoError(t, os.WriteFile(path, []byte("<h1>{title}</h1><body>{document}</body>"), 0o644))
	return path
}

func TestRenderCommand(t *testing.T) {
	ts := newNote(t, nil)
	dir := t.TempDir()
	tmpl := writeTemplate(t, dir)
	outPath := filepath.Join(dir, "index.html")

	out, err := executeCommand(t, context.Background(), "render", "--url", ts.URL+"/n/abc/", "-t", tmpl, "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Written HTML file to "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Handbook</h1><body><h1>Hi</h1>\n</body>", string(data))
}

func TestInfoCommand(t *testing.T) {
	ts := newNote(t, nil)

	out, err := executeCommand(t, context.Background(), "info", "-u", ts.URL+"/n/abc")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Handbook")
	assert.Contains(t, out, "updatetime: v1")

	out, err = executeCommand(t, context.Background(), "info", "-u", ts.URL+"/n/abc", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"updatetime": "v1"`)
}

func TestWatchCommand_MissingURL(t *testing.T) {
	_, err := executeCommand(t, context.Background(), "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--url is required")
}

func TestWatchCommand_MissingTemplateIsStartupError(t *testing.T) {
	var polled int32
	ts := newNote(t, func(int32) { atomic.AddInt32(&polled, 1) })
	dir := t.TempDir()

	_, err := executeCommand(t, context.Background(), "watch", "-u", ts.URL+"/n/abc",
		"-t", filepath.Join(dir, "missing.html"), "-o", filepath.Join(dir, "index.html"))
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindStartup))
	assert.Zero(t, atomic.LoadInt32(&polled), "loop is never entered")
}

func TestWatchCommand_InvalidFrequency(t *testing.T) {
	_, err := executeCommand(t, context.Background(), "watch", "-u", "http://example.invalid/n/abc", "-f", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--frequency")
}

func TestWatchCommand_WriteFailureIsFatal(t *testing.T) {
	ts := newNote(t, nil)
	dir := t.TempDir()
	tmpl := writeTemplate(t, dir)

	_, err := executeCommand(t, context.Background(), "watch", "-u", ts.URL+"/n/abc",
		"-t", tmpl, "-o", filepath.Join(dir, "missing-dir", "index.html"))
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindWrite))
}

func TestWatchCommand_StopsCleanlyOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ts := newNote(t, func(n int32) {
		if n == 2 {
			cancel()
		}
	})
	dir := t.TempDir()
	tmpl := writeTemplate(t, dir)
	outPath := filepath.Join(dir, "index.html")

	_, err := executeCommand(t, ctx, "watch", "-u", ts.URL+"/n/abc", "-t", tmpl, "-o", outPath, "-f", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Handbook</h1><body><h1>Hi</h1>\n</body>", string(data))
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "hedgewatch dev\n", out)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("HEDGEWATCH_URL", "https://md.example.org/n/abc")
	t.Setenv("HEDGEWATCH_FREQUENCY", "30")
	initConfig()

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.NoError(t, applyFrequency(&cfg))
	assert.Equal(t, "https://md.example.org/n/abc", cfg.URL)
	assert.Equal(t, "30s", cfg.Interval.String())
	assert.Equal(t, defaultTemplatePath, cfg.TemplatePath)
	assert.Equal(t, defaultOutputPath, cfg.OutputPath)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
}

func TestInfoCommand_IgnoresFrequency(t *testing.T) {
	ts := newNote(t, nil)
	t.Setenv("HEDGEWATCH_FREQUENCY", "0")

	out, err := executeCommand(t, context.Background(), "info", "-u", ts.URL+"/n/abc")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Handbook")
}

func TestApplyFrequency(t *testing.T) {
	viper.Reset()
	cfg := types.WatchConfig{}
	require.NoError(t, applyFrequency(&cfg))
	assert.Equal(t, "10m0s", cfg.Interval.String())

	viper.Set("frequency", 0)
	assert.Error(t, applyFrequency(&cfg))

	cfg.Cron = "@hourly"
	assert.NoError(t, applyFrequency(&cfg))
}
