package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/waypoint/internal/catalog"
	"github.com/BrandonKowalski/waypoint/internal/config"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "success", err: nil, want: exitOK},
		{name: "user quit", err: fmt.Errorf("run: %w", waypoint.ErrQuit), want: exitOK},
		{name: "cancelled", err: context.Canceled, want: exitOK},
		{name: "config", err: &configError{err: errors.New("bad")}, want: exitConfig},
		{name: "catalog", err: fmt.Errorf("load catalog: %w", catalog.ErrDecoding), want: exitData},
		{name: "infrastructure", err: waypoint.NewInfrastructureError("init", errors.New("no display")), want: exitRuntime},
		{name: "other", err: errors.New("boom"), want: exitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	cfg, err := loadConfig(CLI{
		Lang:     "uk",
		Catalog:  "custom.json",
		LogPath:  "/tmp/waypoint.log",
		Verbose:  true,
		Headless: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "uk", cfg.Language)
	assert.Equal(t, "custom.json", cfg.CatalogPath)
	assert.Equal(t, "/tmp/waypoint.log", cfg.LogPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Headless)
}

func TestWindowOptions(t *testing.T) {
	got := windowOptions(config.WindowConfig{
		Borderless:        true,
		FullscreenDesktop: true,
		Width:             800,
		Height:            600,
	})

	assert.Equal(t, waypoint.WindowOptions{
		Borderless:        true,
		FullscreenDesktop: true,
		Width:             800,
		Height:            600,
	}, got)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(CLI{Config: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Equal(t, exitConfig, exitCode(err))
}

func TestRun_Headless(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("open 2\nback\nquit\n")

	err := run(context.Background(), CLI{Headless: true}, in, &out, atomic.NewBool(false))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "# Design Patterns")
	assert.Contains(t, out.String(), "# Factory Method")
}

func TestRun_StrictCatalogFailure(t *testing.T) {
	var out bytes.Buffer
	cli := CLI{Headless: true, Strict: true, Catalog: filepath.Join(t.TempDir(), "missing.json")}

	err := run(context.Background(), cli, strings.NewReader(""), &out, nil)
	require.ErrorIs(t, err, catalog.ErrNoFile)
	assert.Equal(t, exitData, exitCode(err))
	assert.Contains(t, out.String(), "The pattern catalog file was not found.")
}

func TestRun_LenientCatalogFailure(t *testing.T) {
	var out bytes.Buffer
	cli := CLI{Headless: true, Catalog: filepath.Join(t.TempDir(), "missing.json")}

	err := run(context.Background(), cli, strings.NewReader("open 1\nquit\n"), &out, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "# Something went wrong")
}
