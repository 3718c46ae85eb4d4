package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/waypoint/internal/app"
	"github.com/BrandonKowalski/waypoint/internal/catalog"
	"github.com/BrandonKowalski/waypoint/internal/config"
	"github.com/BrandonKowalski/waypoint/internal/i18n"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
)

const windowTitle = "Design Patterns"

// Exit codes.
const (
	exitOK      = 0
	exitGeneral = 1
	exitConfig  = 7
	exitData    = 8
	exitRuntime = 12
)

// CLI is the command line of the pattern browser.
type CLI struct {
	Config   string `short:"c" help:"Configuration file path" type:"path"`
	Verbose  bool   `short:"v" help:"Enable verbose logging"`
	Headless bool   `help:"Read commands from stdin and print screens as text instead of opening a window"`
	Lang     string `short:"l" help:"Interface language as a BCP 47 tag (en, uk)"`
	Catalog  string `help:"Pattern catalog JSON file; the bundled catalog is used when empty" type:"path"`
	LogPath  string `help:"Also write logs to this file" type:"path"`
	Strict   bool   `help:"Exit instead of showing a message when the catalog cannot be loaded"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("waypoint"),
		kong.Description("Browse the classic design patterns."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	quit := atomic.NewBool(false)
	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			slog.Info("Received signal; shutting down")
			quit.Store(true)
			// A second signal gets the default behavior.
			stop()
		case <-finished:
		}
	}()

	err := run(ctx, cli, os.Stdin, os.Stdout, quit)
	close(finished)
	stop()
	code := exitCode(err)
	if code != exitOK {
		slog.Error("waypoint failed", "error", err, "exit_code", code)
	}
	waypoint.Close()
	os.Exit(code)
}

type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var cfgErr *configError

	switch {
	case err == nil, waypoint.IsQuit(err), errors.Is(err, context.Canceled):
		return exitOK
	case errors.As(err, &cfgErr):
		return exitConfig
	case errors.Is(err, catalog.ErrNoFile),
		errors.Is(err, catalog.ErrNoData),
		errors.Is(err, catalog.ErrDecoding),
		errors.Is(err, catalog.ErrUnknown):
		return exitData
	case waypoint.IsInfrastructureError(err):
		return exitRuntime
	default:
		return exitGeneral
	}
}

// loadConfig reads the configuration file and lets flags override it.
func loadConfig(cli CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, &configError{err: err}
	}

	if cli.Lang != "" {
		cfg.Language = cli.Lang
	}
	if cli.Catalog != "" {
		cfg.CatalogPath = cli.Catalog
	}
	if cli.LogPath != "" {
		cfg.LogPath = cli.LogPath
	}
	if cli.Verbose {
		cfg.LogLevel = "debug"
	}
	cfg.Headless = cfg.Headless || cli.Headless

	return cfg, nil
}

func run(ctx context.Context, cli CLI, in io.Reader, out io.Writer, quit *atomic.Bool) error {
	cfg, err := loadConfig(cli)
	if err != nil {
		return err
	}

	waypoint.SetLogPath(cfg.LogPath)
	waypoint.SetRawLogLevel(cfg.LogLevel)
	logger := waypoint.GetLogger()
	slog.SetDefault(logger)

	logger.Debug("Starting", "headless", cfg.Headless, "language", cfg.Language, "catalog", cfg.CatalogPath)

	tr, err := i18n.New(cfg.Language, logger)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	repo := catalog.NewRepository(cfg.CatalogPath)

	if cfg.Headless {
		renderer := app.NewTextRenderer(out, nil)
		a := app.New(repo, tr, renderer, logger)
		if err := start(ctx, a, cli.Strict, logger); err != nil {
			return err
		}
		return app.RunHeadless(ctx, a, renderer.Controller(), in, out, quit)
	}

	accent, err := cfg.Theme.AccentHex()
	if err != nil {
		return &configError{err: err}
	}

	if err := waypoint.Init(waypoint.Options{
		WindowTitle:          windowTitle,
		WindowOptions:        windowOptions(cfg.Window),
		PrimaryThemeColorHex: accent,
		FontPath:             cfg.Theme.FontPath,
	}); err != nil {
		return err
	}

	renderer := waypoint.NewSceneRenderer[app.Route](screen.NewController())
	defer renderer.Destroy()

	a := app.New(repo, tr, renderer, logger)
	if err := start(ctx, a, cli.Strict, logger); err != nil {
		return err
	}
	return renderer.Run(ctx, quit)
}

func windowOptions(w config.WindowConfig) waypoint.WindowOptions {
	return waypoint.WindowOptions{
		Borderless:        w.Borderless,
		Resizable:         w.Resizable,
		Fullscreen:        w.Fullscreen,
		FullscreenDesktop: w.FullscreenDesktop,
		Width:             w.Width,
		Height:            w.Height,
	}
}

// start shows the first scene. Catalog errors are on screen already and only
// stop the program in strict mode.
func start(ctx context.Context, a *app.App, strict bool, logger *slog.Logger) error {
	err := a.Start(ctx)
	switch {
	case err == nil:
		return nil
	case waypoint.IsInfrastructureError(err):
		return err
	case strict:
		return fmt.Errorf("load catalog: %w", err)
	default:
		logger.Warn("Continuing without a catalog", "error", err)
		return nil
	}
}
