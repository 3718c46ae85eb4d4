// Package waypoint is the SDL front end for router scenes of screen.Screen
// views. It handles SDL initialization, keyboard input, theming and drawing
// the layered scene a RoutingView hands it.
package waypoint

import (
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/platform/desktop"
)

// Options configures the front end initialization.
type Options struct {
	WindowTitle          string                 // Window title displayed in windowed mode
	WindowOptions        internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	PrimaryThemeColorHex uint32                 // Custom accent color; zero keeps the theme's
	FontPath             string                 // TTF font for all text; empty uses desktop.DefaultFontPath
	LogPath              string                 // Full path for log file including filename (creates parent directories)
}

// WindowOptions re-exports the SDL window flags so callers outside the
// module can fill Options.
type WindowOptions = internal.WindowOptions

// Init initializes SDL, the window, theming and fonts.
// Must be called before any other drawing function.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := desktop.InitDesktopTheme(options.FontPath)
	if options.PrimaryThemeColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources and the log file.
// Safe to call when Init was never called or failed.
func Close() {
	internal.SDLCleanup()
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first log line to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
// Nil before Init.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
