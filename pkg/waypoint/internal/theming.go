package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the front end.
type Theme struct {
	HighlightColor       sdl.Color // Focused item background
	AccentColor          sdl.Color // Section headers, footer button pills
	ButtonLabelColor     sdl.Color // Button label text (inside pills)
	TextColor            sdl.Color // Default text color
	HighlightedTextColor sdl.Color // Text on the focused item
	HintColor            sdl.Color // Subtitles, footer text
	BackgroundColor      sdl.Color // Screen background color
	SheetColor           sdl.Color // Sheet panel background
	ErrorColor           sdl.Color // Error banner background
	FontPath             string    // Path to the UI font
}

var currentTheme Theme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
