// Package desktop provides the default theme for desktop windows.
package desktop

import (
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
)

// DefaultFontPath is used when no font is configured.
const DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

// InitDesktopTheme creates a dark theme with the specified font.
func InitDesktopTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}
	return internal.Theme{
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		AccentColor:          internal.HexToColor(0x008080),
		ButtonLabelColor:     internal.HexToColor(0x000000),
		HintColor:            internal.HexToColor(0x9A9A9A),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		BackgroundColor:      internal.HexToColor(0x121212),
		SheetColor:           internal.HexToColor(0x2A2A2A),
		ErrorColor:           internal.HexToColor(0xB00020),
		FontPath:             fontPath,
	}
}
