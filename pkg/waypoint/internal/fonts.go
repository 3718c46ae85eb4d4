package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSizes are the point sizes of the three UI fonts.
type FontSizes struct {
	Large  int
	Medium int
	Small  int
}

// DefaultFontSizes suit a 1024x768 window.
var DefaultFontSizes = FontSizes{
	Large:  40,
	Medium: 28,
	Small:  20,
}

// FontSet holds the loaded UI fonts.
type FontSet struct {
	LargeFont  *ttf.Font
	MediumFont *ttf.Font
	SmallFont  *ttf.Font
	Sizes      FontSizes
}

// Fonts is the font set loaded by Init.
var Fonts FontSet

func initFonts(path string, sizes FontSizes) error {
	large, err := ttf.OpenFont(path, sizes.Large)
	if err != nil {
		return fmt.Errorf("open font %q: %w", path, err)
	}
	medium, err := ttf.OpenFont(path, sizes.Medium)
	if err != nil {
		large.Close()
		return fmt.Errorf("open font %q: %w", path, err)
	}
	small, err := ttf.OpenFont(path, sizes.Small)
	if err != nil {
		large.Close()
		medium.Close()
		return fmt.Errorf("open font %q: %w", path, err)
	}

	Fonts = FontSet{
		LargeFont:  large,
		MediumFont: medium,
		SmallFont:  small,
		Sizes:      sizes,
	}
	return nil
}

func closeFonts() {
	for _, font := range []*ttf.Font{Fonts.LargeFont, Fonts.MediumFont, Fonts.SmallFont} {
		if font != nil {
			font.Close()
		}
	}
	Fonts = FontSet{}
}
