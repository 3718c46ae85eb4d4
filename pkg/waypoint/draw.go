package waypoint

import (
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	marginSize   int32 = 20
	footerHeight int32 = 50
	dimAlpha     uint8 = 160
)

// painter draws one frame. It holds nothing across frames except the
// texture cache it was given.
type painter struct {
	renderer *sdl.Renderer
	cache    *internal.TextureCache
	theme    internal.Theme
	width    int32
	height   int32
}

func (p *painter) fill(rect sdl.Rect, color sdl.Color) {
	p.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	p.renderer.FillRect(&rect)
}

// text draws one line and returns its height. align positions x as the
// left edge, the center or the right edge of the line.
func (p *painter) text(font *ttf.Font, size int, line string, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if line == "" || font == nil {
		return 0
	}

	tex, err := p.cache.Text(p.renderer, font, size, line, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to draw text", "text", line, "error", err)
		return 0
	}

	switch align {
	case constants.TextAlignCenter:
		x -= tex.W / 2
	case constants.TextAlignRight:
		x -= tex.W
	}

	p.renderer.Copy(tex.Texture, nil, &sdl.Rect{X: x, Y: y, W: tex.W, H: tex.H})
	return tex.H
}

// wrap breaks line into pieces no wider than maxWidth.
func wrap(font *ttf.Font, line string, maxWidth int32) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		width, _, err := font.SizeUTF8(candidate)
		if err == nil && int32(width) > maxWidth && current != "" {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// measure returns the rendered width of a line in font.
func measure(font *ttf.Font) func(string) int32 {
	return func(line string) int32 {
		w, _, err := font.SizeUTF8(line)
		if err != nil {
			return 0
		}
		return int32(w)
	}
}

// ellipsize shortens line to fit maxWidth, ending it with an ellipsis.
// It returns "" when not even the ellipsis fits.
func ellipsize(line string, maxWidth int32, width func(string) int32) string {
	if width(line) <= maxWidth {
		return line
	}

	const ellipsis = "…"
	runes := []rune(line)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := strings.TrimRight(string(runes[:n]), " ") + ellipsis
		if width(candidate) <= maxWidth {
			return candidate
		}
	}
	if width(ellipsis) <= maxWidth {
		return ellipsis
	}
	return ""
}

// dim darkens everything drawn so far.
func (p *painter) dim() {
	p.fill(sdl.Rect{W: p.width, H: p.height}, sdl.Color{A: dimAlpha})
}

// screen draws s inside bounds. focused is the highlighted item, -1 for none.
func (p *painter) screen(s screen.Screen, bounds sdl.Rect, background sdl.Color, focused int) {
	fonts := internal.Fonts
	p.fill(bounds, background)

	area := internal.UniformPadding(marginSize).Inset(bounds)
	bottom := area.Y + area.H - footerHeight
	y := area.Y

	y += p.text(fonts.LargeFont, fonts.Sizes.Large, s.Title, area.X, y, p.theme.TextColor, constants.TextAlignLeft)
	y += constants.DefaultTitleSpacing
	if s.Subtitle != "" {
		y += p.text(fonts.SmallFont, fonts.Sizes.Small, s.Subtitle, area.X, y, p.theme.HintColor, constants.TextAlignLeft)
		y += constants.DefaultTitleSpacing
	}

	if s.Message != nil && s.Message.Text != "" {
		y = p.banner(*s.Message, area, y)
	}

	y = p.items(s.Items, area, y, bottom, focused)

	if fonts.SmallFont != nil {
		lineHeight := int32(fonts.SmallFont.Height())
		for _, raw := range s.BodyLines() {
			for _, line := range wrap(fonts.SmallFont, raw, area.W) {
				if y+lineHeight > bottom {
					break
				}
				p.text(fonts.SmallFont, fonts.Sizes.Small, line, area.X, y, p.theme.TextColor, constants.TextAlignLeft)
				y += lineHeight
			}
		}
	}

	p.footer(s.Footer, area, bottom)
}

func (p *painter) banner(msg screen.Message, area sdl.Rect, y int32) int32 {
	color := p.theme.AccentColor
	if msg.Style == screen.MessageError {
		color = p.theme.ErrorColor
	}

	fonts := internal.Fonts
	if fonts.SmallFont == nil {
		return y
	}

	lineHeight := int32(fonts.SmallFont.Height())
	height := lineHeight + 4*constants.DefaultTitleSpacing

	p.fill(sdl.Rect{X: area.X, Y: y, W: area.W, H: height}, color)
	p.text(fonts.SmallFont, fonts.Sizes.Small, msg.Text, area.X+marginSize/2, y+(height-lineHeight)/2, p.theme.TextColor, constants.TextAlignLeft)
	return y + height + constants.DefaultTitleSpacing
}

// items draws the menu rows that fit between y and bottom, scrolled so the
// focused row is visible.
func (p *painter) items(items []screen.MenuItem, area sdl.Rect, y, bottom int32, focused int) int32 {
	fonts := internal.Fonts
	if len(items) == 0 || fonts.MediumFont == nil {
		return y
	}

	rowHeight := constants.DefaultItemSpacing
	visible := int((bottom - y) / rowHeight)
	if visible < 1 {
		return y
	}

	first := 0
	if focused >= visible {
		first = focused - visible + 1
	}

	for i := first; i < len(items) && i < first+visible; i++ {
		item := items[i]
		row := sdl.Rect{X: area.X, Y: y, W: area.W, H: rowHeight}
		textY := y + (rowHeight-int32(fonts.MediumFont.Height()))/2

		color := p.theme.TextColor
		switch {
		case i == focused:
			p.fill(row, p.theme.HighlightColor)
			color = p.theme.HighlightedTextColor
		case item.Header:
			color = p.theme.AccentColor
		case item.Disabled:
			color = p.theme.HintColor
		}

		p.text(fonts.MediumFont, fonts.Sizes.Medium, item.Text, row.X+marginSize/2, textY, color, constants.TextAlignLeft)
		if item.Detail != "" && fonts.SmallFont != nil {
			room := row.W - marginSize - measure(fonts.MediumFont)(item.Text) - marginSize
			detail := ellipsize(item.Detail, room, measure(fonts.SmallFont))
			p.text(fonts.SmallFont, fonts.Sizes.Small, detail, row.X+row.W-marginSize/2, textY, color, constants.TextAlignRight)
		}
		y += rowHeight
	}

	return y + constants.DefaultTitleSpacing
}

// footer draws button pills and their labels left to right.
func (p *painter) footer(help []screen.FooterHelpItem, area sdl.Rect, top int32) {
	fonts := internal.Fonts
	if len(help) == 0 || fonts.SmallFont == nil {
		return
	}

	lineHeight := int32(fonts.SmallFont.Height())
	y := top + (footerHeight-lineHeight)/2
	x := area.X

	for _, item := range help {
		label := item.Button.GetName()
		w, _, err := fonts.SmallFont.SizeUTF8(label)
		if err != nil {
			continue
		}
		pill := sdl.Rect{X: x, Y: y - 4, W: int32(w) + 16, H: lineHeight + 8}
		p.fill(pill, p.theme.AccentColor)
		p.text(fonts.SmallFont, fonts.Sizes.Small, label, x+8, y, p.theme.ButtonLabelColor, constants.TextAlignLeft)
		x += pill.W + 8

		tw, _, err := fonts.SmallFont.SizeUTF8(item.Text)
		if err != nil {
			continue
		}
		p.text(fonts.SmallFont, fonts.Sizes.Small, item.Text, x, y, p.theme.HintColor, constants.TextAlignLeft)
		x += int32(tw) + 2*marginSize
	}
}
