package app

import (
	"strings"

	"github.com/BrandonKowalski/waypoint/internal/catalog"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
)

const (
	expandedMarker  = "-"
	collapsedMarker = "+"
	checkMarker     = "*"
)

func (a *App) footer(back string, extra ...screen.FooterHelpItem) []screen.FooterHelpItem {
	items := []screen.FooterHelpItem{
		{Button: constants.VirtualButtonA, Text: a.tr.T("footer_open")},
		{Button: constants.VirtualButtonB, Text: a.tr.T(back)},
	}
	return append(items, extra...)
}

// browseButtons are the shortcuts of every browsing screen.
func (a *App) browseButtons(nav Navigator) map[constants.VirtualButton]func() {
	return map[constants.VirtualButton]func(){
		constants.VirtualButtonX:      func() { nav.RouteTo(a.About()) },
		constants.VirtualButtonY:      func() { nav.RouteTo(a.CategoryFilter()) },
		constants.VirtualButtonSelect: nav.PopToRoot,
	}
}

func (a *App) browseFooter(back string) []screen.FooterHelpItem {
	return a.footer(back,
		screen.FooterHelpItem{Button: constants.VirtualButtonX, Text: a.tr.T("footer_about")},
		screen.FooterHelpItem{Button: constants.VirtualButtonY, Text: a.tr.T("footer_filter")},
	)
}

// listScreen is the root content: every section passing the filter.
func (a *App) listScreen(nav Navigator) screen.Screen {
	vm := a.list
	sections := vm.Sections()

	s := screen.Screen{
		ID:      "patterns",
		Title:   a.tr.T("patterns_title"),
		Footer:  a.browseFooter("footer_quit"),
		Buttons: a.browseButtons(nav),
	}

	if category, ok := vm.Filter(); ok {
		s.Subtitle = a.tr.Tf("patterns_filtered_subtitle", map[string]any{
			"Count":    Count(sections),
			"Category": categoryTitle(a.tr, category),
		})
	} else if len(sections) > 0 {
		s.Subtitle = a.tr.Tf("patterns_subtitle", map[string]any{"Count": Count(sections)})
	}

	if msg := vm.Message(); msg != nil {
		s.Message = msg.Banner()
		if msg.Style == MessageError {
			id := msg.ID
			s.Items = append(s.Items, screen.MenuItem{
				Text:   a.tr.T("message_details"),
				Action: func() { nav.RouteTo(a.Message(id)) },
			})
		}
	}

	for _, section := range sections {
		id := section.ID
		marker := expandedMarker
		if !section.Expanded {
			marker = collapsedMarker
		}
		s.Items = append(s.Items, screen.MenuItem{
			Text:     section.Title,
			Detail:   marker,
			Header:   true,
			Metadata: section.ID,
			Action:   func() { vm.ToggleSection(id) },
		})
		if section.Expanded {
			s.Items = append(s.Items, a.patternItems(section.Patterns, func(p catalog.Pattern) { vm.PatternSelected(p) })...)
		}
	}

	return s
}

func (a *App) patternItems(patterns []catalog.Pattern, open func(catalog.Pattern)) []screen.MenuItem {
	items := make([]screen.MenuItem, 0, len(patterns))
	for _, p := range patterns {
		items = append(items, screen.MenuItem{
			Text:     p.Name,
			Detail:   p.ShortDescription,
			Metadata: p,
			Action:   func() { open(p) },
		})
	}
	return items
}

// categoryScreen lists the patterns of one category, pushed from a details
// screen.
func (a *App) categoryScreen(category catalog.Category, nav Navigator) screen.Screen {
	section, _ := a.list.Section(category)
	title := categoryTitle(a.tr, category)

	return screen.Screen{
		ID:       "category:" + category.String(),
		Title:    title,
		Subtitle: a.tr.Tf("patterns_filtered_subtitle", map[string]any{"Count": len(section.Patterns), "Category": title}),
		Items: a.patternItems(section.Patterns, func(p catalog.Pattern) {
			nav.RouteTo(a.PatternDetails(p.Name))
		}),
		Footer:  a.browseFooter("footer_back"),
		OnBack:  nav.Dismiss,
		Buttons: a.browseButtons(nav),
	}
}

func (a *App) detailsScreen(name string, nav Navigator) screen.Screen {
	s := screen.Screen{
		ID:      "details:" + name,
		Title:   name,
		Footer:  a.browseFooter("footer_back"),
		OnBack:  nav.Dismiss,
		Buttons: a.browseButtons(nav),
	}

	p, ok := a.list.Pattern(name)
	if !ok {
		a.logger.Warn("Pattern not found", "name", name)
		s.Message = NewErrorMessage(a.tr.T("error_unknown")).Banner()
		return s
	}

	vm := NewPatternDetailsViewModel(p, a.tr)
	s.Subtitle = a.tr.Tf("details_category", map[string]any{"Category": vm.CategoryName})
	s.Body = vm.Description

	for _, related := range vm.Related {
		if _, known := a.list.Pattern(related); !known {
			continue
		}
		s.Items = append(s.Items, screen.MenuItem{
			Text:   related,
			Detail: a.tr.T("details_related_item"),
			Action: func() { nav.RouteTo(a.PatternDetails(related)) },
		})
	}

	category := vm.Category
	s.Items = append(s.Items, screen.MenuItem{
		Text:   a.tr.Tf("details_more_in", map[string]any{"Category": vm.CategoryName}),
		Action: func() { nav.RouteTo(a.PatternList(category)) },
	})

	return s
}

func (a *App) aboutScreen(nav Navigator) screen.Screen {
	return screen.Screen{
		ID:    "about",
		Title: a.tr.T("about_title"),
		Body:  a.tr.T("about_body"),
		Items: []screen.MenuItem{{
			Text:   a.tr.T("filter_title"),
			Action: func() { nav.RouteTo(a.CategoryFilter()) },
		}},
		Footer: a.footer("footer_dismiss"),
		OnBack: nav.Dismiss,
	}
}

// filterScreen picks the category the root list is limited to. Choosing an
// entry applies it and closes the sheet.
func (a *App) filterScreen(nav Navigator) screen.Screen {
	vm := a.list
	current, filtered := vm.Filter()

	mark := func(on bool) string {
		if on {
			return checkMarker
		}
		return ""
	}

	items := []screen.MenuItem{{
		Text:   a.tr.T("category_all"),
		Detail: mark(!filtered),
		Action: func() {
			vm.ClearFilter()
			nav.Dismiss()
		},
	}}
	for _, category := range catalog.Categories() {
		items = append(items, screen.MenuItem{
			Text:   categoryTitle(a.tr, category),
			Detail: mark(filtered && current == category),
			Action: func() {
				vm.SetFilter(category)
				nav.Dismiss()
			},
		})
	}

	return screen.Screen{
		ID:     "filter",
		Title:  a.tr.T("filter_title"),
		Items:  items,
		Footer: a.footer("footer_dismiss"),
		OnBack: nav.Dismiss,
	}
}

func (a *App) messageScreen(id string, nav Navigator) screen.Screen {
	msg, ok := a.Lookup(id)
	if !ok {
		msg = NewErrorMessage(a.tr.T("error_unknown"))
	}

	return screen.Screen{
		ID:     "message:" + id,
		Title:  a.tr.T("message_title"),
		Body:   strings.TrimSpace(msg.Text),
		Footer: []screen.FooterHelpItem{{Button: constants.VirtualButtonB, Text: a.tr.T("footer_dismiss")}},
		OnBack: nav.Dismiss,
	}
}
