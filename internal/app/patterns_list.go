package app

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/waypoint/internal/catalog"
	"github.com/BrandonKowalski/waypoint/internal/i18n"
)

// Section is one category group of the pattern list.
type Section struct {
	ID       string
	Category catalog.Category
	Title    string
	Patterns []catalog.Pattern
	Expanded bool
}

// PatternsListViewModel holds the state of the pattern list: the sections
// loaded from the catalog, the category filter and the message banner.
type PatternsListViewModel struct {
	repo   catalog.Repository
	tr     *i18n.Localizer
	logger *slog.Logger

	nav      Navigator
	details  func(name string) Route
	onChange func()

	sections []Section
	message  *AppMessage
	filter   *catalog.Category
}

// LoadPatterns reads the catalog and groups it into one expanded section per
// category, in category order. A failure replaces the sections with an error
// message and is returned. Dependents are notified once the load is done.
func (vm *PatternsListViewModel) LoadPatterns(ctx context.Context) error {
	err := vm.load(ctx)
	vm.changed()
	return err
}

// load is LoadPatterns without the change notification.
func (vm *PatternsListViewModel) load(ctx context.Context) error {
	patterns, err := vm.repo.Patterns(ctx)
	if err != nil {
		vm.logger.Error("Failed to load patterns", "error", err)
		msg := NewErrorMessage(vm.errorText(err))
		vm.message = &msg
		vm.sections = nil
		return err
	}

	grouped := make(map[catalog.Category][]catalog.Pattern)
	for _, p := range patterns {
		grouped[p.Category] = append(grouped[p.Category], p)
	}

	sections := make([]Section, 0, len(grouped))
	for category, items := range grouped {
		sections = append(sections, Section{
			ID:       uuid.NewString(),
			Category: category,
			Title:    categoryTitle(vm.tr, category),
			Patterns: items,
			Expanded: true,
		})
	}
	sort.Slice(sections, func(i, j int) bool {
		return sections[i].Category.SortOrder() < sections[j].Category.SortOrder()
	})

	vm.sections = sections
	vm.message = nil
	vm.logger.Debug("Loaded patterns", "patterns", len(patterns), "sections", len(sections))
	return nil
}

func (vm *PatternsListViewModel) errorText(err error) string {
	switch {
	case errors.Is(err, catalog.ErrNoFile):
		return vm.tr.T("error_no_file")
	case errors.Is(err, catalog.ErrNoData):
		return vm.tr.T("error_no_data")
	case errors.Is(err, catalog.ErrDecoding):
		return vm.tr.T("error_decoding")
	default:
		return vm.tr.T("error_unknown")
	}
}

// Sections returns the sections passing the category filter.
func (vm *PatternsListViewModel) Sections() []Section {
	if vm.filter == nil {
		return vm.sections
	}
	for _, s := range vm.sections {
		if s.Category == *vm.filter {
			return []Section{s}
		}
	}
	return nil
}

// Section returns the section of category regardless of the filter.
func (vm *PatternsListViewModel) Section(category catalog.Category) (Section, bool) {
	for _, s := range vm.sections {
		if s.Category == category {
			return s, true
		}
	}
	return Section{}, false
}

// Message returns the banner shown above the list, if any.
func (vm *PatternsListViewModel) Message() *AppMessage {
	return vm.message
}

// ToggleSection expands or collapses the section with id. It reports whether
// the section exists.
func (vm *PatternsListViewModel) ToggleSection(id string) bool {
	for i := range vm.sections {
		if vm.sections[i].ID == id {
			vm.sections[i].Expanded = !vm.sections[i].Expanded
			vm.changed()
			return true
		}
	}
	return false
}

// PatternSelected opens the details of p.
func (vm *PatternsListViewModel) PatternSelected(p catalog.Pattern) {
	vm.nav.RouteTo(vm.details(p.Name))
}

// Filter returns the category the list is limited to.
func (vm *PatternsListViewModel) Filter() (catalog.Category, bool) {
	if vm.filter == nil {
		return 0, false
	}
	return *vm.filter, true
}

// SetFilter limits the list to category.
func (vm *PatternsListViewModel) SetFilter(category catalog.Category) {
	vm.filter = &category
	vm.changed()
}

// ClearFilter shows every category again.
func (vm *PatternsListViewModel) ClearFilter() {
	vm.filter = nil
	vm.changed()
}

// Pattern finds a loaded pattern by name.
func (vm *PatternsListViewModel) Pattern(name string) (catalog.Pattern, bool) {
	for _, s := range vm.sections {
		for _, p := range s.Patterns {
			if p.Name == name {
				return p, true
			}
		}
	}
	return catalog.Pattern{}, false
}

// Count returns the number of patterns in sections.
func Count(sections []Section) int {
	n := 0
	for _, s := range sections {
		n += len(s.Patterns)
	}
	return n
}

func (vm *PatternsListViewModel) changed() {
	if vm.onChange != nil {
		vm.onChange()
	}
}
