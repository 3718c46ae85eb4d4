package app

import (
	"strings"

	"github.com/BrandonKowalski/waypoint/internal/catalog"
	"github.com/BrandonKowalski/waypoint/internal/i18n"
)

// PatternDetailsViewModel is what the details screen shows for one pattern.
type PatternDetailsViewModel struct {
	Name         string
	Category     catalog.Category
	CategoryName string
	Description  string
	Related      []string
}

func NewPatternDetailsViewModel(p catalog.Pattern, tr *i18n.Localizer) PatternDetailsViewModel {
	return PatternDetailsViewModel{
		Name:         p.Name,
		Category:     p.Category,
		CategoryName: categoryTitle(tr, p.Category),
		Description:  p.DetailsDescription(),
		Related:      p.RelatedPatterns,
	}
}

func categoryTitle(tr *i18n.Localizer, c catalog.Category) string {
	return tr.T("category_" + strings.ToLower(c.String()))
}
