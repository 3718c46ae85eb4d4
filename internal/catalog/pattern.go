// Package catalog loads the design pattern catalog the application browses.
package catalog

import "strings"

// Pattern is one entry of the catalog.
type Pattern struct {
	Name             string   `json:"name"`
	Category         Category `json:"category"`
	ShortDescription string   `json:"shortDescription"`
	Intent           string   `json:"intent"`
	Applicability    string   `json:"applicability"`
	Structure        string   `json:"structure"`
	Participants     []string `json:"participants"`
	Collaboration    string   `json:"collaboration,omitempty"`
	Implementation   string   `json:"implementation"`
	KnownUses        []string `json:"knownUses"`
	RelatedPatterns  []string `json:"relatedPatterns"`
}

// DetailsDescription is the text shown on the pattern's details screen.
func (p Pattern) DetailsDescription() string {
	participants := "Pattern participants: \n-" + strings.Join(p.Participants, "\n-")

	return strings.Join([]string{
		p.ShortDescription,
		p.Intent,
		p.Applicability,
		p.Structure,
		participants,
		p.Collaboration,
		p.Implementation,
	}, "\n")
}
