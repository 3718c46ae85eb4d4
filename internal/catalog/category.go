package catalog

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Category groups patterns in the catalog.
type Category int

const (
	Creational Category = iota
	Structural
	Behavioral
	Architectural
)

var categoryNames = map[Category]string{
	Creational:    "Creational",
	Structural:    "Structural",
	Behavioral:    "Behavioral",
	Architectural: "Architectural",
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Creational, Structural, Behavioral, Architectural}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// SortOrder is the position of the category's section in the pattern list.
func (c Category) SortOrder() int {
	return int(c)
}

// ParseCategory maps a catalog category name to a Category.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

func (c Category) MarshalJSON() ([]byte, error) {
	name, ok := categoryNames[c]
	if !ok {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return json.Marshal(name)
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
