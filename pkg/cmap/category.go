package cmap

import (
	"encoding/json"
	"fmt"
)

// DataCategory classifies a colormap by the kind of data it should be used
// for. The categories follow Peter Kovesi's CET classification, the
// Matplotlib tutorial and ColorBrewer.
type DataCategory int

const (
	// CategorySequential maps change in lightness, often using a single hue.
	// Use for data that has an ordering.
	CategorySequential DataCategory = iota + 1
	// CategoryCyclic maps wrap around at the endpoints. Use for phase
	// angles, wind direction, time of day.
	CategoryCyclic
	// CategoryDiverging maps have two hues meeting at an unsaturated middle.
	// Use for data with a critical middle value.
	CategoryDiverging
	// CategoryQualitative maps are miscellaneous colors. Use for data
	// without ordering or relationships.
	CategoryQualitative
	// CategoryOther holds maps that fit none of the above, including the
	// classic rainbow maps.
	CategoryOther
)

var categoryNames = map[DataCategory]string{
	CategorySequential:  "Sequential",
	CategoryCyclic:      "Cyclic",
	CategoryDiverging:   "Diverging",
	CategoryQualitative: "Qualitative",
	CategoryOther:       "Other",
}

var categoriesByName = map[string]DataCategory{
	"Sequential":  CategorySequential,
	"Cyclic":      CategoryCyclic,
	"Diverging":   CategoryDiverging,
	"Qualitative": CategoryQualitative,
	"Other":       CategoryOther,
}

// AllDataCategories returns every category in declaration order.
func AllDataCategories() []DataCategory {
	return []DataCategory{
		CategorySequential, CategoryCyclic, CategoryDiverging,
		CategoryQualitative, CategoryOther,
	}
}

func (c DataCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("DataCategory(%d)", int(c))
}

// ParseDataCategory converts a category name to its DataCategory value.
func ParseDataCategory(name string) (DataCategory, error) {
	if c, ok := categoriesByName[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown category: %q", name)
}

// MarshalJSON encodes the category by name.
func (c DataCategory) MarshalJSON() ([]byte, error) {
	name, ok := categoryNames[c]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid category %d", int(c))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a category from its name, rejecting unknown names.
func (c *DataCategory) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseDataCategory(name)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
