// Package cmap represents color maps and their meta data from various
// sources (CET, Matplotlib, ColorBrewer, Scientific Colour Maps) in a
// uniform way.
//
// How to pick a good color map:
//  1. Select a map category depending on your data: sequential, diverging,
//     cyclic or qualitative.
//  2. Select a good quality map. Perceptually uniform maps encode equal steps
//     in data as equal perceived steps in color and are usually the best
//     choice. Rainbow maps are best avoided.
//  3. Select a map for your domain and application via the tags, e.g.
//     geographical maps or maps suitable for 3D relief shading.
package cmap

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// CatalogFileName is the fixed name of the catalog metadata file that every
// catalog directory must contain.
const CatalogFileName = "_catalog.json"

// CmMetaData describes a single color map.
//
// Favorite is tri-state: nil means the user never touched it, and only an
// explicit true or false is persisted to JSON.
type CmMetaData struct {
	Name                string       `json:"name"`
	PrettyName          string       `json:"pretty_name"`
	FileName            string       `json:"file_name"`
	Category            DataCategory `json:"category"`
	Recommended         bool         `json:"recommended"`
	PerceptuallyUniform bool         `json:"perceptually_uniform"`
	BlackWhiteFriendly  bool         `json:"black_white_friendly"`
	ColorBlindFriendly  bool         `json:"color_blind_friendly"`
	Isoluminant         bool         `json:"isoluminant"`
	Notes               string       `json:"notes"`
	Tags                []string     `json:"tags"`
	Favorite            *bool        `json:"favorite,omitempty"`
}

// NewCmMetaData creates metadata for a map with the given raw name.
// The pretty name is derived from the name; deserialization may override it.
func NewCmMetaData(name string) *CmMetaData {
	return &CmMetaData{
		Name:       name,
		PrettyName: MakePrettyName(name),
		Category:   CategoryOther,
		Tags:       []string{},
	}
}

// MakePrettyName replaces underscores with hyphens and upper-cases the first
// letter of every hyphen-separated part. The remaining characters keep their
// case (strings.Title would lower-case letters like the W in "BrBG").
func MakePrettyName(name string) string {
	parts := strings.Split(strings.ReplaceAll(name, "_", "-"), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "-")
}

// IsFavorite reports whether the map was explicitly marked as favorite.
func (m *CmMetaData) IsFavorite() bool {
	return m.Favorite != nil && *m.Favorite
}

// SetFavorite explicitly marks the map as (not) favorite. Once set, the flag
// is persisted on save.
func (m *CmMetaData) SetFavorite(fav bool) {
	m.Favorite = &fav
}

// cmMetaDataJSON mirrors CmMetaData with pointers for the required fields so
// that missing keys can be told apart from zero values.
type cmMetaDataJSON struct {
	Name                *string       `json:"name"`
	PrettyName          *string       `json:"pretty_name"`
	FileName            *string       `json:"file_name"`
	Category            *DataCategory `json:"category"`
	Recommended         bool          `json:"recommended"`
	PerceptuallyUniform bool          `json:"perceptually_uniform"`
	BlackWhiteFriendly  bool          `json:"black_white_friendly"`
	ColorBlindFriendly  bool          `json:"color_blind_friendly"`
	Isoluminant         bool          `json:"isoluminant"`
	Notes               string        `json:"notes"`
	Tags                []string      `json:"tags"`
	Favorite            *bool         `json:"favorite"`
}

// UnmarshalJSON decodes metadata, enforcing the required fields and filling
// in the documented defaults for the optional ones.
func (m *CmMetaData) UnmarshalJSON(data []byte) error {
	var raw cmMetaDataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	required := []struct {
		name string
		ok   bool
	}{
		{"name", raw.Name != nil},
		{"pretty_name", raw.PrettyName != nil},
		{"file_name", raw.FileName != nil},
		{"category", raw.Category != nil},
	}
	for _, field := range required {
		if !field.ok {
			return fmt.Errorf("missing required field %q", field.name)
		}
	}

	m.Name = *raw.Name
	m.PrettyName = *raw.PrettyName
	m.FileName = *raw.FileName
	m.Category = *raw.Category
	m.Recommended = raw.Recommended
	m.PerceptuallyUniform = raw.PerceptuallyUniform
	m.BlackWhiteFriendly = raw.BlackWhiteFriendly
	m.ColorBlindFriendly = raw.ColorBlindFriendly
	m.Isoluminant = raw.Isoluminant
	m.Notes = raw.Notes
	m.Tags = raw.Tags
	if m.Tags == nil {
		m.Tags = []string{}
	}
	m.Favorite = raw.Favorite
	return nil
}

// LoadCmMetaData reads a map metadata record from a JSON file.
func LoadCmMetaData(path string) (*CmMetaData, error) {
	slog.Debug("Loading meta data", "file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	md := &CmMetaData{}
	if err := json.Unmarshal(data, md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return md, nil
}

// Save writes the metadata record to a JSON file.
func (m *CmMetaData) Save(path string) error {
	slog.Debug("Saving meta data", "file", path)

	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata for %q: %w", m.Name, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
