package cmap

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// CatalogMetaData describes a source catalog. All color maps of a single
// source (e.g. CET, Matplotlib) make up a catalog and share this record.
type CatalogMetaData struct {
	Key     string `json:"key"` // unique identifier, also the key prefix of its maps
	Name    string `json:"name"`
	Version string `json:"version"`
	Date    string `json:"date"`
	Author  string `json:"author"`
	URL     string `json:"url"`
	DOI     string `json:"doi"` // Digital Object Identifier (e.g. from Zenodo)
	License string `json:"license"`
}

type catalogMetaDataJSON struct {
	Key     *string `json:"key"`
	Name    *string `json:"name"`
	Version string  `json:"version"`
	Date    string  `json:"date"`
	Author  string  `json:"author"`
	URL     string  `json:"url"`
	DOI     string  `json:"doi"`
	License string  `json:"license"`
}

// UnmarshalJSON decodes the catalog record, enforcing the required key and
// name fields. The remaining fields default to the empty string.
func (c *CatalogMetaData) UnmarshalJSON(data []byte) error {
	var raw catalogMetaDataJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Key == nil {
		return fmt.Errorf("missing required field %q", "key")
	}
	if raw.Name == nil {
		return fmt.Errorf("missing required field %q", "name")
	}

	c.Key = *raw.Key
	c.Name = *raw.Name
	c.Version = raw.Version
	c.Date = raw.Date
	c.Author = raw.Author
	c.URL = raw.URL
	c.DOI = raw.DOI
	c.License = raw.License
	return nil
}

// LoadCatalogMetaData reads a catalog record from a JSON file.
func LoadCatalogMetaData(path string) (*CatalogMetaData, error) {
	slog.Debug("Loading catalog meta data", "file", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cmd := &CatalogMetaData{}
	if err := json.Unmarshal(data, cmd); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cmd, nil
}

// Save writes the catalog record to a JSON file.
func (c *CatalogMetaData) Save(path string) error {
	slog.Debug("Saving catalog meta data", "file", path)

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog %q: %w", c.Key, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
