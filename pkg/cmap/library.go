package cmap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Library is an ordered collection of color maps, populated by scanning
// catalog directories. Directory iteration order is not guaranteed; callers
// that need a stable order sort downstream (see pkg/browser).
type Library struct {
	colorMaps []*ColorMap
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{}
}

// ColorMaps returns the list of color maps in load order.
func (l *Library) ColorMaps() []*ColorMap {
	return l.colorMaps
}

// Len returns the number of color maps.
func (l *Library) Len() int {
	return len(l.colorMaps)
}

// Add appends a color map. LoadCatalog is the normal population path; Add
// exists for callers that build maps in memory.
func (l *Library) Add(cm *ColorMap) {
	l.colorMaps = append(l.colorMaps, cm)
}

// Clear removes all color maps.
func (l *Library) Clear() {
	l.colorMaps = nil
}

// FindByKey returns the color map with the given key, or nil.
func (l *Library) FindByKey(key string) *ColorMap {
	for _, cm := range l.colorMaps {
		if cm.Key() == key {
			return cm
		}
	}
	return nil
}

// LoadCatalog loads all color maps from a catalog directory.
//
// The directory must contain a catalog record under CatalogFileName; it is
// read before any map metadata, so a missing catalog file fails the load
// up front. Every other *.json file in the directory is read as one map
// metadata record. A malformed record aborts the whole load: catalog
// loading is all-or-nothing per directory.
//
// Only metadata is read here. The actual color data is lazy loaded.
func (l *Library) LoadCatalog(catalogDir string) error {
	catalogFile := filepath.Join(catalogDir, CatalogFileName)
	cmd, err := LoadCatalogMetaData(catalogFile)
	if err != nil {
		return err
	}

	mdFiles, err := filepath.Glob(filepath.Join(catalogDir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", catalogDir, err)
	}

	count := 0
	for _, mdFile := range mdFiles {
		if strings.HasSuffix(mdFile, CatalogFileName) {
			continue // skip the catalog record itself
		}

		md, err := LoadCmMetaData(mdFile)
		if err != nil {
			return fmt.Errorf("failed to load catalog %s: %w", cmd.Key, err)
		}

		rgbFile := filepath.Join(catalogDir, md.FileName)
		l.colorMaps = append(l.colorMaps, NewColorMap(md, cmd, rgbFile))
		count++
	}

	slog.Info("Loaded catalog", "key", cmd.Key, "dir", catalogDir, "maps", count)
	return nil
}

// LoadCatalogs loads every subdirectory of root that contains a catalog
// record. Subdirectories without one are skipped silently, so a data
// directory may hold unrelated files.
func (l *Library) LoadCatalogs(root string) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return err
	}

	found := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		catalogDir := filepath.Join(root, entry.Name())
		if _, err := os.Stat(filepath.Join(catalogDir, CatalogFileName)); err != nil {
			continue
		}
		if err := l.LoadCatalog(catalogDir); err != nil {
			return err
		}
		found++
	}

	if found == 0 {
		return fmt.Errorf("no catalog directories found under %s", root)
	}
	return nil
}
