package cmap

// LibraryStats contains summary statistics over a set of color maps.
type LibraryStats struct {
	MapCount     int            `json:"map_count"`
	CatalogCount int            `json:"catalog_count"`
	PerCatalog   map[string]int `json:"per_catalog"`
	PerCategory  map[string]int `json:"per_category"`

	Recommended         int `json:"recommended"`
	PerceptuallyUniform int `json:"perceptually_uniform"`
	BlackWhiteFriendly  int `json:"black_white_friendly"`
	ColorBlindFriendly  int `json:"color_blind_friendly"`
	Isoluminant         int `json:"isoluminant"`
	Favorites           int `json:"favorites"`

	Tags map[string]int `json:"tags"`
}

// Summarize returns statistics about the given color maps.
func Summarize(colorMaps []*ColorMap) LibraryStats {
	stats := LibraryStats{
		PerCatalog:  make(map[string]int),
		PerCategory: make(map[string]int),
		Tags:        make(map[string]int),
	}

	for _, cm := range colorMaps {
		md := cm.MetaData()
		stats.MapCount++
		stats.PerCatalog[cm.CatalogMetaData().Key]++
		stats.PerCategory[md.Category.String()]++

		if md.Recommended {
			stats.Recommended++
		}
		if md.PerceptuallyUniform {
			stats.PerceptuallyUniform++
		}
		if md.BlackWhiteFriendly {
			stats.BlackWhiteFriendly++
		}
		if md.ColorBlindFriendly {
			stats.ColorBlindFriendly++
		}
		if md.Isoluminant {
			stats.Isoluminant++
		}
		if md.IsFavorite() {
			stats.Favorites++
		}
		for _, tag := range md.Tags {
			stats.Tags[tag]++
		}
	}

	stats.CatalogCount = len(stats.PerCatalog)
	return stats
}
