// Package config holds the engine-wide tunables (ImportOptions,
// ImportSettings) and the AIA layer-mapping seed table consumed by the
// layer classifier.
package config

// ImportOptions controls what a single import does and filters, per
// invocation (§6 "Import options").
type ImportOptions struct {
	DefaultWallHeight float64 `json:"default_wall_height" yaml:"default_wall_height"`

	ImportInvisibleLayers bool `json:"import_invisible_layers" yaml:"import_invisible_layers"`
	ImportText            bool `json:"import_text" yaml:"import_text"`
	ImportDimensions      bool `json:"import_dimensions" yaml:"import_dimensions"`

	RemoveDuplicates         bool `json:"remove_duplicates" yaml:"remove_duplicates"`
	JoinWalls                bool `json:"join_walls" yaml:"join_walls"`
	InsertOpeningsIntoWalls  bool `json:"insert_openings_into_walls" yaml:"insert_openings_into_walls"`
	ValidateGeometry         bool `json:"validate_geometry" yaml:"validate_geometry"`

	CategoryFilter        map[string]bool `json:"category_filter" yaml:"category_filter"`
	LayerNameFilter       []string        `json:"layer_name_filter" yaml:"layer_name_filter"`
	ExcludeLayerPatterns  []string        `json:"exclude_layer_patterns" yaml:"exclude_layer_patterns"`
	ExplicitLayerMappings map[string]string `json:"explicit_layer_mappings" yaml:"explicit_layer_mappings"`
}

// DefaultImportOptions returns the option set spec.md §6 names as
// defaults.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{
		DefaultWallHeight:       3000,
		ImportInvisibleLayers:  false,
		ImportText:             true,
		ImportDimensions:       true,
		RemoveDuplicates:       true,
		JoinWalls:              true,
		InsertOpeningsIntoWalls: true,
		ValidateGeometry:       true,
		CategoryFilter:         map[string]bool{},
		ExplicitLayerMappings:  map[string]string{},
	}
}

// ImportSettings carries engine-wide tolerances, independent of any one
// import's options (§6 "Import settings").
type ImportSettings struct {
	UnitConversionFactor float64 `json:"unit_conversion_factor" yaml:"unit_conversion_factor"`
	MaxFileSizeBytes     int64   `json:"max_file_size_bytes" yaml:"max_file_size_bytes"`

	MinLineLength        float64 `json:"min_line_length" yaml:"min_line_length"`
	MinRadius             float64 `json:"min_radius" yaml:"min_radius"`
	MinElementVolume      float64 `json:"min_element_volume" yaml:"min_element_volume"`
	JoinTolerance         float64 `json:"join_tolerance" yaml:"join_tolerance"`
	OpeningHostTolerance  float64 `json:"opening_host_tolerance" yaml:"opening_host_tolerance"`
}

const defaultMaxFileSizeBytes = 500 * 1024 * 1024

// DefaultImportSettings returns the tolerance set spec.md §6 names as
// defaults.
func DefaultImportSettings() ImportSettings {
	return ImportSettings{
		UnitConversionFactor: 1.0,
		MaxFileSizeBytes:     defaultMaxFileSizeBytes,
		MinLineLength:        1.0,
		MinRadius:            0.5,
		MinElementVolume:     1.0,
		JoinTolerance:        10.0,
		OpeningHostTolerance: 150.0,
	}
}
