package classify

import (
	"regexp"

	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/config"
)

// MappingSource records which of the four priority sources resolved a
// layer's category (§3 LayerMapping, §4.2).
type MappingSource int

const (
	SourceExplicit MappingSource = iota
	SourcePatternMatch
	SourceConfiguration
	SourceDefault
)

func (s MappingSource) String() string {
	switch s {
	case SourceExplicit:
		return "Explicit"
	case SourcePatternMatch:
		return "PatternMatch"
	case SourceConfiguration:
		return "Configuration"
	default:
		return "Default"
	}
}

const defaultCategory = "GenericModel"

// LayerMapping is the resolved classification of one CAD layer (§3).
type LayerMapping struct {
	CADLayerName  string
	CADColor      int
	RevitCategory string
	MappingSource MappingSource
	IsVisible     bool
	ShouldImport  bool
}

// Resolver classifies layers in the priority order Explicit →
// PatternMatch → Configuration → Default, then decides ShouldImport
// against the caller's filters. One Resolver is built per import; its
// compiled exclude/include regexes are local to that construction.
type Resolver struct {
	explicit     map[string]string // original-case layer name -> category
	configuration *config.LayerMappingConfiguration

	categoryFilter map[string]bool
	includeRegexes []*regexp.Regexp
	excludeRegexes []*regexp.Regexp

	importInvisible bool
}

// NewResolver builds a Resolver from one import's options and the shared
// AIA configuration table. Invalid regex strings in the include/exclude
// lists are skipped rather than failing construction — malformed filter
// input should not abort an otherwise-valid import.
func NewResolver(opts config.ImportOptions, cfg *config.LayerMappingConfiguration) *Resolver {
	r := &Resolver{
		explicit:        opts.ExplicitLayerMappings,
		configuration:   cfg,
		categoryFilter:  opts.CategoryFilter,
		importInvisible: opts.ImportInvisibleLayers,
	}
	for _, pattern := range opts.LayerNameFilter {
		if re, err := regexp.Compile("(?i)" + pattern); err == nil {
			r.includeRegexes = append(r.includeRegexes, re)
		}
	}
	for _, pattern := range opts.ExcludeLayerPatterns {
		if re, err := regexp.Compile("(?i)" + pattern); err == nil {
			r.excludeRegexes = append(r.excludeRegexes, re)
		}
	}
	return r
}

// Resolve classifies a single layer, applying the four-source priority
// order and then the visibility/filter rules from §4.2.
func (r *Resolver) Resolve(layer cadmodel.Layer) LayerMapping {
	category, source := r.resolveCategory(layer.Name)

	mapping := LayerMapping{
		CADLayerName:  layer.Name,
		CADColor:      layer.Color,
		RevitCategory: category,
		MappingSource: source,
		IsVisible:     layer.Visible(),
	}
	mapping.ShouldImport = r.shouldImport(mapping)
	return mapping
}

func (r *Resolver) resolveCategory(layerName string) (string, MappingSource) {
	if cat, ok := r.explicit[layerName]; ok {
		return cat, SourceExplicit
	}
	if cat, ok := matchPattern(layerName); ok {
		return cat, SourcePatternMatch
	}
	if r.configuration != nil {
		if cat, ok := r.configuration.Lookup(layerName); ok {
			return cat, SourceConfiguration
		}
	}
	return defaultCategory, SourceDefault
}

func (r *Resolver) shouldImport(m LayerMapping) bool {
	if !m.IsVisible && !r.importInvisible {
		return false
	}
	if len(r.categoryFilter) > 0 && !r.categoryFilter[m.RevitCategory] {
		return false
	}
	if len(r.includeRegexes) > 0 {
		matched := false
		for _, re := range r.includeRegexes {
			if re.MatchString(m.CADLayerName) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, re := range r.excludeRegexes {
		if re.MatchString(m.CADLayerName) {
			return false
		}
	}
	return true
}

// ResolveAll classifies every layer in the model's layer table, returning
// them keyed by the original (not case-folded) layer name.
func (r *Resolver) ResolveAll(model *cadmodel.Model) map[string]LayerMapping {
	out := make(map[string]LayerMapping, model.Layers.Len())
	for _, l := range model.Layers.All() {
		out[l.Name] = r.Resolve(l)
	}
	return out
}
