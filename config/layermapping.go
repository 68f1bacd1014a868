package config

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed aia_layers.yaml
var embeddedAIALayers []byte

// aiaEntry is one row of the embedded seed table.
type aiaEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type aiaFile struct {
	Layers []aiaEntry `yaml:"layers"`
}

// LayerMappingConfiguration is the Configuration source from §4.2's
// priority-ordered layer classification: a case-insensitive exact-match
// table from layer name to category. The pipeline only reads it, so it
// may be shared across concurrent imports (§5) as long as no caller is
// calling Set on it at the same time.
type LayerMappingConfiguration struct {
	byFold map[string]string
}

// LoadDefaultAIAConfiguration parses the embedded AutoCAD AIA seed table.
// It never fails on well-formed embedded data; an error return exists
// only to surface a corrupt build artifact.
func LoadDefaultAIAConfiguration() (*LayerMappingConfiguration, error) {
	return LoadAIAConfigurationFromYAML(embeddedAIALayers)
}

// LoadAIAConfigurationFromYAML parses a caller-supplied YAML document in
// the same shape as the embedded seed table, letting a caller override or
// extend the default AIA table without code changes.
func LoadAIAConfigurationFromYAML(data []byte) (*LayerMappingConfiguration, error) {
	var parsed aiaFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}
	cfg := &LayerMappingConfiguration{byFold: make(map[string]string, len(parsed.Layers))}
	for _, entry := range parsed.Layers {
		cfg.byFold[strings.ToLower(entry.Name)] = entry.Category
	}
	return cfg, nil
}

// Lookup returns the category configured for layerName, matched
// case-insensitively and exactly (no substring matching — that is the
// PatternMatch source's job, not this one).
func (c *LayerMappingConfiguration) Lookup(layerName string) (string, bool) {
	if c == nil {
		return "", false
	}
	cat, ok := c.byFold[strings.ToLower(layerName)]
	return cat, ok
}

// Set adds or overrides an entry. Used by tests and by callers building a
// configuration programmatically instead of from YAML.
func (c *LayerMappingConfiguration) Set(layerName, category string) {
	c.byFold[strings.ToLower(layerName)] = category
}
