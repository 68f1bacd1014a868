package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultImportOptions(t *testing.T) {
	opts := DefaultImportOptions()
	assert.Equal(t, 3000.0, opts.DefaultWallHeight)
	assert.False(t, opts.ImportInvisibleLayers)
	assert.True(t, opts.ImportText)
	assert.True(t, opts.RemoveDuplicates)
	assert.True(t, opts.JoinWalls)
	assert.True(t, opts.InsertOpeningsIntoWalls)
	assert.True(t, opts.ValidateGeometry)
}

func TestDefaultImportSettings(t *testing.T) {
	s := DefaultImportSettings()
	assert.Equal(t, 1.0, s.UnitConversionFactor)
	assert.Equal(t, int64(500*1024*1024), s.MaxFileSizeBytes)
	assert.Equal(t, 1.0, s.MinLineLength)
	assert.Equal(t, 0.5, s.MinRadius)
	assert.Equal(t, 1.0, s.MinElementVolume)
	assert.Equal(t, 10.0, s.JoinTolerance)
	assert.Equal(t, 150.0, s.OpeningHostTolerance)
}

func TestLoadDefaultAIAConfigurationCaseInsensitive(t *testing.T) {
	cfg, err := LoadDefaultAIAConfiguration()
	assert.NoError(t, err)

	cat, ok := cfg.Lookup("a-wall")
	assert.True(t, ok)
	assert.Equal(t, "Walls", cat)

	cat, ok = cfg.Lookup("A-DOOR")
	assert.True(t, ok)
	assert.Equal(t, "Doors", cat)

	_, ok = cfg.Lookup("Z-NOTHING")
	assert.False(t, ok)
}

func TestLoadAIAConfigurationFromYAMLOverride(t *testing.T) {
	cfg, err := LoadAIAConfigurationFromYAML([]byte(`
layers:
  - name: CUSTOM-WALL
    category: Walls
`))
	assert.NoError(t, err)
	cat, ok := cfg.Lookup("custom-wall")
	assert.True(t, ok)
	assert.Equal(t, "Walls", cat)
}

func TestLayerMappingConfigurationSet(t *testing.T) {
	cfg, err := LoadDefaultAIAConfiguration()
	assert.NoError(t, err)
	cfg.Set("MY-LAYER", "GenericModel")
	cat, ok := cfg.Lookup("my-layer")
	assert.True(t, ok)
	assert.Equal(t, "GenericModel", cat)
}
