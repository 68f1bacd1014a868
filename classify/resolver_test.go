package classify

import (
	"testing"

	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/config"
	"github.com/stretchr/testify/assert"
)

func newTestResolver(t *testing.T, opts config.ImportOptions) *Resolver {
	cfg, err := config.LoadDefaultAIAConfiguration()
	assert.NoError(t, err)
	return NewResolver(opts, cfg)
}

func TestResolveExplicitTakesPriorityOverPattern(t *testing.T) {
	opts := config.DefaultImportOptions()
	opts.ExplicitLayerMappings = map[string]string{"WALL-1": "Columns"}
	r := newTestResolver(t, opts)

	m := r.Resolve(cadmodel.Layer{Name: "WALL-1", On: true})
	assert.Equal(t, "Columns", m.RevitCategory)
	assert.Equal(t, SourceExplicit, m.MappingSource)
}

func TestResolvePatternMatchBeforeConfiguration(t *testing.T) {
	r := newTestResolver(t, config.DefaultImportOptions())

	// "A-WALL" matches the PatternMatch "wall" substring before ever
	// consulting the Configuration table, even though A-WALL is also a
	// Configuration entry.
	m := r.Resolve(cadmodel.Layer{Name: "A-WALL", On: true})
	assert.Equal(t, "Walls", m.RevitCategory)
	assert.Equal(t, SourcePatternMatch, m.MappingSource)
}

func TestResolveConfigurationWhenNoPatternMatches(t *testing.T) {
	r := newTestResolver(t, config.DefaultImportOptions())

	m := r.Resolve(cadmodel.Layer{Name: "S-COLS", On: true})
	assert.Equal(t, "Columns", m.RevitCategory)
	assert.Equal(t, SourceConfiguration, m.MappingSource)
}

func TestResolveDefaultsToGenericModel(t *testing.T) {
	r := newTestResolver(t, config.DefaultImportOptions())

	m := r.Resolve(cadmodel.Layer{Name: "XYZ-UNKNOWN-123", On: true})
	assert.Equal(t, "GenericModel", m.RevitCategory)
	assert.Equal(t, SourceDefault, m.MappingSource)
}

func TestShouldImportFalseWhenFrozenAndInvisibleNotAllowed(t *testing.T) {
	opts := config.DefaultImportOptions()
	opts.ImportInvisibleLayers = false
	r := newTestResolver(t, opts)

	m := r.Resolve(cadmodel.Layer{Name: "A-WALL", On: true, Frozen: true})
	assert.False(t, m.ShouldImport)
}

func TestShouldImportTrueWhenFrozenButInvisibleAllowed(t *testing.T) {
	opts := config.DefaultImportOptions()
	opts.ImportInvisibleLayers = true
	r := newTestResolver(t, opts)

	m := r.Resolve(cadmodel.Layer{Name: "A-WALL", On: true, Frozen: true})
	assert.True(t, m.ShouldImport)
}

func TestShouldImportRespectsCategoryFilter(t *testing.T) {
	opts := config.DefaultImportOptions()
	opts.CategoryFilter = map[string]bool{"Doors": true}
	r := newTestResolver(t, opts)

	walls := r.Resolve(cadmodel.Layer{Name: "A-WALL", On: true})
	assert.False(t, walls.ShouldImport)

	doors := r.Resolve(cadmodel.Layer{Name: "A-DOOR", On: true})
	assert.True(t, doors.ShouldImport)
}

func TestShouldImportRespectsExcludePattern(t *testing.T) {
	opts := config.DefaultImportOptions()
	opts.ExcludeLayerPatterns = []string{"^A-WALL"}
	r := newTestResolver(t, opts)

	m := r.Resolve(cadmodel.Layer{Name: "A-WALL", On: true})
	assert.False(t, m.ShouldImport)
}

func TestResolveAllCoversEveryLayer(t *testing.T) {
	model := cadmodel.NewModel()
	model.Layers.Add(cadmodel.Layer{Name: "A-WALL", On: true})
	model.Layers.Add(cadmodel.Layer{Name: "A-DOOR", On: true})

	r := newTestResolver(t, config.DefaultImportOptions())
	all := r.ResolveAll(model)

	assert.Len(t, all, 2)
	assert.Equal(t, "Walls", all["A-WALL"].RevitCategory)
	assert.Equal(t, "Doors", all["A-DOOR"].RevitCategory)
}
