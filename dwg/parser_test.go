package dwg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadbridge/bimimport/importerr"
)

func TestParseAcceptsEverySupportedVersionTag(t *testing.T) {
	for version := range supportedVersions {
		model, err := Parse(strings.NewReader(version + "rest-of-the-binary-body-is-never-read"))
		require.NoError(t, err, version)
		assert.Equal(t, version, model.ACADVersion)
		assert.Empty(t, model.Entities)
	}
}

func TestParseRejectsUnrecognizedVersionTag(t *testing.T) {
	_, err := Parse(strings.NewReader("AC9999"))
	assert.ErrorIs(t, err, importerr.ErrUnsupportedDWGVersion)
}

func TestParseRejectsTruncatedInput(t *testing.T) {
	_, err := Parse(strings.NewReader("AC10"))
	assert.ErrorIs(t, err, importerr.ErrUnreadable)
}
