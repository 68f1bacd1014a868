// Package dwg stubs the binary DWG format. Full binary parsing is an
// explicit non-goal (§1); this package recognizes the version tag and
// returns an empty model, the same out-of-scope decision the source this
// spec was distilled from makes.
package dwg

import (
	"fmt"
	"io"

	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/importerr"
)

// versionTagLength is the size of the ASCII tag every DWG file begins
// with (e.g. "AC1014", "AC1032").
const versionTagLength = 6

// supportedVersions is the recognized AC10xx tag range (§6 "the version
// dictates section locator format"); this stub doesn't act on the
// distinction beyond validating the tag is one Autodesk ever shipped.
var supportedVersions = map[string]bool{
	"AC1014": true, // R14
	"AC1015": true, // 2000
	"AC1018": true, // 2004
	"AC1021": true, // 2007
	"AC1024": true, // 2010
	"AC1027": true, // 2013
	"AC1032": true, // 2018
}

// Parse reads the first 6 bytes of r as an ASCII version tag and returns
// an empty *cadmodel.Model with the version recorded. The binary body is
// never read — this mirrors §6's "a conforming implementation may
// return an empty CADModel with the version recorded" allowance.
func Parse(r io.Reader) (*cadmodel.Model, error) {
	tag := make([]byte, versionTagLength)
	if _, err := io.ReadFull(r, tag); err != nil {
		return nil, fmt.Errorf("%w: %v", importerr.ErrUnreadable, err)
	}

	version := string(tag)
	if !supportedVersions[version] {
		return nil, fmt.Errorf("%w: %q", importerr.ErrUnsupportedDWGVersion, version)
	}

	model := cadmodel.NewModel()
	model.ACADVersion = version
	return model, nil
}
