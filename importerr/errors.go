// Package importerr defines the sentinel errors the import pipeline
// returns, wrapped with context via fmt.Errorf's %w verb at each layer
// that adds information.
package importerr

import "errors"

var (
	// ErrFileNotFound is returned when the source file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedExtension is returned for a file extension other than
	// .dxf or .dwg.
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrFileTooLarge is returned when the source file exceeds
	// MaxFileSizeBytes.
	ErrFileTooLarge = errors.New("file exceeds maximum size")

	// ErrUnreadable is returned on an I/O failure while reading the
	// source file.
	ErrUnreadable = errors.New("file could not be read")

	// ErrCancelled is returned when a context is cancelled mid-import.
	ErrCancelled = errors.New("import cancelled by user")

	// ErrUnsupportedDWGVersion is returned when a DWG file's version tag
	// is not in the AC1014..AC1032 range this stub recognizes.
	ErrUnsupportedDWGVersion = errors.New("unrecognized DWG version tag")

	// ErrEmptyModel names a parse that produced a model with no usable
	// entities. No function in this module returns it: an empty model
	// imports successfully with no converted elements.
	ErrEmptyModel = errors.New("parsed model contains no entities")
)
