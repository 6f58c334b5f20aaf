package project

import "errors"

var (
	// ErrManifestNotFound indicates a required package.json does not exist.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrManifestParse indicates a package.json could not be parsed or
	// failed validation.
	ErrManifestParse = errors.New("manifest parse failed")

	// ErrDuplicateWorkspace indicates two workspace directories declare
	// the same package name.
	ErrDuplicateWorkspace = errors.New("duplicate workspace name")
)
