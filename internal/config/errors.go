package config

import "errors"

var (
	// ErrMissingAPIVersion is returned for files without an apiVersion.
	ErrMissingAPIVersion = errors.New("indicator file is missing 'apiVersion' field")

	// ErrUnsupportedVersion is returned for apiVersions without an embedded schema.
	ErrUnsupportedVersion = errors.New("unsupported indicator schema version")
)
