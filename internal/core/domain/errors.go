package domain

import "go.trai.ch/zerr"

var (
	// ErrIntentNotFound is returned when an intent has no entry in the lock table.
	ErrIntentNotFound = zerr.New("intent not found in lock table")

	// ErrMalformedIntent is returned when an intent string has no '@' separator or an empty name.
	ErrMalformedIntent = zerr.New("malformed intent")

	// ErrNoManifestName is returned when a manifest does not declare a project name.
	ErrNoManifestName = zerr.New("manifest has no name")

	// ErrManifestInvalid is returned when a manifest cannot be decoded.
	ErrManifestInvalid = zerr.New("invalid manifest")

	// ErrLockfileInvalid is returned when a lock file cannot be parsed.
	ErrLockfileInvalid = zerr.New("invalid lock file")

	// ErrUnknownDependencyKind is returned when a dependency kind label is not recognised.
	ErrUnknownDependencyKind = zerr.New("unknown dependency kind")
)
