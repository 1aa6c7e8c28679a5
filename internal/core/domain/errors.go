package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheConstruction is returned when a cache kind cannot be instantiated.
	ErrCacheConstruction = zerr.New("cache construction failed")

	// ErrStableScanFailed marks a result that is missing the stable classpath contribution.
	ErrStableScanFailed = zerr.New("stable scan failed")

	// ErrInvalidExcludePattern is returned when an exclusion pattern does not compile.
	ErrInvalidExcludePattern = zerr.New("invalid exclude pattern")

	// ErrUnknownElementKind is returned when an element kind name cannot be parsed.
	ErrUnknownElementKind = zerr.New("unknown element kind")

	// ErrTypeNotFound is returned when a type is not part of the known universe.
	ErrTypeNotFound = zerr.New("type not found")

	// ErrDuplicateType is returned when a manifest declares the same type twice.
	ErrDuplicateType = zerr.New("duplicate type")

	// ErrDuplicateMember is returned when a type declares two members with the same identity.
	ErrDuplicateMember = zerr.New("duplicate member")

	// ErrInvalidSettings is returned when the settings file fails validation.
	ErrInvalidSettings = zerr.New("invalid settings")
)
