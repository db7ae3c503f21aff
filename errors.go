package assetkit

import "github.com/cockroachdb/errors"

// Sentinel errors returned by [ClientConfig.LoadConfig]. Every failure
// aborts the whole load; check with [errors.Is] to tell the cases apart.
var (
	// ErrIO indicates the config file is missing or unreadable.
	ErrIO = errors.New("config file unreadable")

	// ErrParse indicates the config file is not well-formed YAML, or a
	// section does not have the expected shape.
	ErrParse = errors.New("config file malformed")

	// ErrMissingField indicates a required key is absent: "url" under a
	// server entry, or "path" under the cache section.
	ErrMissingField = errors.New("required field missing")

	// ErrEmptyField indicates a required key is present but empty.
	ErrEmptyField = errors.New("required field empty")

	// ErrInvalidURL indicates a server url value that does not normalize
	// to an absolute URL with a scheme and host.
	ErrInvalidURL = errors.New("invalid server url")

	// ErrDuplicateServer indicates two server entries that normalize to
	// the same URL.
	ErrDuplicateServer = errors.New("duplicate server url")
)
