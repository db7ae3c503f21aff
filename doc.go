// Package assetkit holds the connection configuration for a client that
// talks to one or more remote asset-hosting servers.
//
// The model has two pieces. [ServerConfig] is the leaf: the identity and
// connection info for a single server (URL, protocol version, API key, an
// optional local alias). [ClientConfig] is the aggregate: an ordered list
// of servers, the local asset cache directory, the config file path, and
// the user agent for the session.
//
// # Loading a config file
//
// [ClientConfig.LoadConfig] reads a YAML file of the form
//
//	servers:
//	  - url: https://api.example.org
//	cache:
//	  path: /var/cache/assets
//
// validates every entry, and commits the result atomically: either the
// whole file is accepted and replaces the in-memory state, or the call
// fails and the previous state survives untouched. Failures are reported
// as errors matching the package sentinels ([ErrIO], [ErrParse],
// [ErrMissingField], [ErrEmptyField], [ErrInvalidURL],
// [ErrDuplicateServer]).
//
// [ClientConfig.AddServer] is the trusted escape hatch: it appends without
// any validation or duplicate check.
//
// # Diagnostics
//
// Both types render themselves with AsString (plain, fixed layout) and
// AsPrettyString (ANSI color, empty fields suppressed). Debug traces from
// the loader go to the logger installed with [SetLogger]; output is
// discarded by default.
//
// A ClientConfig is meant to be owned by one session and is not safe for
// concurrent use.
package assetkit
