// Package logging provides structured logging for assetkit using slog.
//
// The package supports text and JSON output, configurable levels, and
// test helpers. The text handler colorizes output when writing to a
// capable terminal and masks attribute values whose keys look like
// credentials, so API keys never land in trace output verbatim.
//
// The root package's loader is silent by default ([NewDiscard]); consumers
// that want traces install a logger explicitly:
//
//	assetkit.SetLogger(logging.New(logging.Config{
//		Level:  slog.LevelDebug,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	}))
//
// In tests, [ForTest] routes output through testing.T so it only appears
// on failure or with -v.
package logging
