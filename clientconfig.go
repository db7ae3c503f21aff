package assetkit

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/assetkit/internal/logging"
	"github.com/thoreinstein/assetkit/internal/paths"
	"github.com/thoreinstein/assetkit/pkg/fileutil"
)

// logger receives debug traces from the config loader. Quiet by default.
var logger = logging.NewDiscard()

// SetLogger routes the package's debug output to l. Passing nil restores
// the discarding default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = logging.NewDiscard()
		return
	}
	logger = l
}

// ClientConfig aggregates everything a client session needs to talk to
// asset servers: the known servers, the local cache directory, the path of
// the config file, and the user agent sent with requests.
//
// A ClientConfig is owned by a single session. It is not safe for
// concurrent use; callers that share one must serialize access themselves.
type ClientConfig struct {
	configPath    string
	cacheLocation string
	servers       []ServerConfig
	userAgent     string
}

// NewClientConfig returns a config with defaults seeded: no servers, the
// cache under the user's home directory, and the stock user agent. A home
// directory that cannot be determined leaves the cache path relative; it
// is not an error.
func NewClientConfig() *ClientConfig {
	return &ClientConfig{
		cacheLocation: paths.DefaultCacheDir(),
		userAgent:     DefaultUserAgent(),
	}
}

// SetConfigPath sets the file LoadConfig will read.
func (c *ClientConfig) SetConfigPath(path string) {
	c.configPath = path
}

// ConfigPath returns the path of the last-loaded or to-be-loaded config file.
func (c *ClientConfig) ConfigPath() string {
	return c.configPath
}

// SetCacheLocation sets the directory where downloaded assets are stored.
// The directory is never created or checked for existence here.
func (c *ClientConfig) SetCacheLocation(dir string) {
	c.cacheLocation = dir
}

// CacheLocation returns the asset cache directory.
func (c *ClientConfig) CacheLocation() string {
	return c.cacheLocation
}

// SetUserAgent overrides the user agent string.
func (c *ClientConfig) SetUserAgent(ua string) {
	c.userAgent = ua
}

// UserAgent returns the user agent string.
func (c *ClientConfig) UserAgent() string {
	return c.userAgent
}

// AddServer appends a server to the list, unconditionally. Unlike
// LoadConfig it performs no validation and no duplicate check; trusted
// programmatic callers get the weaker contract on purpose.
func (c *ClientConfig) AddServer(srv ServerConfig) {
	c.servers = append(c.servers, srv)
}

// Servers returns the known servers in insertion order. The returned slice
// is a copy; mutating it does not affect the config.
func (c *ClientConfig) Servers() []ServerConfig {
	return append([]ServerConfig(nil), c.servers...)
}

// Clear resets the servers, config path, and cache location to their zero
// values. The user agent is left alone.
func (c *ClientConfig) Clear() {
	c.servers = nil
	c.configPath = ""
	c.cacheLocation = ""
}

// LoadConfig reads, parses, and validates the file at ConfigPath, then
// commits the result. The operation is atomic: any failure leaves the
// in-memory state exactly as it was, and the returned error matches one of
// the package sentinels under [errors.Is]. Nil means every entry validated
// and the state was replaced.
//
// Expected file shape:
//
//	servers:
//	  - url: https://api.example.org
//	    name: example      # optional local alias
//	    version: "1.0"     # optional
//	    api-key: XYZ       # optional
//	cache:
//	  path: /var/cache/assets
//
// Keys outside this schema are ignored. A server entry without a url, an
// empty url, a url that does not normalize, two entries normalizing to the
// same URL, or a cache section without a non-empty path are all fatal.
// When the file has no servers key the server list is left unchanged, and
// likewise for a missing cache section.
func (c *ClientConfig) LoadConfig() error {
	data, err := fileutil.ReadFileWithLimit(c.configPath)
	if err != nil {
		return errors.Wrapf(ErrIO, "%s: %v", c.configPath, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(ErrParse, err.Error())
	}

	staged, haveServers, err := stageServers(doc)
	if err != nil {
		return err
	}

	cachePath, err := stageCachePath(doc)
	if err != nil {
		return err
	}

	// Commit. Nothing above touched c, so failures never leave partial state.
	if haveServers {
		c.servers = staged
	}
	if cachePath != "" {
		c.cacheLocation = cachePath
	}
	logger.Debug("config loaded",
		"path", c.configPath,
		"servers", len(c.servers),
		"cache", c.cacheLocation)
	return nil
}

// stageServers validates the servers section of the parsed document and
// builds the replacement server list. The bool reports whether a servers
// key was present at all.
func stageServers(doc map[string]any) ([]ServerConfig, bool, error) {
	raw, ok := doc["servers"]
	if !ok {
		return nil, false, nil
	}
	entries, ok := raw.([]any)
	if !ok {
		return nil, false, errors.Wrap(ErrParse, "servers is not a sequence")
	}

	staged := make([]ServerConfig, 0, len(entries))
	for i, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, false, errors.Wrapf(ErrParse, "server entry %d is not a mapping", i)
		}

		value, present := fields["url"]
		if !present {
			return nil, false, errors.Wrapf(ErrMissingField, "server entry %d has no url", i)
		}
		rawURL, _ := value.(string)
		if rawURL == "" {
			return nil, false, errors.Wrapf(ErrEmptyField, "server entry %d has an empty url", i)
		}

		norm, ok := normalizeURL(rawURL)
		if !ok {
			return nil, false, errors.Wrapf(ErrInvalidURL, "server entry %d: %q", i, rawURL)
		}

		var srv ServerConfig
		srv.url = norm
		if name, _ := fields["name"].(string); name != "" {
			srv.SetLocalName(name)
		}
		if version, _ := fields["version"].(string); version != "" {
			srv.SetVersion(version)
		}
		if key, _ := fields["api-key"].(string); key != "" {
			srv.SetAPIKey(key)
		}
		logger.Debug("staged server", "url", norm, "entry", i)
		staged = append(staged, srv)
	}

	// Uniqueness holds across the whole staged set, checked only here.
	// AddServer deliberately skips this.
	seen := make(map[string]int, len(staged))
	for i, srv := range staged {
		if first, dup := seen[srv.url]; dup {
			return nil, false, errors.Wrapf(ErrDuplicateServer,
				"%s appears in entries %d and %d", srv.url, first, i)
		}
		seen[srv.url] = i
	}

	return staged, true, nil
}

// stageCachePath validates the cache section. It returns the empty string
// when the section is absent, meaning the existing cache location stands.
func stageCachePath(doc map[string]any) (string, error) {
	raw, present := doc["cache"]
	if !present {
		return "", nil
	}
	fields, _ := raw.(map[string]any)
	value, ok := fields["path"]
	if !ok {
		return "", errors.Wrap(ErrMissingField, "cache section has no path")
	}
	path, _ := value.(string)
	if path == "" {
		return "", errors.Wrap(ErrEmptyField, "cache path is empty")
	}
	return path, nil
}
