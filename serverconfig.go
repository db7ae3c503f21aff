package assetkit

import (
	"net/url"
	"strings"
)

// ServerConfig describes one remote asset server: where it lives, which
// protocol version it speaks, and the credential used to talk to it.
//
// A ServerConfig is a plain value. It carries no identity beyond its URL;
// two configs pointing at the same normalized URL refer to the same server.
type ServerConfig struct {
	url       string
	version   string
	apiKey    string
	localName string
}

// normalizeURL reduces raw to its canonical server form: an absolute URL
// with a non-empty scheme and host, with a single trailing slash (if any)
// removed so "http://host:8080/" and "http://host:8080" compare equal.
// The second return value reports whether raw was acceptable at all.
//
// Both SetURL and the config loader funnel through here; they differ only
// in what they do when normalization fails.
func normalizeURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return strings.TrimSuffix(u.String(), "/"), true
}

// SetURL stores the server URL after normalization. An input that does not
// parse as an absolute URL with a scheme and host clears the stored URL
// instead of reporting an error; callers that care should check URL()
// afterwards. A single trailing slash is stripped during normalization.
func (s *ServerConfig) SetURL(raw string) {
	norm, ok := normalizeURL(raw)
	if !ok {
		s.url = ""
		return
	}
	s.url = norm
}

// URL returns the normalized server URL, or the empty string when no valid
// URL has been set.
func (s *ServerConfig) URL() string {
	return s.url
}

// SetVersion stores the protocol version the server speaks.
func (s *ServerConfig) SetVersion(version string) {
	s.version = version
}

// Version returns the protocol version, defaulting to "1.0" when one was
// never set.
func (s *ServerConfig) Version() string {
	if s.version == "" {
		return defaultProtocolVersion
	}
	return s.version
}

// SetAPIKey stores the credential used when talking to this server.
// The last write wins; an empty key means no credential is configured.
func (s *ServerConfig) SetAPIKey(key string) {
	s.apiKey = key
}

// APIKey returns the configured credential, empty when none is set.
func (s *ServerConfig) APIKey() string {
	return s.apiKey
}

// SetLocalName stores a local alias for this server. The alias never
// appears in AsString or AsPrettyString output.
func (s *ServerConfig) SetLocalName(name string) {
	s.localName = name
}

// LocalName returns the local alias, empty when none is set.
func (s *ServerConfig) LocalName() string {
	return s.localName
}

// Clear resets the config to its zero state.
func (s *ServerConfig) Clear() {
	*s = ServerConfig{}
}
