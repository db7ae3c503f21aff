package assetkit

import (
	"strings"

	"github.com/fatih/color"
)

// The pretty formatters are a serialization contract, not a TTY nicety, so
// color is forced on regardless of where the output ends up.
var (
	prettyLabel = color.New(color.FgHiCyan, color.Bold)
	prettyValue = color.New(color.FgWhite)
)

func init() {
	prettyLabel.EnableColor()
	prettyValue.EnableColor()
}

func prettyLine(b *strings.Builder, label, value string) {
	b.WriteString(prettyLabel.Sprint(label + ": "))
	b.WriteString(prettyValue.Sprint(value))
	b.WriteByte('\n')
}

// AsString renders the server as a fixed-order plain report:
//
//	URL: <url>
//	Version: <version>
//	API key: <apiKey>
//
// Empty values still produce their line. The local name is deliberately
// never included.
func (s *ServerConfig) AsString() string {
	var b strings.Builder
	b.WriteString("URL: " + s.url + "\n")
	b.WriteString("Version: " + s.Version() + "\n")
	b.WriteString("API key: " + s.apiKey + "\n")
	return b.String()
}

// AsPrettyString renders the same fields color-coded for terminals. Unlike
// AsString, the URL and API key lines are dropped entirely when empty;
// the Version line always appears. The local name is never included.
func (s *ServerConfig) AsPrettyString() string {
	var b strings.Builder
	if s.url != "" {
		prettyLine(&b, "URL", s.url)
	}
	prettyLine(&b, "Version", s.Version())
	if s.apiKey != "" {
		prettyLine(&b, "API key", s.apiKey)
	}
	return b.String()
}

// AsString renders the config path, cache location, and every server in
// insertion order:
//
//	Config path: <path>
//	Cache location: <dir>
//	Servers:
//	<server reports...>
func (c *ClientConfig) AsString() string {
	var b strings.Builder
	b.WriteString("Config path: " + c.configPath + "\n")
	b.WriteString("Cache location: " + c.cacheLocation + "\n")
	b.WriteString("Servers:\n")
	for i := range c.servers {
		b.WriteString(c.servers[i].AsString())
	}
	return b.String()
}

// AsPrettyString is the colorized form of AsString. Empty config path and
// cache location lines are suppressed; the Servers heading always appears,
// followed by each server's own pretty report.
func (c *ClientConfig) AsPrettyString() string {
	var b strings.Builder
	if c.configPath != "" {
		prettyLine(&b, "Config path", c.configPath)
	}
	if c.cacheLocation != "" {
		prettyLine(&b, "Cache location", c.cacheLocation)
	}
	b.WriteString(prettyLabel.Sprint("Servers:"))
	b.WriteByte('\n')
	for i := range c.servers {
		b.WriteString(c.servers[i].AsPrettyString())
	}
	return b.String()
}
