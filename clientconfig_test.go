package assetkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/assetkit/internal/logging"
	"github.com/thoreinstein/assetkit/internal/paths"
)

// writeConfig drops content into a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewClientConfig_Defaults(t *testing.T) {
	client := NewClientConfig()

	assert.Empty(t, client.Servers())
	assert.Empty(t, client.ConfigPath())
	assert.Equal(t, paths.DefaultCacheDir(), client.CacheLocation())
	assert.Equal(t, "AssetKit-"+Version, client.UserAgent())
}

func TestClientConfig_SetUserAgent(t *testing.T) {
	client := NewClientConfig()
	client.SetUserAgent("my_user_agent")
	assert.Equal(t, "my_user_agent", client.UserAgent())
}

func TestClientConfig_AddServer(t *testing.T) {
	client := NewClientConfig()

	var srv ServerConfig
	srv.SetURL("http://asdf")
	client.AddServer(srv)

	require.Len(t, client.Servers(), 1)
	assert.Equal(t, "http://asdf", client.Servers()[0].URL())

	// AddServer never validates or dedups: the same URL twice and a
	// server with no URL at all are both accepted.
	client.AddServer(srv)
	client.AddServer(ServerConfig{})

	srvs := client.Servers()
	require.Len(t, srvs, 3)
	assert.Equal(t, "http://asdf", srvs[1].URL())
	assert.Empty(t, srvs[2].URL())
}

func TestClientConfig_Clear(t *testing.T) {
	client := NewClientConfig()
	client.SetConfigPath("config/path")
	var srv ServerConfig
	srv.SetURL("http://asdf")
	client.AddServer(srv)

	client.Clear()
	assert.Empty(t, client.Servers())
	assert.Empty(t, client.ConfigPath())
	assert.Empty(t, client.CacheLocation())
}

func TestLoadConfig_Success(t *testing.T) {
	SetLogger(logging.ForTest(t))
	defer SetLogger(nil)

	path := writeConfig(t, `---
# The list of servers.
servers:
  - url: https://api.example.org

  - url: https://myserver

# Where assets are stored on disk.
cache:
  path: /tmp/assetkit/assets
`)

	client := NewClientConfig()
	client.SetConfigPath(path)
	require.NoError(t, client.LoadConfig())

	srvs := client.Servers()
	require.Len(t, srvs, 2)
	assert.Equal(t, "https://api.example.org", srvs[0].URL())
	assert.Equal(t, "https://myserver", srvs[1].URL())
	assert.Equal(t, "/tmp/assetkit/assets", client.CacheLocation())
	assert.Equal(t, path, client.ConfigPath())
}

func TestLoadConfig_OptionalServerFields(t *testing.T) {
	path := writeConfig(t, `
servers:
  - url: https://api.example.org
    name: prod
    version: "2.0"
    api-key: ABCD
`)

	client := NewClientConfig()
	client.SetConfigPath(path)
	require.NoError(t, client.LoadConfig())

	srvs := client.Servers()
	require.Len(t, srvs, 1)
	assert.Equal(t, "prod", srvs[0].LocalName())
	assert.Equal(t, "2.0", srvs[0].Version())
	assert.Equal(t, "ABCD", srvs[0].APIKey())
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "server entry without url",
			content: `servers:
  - banana: coconut
`,
			wantErr: ErrMissingField,
		},
		{
			name: "server entry with empty url",
			content: `servers:
  - url:
`,
			wantErr: ErrEmptyField,
		},
		{
			name: "server entry with blank url",
			content: `servers:
  - url: ""
`,
			wantErr: ErrEmptyField,
		},
		{
			name: "server url fails normalization",
			content: `servers:
  - url: not-a-url
`,
			wantErr: ErrInvalidURL,
		},
		{
			name: "repeated server url",
			content: `servers:
  - url: https://api.example.org
  - url: https://api.example.org
`,
			wantErr: ErrDuplicateServer,
		},
		{
			name: "urls collide after normalization",
			content: `servers:
  - url: https://api.example.org/
  - url: https://api.example.org
`,
			wantErr: ErrDuplicateServer,
		},
		{
			name:    "cache without path",
			content: "cache:\n",
			wantErr: ErrMissingField,
		},
		{
			name: "cache with empty path",
			content: `cache:
  path:
`,
			wantErr: ErrEmptyField,
		},
		{
			name:    "malformed yaml",
			content: "servers: [unclosed\n",
			wantErr: ErrParse,
		},
		{
			name:    "document is a scalar",
			content: "just a string\n",
			wantErr: ErrParse,
		},
		{
			name:    "servers is not a sequence",
			content: "servers: banana\n",
			wantErr: ErrParse,
		},
		{
			name: "server entry is not a mapping",
			content: `servers:
  - banana
`,
			wantErr: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClientConfig()
			var existing ServerConfig
			existing.SetURL("http://preexisting")
			client.AddServer(existing)
			client.SetCacheLocation("/var/cache/before")

			client.SetConfigPath(writeConfig(t, tt.content))
			err := client.LoadConfig()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			// Load is all-or-nothing: the failed call must not have
			// touched any state.
			require.Len(t, client.Servers(), 1)
			assert.Equal(t, "http://preexisting", client.Servers()[0].URL())
			assert.Equal(t, "/var/cache/before", client.CacheLocation())
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	client := NewClientConfig()
	client.SetConfigPath(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	err := client.LoadConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.Empty(t, client.Servers())
}

func TestLoadConfig_DuplicateLeavesCountAtZero(t *testing.T) {
	path := writeConfig(t, `servers:
  - url: https://api.example.org
  - url: https://api.example.org
`)

	client := NewClientConfig()
	client.SetConfigPath(path)
	require.Error(t, client.LoadConfig())
	assert.Empty(t, client.Servers())
}

func TestLoadConfig_NoServersSection(t *testing.T) {
	path := writeConfig(t, `cache:
  path: /tmp/assetkit/assets
`)

	client := NewClientConfig()
	var existing ServerConfig
	existing.SetURL("http://preexisting")
	client.AddServer(existing)

	client.SetConfigPath(path)
	require.NoError(t, client.LoadConfig())

	// No servers key: the list stands, only the cache moves.
	require.Len(t, client.Servers(), 1)
	assert.Equal(t, "http://preexisting", client.Servers()[0].URL())
	assert.Equal(t, "/tmp/assetkit/assets", client.CacheLocation())
}

func TestLoadConfig_NoCacheSection(t *testing.T) {
	path := writeConfig(t, `servers:
  - url: https://api.example.org
`)

	client := NewClientConfig()
	client.SetCacheLocation("/var/cache/before")
	client.SetConfigPath(path)
	require.NoError(t, client.LoadConfig())

	assert.Equal(t, "/var/cache/before", client.CacheLocation())
	require.Len(t, client.Servers(), 1)
}

func TestLoadConfig_EmptyServersSection(t *testing.T) {
	path := writeConfig(t, "servers: []\n")

	client := NewClientConfig()
	var existing ServerConfig
	existing.SetURL("http://preexisting")
	client.AddServer(existing)

	client.SetConfigPath(path)
	require.NoError(t, client.LoadConfig())

	// An explicit empty list replaces whatever was there.
	assert.Empty(t, client.Servers())
}

func TestLoadConfig_UnknownKeysIgnored(t *testing.T) {
	path := writeConfig(t, `
future_section:
  something: else
servers:
  - url: https://api.example.org
    shiny: true
cache:
  path: /tmp/assetkit/assets
  mode: aggressive
`)

	client := NewClientConfig()
	client.SetConfigPath(path)
	require.NoError(t, client.LoadConfig())
	require.Len(t, client.Servers(), 1)
}

func TestLoadConfig_ReloadReplacesServers(t *testing.T) {
	client := NewClientConfig()

	client.SetConfigPath(writeConfig(t, "servers:\n  - url: https://first\n"))
	require.NoError(t, client.LoadConfig())

	client.SetConfigPath(writeConfig(t, "servers:\n  - url: https://second\n"))
	require.NoError(t, client.LoadConfig())

	srvs := client.Servers()
	require.Len(t, srvs, 1)
	assert.Equal(t, "https://second", srvs[0].URL())
}

func TestLoadConfig_ErrorsAreSentinels(t *testing.T) {
	// Errors carry context but stay matchable with errors.Is.
	client := NewClientConfig()
	client.SetConfigPath(writeConfig(t, "servers:\n  - url: not-a-url\n"))

	err := client.LoadConfig()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidURL))
	assert.Contains(t, err.Error(), "not-a-url")
}
