package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the application name used for config and cache directory naming.
const AppName = "assetkit"

// ErrHomeDirNotFound indicates the user's home directory could not be
// determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// Home returns the user's home directory, or an empty string when it
// cannot be determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DefaultConfigPath returns the well-known location of the installed
// config file: <ConfigHome>/assetkit/config.yaml. The file is not
// guaranteed to exist.
func DefaultConfigPath() string {
	return filepath.Join(ConfigHome(), AppName, "config.yaml")
}

// DefaultCacheDir returns the default directory for downloaded assets,
// a dot-directory under the user's home: ~/.assetkit/assets.
//
// When the home directory cannot be determined the home component is left
// empty and the result is relative. That is not an error; callers decide
// whether an unusable cache path matters to them.
func DefaultCacheDir() string {
	return filepath.Join(Home(), "."+AppName, "assets")
}
