// Package paths resolves the filesystem locations assetkit cares about.
//
// Two locations matter: the installed config file and the asset cache.
// The config file follows the XDG Base Directory Specification (via
// github.com/adrg/xdg), so on Linux it lives under ~/.config/assetkit/.
// The asset cache is a traditional dot-directory under the user's home,
// ~/.assetkit/assets, computed once at client construction.
//
// Home discovery is deliberately forgiving: [Home] returns an empty
// string when the home directory cannot be determined, which leaves the
// default cache path relative rather than failing construction. Callers
// that need the error use [ResolveHome] and check for
// [ErrHomeDirNotFound].
//
// Nothing in this package creates directories or checks that paths exist.
package paths
