// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

const AppName = "unicode-analyze"

func Expanduser(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		usr, err := user.Current()
		if err == nil {
			home = usr.HomeDir
		}
	}
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	path = strings.ReplaceAll(path, string(os.PathSeparator), "/")
	parts := strings.Split(path, "/")
	if parts[0] == "~" {
		parts[0] = home
	}
	return strings.Join(parts, string(os.PathSeparator))
}

func Abspath(path string) string {
	q, err := filepath.Abs(path)
	if err == nil {
		return q
	}
	return path
}

// ConfigDir returns the directory searched for the optional config file.
// UNICODE_ANALYZE_CONFIG_DIRECTORY overrides the platform default.
func ConfigDir() string {
	if q := os.Getenv("UNICODE_ANALYZE_CONFIG_DIRECTORY"); q != "" {
		return Abspath(Expanduser(q))
	}
	var locations []string
	if q := os.Getenv("XDG_CONFIG_HOME"); q != "" {
		locations = append(locations, q)
	}
	locations = append(locations, Expanduser("~/.config"))
	if runtime.GOOS == "darwin" {
		locations = append(locations, Expanduser("~/Library/Preferences"))
	}
	for _, loc := range locations {
		q := filepath.Join(loc, AppName)
		if s, err := os.Stat(q); err == nil && s.IsDir() {
			return q
		}
	}
	return filepath.Join(locations[0], AppName)
}
