// License: GPLv3 Copyright: 2026, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestConfigDir(t *testing.T) {
	tdir := t.TempDir()
	t.Setenv("UNICODE_ANALYZE_CONFIG_DIRECTORY", tdir)
	if q := ConfigDir(); q != tdir {
		t.Fatalf("ConfigDir() was %#v instead of %#v", q, tdir)
	}
	t.Setenv("UNICODE_ANALYZE_CONFIG_DIRECTORY", "")
	t.Setenv("XDG_CONFIG_HOME", tdir)
	if q := ConfigDir(); q != filepath.Join(tdir, AppName) {
		t.Fatalf("ConfigDir() was %#v", q)
	}
}

func TestSet(t *testing.T) {
	a, b := NewSet[rune](), NewSet[rune]()
	a.AddItems('a', 'b', 'c')
	b.AddItems('b', 'c', 'd', 'e')
	x := a.Intersect(b).AsSlice()
	slices.Sort(x)
	if !slices.Equal(x, []rune{'b', 'c'}) {
		t.Fatalf("Intersection was %#v", x)
	}
	if a.Intersect(nil).Len() != 0 || a.Len() != 3 {
		t.Fatalf("Set operations failed: %#v", a.AsSlice())
	}
}
