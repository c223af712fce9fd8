// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

//go:build unix

package cli

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func GetTTYSize() (*unix.Winsize, error) {
	if stdout_is_terminal {
		return unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	}
	return nil, fmt.Errorf("STDOUT is not a TTY")
}

// GetTTYColumns returns the width of the terminal connected to stdout.
func GetTTYColumns() (int, error) {
	sz, err := GetTTYSize()
	if err != nil {
		return 0, err
	}
	return int(sz.Col), nil
}
