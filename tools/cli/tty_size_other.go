// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

//go:build !unix

package cli

import (
	"fmt"
)

func GetTTYColumns() (int, error) {
	return 0, fmt.Errorf("Getting the terminal size is not supported on this platform")
}
