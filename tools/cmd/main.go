// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"github.com/unicode-analyze/unicode_analyze/kittens/analyze"
	"github.com/unicode-analyze/unicode_analyze/tools/cli"
)

func main() {
	cli.Exec(analyze.EntryPoint())
}
