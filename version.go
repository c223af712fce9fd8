package unicode_analyze

import (
	"runtime/debug"
)

const VersionString = "0.1.0"

var VCSRevision string

func init() {
	bi, ok := debug.ReadBuildInfo()
	if ok {
		for _, bs := range bi.Settings {
			if bs.Key == "vcs.revision" {
				VCSRevision = bs.Value
			}
		}
	}
}
