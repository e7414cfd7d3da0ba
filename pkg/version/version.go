// Package version reports the build version of wb.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time:
//
//	go build -ldflags "-X github.com/workboard/wb/pkg/version.Version=v1.2.3"
var Version = "v0.1.0-dev"

// String returns "wb <version>", with the VCS revision when the binary
// was built from a checkout.
func String() string {
	rev := revision()
	if rev == "" {
		return "wb " + Version
	}
	return fmt.Sprintf("wb %s (%s)", Version, rev)
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
