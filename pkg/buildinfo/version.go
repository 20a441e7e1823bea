// Package buildinfo reports which lineq build is running.
//
// Release builds stamp the values via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/lineq/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/lineq/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/lineq/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with "go install module@version" carry no ldflags; for those,
// [Resolve] falls back to the module version and VCS settings embedded by the
// Go toolchain.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unset = "dev"

var (
	Version = unset
	Commit  = "none"
	Date    = "unknown"
)

// Info is a resolved set of build values.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// Resolve returns the ldflags values, filling gaps from the toolchain's
// embedded build information when available.
func Resolve() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date, GoVersion: runtime.Version()}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fill(info, bi)
	}
	return info
}

// fill replaces unstamped fields with values from bi.
func fill(info Info, bi *debug.BuildInfo) Info {
	if info.Version == unset && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		}
	}
	return info
}

// String returns the formatted build information.
func String() string {
	i := Resolve()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s", i.Version, i.Commit, i.Date, i.GoVersion)
}

// Template returns the version template string for cobra.
func Template() string {
	i := Resolve()
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", i.Version, i.Commit, i.GoVersion)
}
