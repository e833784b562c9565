// Package version carries build information injected with -ldflags:
//
//	go build -ldflags "-X airops/internal/version.Version=v0.3.0 -X airops/internal/version.Commit=$(git rev-parse --short HEAD)"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String returns the version with commit and build date when known. Builds
// without ldflags fall back to the VCS revision recorded by the toolchain.
func String() string {
	base := Version
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit != "" {
		base += fmt.Sprintf(" (%s)", commit)
	}
	if Date != "" {
		base += " " + Date
	}
	return base
}

// Full adds the Go version and platform, for --version output.
func Full() string {
	return fmt.Sprintf("%s\n  go: %s\n  platform: %s/%s", String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
