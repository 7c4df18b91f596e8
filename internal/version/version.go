// Package version holds build information injected at link time, e.g.
//
//	go build -ldflags "-X github.com/jmylchreest/contrast/internal/version.Version=1.2.3 \
//	  -X github.com/jmylchreest/contrast/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/contrast/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import (
	"fmt"
	"runtime"
)

const unknown = "unknown"

var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = unknown
	// Date is the build date in RFC3339 format.
	Date = unknown
)

// Info is the full build information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the build information.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a human-readable version line.
func String() string {
	info := GetInfo()
	if info.Commit == unknown || info.Date == unknown {
		return fmt.Sprintf("contrast version %s (%s, %s)", info.Version, info.GoVersion, info.Platform)
	}
	return fmt.Sprintf("contrast version %s (commit: %s, built: %s, %s, %s)",
		info.Version, shortCommit(info.Commit), info.Date, info.GoVersion, info.Platform)
}

// Short returns just the version number.
func Short() string {
	return Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
