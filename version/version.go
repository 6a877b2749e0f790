// Package version reports the cligen build that produced a file.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X github.com/teranos/cligen/version.Version=v0.3.0".
var (
	Version    = "dev"
	CommitHash = "dev"
	BuildTime  = "unknown"
)

const develVersion = "(devel)"

// Info contains version and build information
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the running build. Binaries from `go install` carry no
// ldflags, so the module version and vcs revision stand in for them.
func Get() Info {
	info := Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Version != "dev" {
		return info
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != develVersion {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.CommitHash == "dev":
			info.CommitHash = s.Value
		case s.Key == "vcs.time" && info.BuildTime == "unknown":
			info.BuildTime = s.Value
		}
	}
	return info
}

// Release reports whether the build carries a real version, as opposed to a
// local development build.
func (i Info) Release() bool {
	return i.Version != "" && i.Version != "dev" && !strings.HasSuffix(i.Version, "+dirty")
}

func (i Info) String() string {
	return fmt.Sprintf("cligen %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// Short returns the abbreviated commit hash.
func (i Info) Short() string {
	if len(i.CommitHash) > 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
