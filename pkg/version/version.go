// Package version holds build metadata of the pyconv binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/Sumatoshi-tech/pyconv/pkg/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// BinaryGitHash is the VCS revision the running binary was built from.
var BinaryGitHash = "<unknown>"

const shortHashLen = 12

// InitBinaryVersion fills unset metadata from the embedded build info.
func InitBinaryVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			BinaryGitHash = s.Value

			if Commit == "none" && s.Value != "" {
				Commit = s.Value[:min(len(s.Value), shortHashLen)]
			}
		case "vcs.time":
			if Date == "unknown" && s.Value != "" {
				Date = s.Value
			}
		}
	}
}

// String renders the metadata for "pyconv version".
func String() string {
	return fmt.Sprintf("pyconv %s (commit: %s, built: %s)", Version, Commit, Date)
}
