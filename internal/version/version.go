package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Version and Commit are set at build time via ldflags:
//
//	go build -ldflags="-X github.com/Soft-wa-re/forge-loop/internal/version.Version=v1.2.3 \
//	                   -X github.com/Soft-wa-re/forge-loop/internal/version.Commit=abc123"
//
// When unset they are filled from Go's embedded VCS build info, falling
// back to a "dev" placeholder.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo()
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision, modified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	// Build info carries no tags, so a dev version dated by the commit
	// is the best available.
	if Version == "" && vcsTime != "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			Version = "dev-" + t.Format("20060102")
		}
	}
}

// Full returns the version string including the commit hash.
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
