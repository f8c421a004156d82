// Package version reports build metadata for the ledgerman binary.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

// Set with -ldflags "-X git.sr.ht/~jakintosh/ledgerman/internal/version.version=v1.2.3".
var (
	version = "dev"
	commit  = ""
	date    = ""
)

const unknown = "unknown"

// Info is the resolved build metadata.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// String renders the one-line form printed by `ledgerman version`.
func (i Info) String() string {
	return fmt.Sprintf("ledgerman %s (commit %s, built %s)", i.Version, i.Commit, i.BuildDate)
}

var (
	once     sync.Once
	resolved Info
)

// Get returns the build metadata, preferring linker values over the module
// build info.
func Get() Info {
	once.Do(func() {
		buildInfo, _ := debug.ReadBuildInfo()
		resolved = resolve(version, commit, date, buildInfo)
	})
	return resolved
}

func resolve(rawVersion, rawCommit, rawDate string, buildInfo *debug.BuildInfo) Info {
	info := Info{
		Version:   strings.TrimSpace(rawVersion),
		Commit:    strings.TrimSpace(rawCommit),
		BuildDate: strings.TrimSpace(rawDate),
	}

	if buildInfo != nil {
		if isDevVersion(info.Version) && strings.HasPrefix(buildInfo.Main.Version, "v") {
			info.Version = buildInfo.Main.Version
		}
		if info.Commit == "" {
			if rev := setting(buildInfo, "vcs.revision"); rev != "" {
				info.Commit = rev
				if setting(buildInfo, "vcs.modified") == "true" {
					info.Commit += "-dirty"
				}
			}
		}
		if info.BuildDate == "" {
			info.BuildDate = setting(buildInfo, "vcs.time")
			if parsed, err := time.Parse(time.RFC3339, info.BuildDate); err == nil {
				info.BuildDate = parsed.UTC().Format(time.DateOnly)
			}
		}
	}

	if isDevVersion(info.Version) {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = unknown
	} else if len(info.Commit) > 12 {
		info.Commit = info.Commit[:12]
	}
	if info.BuildDate == "" {
		info.BuildDate = unknown
	}
	return info
}

func setting(buildInfo *debug.BuildInfo, key string) string {
	for _, s := range buildInfo.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

func isDevVersion(v string) bool {
	return v == "" || v == "dev" || v == "(devel)"
}
