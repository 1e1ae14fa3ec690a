// Package buildinfo carries the version stamped into a build.
package buildinfo

import "fmt"

// Version, Commit and Date are set at build time via -ldflags "-X msgpanel/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier that fits one row of the panel display.
func Short() string {
	id := "dev"
	switch {
	case Version != "" && Version != "dev":
		id = Version
	case Commit != "" && Commit != "unknown":
		id = Commit
	}
	if len(id) > 16 {
		id = id[:16]
	}
	return id
}

// String returns the full build description.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
