// Package version holds build information, set with -ldflags at release time.
package version

var (
	Version = "dev"
	Commit  = "unknown"
)
