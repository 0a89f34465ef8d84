// Package version holds build metadata injected with -ldflags, e.g.
//
//	-X github.com/battgen/battgen/pkg/version.Version=v0.2.0
package version

var (
	Version   = "v0.0.0-unknown"
	GitCommit = "unknown"
)
