// Package version holds build metadata injected via ldflags.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns the build metadata as a flat map for health and MCP handshakes.
func Info() map[string]string {
	return map[string]string{"version": Version, "commit": Commit, "date": Date}
}
