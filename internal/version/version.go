// Package version holds build version information, set by ldflags during build.
package version

// Version is the build version string.
var Version = "v0.1.0-dev"

// BuildTime is the build timestamp.
var BuildTime = "unknown"
