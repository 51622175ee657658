// Package version carries build metadata injected at link time via
// -ldflags "-X ...".
package version

var (
	// Version is the release version of the tool binaries
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)
