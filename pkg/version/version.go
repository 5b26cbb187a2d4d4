// Package version exposes the build version of the pawfuel binary.
package version

// Version is the pawfuel version, overridden at build time via
// -ldflags "-X github.com/rgreer/pawfuel/pkg/version.Version=v1.2.3".
var Version = "dev" //nolint:gochecknoglobals // Set by the linker at build time

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
