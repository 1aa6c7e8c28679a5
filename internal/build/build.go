// Package build holds build-time information.
package build

// Version is reported by "rebind version" and --version.
// It defaults to "dev" and is set with -ldflags "-X go.trai.ch/rebind/internal/build.Version=...".
var Version = "dev"
