// Package build holds version metadata stamped in at link time.
package build

// Version is overridden via -ldflags on release builds.
var Version = "dev"
