// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Iro is the canonical application identifier used for filesystem paths and CLI branding.
	Iro = "iro"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)
