// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Podspy is the canonical application identifier used for filesystem paths and CLI branding.
	Podspy = "podspy"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the HTTP User-Agent sent to feed hosts and media servers.
	UserAgent = Podspy + "/" + Version + " (+https://github.com/podspy-cli/podspy)"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
