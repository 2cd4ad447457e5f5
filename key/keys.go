// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 14

// Feeds - the syndication feeds aggregated into the catalog and how they are fetched.
const (
	FeedsURLs          = "feeds.urls"
	FeedsTimeout       = "feeds.timeout"
	FeedsCache         = "feeds.cache"
	FeedsCacheLifetime = "feeds.cache_lifetime"
)

// Downloads - where acquired episodes are stored.
const (
	DownloadsPath = "downloads.path"
)

// Interactive session behavior.
const (
	SessionDefaultToFirst = "session.default_to_first"
	SessionPager          = "session.pager"
	SessionShowHelp       = "session.show_help"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
