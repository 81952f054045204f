package config

// Defaults for configuration values.
const (
	DefaultSourceDialect = "singlestore"
	DefaultTargetDialect = "singlestore"
	DefaultOutput        = "text"
)

// Config holds the CLI configuration loaded from file, environment
// variables, and flags.
type Config struct {
	// SourceDialect is the dialect expressions are parsed with.
	SourceDialect string `koanf:"source_dialect"`

	// TargetDialect is the dialect expressions are rendered into.
	TargetDialect string `koanf:"target_dialect"`

	// OutputFormat controls command output (text|table).
	OutputFormat string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}
