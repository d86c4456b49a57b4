package cliconfig

// DefaultAPIURL is the local development backend address.
const DefaultAPIURL = "http://localhost:8000"

// DefaultTimeout is the default HTTP timeout in seconds. Zero sets no
// client timeout; requests are bounded only by their context.
const DefaultTimeout = 0

// DefaultLogLevel keeps the CLI quiet unless asked.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = "text"

// DefaultCopyResetMs is how long the copied mark stays visible.
const DefaultCopyResetMs = 2000

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		APIURL:      DefaultAPIURL,
		Timeout:     DefaultTimeout,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
		CopyResetMs: DefaultCopyResetMs,
		Sources:     make(map[string]string),
	}

	// Mark all as default source
	for _, key := range []string{"apiUrl", "timeout", "logLevel", "logFormat", "copyResetMs", "categories"} {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
