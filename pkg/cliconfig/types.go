// Package cliconfig provides configuration types and loading for the
// mcpconsole CLI and terminal UI.
package cliconfig

import (
	"fmt"
	"net/url"
	"time"

	"github.com/getmockd/mcpconsole/pkg/instance"
)

// CLIConfig represents the complete configuration for mcpconsole.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Explicit config file (--config or MCPCONSOLE_CONFIG)
// 4. Local config file (.mcpconsolerc.yaml in current directory)
// 5. Global config file (~/.config/mcpconsole/config.yaml)
// 6. Default values (lowest priority)
type CLIConfig struct {
	// Backend settings
	APIURL  string `yaml:"apiUrl" json:"apiUrl"`
	Token   string `yaml:"token,omitempty" json:"-"`
	Timeout int    `yaml:"timeout" json:"timeout"` // seconds, 0 = no timeout

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// UI settings
	CopyResetMs int `yaml:"copyResetMs" json:"copyResetMs"`

	// Categories is the enumeration offered by the create form. Empty
	// means the built-in defaults.
	Categories []instance.Category `yaml:"categories,omitempty" json:"categories,omitempty"`

	// Sources tracks where each value came from (for `mcpconsole config`)
	Sources map[string]string `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceFlag    = "flag"
)

// Catalog returns the configured category enumeration.
func (c *CLIConfig) Catalog() *instance.Catalog {
	if len(c.Categories) == 0 {
		return instance.DefaultCatalog()
	}
	return instance.NewCatalog(c.Categories)
}

// TimeoutDuration returns the HTTP timeout.
func (c *CLIConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// CopyResetDuration returns how long a copied mark is kept.
func (c *CLIConfig) CopyResetDuration() time.Duration {
	return time.Duration(c.CopyResetMs) * time.Millisecond
}

// Validate checks that values are usable.
func (c *CLIConfig) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("apiUrl %q is not an absolute URL", c.APIURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("apiUrl scheme %q is not supported (use http or https)", u.Scheme)
	}
	if c.Timeout < 0 || c.Timeout > 3600 {
		return fmt.Errorf("timeout %d is out of range (0-3600 seconds)", c.Timeout)
	}
	if c.CopyResetMs < 0 {
		return fmt.Errorf("copyResetMs %d must not be negative", c.CopyResetMs)
	}
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("categories[%d]: id is required", i)
		}
		if seen[cat.ID] {
			return fmt.Errorf("categories[%d]: duplicate id %q", i, cat.ID)
		}
		seen[cat.ID] = true
	}
	return nil
}
