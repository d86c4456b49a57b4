package cliconfig

import "slices"

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied. A non-empty category list
// replaces the target's list as a whole.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.APIURL != "" {
		target.APIURL = source.APIURL
		target.Sources["apiUrl"] = sourceType
	}
	if source.Token != "" {
		target.Token = source.Token
		target.Sources["token"] = sourceType
	}
	if source.Timeout != 0 {
		target.Timeout = source.Timeout
		target.Sources["timeout"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	if source.CopyResetMs != 0 {
		target.CopyResetMs = source.CopyResetMs
		target.Sources["copyResetMs"] = sourceType
	}
	if len(source.Categories) > 0 {
		target.Categories = slices.Clone(source.Categories)
		target.Sources["categories"] = sourceType
	}
}
