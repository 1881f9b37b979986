// Package config defines the jsettings tool configuration.
//
// Values come from, in rising priority: Default, an optional YAML file,
// JSETTINGS_* environment variables and explicitly set command-line flags.
package config
