// Package output renders command results for the jsettings tool.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: KEY/VALUE tables with dotted keys for nested settings
//   - json.go: indented JSON
//   - yaml.go: YAML
package output
