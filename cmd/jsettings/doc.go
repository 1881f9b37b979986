// Package main provides the entry point for jsettings.
//
// jsettings loads a JSON settings document, validates it against a JSON
// Schema and prints or watches the result.
//
// Usage:
//
//	jsettings validate
//	jsettings -s app.json --schema app.schema.json -o yaml show
//	jsettings get server.port
//	jsettings watch --metrics :9090
package main
